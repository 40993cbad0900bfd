// Copyright 2026 Hearthside Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package bridge

import (
	"log/slog"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/ai/openai"
	"github.com/hearthside/conduit/hub"
)

// Domain is the service domain of this integration.
const Domain = "openai_bridge"

// Service names registered under Domain.
const (
	ServiceGenerateContent = "generate_content"
	ServiceGenerateImage   = "generate_image"
)

// ProviderFactory builds a provider for one config entry's credentials.
// Tests substitute factories returning mocks.
type ProviderFactory func(cfg *ai.Config) (ai.Provider, error)

// Integration wires OpenAI-backed services and entities into a hub.
type Integration struct {
	hub     *hub.Hub
	factory ProviderFactory
	logger  *slog.Logger
}

// Option configures an Integration.
type Option func(*Integration)

// WithProviderFactory overrides how providers are built from entry
// credentials. Default is openai.NewProvider.
func WithProviderFactory(f ProviderFactory) Option {
	return func(i *Integration) {
		if f != nil {
			i.factory = f
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Integration) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// New creates the integration and registers its services on the hub.
func New(h *hub.Hub, opts ...Option) (*Integration, error) {
	if h == nil {
		return nil, hub.NewValidationError("hub is required")
	}

	i := &Integration{
		hub:     h,
		factory: openai.NewProvider,
		logger:  slog.Default().With("component", "openai-bridge"),
	}
	for _, opt := range opts {
		opt(i)
	}

	if err := i.registerServices(); err != nil {
		return nil, err
	}
	return i, nil
}
