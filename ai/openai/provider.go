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


package openai

import (
	"context"
	"log/slog"

	"github.com/hearthside/conduit/ai"
)

// Provider implements ai.Provider using the OpenAI API.
// It manages assistant and image generator instances sharing one
// authenticated client.
type Provider struct {
	config    *ai.Config
	sdk       *sdkClient
	assistant *Assistant
	images    *ImageGenerator
	logger    *slog.Logger
}

// NewProvider creates a new AI provider backed by the OpenAI API.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sdk := newSDKClient(config)

	return &Provider{
		config:    config,
		sdk:       sdk,
		assistant: newAssistant(sdk, config),
		images:    newImageGenerator(sdk),
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Agent returns the assistant run service.
func (p *Provider) Agent() ai.Agent {
	return p.assistant
}

// Images returns the image generation service.
func (p *Provider) Images() ai.ImageGenerator {
	return p.images
}

// Verify probes the credentials with a models listing, the cheapest
// authenticated call the API offers.
func (p *Provider) Verify(ctx context.Context) error {
	p.logger.Debug("verifying credentials")
	return p.sdk.verify(ctx)
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying client doesn't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
