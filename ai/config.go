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


package ai

import (
	"fmt"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// APIKey authenticates against the provider API. Required.
	APIKey string

	// BaseURL overrides the provider endpoint. Useful for proxies and
	// OpenAI-compatible servers. Empty means the provider default.
	BaseURL string

	// AssistantID selects the assistant used for text generation.
	// Optional: a provider without it still serves image requests,
	// and its Agent returns ErrMissingAssistantID on use.
	AssistantID string

	// Model selects the image generation model. The assistant model is
	// pinned by the assistant itself and is not configured here.
	// Default: dall-e-3
	Model string

	// PollInterval is the delay between run status checks while an
	// assistant run is queued or in progress.
	// Default: 1 second
	PollInterval time.Duration

	// RunTimeout bounds the total time a single assistant run may spend
	// before the poll loop gives up with ErrRunTimeout.
	// Default: 5 minutes
	RunTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIKey sets the provider API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithBaseURL sets a custom provider endpoint.
func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithAssistantID sets the assistant used for text generation.
func WithAssistantID(id string) ConfigOption {
	return func(c *Config) {
		c.AssistantID = id
	}
}

// WithModel sets the image generation model.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithPollInterval sets the delay between run status checks.
func WithPollInterval(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.PollInterval = d
	}
}

// WithRunTimeout sets the upper bound on a single assistant run.
func WithRunTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.RunTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults. The API key
// must still be supplied before use.
func DefaultConfig() *Config {
	return &Config{
		Model:        DefaultImageModel,
		PollInterval: 1 * time.Second,
		RunTimeout:   5 * time.Minute,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//   cfg := NewConfig(
//       WithAPIKey("sk-..."),
//       WithAssistantID("asst_abc123"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
func (c *Config) Normalize() {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.AssistantID = strings.TrimSpace(c.AssistantID)
	c.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	c.Model = strings.TrimSpace(c.Model)
	if c.Model == "" {
		c.Model = DefaultImageModel
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 1 * time.Second
	}
	if c.RunTimeout <= 0 {
		c.RunTimeout = 5 * time.Minute
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.APIKey == "" {
		return fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}
	if c.RunTimeout < c.PollInterval {
		return fmt.Errorf("%w: RunTimeout must not be shorter than PollInterval", ErrInvalidConfig)
	}
	return nil
}
