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


package mock

import (
	"context"

	"github.com/hearthside/conduit/ai"
)

// MockProvider is a test double for ai.Provider.
// It aggregates mock agent and image generator instances.
type MockProvider struct {
	// VerifyFunc is called by Verify if set. If nil, Verify succeeds.
	VerifyFunc func(ctx context.Context) error

	agent  *MockAgent
	images *MockImageGenerator
	closed bool
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use GetMockAgent()/GetMockImages() to access concrete
// types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		agent:  NewMockAgent(),
		images: NewMockImageGenerator(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock
// services. This allows full control over the behavior of each service.
func NewMockProviderWithServices(agent *MockAgent, images *MockImageGenerator) *MockProvider {
	return &MockProvider{
		agent:  agent,
		images: images,
	}
}

// Agent returns the mock agent.
func (p *MockProvider) Agent() ai.Agent {
	return p.agent
}

// Images returns the mock image generator.
func (p *MockProvider) Images() ai.ImageGenerator {
	return p.images
}

// Verify succeeds unless VerifyFunc is set.
func (p *MockProvider) Verify(ctx context.Context) error {
	if p.VerifyFunc != nil {
		return p.VerifyFunc(ctx)
	}
	return nil
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockAgent returns the underlying mock agent for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockAgent() *MockAgent {
	return p.agent
}

// GetMockImages returns the underlying mock image generator for test
// assertions.
func (p *MockProvider) GetMockImages() *MockImageGenerator {
	return p.images
}
