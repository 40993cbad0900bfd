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


// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Agent, ai.ImageGenerator,
// and ai.Provider for use in unit tests. The mocks allow tests to run without
// network access and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	reply, err := provider.Agent().Generate(ctx, turns)
//
//	// Custom behavior injection
//	agent := mock.NewMockAgent()
//	agent.GenerateFunc = func(ctx context.Context, turns []core.Turn) (string, error) {
//	    return "scripted reply", nil
//	}
//
//	// Check call counts
//	count := agent.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockAgent: Echoes the content of the last turn
//   - MockImageGenerator: Returns a deterministic URL derived from the prompt
//   - MockProvider: Aggregates mock agent and image generator, Verify succeeds
package mock
