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


// Package ai provides abstractions for the AI services used in Conduit.
//
// This package defines interfaces for the two vendor operations the
// bridge exposes: assistant runs over a conversation log and image
// generation. It follows the dependency inversion principle, allowing
// the hub and bridge layers to depend on abstractions rather than a
// concrete vendor SDK.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Agent: runs the configured assistant over a conversation log
//   - ImageGenerator: produces an image descriptor from a prompt
//   - Provider: aggregates both services plus credential verification
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using the official OpenAI SDK
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider) return INTERFACE types to
// enforce abstraction and prevent accidental coupling to vendor
// implementation details. Test utility constructors (mock.NewMockAgent,
// mock.NewMockImageGenerator) return CONCRETE types to enable test
// assertions and behavior injection via function fields.
package ai
