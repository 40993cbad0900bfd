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


// Package bridge is the OpenAI integration for the hub.
//
// It registers two services under the "openai_bridge" domain:
//
//   - generate_content: runs the entry's assistant over a prompt plus
//     optional local image files and returns the reply text
//   - generate_image: generates one image and returns its URL
//     descriptor
//
// Config entries are loaded with SetupEntry, which builds a provider
// for the entry's credentials, verifies them, binds the provider to
// the hub and registers a conversation agent entity for the entry.
// Setup failures are split into permanent ones (rejected credentials)
// and transient ones that callers should retry.
package bridge
