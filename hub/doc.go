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


// Package hub is the embedded service host that integrations plug into.
//
// A Hub owns three registries:
//
//   - services: named operations ("domain.service") callable with a
//     loose map payload, dispatched on a bounded worker pool
//   - providers: one ai.Provider per loaded config entry, together
//     with the entry's lifecycle state
//   - entities: long-lived addressable objects (such as conversation
//     agents) registered by integrations during entry setup
//
// Service handlers receive a ServiceCall and bind its Data payload to
// a typed request struct with BindCallData, which validates the struct
// tags and reports caller mistakes as *ValidationError. Failures of
// the backing provider are reported as *ServiceError so callers can
// tell the two classes apart with errors.As.
package hub
