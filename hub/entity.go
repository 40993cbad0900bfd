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


package hub

// Entity is a long-lived addressable object registered by an
// integration, such as a conversation agent backed by a config entry.
type Entity interface {
	// UniqueID identifies the entity across the hub. By convention it
	// is "<kind>.<config entry id>".
	UniqueID() string

	// AddedToHub is called after the entity is registered.
	AddedToHub(h *Hub)

	// WillRemoveFromHub is called before the entity is removed, during
	// entry unload or hub shutdown.
	WillRemoveFromHub()
}
