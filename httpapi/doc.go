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


// Package httpapi exposes the hub over HTTP.
//
// The API surface mirrors the hub's three registries: service calls,
// config entry management and per-entry conversations. Hub error types
// are mapped onto status codes so clients can tell their own mistakes
// (400) from entries that are still warming up (503) and upstream
// provider failures (502). API keys never appear in responses.
package httpapi
