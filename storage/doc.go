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


// Package storage defines the persistence abstractions for Conduit.
//
// Config entries are host-managed persisted records: they survive
// restarts and are reloaded into the hub at startup. The package
// defines the EntryRepository interface, shared sentinel errors, and
// MUS-based serialization helpers. The storage/badger sub-package
// provides the BadgerDB implementation.
package storage
