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


// Package core defines the domain model of Conduit.
//
// It contains the persisted ConfigEntry record, the conversation log
// types exchanged with AI providers, validation rules, and the MUS
// serializers used by the storage layer. The package has no
// dependencies on storage backends or vendor SDKs so that every other
// package can depend on it without coupling.
package core
