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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates a ConfigEntry failed validation.
	ErrInvalidEntry = errors.New("invalid config entry")

	// ErrInvalidTurn indicates a conversation Turn failed validation.
	ErrInvalidTurn = errors.New("invalid conversation turn")

	// ErrEmptyEntryID indicates the entry Id field is empty.
	ErrEmptyEntryID = errors.New("entry id cannot be empty")

	// ErrEmptyTitle indicates the entry Title field is empty.
	ErrEmptyTitle = errors.New("entry title cannot be empty")

	// ErrEmptyAPIKey indicates the entry APIKey field is empty.
	ErrEmptyAPIKey = errors.New("entry api key cannot be empty")

	// ErrInvalidRole indicates an invalid Role value.
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
