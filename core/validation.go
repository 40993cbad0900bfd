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

import "fmt"

// ValidateConfigEntry validates a ConfigEntry according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Title must not be empty
//   - APIKey must not be empty
//
// NOT validated (populated by repositories or intentionally optional):
//   - AssistantID (entries used only for image generation have none)
//   - CreatedAt/UpdatedAt (set on insert/update)
func ValidateConfigEntry(entry *ConfigEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyEntryID)
	}

	if entry.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyTitle)
	}

	if entry.APIKey == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyAPIKey)
	}

	return nil
}

// ValidateTurn validates a conversation Turn according to domain rules.
//
// Validation rules:
//   - Role must be valid
//   - Content must not be empty unless the turn carries attachments
func ValidateTurn(turn *Turn) error {
	if turn == nil {
		return fmt.Errorf("%w: turn is nil", ErrInvalidTurn)
	}

	if err := ValidateRole(turn.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTurn, err)
	}

	if turn.Content == "" && len(turn.Attachments) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTurn, ErrEmptyContent)
	}

	return nil
}

// ValidateRole validates that a Role has a valid value.
func ValidateRole(role Role) error {
	switch role {
	case RoleSystem, RoleUser, RoleAssistant, RoleTool:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidRole, role)
	}
}
