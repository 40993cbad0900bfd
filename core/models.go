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

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// ID is a fixed-width storage identifier derived from an entity's
// string identity. Fixed-width keys keep the key space ordered and
// cheap to compose.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ConfigEntry is a persisted configuration record for one integration
// instance. It holds the credentials needed to authenticate a vendor
// client and the optional assistant the entry is bound to. The
// authenticated client handle itself is runtime state owned by the hub
// and is never persisted.
type ConfigEntry struct {
	Id          string // UUID assigned at creation
	Title       string
	APIKey      string
	AssistantID string    // Optional; required only for assistant runs
	CreatedAt   time.Time // When the entry was first persisted
	UpdatedAt   time.Time // When the entry was last updated
}

// NewConfigEntry creates a config entry with a fresh UUID.
// Timestamps are populated by the repository on insert.
func NewConfigEntry(title, apiKey, assistantID string) *ConfigEntry {
	return &ConfigEntry{
		Id:          uuid.NewString(),
		Title:       title,
		APIKey:      apiKey,
		AssistantID: assistantID,
	}
}

// Key returns the entry's fixed-width storage identifier.
func (e *ConfigEntry) Key() ID {
	return IDFromContent(e.Id)
}

// Role identifies the author of a conversation turn.
type Role int

const (
	// RoleSystem represents instruction content injected by the host.
	RoleSystem Role = iota + 1
	// RoleUser represents a human user.
	RoleUser
	// RoleAssistant represents the remote assistant.
	RoleAssistant
	// RoleTool represents tool-call output carried in the log.
	RoleTool
)

// String returns the wire name of the role.
func (r Role) String() string {
	switch r {
	case RoleSystem:
		return "system"
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	case RoleTool:
		return "tool"
	default:
		return "unknown"
	}
}

// Turn is a single entry in a structured conversation log.
type Turn struct {
	Role        Role
	Content     string
	Attachments []string // Optional data URLs attached to the turn
}
