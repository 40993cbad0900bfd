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


package httpapi

import (
	"time"

	"github.com/hearthside/conduit/core"
)

// CreateEntryRequest creates one config entry. The API key is accepted
// here and never returned by any endpoint.
type CreateEntryRequest struct {
	Title       string `json:"title" validate:"required"`
	APIKey      string `json:"api_key" validate:"required"`
	AssistantID string `json:"assistant_id"`
}

// EntryResponse describes a config entry with its credentials redacted.
type EntryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AssistantID string    `json:"assistant_id,omitempty"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func entryResponse(entry *core.ConfigEntry, state string) EntryResponse {
	return EntryResponse{
		ID:          entry.Id,
		Title:       entry.Title,
		AssistantID: entry.AssistantID,
		State:       state,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

// ConversationRequest is one user turn addressed to an entry's agent.
// An empty ConversationID starts a new conversation.
type ConversationRequest struct {
	Text           string `json:"text" validate:"required"`
	ConversationID string `json:"conversation_id"`
}

// ConversationResponse carries the assistant reply and the id to use
// for follow-up turns.
type ConversationResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
