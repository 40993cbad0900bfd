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


package bridge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/hub"
)

func conversationUniqueID(entryID string) string {
	return "conversation." + entryID
}

// ConversationAgent is the entity exposing an entry's assistant as a
// multi-turn conversation. It keeps one chat log per conversation id
// and replays the whole log on every turn, so the remote assistant
// sees full history even though each run uses a fresh thread.
type ConversationAgent struct {
	entryID string
	logger  *slog.Logger

	mu   sync.Mutex
	hub  *hub.Hub
	logs map[string][]core.Turn
}

func newConversationAgent(entryID string, logger *slog.Logger) *ConversationAgent {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConversationAgent{
		entryID: entryID,
		logger:  logger.With("entity", conversationUniqueID(entryID)),
		logs:    make(map[string][]core.Turn),
	}
}

// UniqueID identifies the agent as "conversation.<entry id>".
func (a *ConversationAgent) UniqueID() string {
	return conversationUniqueID(a.entryID)
}

// AddedToHub stores the hub reference used to resolve the provider.
func (a *ConversationAgent) AddedToHub(h *hub.Hub) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hub = h
}

// WillRemoveFromHub drops all conversation state.
func (a *ConversationAgent) WillRemoveFromHub() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hub = nil
	a.logs = make(map[string][]core.Turn)
}

// HandleTurn appends the user's text to the conversation log, runs the
// assistant over the full log and appends the reply. The user's turn
// stays in the log even when the run fails, so a retry carries it.
func (a *ConversationAgent) HandleTurn(ctx context.Context, conversationID, text string) (string, error) {
	a.mu.Lock()
	h := a.hub
	a.mu.Unlock()
	if h == nil {
		return "", hub.ErrEntryNotLoaded
	}

	provider, err := h.ResolveProvider(a.entryID)
	if err != nil {
		return "", err
	}

	turn := core.Turn{Role: core.RoleUser, Content: text}
	if err := core.ValidateTurn(&turn); err != nil {
		return "", &hub.ValidationError{Message: "invalid turn", Cause: err}
	}

	a.mu.Lock()
	a.logs[conversationID] = append(a.logs[conversationID], turn)
	turns := make([]core.Turn, len(a.logs[conversationID]))
	copy(turns, a.logs[conversationID])
	a.mu.Unlock()

	reply, err := provider.Agent().Generate(ctx, turns)
	if err != nil {
		a.logger.Warn("conversation turn failed", "conversation_id", conversationID, "err", err)
		return "", &hub.ServiceError{Domain: Domain, Service: "conversation", Cause: err}
	}

	a.mu.Lock()
	a.logs[conversationID] = append(a.logs[conversationID], core.Turn{
		Role:    core.RoleAssistant,
		Content: reply,
	})
	a.mu.Unlock()

	return reply, nil
}

// History returns a copy of one conversation's log.
func (a *ConversationAgent) History(conversationID string) []core.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	turns := make([]core.Turn, len(a.logs[conversationID]))
	copy(turns, a.logs[conversationID])
	return turns
}

// Forget drops one conversation's log.
func (a *ConversationAgent) Forget(conversationID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.logs, conversationID)
}
