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
	"errors"
	"fmt"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/hub"
)

// SetupEntry loads one config entry: it builds a provider for the
// entry's credentials, verifies them, binds the provider to the hub
// and registers the entry's conversation agent.
//
// Rejected credentials bind the entry in the setup-error state and
// return hub.ErrEntryFailed. Any other verification failure binds the
// entry in the retry state and returns hub.ErrEntryNotReady, signaling
// the caller to retry later.
func (i *Integration) SetupEntry(ctx context.Context, entry *core.ConfigEntry) error {
	if err := core.ValidateConfigEntry(entry); err != nil {
		return &hub.ValidationError{Message: "invalid config entry", Cause: err}
	}

	cfg := ai.NewConfig(
		ai.WithAPIKey(entry.APIKey),
		ai.WithAssistantID(entry.AssistantID),
	)

	provider, err := i.factory(cfg)
	if err != nil {
		return &hub.ValidationError{Message: "cannot build provider for entry " + entry.Id, Cause: err}
	}

	if err := provider.Verify(ctx); err != nil {
		_ = provider.Close()

		if errors.Is(err, ai.ErrAuthentication) {
			i.logger.Error("entry setup failed, credentials rejected", "entry_id", entry.Id, "err", err)
			if bindErr := i.hub.BindProvider(entry.Id, nil, hub.EntryStateSetupError); bindErr != nil {
				return bindErr
			}
			return fmt.Errorf("%w: %w", hub.ErrEntryFailed, err)
		}

		i.logger.Warn("entry setup failed, will retry", "entry_id", entry.Id, "err", err)
		if bindErr := i.hub.BindProvider(entry.Id, nil, hub.EntryStateSetupRetry); bindErr != nil {
			return bindErr
		}
		return fmt.Errorf("%w: %w", hub.ErrEntryNotReady, err)
	}

	if err := i.hub.BindProvider(entry.Id, provider, hub.EntryStateLoaded); err != nil {
		_ = provider.Close()
		return err
	}

	agent := newConversationAgent(entry.Id, i.logger)
	if err := i.hub.AddEntity(agent); err != nil {
		i.hub.UnbindProvider(entry.Id)
		return err
	}

	i.logger.Info("entry loaded", "entry_id", entry.Id, "title", entry.Title)
	return nil
}

// UnloadEntry removes the entry's conversation agent and closes its provider.
func (i *Integration) UnloadEntry(entryID string) {
	i.hub.RemoveEntity(conversationUniqueID(entryID))
	i.hub.UnbindProvider(entryID)
	i.logger.Info("entry unloaded", "entry_id", entryID)
}
