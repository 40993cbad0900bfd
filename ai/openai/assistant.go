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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/core"
)

// Assistant implements ai.Agent over the threads API.
// Each Generate call creates a fresh thread, replays the caller's
// conversation into it and runs the configured assistant once.
type Assistant struct {
	api          threadAPI
	assistantID  string
	pollInterval time.Duration
	runTimeout   time.Duration
	logger       *slog.Logger
}

// newAssistant is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAssistant(api threadAPI, config *ai.Config) *Assistant {
	return &Assistant{
		api:          api,
		assistantID:  config.AssistantID,
		pollInterval: config.PollInterval,
		runTimeout:   config.RunTimeout,
		logger:       slog.Default().With("component", "openai-assistant"),
	}
}

// Generate runs one assistant execution over the conversation and
// returns the reply text. The run is bounded by the configured run
// timeout and the caller's context.
func (a *Assistant) Generate(ctx context.Context, turns []core.Turn) (string, error) {
	if a.assistantID == "" {
		return "", ai.ErrMissingAssistantID
	}
	if len(turns) == 0 {
		return "", fmt.Errorf("%w: no turns to send", core.ErrInvalidTurn)
	}

	threadID, err := a.api.CreateThread(ctx)
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}

	if err := a.replayTurns(ctx, threadID, turns); err != nil {
		return "", err
	}

	runID, err := a.api.StartRun(ctx, threadID, a.assistantID)
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}

	a.logger.Debug("run started", "thread_id", threadID, "run_id", runID)

	status, err := a.awaitRun(ctx, threadID, runID)
	if err != nil {
		return "", err
	}
	if status != runStatusCompleted {
		return "", fmt.Errorf("%w: status %s", ai.ErrRunFailed, status)
	}

	return a.latestAssistantText(ctx, threadID)
}

// replayTurns posts the conversation into the thread. The threads API
// only accepts user-authored input, so every turn is posted as a user
// message with its role prefixed when it is not already a user turn.
// Tool turns carry intermediate machinery output and are skipped.
func (a *Assistant) replayTurns(ctx context.Context, threadID string, turns []core.Turn) error {
	for _, turn := range turns {
		if turn.Role == core.RoleTool {
			continue
		}
		text := turn.Content
		if turn.Role != core.RoleUser && text != "" {
			text = fmt.Sprintf("[%s] %s", turn.Role, text)
		}
		if err := a.api.AddUserMessage(ctx, threadID, text, turn.Attachments); err != nil {
			return fmt.Errorf("add message: %w", err)
		}
	}
	return nil
}

// awaitRun polls the run status until it reaches a terminal state.
// It returns ErrRunTimeout when the run timeout elapses and the
// context error when the caller gives up first.
func (a *Assistant) awaitRun(ctx context.Context, threadID, runID string) (runStatus, error) {
	deadline := time.After(a.runTimeout)
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-deadline:
			a.logger.Warn("run timed out", "thread_id", threadID, "run_id", runID, "timeout", a.runTimeout)
			return "", fmt.Errorf("%w after %s", ai.ErrRunTimeout, a.runTimeout)
		case <-ticker.C:
			status, err := a.api.GetRunStatus(ctx, threadID, runID)
			if err != nil {
				return "", fmt.Errorf("get run: %w", err)
			}
			if status.terminal() {
				return status, nil
			}
		}
	}
}

// latestAssistantText returns the text of the newest assistant message
// in the thread, concatenating its text segments in their original
// order. ListMessages yields newest first.
func (a *Assistant) latestAssistantText(ctx context.Context, threadID string) (string, error) {
	msgs, err := a.api.ListMessages(ctx, threadID)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	for _, m := range msgs {
		if m.Role == "assistant" {
			return strings.Join(m.Segments, ""), nil
		}
	}
	return "", ai.ErrNoAssistantMessage
}
