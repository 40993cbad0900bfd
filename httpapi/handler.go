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
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hearthside/conduit/bridge"
	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/hub"
	"github.com/hearthside/conduit/storage"
)

// Handler serves the hub API.
type Handler struct {
	hub         *hub.Hub
	entries     storage.EntryRepository
	integration *bridge.Integration
	logger      *slog.Logger
}

// NewHandler creates a handler over a hub, its entry store and the
// integration managing entry lifecycles.
func NewHandler(h *hub.Hub, entries storage.EntryRepository, integration *bridge.Integration) *Handler {
	return &Handler{
		hub:         h,
		entries:     entries,
		integration: integration,
		logger:      slog.Default().With("component", "httpapi"),
	}
}

// Register mounts all routes under /api/v1.
func (h *Handler) Register(r *echo.Echo) {
	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")

	v1.POST("/services/:domain/:service", h.CallService)

	v1.GET("/entries", h.ListEntries)
	v1.POST("/entries", h.CreateEntry)
	v1.GET("/entries/:id", h.GetEntry)
	v1.DELETE("/entries/:id", h.DeleteEntry)

	v1.POST("/conversation/:entry_id", h.Converse)
}

// Health reports liveness.
func (h *Handler) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CallService dispatches one service call. The request body is the
// loose service data payload.
func (h *Handler) CallService(ctx echo.Context) error {
	data := map[string]any{}
	if err := ctx.Bind(&data); err != nil {
		return writeError(ctx, &hub.ValidationError{Message: "invalid request body", Cause: err})
	}

	call := &hub.ServiceCall{
		Domain:  ctx.Param("domain"),
		Service: ctx.Param("service"),
		Data:    data,
	}
	resp, err := h.hub.CallService(ctx.Request().Context(), call)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// ListEntries returns all config entries with credentials redacted.
func (h *Handler) ListEntries(ctx echo.Context) error {
	entries, err := h.entries.ListEntries(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, entryResponse(entry, h.stateOf(entry.Id)))
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetEntry returns one config entry with credentials redacted.
func (h *Handler) GetEntry(ctx echo.Context) error {
	entry, err := h.entries.GetEntry(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, entryResponse(entry, h.stateOf(entry.Id)))
}

// CreateEntry persists a config entry and attempts to load it. The
// entry is created even when setup fails; the response's state field
// tells the caller whether it is serving.
func (h *Handler) CreateEntry(ctx echo.Context) error {
	var req CreateEntryRequest
	if err := bindValidate(ctx, &req); err != nil {
		return writeError(ctx, &hub.ValidationError{Message: "invalid entry", Cause: err})
	}

	entry, err := h.entries.AddEntry(ctx.Request().Context(), core.NewConfigEntry(req.Title, req.APIKey, req.AssistantID))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := h.integration.SetupEntry(ctx.Request().Context(), entry); err != nil {
		// The entry is persisted; setup state is reported, not fatal,
		// unless the entry itself was invalid.
		var verr *hub.ValidationError
		if errors.As(err, &verr) {
			return writeError(ctx, err)
		}
		h.logger.Warn("entry created but not loaded", "entry_id", entry.Id, "err", err)
	}

	return ctx.JSON(http.StatusCreated, entryResponse(entry, h.stateOf(entry.Id)))
}

// DeleteEntry unloads and removes a config entry.
func (h *Handler) DeleteEntry(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := h.entries.DeleteEntry(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}
	h.integration.UnloadEntry(id)
	return ctx.NoContent(http.StatusNoContent)
}

// Converse sends one turn to an entry's conversation agent.
func (h *Handler) Converse(ctx echo.Context) error {
	var req ConversationRequest
	if err := bindValidate(ctx, &req); err != nil {
		return writeError(ctx, &hub.ValidationError{Message: "invalid conversation request", Cause: err})
	}

	entryID := ctx.Param("entry_id")
	entity, ok := h.hub.Entity("conversation." + entryID)
	if !ok {
		return writeError(ctx, storage.ErrNotFound)
	}
	agent, ok := entity.(*bridge.ConversationAgent)
	if !ok {
		return writeError(ctx, storage.ErrNotFound)
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	reply, err := agent.HandleTurn(ctx.Request().Context(), conversationID, req.Text)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ConversationResponse{
		Reply:          reply,
		ConversationID: conversationID,
	})
}

func (h *Handler) stateOf(entryID string) string {
	state, ok := h.hub.EntryStateOf(entryID)
	if !ok {
		return "not_loaded"
	}
	return state.String()
}

// writeError maps hub and storage errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var verr *hub.ValidationError
	status := http.StatusBadGateway

	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, hub.ErrEntryNotReady):
		status = http.StatusServiceUnavailable
	case errors.Is(err, storage.ErrDuplicateKey):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{Error: err.Error()})
}
