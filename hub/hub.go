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


package hub

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/hearthside/conduit/ai"
)

// EntryState is the lifecycle state of a loaded config entry.
type EntryState int

const (
	// EntryStateLoaded means setup succeeded and the entry serves calls.
	EntryStateLoaded EntryState = iota + 1
	// EntryStateSetupRetry means setup failed transiently; the entry
	// should be retried later and rejects calls until it succeeds.
	EntryStateSetupRetry
	// EntryStateSetupError means setup failed permanently, for example
	// because the credentials were rejected.
	EntryStateSetupError
)

// String returns the lowercase name of the state.
func (s EntryState) String() string {
	switch s {
	case EntryStateLoaded:
		return "loaded"
	case EntryStateSetupRetry:
		return "setup_retry"
	case EntryStateSetupError:
		return "setup_error"
	default:
		return "unknown"
	}
}

type entryRuntime struct {
	provider ai.Provider
	state    EntryState
}

// Hub hosts service handlers, per-entry providers and entities.
// All methods are safe for concurrent use.
type Hub struct {
	mu       sync.RWMutex
	services map[string]ServiceHandler
	runtime  map[string]*entryRuntime
	entities map[string]Entity
	pool     *ants.Pool
	closed   bool
	logger   *slog.Logger
}

// Option configures a Hub.
type Option func(*Hub) error

// WithPoolSize sets the worker pool size for service dispatch.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(h *Hub) error {
		if size < 1 {
			size = 1
		}
		if h.pool != nil {
			h.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		h.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) error {
		if logger == nil {
			logger = slog.Default()
		}
		h.logger = logger
		return nil
	}
}

// New creates a hub with an empty service registry.
func New(opts ...Option) (*Hub, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	h := &Hub{
		services: make(map[string]ServiceHandler),
		runtime:  make(map[string]*entryRuntime),
		entities: make(map[string]Entity),
		pool:     pool,
		logger:   slog.Default().With("component", "hub"),
	}

	for _, opt := range opts {
		if optErr := opt(h); optErr != nil {
			h.pool.Release()
			return nil, optErr
		}
	}
	return h, nil
}

// RegisterService registers a handler under domain.service.
func (h *Hub) RegisterService(domain, service string, handler ServiceHandler) error {
	if domain == "" || service == "" || handler == nil {
		return NewValidationError("domain, service and handler are required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}

	name := domain + "." + service
	if _, exists := h.services[name]; exists {
		return ErrDuplicateService
	}
	h.services[name] = handler
	h.logger.Debug("service registered", "service", name)
	return nil
}

// UnregisterService removes a handler. Missing services are ignored.
func (h *Hub) UnregisterService(domain, service string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.services, domain+"."+service)
}

// ServiceNames returns the qualified names of all registered services.
func (h *Hub) ServiceNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	return names
}

type callResult struct {
	resp ServiceResponse
	err  error
}

// CallService dispatches the call to its handler on the worker pool
// and waits for the result or context cancellation. An unknown service
// is a *ValidationError so callers can distinguish their own mistakes
// from handler failures.
func (h *Hub) CallService(ctx context.Context, call *ServiceCall) (ServiceResponse, error) {
	if call == nil {
		return nil, NewValidationError("nil service call")
	}

	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return nil, ErrHubClosed
	}
	handler, ok := h.services[call.Name()]
	h.mu.RUnlock()
	if !ok {
		return nil, &ValidationError{
			Message: "unknown service " + call.Name(),
			Cause:   ErrServiceNotFound,
		}
	}

	results := make(chan callResult, 1)
	if err := h.pool.Submit(func() {
		resp, err := handler(ctx, call)
		results <- callResult{resp: resp, err: err}
	}); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.err != nil {
			h.logger.Warn("service call failed", "service", call.Name(), "err", res.err)
		}
		return res.resp, res.err
	}
}

// BindProvider attaches a provider (and its lifecycle state) to a
// config entry. Rebinding an entry replaces the previous runtime; the
// old provider is closed.
func (h *Hub) BindProvider(entryID string, provider ai.Provider, state EntryState) error {
	if entryID == "" {
		return NewValidationError("entry id is required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}

	if prev, ok := h.runtime[entryID]; ok && prev.provider != nil && prev.provider != provider {
		if err := prev.provider.Close(); err != nil {
			h.logger.Warn("closing replaced provider", "entry_id", entryID, "err", err)
		}
	}
	h.runtime[entryID] = &entryRuntime{provider: provider, state: state}
	h.logger.Debug("provider bound", "entry_id", entryID, "state", state)
	return nil
}

// SetEntryState updates the lifecycle state of a bound entry.
func (h *Hub) SetEntryState(entryID string, state EntryState) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	rt, ok := h.runtime[entryID]
	if !ok {
		return ErrEntryNotLoaded
	}
	rt.state = state
	return nil
}

// EntryStateOf reports the lifecycle state of an entry.
func (h *Hub) EntryStateOf(entryID string) (EntryState, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rt, ok := h.runtime[entryID]
	if !ok {
		return 0, false
	}
	return rt.state, true
}

// UnbindProvider detaches and closes the provider of an entry.
// Unknown entries are ignored.
func (h *Hub) UnbindProvider(entryID string) {
	h.mu.Lock()
	rt, ok := h.runtime[entryID]
	delete(h.runtime, entryID)
	h.mu.Unlock()

	if ok && rt.provider != nil {
		if err := rt.provider.Close(); err != nil {
			h.logger.Warn("closing provider", "entry_id", entryID, "err", err)
		}
	}
}

// ResolveProvider returns the provider serving an entry. An unknown
// entry is a *ValidationError; a bound entry that is not in the loaded
// state maps to ErrEntryNotReady or ErrEntryFailed.
func (h *Hub) ResolveProvider(entryID string) (ai.Provider, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rt, ok := h.runtime[entryID]
	if !ok {
		return nil, &ValidationError{
			Message: "unknown config entry " + entryID,
			Cause:   ErrEntryNotLoaded,
		}
	}
	switch rt.state {
	case EntryStateLoaded:
		return rt.provider, nil
	case EntryStateSetupRetry:
		return nil, ErrEntryNotReady
	default:
		return nil, ErrEntryFailed
	}
}

// AddEntity registers an entity under its unique id, replacing any
// previous entity with the same id.
func (h *Hub) AddEntity(e Entity) error {
	if e == nil || e.UniqueID() == "" {
		return NewValidationError("entity with a unique id is required")
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	prev := h.entities[e.UniqueID()]
	h.entities[e.UniqueID()] = e
	h.mu.Unlock()

	if prev != nil {
		prev.WillRemoveFromHub()
	}
	e.AddedToHub(h)
	return nil
}

// RemoveEntity unregisters an entity. Unknown ids are ignored.
func (h *Hub) RemoveEntity(uniqueID string) {
	h.mu.Lock()
	e, ok := h.entities[uniqueID]
	delete(h.entities, uniqueID)
	h.mu.Unlock()

	if ok {
		e.WillRemoveFromHub()
	}
}

// Entity returns the entity registered under uniqueID.
func (h *Hub) Entity(uniqueID string) (Entity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.entities[uniqueID]
	return e, ok
}

// Close shuts the hub down: entities are removed, providers closed and
// the worker pool released. The hub rejects further operations.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	h.closed = true
	entities := h.entities
	runtimes := h.runtime
	h.entities = make(map[string]Entity)
	h.runtime = make(map[string]*entryRuntime)
	h.mu.Unlock()

	for _, e := range entities {
		e.WillRemoveFromHub()
	}
	for entryID, rt := range runtimes {
		if rt.provider == nil {
			continue
		}
		if err := rt.provider.Close(); err != nil {
			h.logger.Warn("closing provider", "entry_id", entryID, "err", err)
		}
	}
	h.pool.Release()
	h.logger.Debug("hub closed")
	return nil
}
