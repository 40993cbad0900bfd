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


// Package conduit assembles the storage backend, the hub and the
// OpenAI integration into one handle. Entries persisted in earlier
// runs are reloaded on Open.
package conduit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/bridge"
	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/hub"
	"github.com/hearthside/conduit/storage"
	"github.com/hearthside/conduit/storage/badger"
)

// Conduit owns the storage backend, the hub and the integration.
type Conduit struct {
	backend     *badger.Backend
	entries     storage.EntryRepository
	hub         *hub.Hub
	integration *bridge.Integration
	logger      *slog.Logger
}

// Option configures Open.
type Option func(*options)

type options struct {
	inMemory bool
	poolSize int
	factory  bridge.ProviderFactory
}

// WithInMemory keeps all state in memory. Intended for tests.
func WithInMemory() Option {
	return func(o *options) {
		o.inMemory = true
	}
}

// WithPoolSize sets the hub's service dispatch pool size.
func WithPoolSize(size int) Option {
	return func(o *options) {
		o.poolSize = size
	}
}

// WithProviderFactory overrides how providers are built for entries.
func WithProviderFactory(f bridge.ProviderFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// Open creates a Conduit over the database at filePath and reloads all
// persisted config entries. Entries whose setup fails stay bound in
// their failure state and do not abort the open; the hub reports them
// as not ready or failed when they are addressed.
func Open(ctx context.Context, filePath string, opts ...Option) (*Conduit, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	backend, err := badger.OpenBackend(filePath, o.inMemory)
	if err != nil {
		return nil, err
	}

	entries, err := badger.NewEntryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	var hubOpts []hub.Option
	if o.poolSize > 0 {
		hubOpts = append(hubOpts, hub.WithPoolSize(o.poolSize))
	}
	h, err := hub.New(hubOpts...)
	if err != nil {
		entries.Close()
		backend.Close()
		return nil, err
	}

	var bridgeOpts []bridge.Option
	if o.factory != nil {
		bridgeOpts = append(bridgeOpts, bridge.WithProviderFactory(o.factory))
	}
	integration, err := bridge.New(h, bridgeOpts...)
	if err != nil {
		_ = h.Close()
		entries.Close()
		backend.Close()
		return nil, err
	}

	c := &Conduit{
		backend:     backend,
		entries:     entries,
		hub:         h,
		integration: integration,
		logger:      slog.Default(),
	}

	if err := c.reloadEntries(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// reloadEntries sets up every persisted entry. Setup failures are
// logged and leave the entry in its failure state.
func (c *Conduit) reloadEntries(ctx context.Context) error {
	persisted, err := c.entries.ListEntries(ctx)
	if err != nil {
		return err
	}
	for _, entry := range persisted {
		if err := c.integration.SetupEntry(ctx, entry); err != nil {
			c.logger.Warn("entry not loaded on startup", "entry_id", entry.Id, "err", err)
		}
	}
	return nil
}

// Hub returns the service host.
func (c *Conduit) Hub() *hub.Hub {
	return c.hub
}

// Entries returns the config entry repository.
func (c *Conduit) Entries() storage.EntryRepository {
	return c.entries
}

// Integration returns the OpenAI integration.
func (c *Conduit) Integration() *bridge.Integration {
	return c.integration
}

// AddEntry persists a new config entry and attempts to load it. The
// entry is returned even when setup fails; the error then carries the
// setup outcome.
func (c *Conduit) AddEntry(ctx context.Context, title, apiKey, assistantID string) (*core.ConfigEntry, error) {
	entry, err := c.entries.AddEntry(ctx, core.NewConfigEntry(title, apiKey, assistantID))
	if err != nil {
		return nil, err
	}
	if err := c.integration.SetupEntry(ctx, entry); err != nil {
		return entry, err
	}
	return entry, nil
}

// RemoveEntry unloads and deletes a config entry.
func (c *Conduit) RemoveEntry(ctx context.Context, entryID string) error {
	if err := c.entries.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	c.integration.UnloadEntry(entryID)
	return nil
}

// GenerateContent runs the entry's assistant over a prompt with
// optional local image files and returns the reply text.
func (c *Conduit) GenerateContent(ctx context.Context, entryID, prompt string, filenames []string) (string, error) {
	data := map[string]any{
		"config_entry": entryID,
		"prompt":       prompt,
	}
	if len(filenames) > 0 {
		data["filenames"] = filenames
	}
	resp, err := c.hub.CallService(ctx, &hub.ServiceCall{
		Domain:  bridge.Domain,
		Service: bridge.ServiceGenerateContent,
		Data:    data,
	})
	if err != nil {
		return "", err
	}
	text, _ := resp["text"].(string)
	return text, nil
}

// GenerateImage generates one image for the entry and returns its
// descriptor.
func (c *Conduit) GenerateImage(ctx context.Context, entryID, prompt string, req *ai.ImageRequest) (hub.ServiceResponse, error) {
	data := map[string]any{
		"config_entry": entryID,
		"prompt":       prompt,
	}
	if req != nil {
		if req.Size != "" {
			data["size"] = req.Size
		}
		if req.Quality != "" {
			data["quality"] = req.Quality
		}
		if req.Style != "" {
			data["style"] = req.Style
		}
	}
	return c.hub.CallService(ctx, &hub.ServiceCall{
		Domain:  bridge.Domain,
		Service: bridge.ServiceGenerateImage,
		Data:    data,
	})
}

// Close shuts down the hub (closing all providers) and the storage
// backend.
func (c *Conduit) Close() error {
	var errs []error
	if err := c.hub.Close(); err != nil && !errors.Is(err, hub.ErrHubClosed) {
		c.logger.Error("error closing hub", "err", err)
		errs = append(errs, err)
	}
	if err := c.entries.Close(); err != nil {
		c.logger.Error("error closing entry repository", "err", err)
		errs = append(errs, err)
	}
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
