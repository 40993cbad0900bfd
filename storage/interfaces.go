package storage

import (
	"context"

	"github.com/hearthside/conduit/core"
)

// EntryRepository provides operations for managing persisted config
// entries. Implementations must be thread-safe and support concurrent
// access.
type EntryRepository interface {
	// AddEntry adds a config entry to storage.
	// Sets CreatedAt/UpdatedAt timestamps if not already set.
	// Returns ErrDuplicateKey if an entry with the same id exists.
	// Returns the entry with timestamps populated.
	AddEntry(ctx context.Context, entry *core.ConfigEntry) (*core.ConfigEntry, error)

	// UpdateEntry updates an existing config entry.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the entry doesn't exist.
	UpdateEntry(ctx context.Context, entry *core.ConfigEntry) (*core.ConfigEntry, error)

	// DeleteEntry removes a config entry by its id.
	// Returns ErrNotFound if the entry doesn't exist.
	DeleteEntry(ctx context.Context, id string) error

	// GetEntry retrieves a single config entry by id.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id string) (*core.ConfigEntry, error)

	// ListEntries retrieves all config entries, ordered by creation time.
	ListEntries(ctx context.Context) ([]*core.ConfigEntry, error)

	// Close closes the repository and releases resources.
	Close() error
}
