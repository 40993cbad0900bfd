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


package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/storage"
)

// EntryRepository implements storage.EntryRepository on BadgerDB.
type EntryRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.EntryRepository = (*EntryRepository)(nil)

// NewEntryRepository creates a config entry repository on the given backend.
func NewEntryRepository(backend *Backend) (storage.EntryRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &EntryRepository{
		backend: backend,
		logger:  slog.Default().With("component", "entry-repository"),
	}, nil
}

// AddEntry adds a config entry to storage.
func (r *EntryRepository) AddEntry(ctx context.Context, entry *core.ConfigEntry) (*core.ConfigEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if err := core.ValidateConfigEntry(entry); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *entry
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = stored.CreatedAt

	key := makeEntryKey(stored.Key())
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(key); err == nil {
			return fmt.Errorf("%w: entry %s", storage.ErrDuplicateKey, stored.Id)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return tx.Set(key, storage.MarshalConfigEntry(&stored))
	}, true)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("added config entry", "entry_id", stored.Id, "title", stored.Title)
	return &stored, nil
}

// UpdateEntry updates an existing config entry.
func (r *EntryRepository) UpdateEntry(ctx context.Context, entry *core.ConfigEntry) (*core.ConfigEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if err := core.ValidateConfigEntry(entry); err != nil {
		return nil, err
	}

	key := makeEntryKey(entry.Key())
	stored := *entry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: entry %s", storage.ErrNotFound, entry.Id)
		}
		if err != nil {
			return err
		}
		// Preserve the original creation time.
		if err := item.Value(func(val []byte) error {
			existing, err := storage.UnmarshalConfigEntry(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			stored.CreatedAt = existing.CreatedAt
			return nil
		}); err != nil {
			return err
		}
		stored.UpdatedAt = time.Now().UTC()
		return tx.Set(key, storage.MarshalConfigEntry(&stored))
	}, true)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// DeleteEntry removes a config entry by its id.
func (r *EntryRepository) DeleteEntry(ctx context.Context, id string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	key := makeEntryKey(core.IDFromContent(id))
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: entry %s", storage.ErrNotFound, id)
		} else if err != nil {
			return err
		}
		return tx.Delete(key)
	}, true)
}

// GetEntry retrieves a single config entry by id.
func (r *EntryRepository) GetEntry(ctx context.Context, id string) (*core.ConfigEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entry *core.ConfigEntry
	key := makeEntryKey(core.IDFromContent(id))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: entry %s", storage.ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalConfigEntry(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves all config entries, ordered by creation time.
func (r *EntryRepository) ListEntries(ctx context.Context) ([]*core.ConfigEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entries []*core.ConfigEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = entryScanPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalConfigEntry(val)
				if err != nil {
					return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

// Close closes the repository. The underlying backend is shared and
// must be closed by its owner.
func (r *EntryRepository) Close() error {
	return nil
}
