package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/storage"
)

func TestEntryRepositoryBasics(t *testing.T) {
	repo, backend, err := NewMemoryEntryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	entry := core.NewConfigEntry("Living room", "sk-test", "asst_123")

	added, err := repo.AddEntry(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to add entry: %v", err)
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be populated")
	}
	if !added.UpdatedAt.Equal(added.CreatedAt) {
		t.Fatal("Expected UpdatedAt to equal CreatedAt on insert")
	}

	retrieved, err := repo.GetEntry(ctx, entry.Id)
	if err != nil {
		t.Fatalf("Failed to get entry: %v", err)
	}
	if retrieved.Title != "Living room" {
		t.Fatalf("Expected 'Living room', got %q", retrieved.Title)
	}
	if retrieved.APIKey != "sk-test" {
		t.Fatalf("Expected api key to round-trip, got %q", retrieved.APIKey)
	}
}

func TestEntryRepositoryDuplicate(t *testing.T) {
	repo, backend, err := NewMemoryEntryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	entry := core.NewConfigEntry("Kitchen", "sk-test", "")

	if _, err := repo.AddEntry(ctx, entry); err != nil {
		t.Fatalf("Failed to add entry: %v", err)
	}
	if _, err := repo.AddEntry(ctx, entry); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestEntryRepositoryUpdate(t *testing.T) {
	repo, backend, err := NewMemoryEntryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	entry := core.NewConfigEntry("Kitchen", "sk-test", "")

	added, err := repo.AddEntry(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to add entry: %v", err)
	}

	added.AssistantID = "asst_new"
	updated, err := repo.UpdateEntry(ctx, added)
	if err != nil {
		t.Fatalf("Failed to update entry: %v", err)
	}
	if !updated.CreatedAt.Equal(added.CreatedAt) {
		t.Fatal("Expected CreatedAt to be preserved on update")
	}
	if updated.UpdatedAt.Before(added.UpdatedAt) {
		t.Fatal("Expected UpdatedAt to advance on update")
	}

	retrieved, err := repo.GetEntry(ctx, entry.Id)
	if err != nil {
		t.Fatalf("Failed to get entry: %v", err)
	}
	if retrieved.AssistantID != "asst_new" {
		t.Fatalf("Expected updated assistant id, got %q", retrieved.AssistantID)
	}

	missing := core.NewConfigEntry("Missing", "sk-x", "")
	if _, err := repo.UpdateEntry(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestEntryRepositoryDelete(t *testing.T) {
	repo, backend, err := NewMemoryEntryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()
	entry := core.NewConfigEntry("Kitchen", "sk-test", "")

	if _, err := repo.AddEntry(ctx, entry); err != nil {
		t.Fatalf("Failed to add entry: %v", err)
	}
	if err := repo.DeleteEntry(ctx, entry.Id); err != nil {
		t.Fatalf("Failed to delete entry: %v", err)
	}
	if _, err := repo.GetEntry(ctx, entry.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.DeleteEntry(ctx, entry.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for double delete, got %v", err)
	}
}

func TestEntryRepositoryList(t *testing.T) {
	repo, backend, err := NewMemoryEntryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	entries, err := repo.ListEntries(ctx)
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Expected empty list, got %d entries", len(entries))
	}

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := repo.AddEntry(ctx, core.NewConfigEntry(title, "sk-test", "")); err != nil {
			t.Fatalf("Failed to add entry %q: %v", title, err)
		}
	}

	entries, err = repo.ListEntries(ctx)
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.Before(entries[i-1].CreatedAt) {
			t.Fatal("Expected entries ordered by creation time")
		}
	}
}

func TestEntryRepositoryClosedBackend(t *testing.T) {
	repo, backend, err := NewMemoryEntryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	repo.Close()
	backend.Close()

	_, err = repo.GetEntry(context.Background(), "any")
	if !errors.Is(err, storage.ErrStorageClosed) {
		t.Fatalf("Expected ErrStorageClosed, got %v", err)
	}
}
