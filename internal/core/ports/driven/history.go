package driven

import (
	"context"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// HistoryStore persists parse results.
// Backed by SQLite, or memory for tests and throwaway sessions.
type HistoryStore interface {
	// Save stores an entry. An existing entry with the same ID is replaced.
	Save(ctx context.Context, entry *domain.HistoryEntry) error

	// Get retrieves an entry by ID.
	// Returns domain.ErrNotFound if no entry has that ID.
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)

	// List returns entries newest first.
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error)

	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
