package driving

import (
	"context"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// HistoryService reads and clears recorded parse results.
type HistoryService interface {
	// List returns recorded entries newest first.
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error)

	// Get returns one entry by ID.
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) (int, error)

	// Enabled reports whether a history store is configured.
	Enabled() bool
}
