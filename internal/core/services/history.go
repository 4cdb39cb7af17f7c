package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
	"github.com/custodia-labs/larder/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded parse results.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
// The store parameter is optional (can be nil); every call then returns
// domain.ErrHistoryDisabled.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Enabled reports whether a history store is configured.
func (s *HistoryService) Enabled() bool {
	return s.store != nil
}

// List returns recorded entries newest first.
func (s *HistoryService) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", domain.ErrInvalidInput, filter.Limit)
	}
	return s.store.List(ctx, filter)
}

// Get returns one entry by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// Clear removes all entries.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, domain.ErrHistoryDisabled
	}
	return s.store.Clear(ctx)
}
