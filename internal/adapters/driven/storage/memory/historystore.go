package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		entries: make(map[string]domain.HistoryEntry),
	}
}

// Save stores or replaces an entry.
func (s *HistoryStore) Save(_ context.Context, entry *domain.HistoryEntry) error {
	if entry == nil || entry.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = *entry
	return nil
}

// Get retrieves an entry by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// List returns entries newest first. Entries with the same timestamp are
// ordered by ID so the result is stable.
func (s *HistoryStore) List(_ context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter.Contains)
	result := make([]domain.HistoryEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if needle != "" && !strings.Contains(strings.ToLower(entry.Input), needle) {
			continue
		}
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

// Clear removes all entries.
func (s *HistoryStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	s.entries = make(map[string]domain.HistoryEntry)
	return n, nil
}
