package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	mu       sync.Mutex
	saved    []domain.HistoryEntry
	saveErr  error
	listErr  error
	getErr   error
	cleared  int
	clearErr error
	filter   domain.HistoryFilter
}

func (m *mockHistoryStore) Save(_ context.Context, entry *domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, *entry)
	return nil
}

func (m *mockHistoryStore) Get(_ context.Context, id string) (*domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, e := range m.saved {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryStore) List(_ context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.saved, nil
}

func (m *mockHistoryStore) Clear(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return 0, m.clearErr
	}
	n := len(m.saved)
	m.saved = nil
	m.cleared += n
	return n, nil
}

func (m *mockHistoryStore) entries() []domain.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.HistoryEntry(nil), m.saved...)
}
