package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/larder/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/larder/internal/core/domain"
)

func TestHistoryService_Disabled(t *testing.T) {
	service := NewHistoryService(nil)
	ctx := context.Background()

	assert.False(t, service.Enabled())

	_, err := service.List(ctx, domain.HistoryFilter{})
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)

	_, err = service.Get(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)

	_, err = service.Clear(ctx)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
}

func TestHistoryService_List(t *testing.T) {
	store := &mockHistoryStore{saved: []domain.HistoryEntry{{ID: "a", Input: "1 egg"}}}
	service := NewHistoryService(store)

	entries, err := service.List(context.Background(), domain.HistoryFilter{Limit: 5, Contains: "egg"})

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, domain.HistoryFilter{Limit: 5, Contains: "egg"}, store.filter)
}

func TestHistoryService_List_NegativeLimit(t *testing.T) {
	service := NewHistoryService(&mockHistoryStore{})

	_, err := service.List(context.Background(), domain.HistoryFilter{Limit: -1})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_List_StoreError(t *testing.T) {
	service := NewHistoryService(&mockHistoryStore{listErr: assert.AnError})

	_, err := service.List(context.Background(), domain.HistoryFilter{})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestHistoryService_Get(t *testing.T) {
	store := memory.NewHistoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.HistoryEntry{ID: "h-1", Input: "2 limes", CreatedAt: time.Now()}))
	service := NewHistoryService(store)

	entry, err := service.Get(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, "2 limes", entry.Input)

	_, err = service.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_Clear(t *testing.T) {
	store := &mockHistoryStore{saved: []domain.HistoryEntry{{ID: "a"}, {ID: "b"}}}
	service := NewHistoryService(store)

	n, err := service.Clear(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, service.Enabled())
}

func TestHistoryService_RecordsFromParse(t *testing.T) {
	store := memory.NewHistoryStore()
	table := newTestParseService(t, nil, domain.ParserSettings{}).lookup
	parse := NewParseService(table, store, domain.ParserSettings{})
	history := NewHistoryService(store)
	ctx := context.Background()

	_, err := parse.ParseBatch(ctx, []string{"1 cup rice", "2 cups water", "1 bay leaf"})
	require.NoError(t, err)

	entries, err := history.List(ctx, domain.HistoryFilter{Contains: "cup"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
