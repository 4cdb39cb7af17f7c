package sqlite

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "larder-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func sampleEntry(id, input string, at time.Time) *domain.HistoryEntry {
	return &domain.HistoryEntry{
		ID:    id,
		Input: input,
		Result: domain.ParseResult{
			Input: input,
			Names: []string{"flour"},
			Measurements: []domain.Measurement{
				{Quantity: domain.NewScalar(1.5), Unit: "cup"},
			},
			Converted:  &domain.Measurement{Quantity: domain.NewScalar(180), Unit: "gram"},
			Additional: "sifted",
		},
		CreatedAt: at,
	}
}

// ==================== Store Creation Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, dbFile, filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.HistoryStore().Save(ctx, sampleEntry("h-1", "1 1/2 cups flour", time.Now())))
	require.NoError(t, store.Close())

	// Migrations must not re-run against an existing schema.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.HistoryStore().Get(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, "1 1/2 cups flour", got.Input)
}

// ==================== History Store Tests ====================

func TestHistoryStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()

	at := time.Date(2025, 3, 1, 12, 30, 0, 123, time.UTC)
	require.NoError(t, history.Save(ctx, sampleEntry("h-1", "1 1/2 cups (180 g) flour, sifted", at)))

	got, err := history.Get(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, "h-1", got.ID)
	assert.Equal(t, "1 1/2 cups (180 g) flour, sifted", got.Input)
	assert.Equal(t, got.Input, got.Result.Input)
	assert.True(t, at.Equal(got.CreatedAt))

	require.Len(t, got.Result.Measurements, 1)
	assert.Equal(t, 1.5, got.Result.Measurements[0].Quantity.Value())
	assert.Equal(t, "cup", got.Result.Measurements[0].Unit)
	require.NotNil(t, got.Result.Converted)
	assert.Equal(t, "gram", got.Result.Converted.Unit)
	assert.Equal(t, []string{"flour"}, got.Result.Names)
	assert.Equal(t, "sifted", got.Result.Additional)
}

func TestHistoryStore_Save_Replaces(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()

	require.NoError(t, history.Save(ctx, sampleEntry("h-1", "1 cup flour", time.Now())))
	require.NoError(t, history.Save(ctx, sampleEntry("h-1", "2 cups flour", time.Now())))

	entries, err := history.List(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2 cups flour", entries[0].Input)
}

func TestHistoryStore_Save_Invalid(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.HistoryStore().Save(context.Background(), &domain.HistoryEntry{Input: "salt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryStore_SaveAndGet_NaNAndRange(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()

	entry := &domain.HistoryEntry{
		ID:    "h-nan",
		Input: "1/0-2 cups water",
		Result: domain.ParseResult{
			Names: []string{"water"},
			Measurements: []domain.Measurement{
				{Quantity: domain.NewRange(math.NaN(), 2), Unit: "cup"},
			},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, history.Save(ctx, entry))

	got, err := history.Get(ctx, "h-nan")
	require.NoError(t, err)
	require.Len(t, got.Result.Measurements, 1)
	q := got.Result.Measurements[0].Quantity
	require.NotNil(t, q)
	assert.True(t, q.Range)
	assert.True(t, math.IsNaN(q.Min))
	assert.Equal(t, 2.0, q.Max)
}

func TestHistoryStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.HistoryStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_List(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, history.Save(ctx, sampleEntry("a", "1 cup Flour", base)))
	require.NoError(t, history.Save(ctx, sampleEntry("b", "2 eggs", base.Add(time.Minute))))
	require.NoError(t, history.Save(ctx, sampleEntry("c", "1/2 cup flour, sifted", base.Add(2*time.Minute))))
	require.NoError(t, history.Save(ctx, sampleEntry("d", "100% cocoa_powder", base.Add(3*time.Minute))))

	tests := []struct {
		name   string
		filter domain.HistoryFilter
		want   []string
	}{
		{"all newest first", domain.HistoryFilter{}, []string{"d", "c", "b", "a"}},
		{"limit", domain.HistoryFilter{Limit: 2}, []string{"d", "c"}},
		{"contains ignores case", domain.HistoryFilter{Contains: "FLOUR"}, []string{"c", "a"}},
		{"contains and limit", domain.HistoryFilter{Contains: "flour", Limit: 1}, []string{"c"}},
		{"percent is literal", domain.HistoryFilter{Contains: "0%"}, []string{"d"}},
		{"underscore is literal", domain.HistoryFilter{Contains: "a_p"}, []string{"d"}},
		{"no match", domain.HistoryFilter{Contains: "butter"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := history.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestHistoryStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	history := store.HistoryStore()

	require.NoError(t, history.Save(ctx, sampleEntry("a", "salt", time.Now())))
	require.NoError(t, history.Save(ctx, sampleEntry("b", "pepper", time.Now())))

	n, err := history.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := history.List(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryStore_ContextCancelled(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.HistoryStore().Save(ctx, sampleEntry("a", "salt", time.Now()))
	assert.Error(t, err)
}
