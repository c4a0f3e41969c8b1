package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfaram/vidgrid/internal/models"
)

// setupSQLiteStore creates a store over a temp database with migrations applied.
func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath, "file://../../migrations")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	id, err := store.Create(ctx, models.VideoDraft{
		Title:     "A",
		Category:  "Sci-Fi",
		URL:       "https://x/a",
		Thumbnail: "https://x/a.jpg",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	videos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, id, videos[0].ID)
	assert.Equal(t, "A", videos[0].Title)
	assert.Equal(t, "Sci-Fi", videos[0].Category)
	assert.Equal(t, "https://x/a", videos[0].URL)
	assert.Equal(t, "https://x/a.jpg", videos[0].Thumbnail)
	assert.False(t, videos[0].CreatedAt.IsZero())
}

func TestSQLiteStore_ListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	older, err := store.Create(ctx, models.VideoDraft{Title: "older", Category: "c", URL: "https://x/1"})
	require.NoError(t, err)

	// Distinct timestamps, the sort key is created_at.
	time.Sleep(10 * time.Millisecond)

	newer, err := store.Create(ctx, models.VideoDraft{Title: "newer", Category: "c", URL: "https://x/2"})
	require.NoError(t, err)

	videos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, newer, videos[0].ID)
	assert.Equal(t, older, videos[1].ID)
}

func TestSQLiteStore_Update(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	id, err := store.Create(ctx, models.VideoDraft{Title: "old", Category: "c", URL: "https://x/a", Thumbnail: "https://x/t.jpg"})
	require.NoError(t, err)

	err = store.Update(ctx, id, models.VideoDraft{Title: "new", Category: "d", URL: "https://x/b"})
	require.NoError(t, err)

	videos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "new", videos[0].Title)
	assert.Equal(t, "d", videos[0].Category)
	// A cleared thumbnail is written, not skipped.
	assert.Empty(t, videos[0].Thumbnail)
}

func TestSQLiteStore_UpdateMissingIDIsNotFound(t *testing.T) {
	store := setupSQLiteStore(t)
	err := store.Update(context.Background(), "missing", models.VideoDraft{Title: "x", Category: "c", URL: "https://x"})
	assert.True(t, IsNotFound(err))
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	id, err := store.Create(ctx, models.VideoDraft{Title: "A", Category: "c", URL: "https://x/a"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	videos, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, videos)

	assert.True(t, IsNotFound(store.Delete(ctx, id)))
}

func TestSQLiteStore_Ping(t *testing.T) {
	store := setupSQLiteStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestSeed_PopulatesCatalog(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	require.NoError(t, Seed(ctx, store))

	videos, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, videos, 4)
}
