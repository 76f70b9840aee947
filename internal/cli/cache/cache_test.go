package cache

import (
	"Drafty/internal/model"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_ReplaceAllAndList(t *testing.T) {
	c := newTestCache(t)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	notes := []model.Note{
		{ID: "n1", Title: "first", Tags: []string{"x", "y"}, CreatedAt: now, UpdatedAt: now},
		{ID: "n2", Title: "second", Content: "C", CreatedAt: now.Add(time.Minute), UpdatedAt: now.Add(time.Minute)},
	}
	require.NoError(t, c.ReplaceAll(notes))

	got, err := c.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, []string{"x", "y"}, got[0].Tags)
	assert.Equal(t, "C", got[1].Content)
}

func TestCache_ReplaceAllDropsStaleRows(t *testing.T) {
	c := newTestCache(t)
	now := time.Now().UTC()

	require.NoError(t, c.ReplaceAll([]model.Note{
		{ID: "old", Title: "stale", CreatedAt: now, UpdatedAt: now},
	}))
	require.NoError(t, c.ReplaceAll([]model.Note{
		{ID: "new", Title: "fresh", CreatedAt: now, UpdatedAt: now},
	}))

	got, err := c.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestCache_EmptyListIsNotError(t *testing.T) {
	c := newTestCache(t)

	got, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, got)

	// очистка пустым списком тоже работает
	require.NoError(t, c.ReplaceAll(nil))
}
