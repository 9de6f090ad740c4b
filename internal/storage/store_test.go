package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore creates a migrated in-memory SQLiteStore for testing.
func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// exerciseAdapter runs the behaviour every Adapter must share.
func exerciseAdapter(t *testing.T, a Adapter) {
	t.Helper()
	ctx := context.Background()

	_, err := a.Load(ctx, "toolmarks.history")
	assert.True(t, errors.Is(err, ErrNotFound), "missing key should be ErrNotFound, got %v", err)

	require.NoError(t, a.Save(ctx, "toolmarks.history", `[{"path":"/a","timestamp":1}]`))
	got, err := a.Load(ctx, "toolmarks.history")
	require.NoError(t, err)
	assert.Equal(t, `[{"path":"/a","timestamp":1}]`, got)

	require.NoError(t, a.Save(ctx, "toolmarks.history", `[]`))
	got, err = a.Load(ctx, "toolmarks.history")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	require.NoError(t, a.Save(ctx, "toolmarks.favorites", `["/x"]`))
	got, err = a.Load(ctx, "toolmarks.favorites")
	require.NoError(t, err)
	assert.Equal(t, `["/x"]`, got)

	require.NoError(t, a.Remove(ctx, "toolmarks.history"))
	_, err = a.Load(ctx, "toolmarks.history")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, a.Remove(ctx, "never-written"))
}

func TestSQLiteStore_Adapter(t *testing.T) {
	exerciseAdapter(t, openTestStore(t))
}

func TestSQLiteStore_Keys(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, store.Save(ctx, "b", "1"))
	require.NoError(t, store.Save(ctx, "a", "2"))

	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "toolmarks.db")
	ctx := context.Background()

	first, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "k", "v"))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	got, err := second.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewSQLiteStore_LeavesDBOpen(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, NewMigrationRunner(db).Run())

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.NoError(t, db.Ping())
}

func TestMemoryStore_Adapter(t *testing.T) {
	exerciseAdapter(t, NewMemoryStore())
}

func TestFileStore_Adapter(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	exerciseAdapter(t, store)
}

func TestFileStore_EscapesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "../escape/key", "v"))
	got, err := store.Load(ctx, "../escape/key")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
