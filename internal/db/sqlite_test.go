package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SetGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "abc123"))

	value, ok, err := store.Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", value)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("user", `{"name":"old"}`))
	require.NoError(t, store.Set("user", `{"name":"new"}`))

	value, ok, err := store.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"new"}`, value)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "abc"))
	require.NoError(t, store.Delete("token"))

	_, ok, err := store.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is a no-op
	require.NoError(t, store.Delete("token"))
}

func TestSQLiteStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("token", "survives"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "survives", value)
}
