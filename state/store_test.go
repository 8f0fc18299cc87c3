package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foomo/workspace-sidebar/sidebar"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	expansion, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, expansion)

	require.NoError(t, store.Save(ctx, sidebar.Expansion{"A", "B"}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sidebar.Expansion{"A", "B"}, loaded)

	// mutating the loaded copy must not leak into the store
	loaded.Toggle("A")
	again, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sidebar.Expansion{"A", "B"}, again)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)

	expansion, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, expansion)

	require.NoError(t, store.Save(ctx, sidebar.Expansion{"Projects"}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sidebar.Expansion{"Projects"}, loaded)

	// overwrite replaces, it does not append
	require.NoError(t, store.Save(ctx, sidebar.Expansion{"Notes"}))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sidebar.Expansion{"Notes"}, loaded)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sidebar.Expansion{"Projects", "Notes"}))

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sidebar.Expansion{"Projects", "Notes"}, loaded)
}

func TestSQLiteStoreSaveNil(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}
