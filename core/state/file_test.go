package state_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/state"
)

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		store, err := state.NewFileStore(t.TempDir())
		require.NoError(t, err)

		want := testRecord{Name: "cart", Count: 3}
		require.NoError(t, store.Save(ctx, "cart-storage", want))

		var got testRecord
		require.NoError(t, store.Load(ctx, "cart-storage", &got))
		assert.Equal(t, want, got)
	})

	t.Run("overwrites wholesale", func(t *testing.T) {
		store, err := state.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "cart-storage", testRecord{Name: "old", Count: 1}))
		require.NoError(t, store.Save(ctx, "cart-storage", testRecord{Name: "new", Count: 2}))

		var got testRecord
		require.NoError(t, store.Load(ctx, "cart-storage", &got))
		assert.Equal(t, testRecord{Name: "new", Count: 2}, got)
	})

	t.Run("missing record", func(t *testing.T) {
		store, err := state.NewFileStore(t.TempDir())
		require.NoError(t, err)

		var got testRecord
		assert.ErrorIs(t, store.Load(ctx, "auth-storage", &got), state.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store, err := state.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "auth-storage", testRecord{Name: "x"}))
		require.NoError(t, store.Delete(ctx, "auth-storage"))
		require.NoError(t, store.Delete(ctx, "auth-storage"))

		var got testRecord
		assert.ErrorIs(t, store.Load(ctx, "auth-storage", &got), state.ErrNotFound)
	})

	t.Run("rejects path traversal keys", func(t *testing.T) {
		store, err := state.NewFileStore(t.TempDir())
		require.NoError(t, err)

		assert.ErrorIs(t, store.Save(ctx, "../escape", testRecord{}), state.ErrInvalidKey)
		assert.ErrorIs(t, store.Load(ctx, "", &testRecord{}), state.ErrInvalidKey)
	})

	t.Run("version mismatch", func(t *testing.T) {
		dir := t.TempDir()
		store, err := state.NewFileStore(dir)
		require.NoError(t, err)

		future := map[string]any{
			"version":    99,
			"updated_at": "2026-01-01T00:00:00Z",
			"state":      map[string]any{"name": "x"},
		}
		raw, err := json.Marshal(future)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cart-storage.json"), raw, 0o600))

		var got testRecord
		assert.ErrorIs(t, store.Load(ctx, "cart-storage", &got), state.ErrVersionMismatch)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		store, err := state.NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "cart-storage", testRecord{Name: "x"}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "cart-storage.json", entries[0].Name())
	})
}

func TestNewFileStore(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "state")
		_, err := state.NewFileStore(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		_, err := state.NewFileStore("")
		assert.Error(t, err)
	})
}
