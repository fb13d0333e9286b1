package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/errors"
)

func TestParseIndex(t *testing.T) {
	t.Parallel()

	t.Run("parses a plain integer", func(t *testing.T) {
		t.Parallel()

		index, err := parseIndex("2")
		require.NoError(t, err)
		assert.Equal(t, 2, index)
	})

	t.Run("parses zero", func(t *testing.T) {
		t.Parallel()

		index, err := parseIndex("0")
		require.NoError(t, err)
		assert.Equal(t, 0, index)
	})

	t.Run("parses a negative index", func(t *testing.T) {
		t.Parallel()

		// Range checking happens at the store, not here.
		index, err := parseIndex("-1")
		require.NoError(t, err)
		assert.Equal(t, -1, index)
	})

	t.Run("rejects a non-numeric argument", func(t *testing.T) {
		t.Parallel()

		_, err := parseIndex("first")
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrInvalidIndex)
		assert.True(t, errors.IsExitCode2Error(err))
	})

	t.Run("rejects a fractional index", func(t *testing.T) {
		t.Parallel()

		_, err := parseIndex("1.5")
		require.ErrorIs(t, err, errors.ErrInvalidIndex)
	})

	t.Run("rejects an empty argument", func(t *testing.T) {
		t.Parallel()

		_, err := parseIndex("")
		require.ErrorIs(t, err, errors.ErrInvalidIndex)
	})
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	t.Run("absent file loads an empty store", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.File = filepath.Join(t.TempDir(), "todo.json")

		store, err := openStore(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
		assert.Equal(t, cfg.File, store.Path())
	})

	t.Run("round trips a saved task", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cfg := config.DefaultConfig()
		cfg.File = filepath.Join(t.TempDir(), "todo.json")

		store, err := openStore(ctx, cfg)
		require.NoError(t, err)

		_, err = store.Add("Water plants", "")
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx))

		reloaded, err := openStore(ctx, cfg)
		require.NoError(t, err)
		require.Equal(t, 1, reloaded.Len())

		got, err := reloaded.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "Water plants", got.Title)
	})
}
