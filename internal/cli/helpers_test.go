package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/task"
)

// newTestConfig returns a config whose store file lives in a fresh
// temporary directory.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "todo.json")
	return cfg
}

// seedTasks persists the given tasks to the configured store file.
func seedTasks(t *testing.T, cfg *config.Config, tasks ...task.Task) {
	t.Helper()

	ctx := context.Background()
	store, err := task.Load(ctx, cfg.File)
	require.NoError(t, err)

	for _, tk := range tasks {
		_, err := store.Add(tk.Title, tk.Priority)
		require.NoError(t, err)
		if tk.Completed {
			require.NoError(t, store.Complete(store.Len()-1))
		}
	}

	require.NoError(t, store.Save(ctx))
}

// reloadTasks reads the store back from disk for assertions.
func reloadTasks(t *testing.T, cfg *config.Config) []task.Task {
	t.Helper()

	store, err := task.Load(context.Background(), cfg.File)
	require.NoError(t, err)
	return store.Snapshot()
}
