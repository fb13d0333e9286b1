package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/task"
)

func TestRunAdd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("adds a task with a priority", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		var buf bytes.Buffer

		err := runAdd(ctx, &buf, cfg, &addFlags{priority: "high"}, []string{"Buy", "milk"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Added task 0: Buy milk")

		tasks := reloadTasks(t, cfg)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy milk", tasks[0].Title)
		assert.Equal(t, task.PriorityHigh, tasks[0].Priority)
		assert.False(t, tasks[0].Completed)
	})

	t.Run("appends to the end of an existing list", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		seedTasks(t, cfg, task.Task{Title: "First"})

		var buf bytes.Buffer
		err := runAdd(ctx, &buf, cfg, &addFlags{}, []string{"Second"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Added task 1: Second")

		tasks := reloadTasks(t, cfg)
		require.Len(t, tasks, 2)
		assert.Equal(t, "Second", tasks[1].Title)
	})

	t.Run("echoes the full list after adding", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		seedTasks(t, cfg, task.Task{Title: "First"})

		var buf bytes.Buffer
		err := runAdd(ctx, &buf, cfg, &addFlags{}, []string{"Second"})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "TITLE")
		assert.Contains(t, buf.String(), "First")
		assert.Contains(t, buf.String(), "Second")
	})

	t.Run("priority parsing is case-insensitive", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		var buf bytes.Buffer

		err := runAdd(ctx, &buf, cfg, &addFlags{priority: "LOW"}, []string{"Nap"})
		require.NoError(t, err)

		tasks := reloadTasks(t, cfg)
		require.Len(t, tasks, 1)
		assert.Equal(t, task.PriorityLow, tasks[0].Priority)
	})

	t.Run("missing title is a usage error", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		var buf bytes.Buffer

		// Test stdin is not a terminal, so no form can take over.
		err := runAdd(ctx, &buf, cfg, &addFlags{}, nil)
		require.ErrorIs(t, err, errors.ErrUserInputRequired)
		assert.True(t, errors.IsExitCode2Error(err))
	})

	t.Run("blank title is a usage error", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		var buf bytes.Buffer

		err := runAdd(ctx, &buf, cfg, &addFlags{priority: "high"}, []string{"   "})
		require.ErrorIs(t, err, errors.ErrEmptyTitle)
		assert.True(t, errors.IsExitCode2Error(err))
	})

	t.Run("unknown priority is a usage error and writes nothing", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		var buf bytes.Buffer

		err := runAdd(ctx, &buf, cfg, &addFlags{priority: "urgent"}, []string{"Trim hedge"})
		require.ErrorIs(t, err, errors.ErrInvalidPriority)
		assert.True(t, errors.IsExitCode2Error(err))
		assert.NoFileExists(t, cfg.File)
	})

	t.Run("json output emits a single envelope", func(t *testing.T) {
		t.Parallel()

		cfg := newTestConfig(t)
		cfg.Output = config.OutputJSON

		var buf bytes.Buffer
		err := runAdd(ctx, &buf, cfg, &addFlags{}, []string{"Buy milk"})
		require.NoError(t, err)

		output := strings.TrimRight(buf.String(), "\n")
		assert.NotContains(t, output, "\n", "expected a single JSON line")
		assert.Contains(t, output, `"type":"success"`)
		assert.NotContains(t, output, "TITLE")
	})
}
