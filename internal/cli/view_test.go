package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/task"
)

func TestRunView(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store suggests adding a task", func(t *testing.T) {
		cfg := newTestConfig(t)

		var buf bytes.Buffer
		require.NoError(t, runView(ctx, &buf, cfg))
		assert.Contains(t, buf.String(), "No tasks yet")
	})

	t.Run("renders every task title", func(t *testing.T) {
		cfg := newTestConfig(t)
		seedTasks(t, cfg,
			task.Task{Title: "Buy milk", Priority: task.PriorityHigh},
			task.Task{Title: "Pay bills", Completed: true},
		)

		var buf bytes.Buffer
		require.NoError(t, runView(ctx, &buf, cfg))

		assert.Contains(t, buf.String(), "Buy milk")
		assert.Contains(t, buf.String(), "Pay bills")
	})

	t.Run("rendering is stable across calls", func(t *testing.T) {
		cfg := newTestConfig(t)
		seedTasks(t, cfg, task.Task{Title: "Water plants"})

		var first, second bytes.Buffer
		require.NoError(t, runView(ctx, &first, cfg))
		require.NoError(t, runView(ctx, &second, cfg))
		assert.Equal(t, first.String(), second.String())
	})
}

func TestMarkdownTermRenderer(t *testing.T) {
	renderer, err := markdownTermRenderer()
	if err != nil {
		t.Skipf("renderer unavailable in this environment: %v", err)
	}
	require.NotNil(t, renderer)

	// The cached renderer is reused across calls.
	again, err := markdownTermRenderer()
	require.NoError(t, err)
	assert.Same(t, renderer, again)
}
