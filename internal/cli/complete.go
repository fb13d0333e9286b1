package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/tui"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "complete <index>",
		Aliases: []string{"done"},
		Short:   "Mark a task as completed",
		Long: `Mark the task at the given zero-based index as completed.

Completing a task keeps it in the list; use 'todo remove' to drop it.
Completing an already-completed task changes nothing.

Examples:
  todo complete 0
  todo done 2

Exit codes:
  0: Success
  1: General error (including an out-of-range index)
  2: Invalid input`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(cmd.Context(), cmd.OutOrStdout(), GetConfig(), args[0])
		},
	}
}

func runComplete(ctx context.Context, w io.Writer, cfg *config.Config, arg string) error {
	out := tui.NewOutput(w, cfg.Output)

	index, err := parseIndex(arg)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	t, err := store.Get(index)
	if err != nil {
		return err
	}

	if t.Completed {
		out.Warning(fmt.Sprintf("Task %d is already completed: %s", index, t.Title))
		return nil
	}

	if err := store.Complete(index); err != nil {
		return err
	}

	if err := store.Save(ctx); err != nil {
		return err
	}

	out.Success(fmt.Sprintf("Completed task %d: %s", index, t.Title))
	echoTasks(w, cfg, store)

	return nil
}
