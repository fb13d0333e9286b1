package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/tui"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Long: `Remove the task at the given zero-based index.

Every task after the removed one moves up by one index, so check
'todo list' before removing several tasks in a row.

Examples:
  todo remove 0
  todo rm 2

Exit codes:
  0: Success
  1: General error (including an out-of-range index)
  2: Invalid input`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), cmd.OutOrStdout(), GetConfig(), args[0])
		},
	}
}

func runRemove(ctx context.Context, w io.Writer, cfg *config.Config, arg string) error {
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

	if err := store.Remove(index); err != nil {
		return err
	}

	if err := store.Save(ctx); err != nil {
		return err
	}

	out.Success(fmt.Sprintf("Removed task %d: %s", index, t.Title))

	if cfg.Output != config.OutputJSON && index < store.Len() {
		out.Info("Tasks after the removed one moved up by one index.")
	}

	echoTasks(w, cfg, store)

	return nil
}
