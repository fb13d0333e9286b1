package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/tui"
)

type resetFlags struct {
	force bool
}

func newResetCmd() *cobra.Command {
	flags := &resetFlags{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove all tasks",
		Long: `Remove every task from the list.

The emptied list is written back to the store file, so the file itself
stays in place. In a terminal the command asks for confirmation first;
outside a terminal it refuses to run without --force.

Examples:
  todo reset           # Asks for confirmation
  todo reset --force   # No prompt

Exit codes:
  0: Success (including a declined confirmation)
  1: General error
  2: Invalid input (missing --force outside a terminal)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd.Context(), cmd.OutOrStdout(), GetConfig(), flags.force)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "skip the confirmation prompt")

	return cmd
}

func runReset(ctx context.Context, w io.Writer, cfg *config.Config, force bool) error {
	out := tui.NewOutput(w, cfg.Output)

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	if store.Len() == 0 {
		out.Info("Nothing to reset. The list is already empty.")
		return nil
	}

	count := store.Len()

	if !force {
		if cfg.Output == config.OutputJSON || !tui.IsInteractive() {
			return errors.NewExitCode2Error(errors.Wrap(errors.ErrNonInteractiveMode, "reset needs confirmation"))
		}

		confirmed, err := tui.Confirm(fmt.Sprintf("Remove all %d tasks?", count), false)
		if err != nil {
			return err
		}
		if !confirmed {
			out.Info("Reset canceled.")
			return nil
		}
	}

	store.Reset()

	if err := store.Save(ctx); err != nil {
		return err
	}

	out.Success(fmt.Sprintf("Removed all %d tasks.", count))

	return nil
}
