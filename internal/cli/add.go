package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/task"
	"todo/internal/tui"
)

type addFlags struct {
	priority string
}

func newAddCmd() *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Long: `Add a task to the list.

The title may be given as arguments or, when run in a terminal with no
arguments, through an interactive form. New tasks start pending and go
to the end of the list.

Examples:
  todo add Buy milk
  todo add "Pay bills" --priority high
  todo add                           # Interactive form

Exit codes:
  0: Success
  1: General error
  2: Invalid input`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), cmd.OutOrStdout(), GetConfig(), flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.priority, "priority", "p", "", "priority level (high, medium, low)")

	return cmd
}

func runAdd(ctx context.Context, w io.Writer, cfg *config.Config, flags *addFlags, args []string) error {
	out := tui.NewOutput(w, cfg.Output)

	title := strings.TrimSpace(strings.Join(args, " "))

	var (
		priority task.Priority
		err      error
	)

	if title == "" && flags.priority == "" && cfg.Output != config.OutputJSON && tui.IsInteractive() {
		title, priority, err = promptForTask()
		if err != nil {
			return err
		}
	} else {
		if title == "" {
			if len(args) > 0 {
				return errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyTitle, "blank task title"))
			}
			return errors.NewExitCode2Error(errors.Wrap(errors.ErrUserInputRequired, "missing task title"))
		}

		priority, err = task.ParsePriority(flags.priority)
		if err != nil {
			return errors.NewExitCode2Error(err)
		}
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	index, err := store.Add(title, priority)
	if err != nil {
		return err
	}

	if err := store.Save(ctx); err != nil {
		return err
	}

	out.Success(fmt.Sprintf("Added task %d: %s", index, title))
	echoTasks(w, cfg, store)

	return nil
}

// promptForTask collects a title and priority through an interactive
// form. Callers must check for a terminal first.
func promptForTask() (string, task.Priority, error) {
	var (
		title    string
		priority task.Priority
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Placeholder("What needs doing?").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.ErrEmptyTitle
					}
					return nil
				}).
				Value(&title),
			huh.NewSelect[task.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("None", task.PriorityNone),
					huh.NewOption("High", task.PriorityHigh),
					huh.NewOption("Medium", task.PriorityMedium),
					huh.NewOption("Low", task.PriorityLow),
				).
				Value(&priority),
		),
	)

	if err := tui.RunForm(form); err != nil {
		return "", task.PriorityNone, err
	}

	return strings.TrimSpace(title), priority, nil
}
