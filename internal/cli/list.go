package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/task"
	"todo/internal/tui"
)

// titleColumnWidth caps the title cell so long titles cannot push the
// priority column off screen.
const titleColumnWidth = 40

// taskRow is the machine-readable shape of a single task in JSON output.
// Index is the zero-based position used by complete and remove.
type taskRow struct {
	Index     int           `json:"index"`
	Title     string        `json:"title"`
	Completed bool          `json:"completed"`
	Priority  task.Priority `json:"priority,omitempty"`
}

type listFlags struct {
	completed bool
	pending   bool
}

func newListCmd() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks with their zero-based indexes.

The index shown in the first column is the handle for complete and
remove. Removing a task shifts the indexes of every task after it.

Examples:
  todo list              # All tasks
  todo list --pending    # Only open tasks
  todo list --completed  # Only finished tasks
  todo list -o json      # Machine-readable rows

Exit codes:
  0: Success
  1: General error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), GetConfig(), flags)
		},
	}

	cmd.Flags().BoolVar(&flags.completed, "completed", false, "show only completed tasks")
	cmd.Flags().BoolVar(&flags.pending, "pending", false, "show only pending tasks")
	cmd.MarkFlagsMutuallyExclusive("completed", "pending")

	return cmd
}

func runList(ctx context.Context, w io.Writer, cfg *config.Config, flags *listFlags) error {
	out := tui.NewOutput(w, cfg.Output)

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	filter := listFilter(flags)

	if cfg.Output == config.OutputJSON {
		return out.JSON(collectRows(store, filter))
	}

	if countTasks(store, filter) == 0 {
		out.Info(emptyListMessage(store, filter))
		return nil
	}

	writeTaskTable(w, store, filter)

	return nil
}

func listFilter(flags *listFlags) task.Filter {
	switch {
	case flags.completed:
		return task.FilterCompleted
	case flags.pending:
		return task.FilterPending
	default:
		return task.FilterAll
	}
}

// collectRows flattens the filtered tasks into JSON rows. The slice is
// never nil so an empty list encodes as [].
func collectRows(s *task.Store, filter task.Filter) []taskRow {
	rows := make([]taskRow, 0, s.Len())
	for i, t := range s.Tasks(filter) {
		rows = append(rows, taskRow{
			Index:     i,
			Title:     t.Title,
			Completed: t.Completed,
			Priority:  t.Priority,
		})
	}
	return rows
}

func countTasks(s *task.Store, filter task.Filter) int {
	n := 0
	for range s.Tasks(filter) {
		n++
	}
	return n
}

func emptyListMessage(s *task.Store, filter task.Filter) string {
	if s.Len() == 0 {
		return "No tasks yet. Add one with 'todo add'."
	}

	switch filter {
	case task.FilterCompleted:
		return "No completed tasks."
	case task.FilterPending:
		return "No pending tasks. Everything is done."
	default:
		return "No tasks."
	}
}

// writeTaskTable renders the filtered tasks as an aligned table. Indexes
// keep their store positions even when a filter hides rows between them.
func writeTaskTable(w io.Writer, s *task.Store, filter task.Filter) {
	table := tui.NewTable(w, taskTableColumns(s.Len()-1))
	table.WriteHeader()

	for i, t := range s.Tasks(filter) {
		table.WriteStyledRow(
			[]string{strconv.Itoa(i), tui.StatusIcon(t.Completed), t.Title, t.Priority.String()},
			map[int]lipgloss.Style{
				1: table.Styles().StatusStyle(t.Completed),
				3: tui.PriorityStyle(t.Priority),
			},
		)
	}
}

// echoTasks reprints the full list after a mutation so the user sees the
// new indexes. JSON output stays a single envelope, so this is text only.
func echoTasks(w io.Writer, cfg *config.Config, s *task.Store) {
	if cfg.Output == config.OutputJSON || s.Len() == 0 {
		return
	}
	writeTaskTable(w, s, task.FilterAll)
}

func taskTableColumns(maxIndex int) []tui.TableColumn {
	indexWidth := len(strconv.Itoa(maxIndex))
	if indexWidth < 2 {
		indexWidth = 2
	}

	return []tui.TableColumn{
		{Name: "#", Width: indexWidth, Align: tui.AlignRight},
		{Name: "", Width: 1},
		{Name: "TITLE", Width: titleColumnWidth},
		{Name: "PRIORITY"},
	}
}
