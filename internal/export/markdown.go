package export

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/task"
)

// markdownExporter renders a task checklist, one item per task in store
// order. A completed task gets a checked box, and a set priority becomes a
// bracketed suffix:
//
//	- [ ] Shop
//	- [x] Pay bills [High]
type markdownExporter struct{}

func (markdownExporter) Export(w io.Writer, tasks []task.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString("- [")
		if t.Completed {
			b.WriteString("x")
		} else {
			b.WriteString(" ")
		}
		b.WriteString("] ")
		b.WriteString(t.Title)
		if t.Priority != task.PriorityNone {
			b.WriteString(" [")
			b.WriteString(t.Priority.String())
			b.WriteString("]")
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to export Markdown: %w", err)
	}
	return nil
}
