package export

import (
	"fmt"
	"io"

	"todo/internal/task"
)

// jsonExporter renders the snapshot in the persisted store format, so an
// exported JSON file is byte-identical to a saved store with the same
// contents.
type jsonExporter struct{}

func (jsonExporter) Export(w io.Writer, tasks []task.Task) error {
	data, err := task.MarshalTasks(tasks)
	if err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return nil
}
