package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	todoerrors "todo/internal/errors"
	"todo/internal/task"
)

// exportFilePerm is used for files written by WriteFile.
const exportFilePerm = 0o600

// Exporter renders a task list snapshot to a writer.
type Exporter interface {
	// Export writes the rendered snapshot to w.
	Export(w io.Writer, tasks []task.Task) error
}

// New returns the Exporter for the given format.
func New(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return jsonExporter{}, nil
	case FormatCSV:
		return csvExporter{}, nil
	case FormatYAML:
		return yamlExporter{}, nil
	case FormatMarkdown:
		return markdownExporter{}, nil
	default:
		return nil, fmt.Errorf("failed to create exporter for %q: %w", format.String(), todoerrors.ErrUnsupportedFormat)
	}
}

// Render returns the rendered snapshot as bytes.
func Render(format Format, tasks []task.Task) ([]byte, error) {
	exp, err := New(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := exp.Export(&buf, tasks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders tasks in the given format and writes the result to path
// in a single write, so a render failure never truncates an existing file at
// the destination.
func WriteFile(path string, format Format, tasks []task.Task) error {
	data, err := Render(format, tasks)
	if err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}
	if err := os.WriteFile(path, data, exportFilePerm); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
