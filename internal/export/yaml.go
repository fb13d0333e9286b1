package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"todo/internal/task"
)

// yamlExporter renders a sequence of task mappings with the same keys as
// the JSON form. An unset priority is omitted, matching the JSON shape.
type yamlExporter struct{}

func (yamlExporter) Export(w io.Writer, tasks []task.Task) error {
	data, err := yaml.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to export YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to export YAML: %w", err)
	}
	return nil
}
