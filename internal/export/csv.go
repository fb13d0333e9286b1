package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"todo/internal/task"
)

// csvHeader is the fixed first row of every CSV export.
var csvHeader = []string{"title", "completed", "priority"}

// csvExporter renders one row per task under a fixed header. Fields follow
// standard CSV quoting, booleans render as true/false, and an unset
// priority is an empty field.
type csvExporter struct{}

func (csvExporter) Export(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to export CSV header: %w", err)
	}
	for i, t := range tasks {
		row := []string{t.Title, strconv.FormatBool(t.Completed), t.Priority.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to export CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
