// Package export renders task list snapshots into interchange formats.
//
// Each format is an independent Exporter writing to an io.Writer; adding a
// format means adding one implementation and one ParseFormat case without
// touching the others. Exporters consume a snapshot and never mutate it,
// and nothing in this package touches the store's backing file.
package export

import (
	"fmt"
	"strings"

	todoerrors "todo/internal/errors"
)

// Format identifies an export output format.
type Format string

// Format constants define the supported export formats.
const (
	// FormatJSON renders the same array shape the store persists.
	FormatJSON Format = "json"

	// FormatCSV renders a header row plus one row per task.
	FormatCSV Format = "csv"

	// FormatYAML renders a sequence of task mappings.
	FormatYAML Format = "yaml"

	// FormatMarkdown renders a task checklist.
	FormatMarkdown Format = "markdown"
)

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a supported export format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatYAML, FormatMarkdown:
		return true
	default:
		return false
	}
}

// ValidFormats returns the supported formats in display order.
func ValidFormats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatYAML, FormatMarkdown}
}

// ParseFormat converts user input into a Format. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "yaml":
		return FormatYAML, nil
	case "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("failed to parse format %q: %w", s, todoerrors.ErrUnsupportedFormat)
	}
}
