package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Alignment controls where a cell's content sits within its column.
type Alignment int

// Column alignments.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// TableColumn defines one column of a table. A Width of zero means the
// column takes its natural width, which only makes sense for the last
// column.
type TableColumn struct {
	Name  string
	Width int
	Align Alignment
}

// Table writes column-aligned rows to a writer. Cells are truncated and
// padded before any style is applied, so ANSI escape sequences never skew
// the column widths, and width math counts display cells rather than
// bytes so wide characters in task titles keep the columns straight.
type Table struct {
	w       io.Writer
	styles  *TableStyles
	columns []TableColumn
}

// NewTable creates a table that writes to w.
func NewTable(w io.Writer, columns []TableColumn) *Table {
	return &Table{
		w:       w,
		styles:  NewTableStyles(),
		columns: columns,
	}
}

// Styles returns the table's style set so callers can style cells to
// match.
func (t *Table) Styles() *TableStyles {
	return t.styles
}

// WriteHeader writes the column header row.
func (t *Table) WriteHeader() {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = t.fit(col.Name, col)
	}
	_, _ = fmt.Fprintln(t.w, t.styles.Header.Render(strings.Join(cells, "  ")))
}

// WriteRow writes one unstyled data row.
func (t *Table) WriteRow(values ...string) {
	t.WriteStyledRow(values, nil)
}

// WriteStyledRow writes one data row, applying the style in cellStyles to
// each cell index present there. Missing values render as empty cells.
func (t *Table) WriteStyledRow(values []string, cellStyles map[int]lipgloss.Style) {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		var value string
		if i < len(values) {
			value = values[i]
		}

		cell := t.fit(value, col)
		if style, ok := cellStyles[i]; ok {
			cell = style.Render(cell)
		}
		cells[i] = cell
	}
	_, _ = fmt.Fprintln(t.w, strings.TrimRight(strings.Join(cells, "  "), " "))
}

// fit truncates and pads value to the column width.
func (t *Table) fit(value string, col TableColumn) string {
	if col.Width <= 0 {
		return value
	}

	value = runewidth.Truncate(value, col.Width, "…")

	gap := col.Width - runewidth.StringWidth(value)
	if gap <= 0 {
		return value
	}

	pad := strings.Repeat(" ", gap)
	if col.Align == AlignRight {
		return pad + value
	}
	return value + pad
}
