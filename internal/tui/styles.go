package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"todo/internal/task"
)

// Adaptive colors for light/dark terminal support. Each color pair is
// chosen so both variants stay readable on their background.
//
//nolint:gochecknoglobals // Intentional package-level color palette
var (
	// ColorPrimary is blue, used for informational text and prompts.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for success messages and completed tasks.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00D787"}

	// ColorWarning is yellow, used for warnings and medium priority.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for errors and high priority.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for pending markers, low priority and
	// secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#8A8A8A"}
)

// Status glyphs for task rows. A glyph next to the text keeps completion
// state readable even when color is stripped.
const (
	// IconDone marks a completed task.
	IconDone = "✓"

	// IconPending marks a task that is not completed yet.
	IconPending = "○"
)

// StatusIcon returns the glyph for a task's completion state.
func StatusIcon(completed bool) string {
	if completed {
		return IconDone
	}
	return IconPending
}

// OutputStyles holds the styles for command result messages.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates the message styles from the package palette.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Error:   lipgloss.NewStyle().Foreground(ColorError),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Dim:     lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// TableStyles holds the styles used when rendering the task table.
type TableStyles struct {
	// Header is applied to the column header row.
	Header lipgloss.Style

	// Done is applied to the status glyph of completed tasks.
	Done lipgloss.Style

	// Pending is applied to the status glyph of tasks still open.
	Pending lipgloss.Style

	// Index is applied to the task index column.
	Index lipgloss.Style
}

// NewTableStyles creates the task table styles from the package palette.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Done:    lipgloss.NewStyle().Foreground(ColorSuccess),
		Pending: lipgloss.NewStyle().Foreground(ColorMuted),
		Index:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// StatusStyle returns the style for a task's status glyph.
func (s *TableStyles) StatusStyle(completed bool) lipgloss.Style {
	if completed {
		return s.Done
	}
	return s.Pending
}

// PriorityStyle returns the style for a priority cell. High priority uses
// the error color so it stands out, low priority fades into the muted
// color, and an unset priority renders plain.
func PriorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorError)
	case task.PriorityMedium:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case task.PriorityLow:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	case task.PriorityNone:
		return lipgloss.NewStyle()
	default:
		return lipgloss.NewStyle()
	}
}

// CheckNoColor disables styling when the environment asks for plain
// output. Call this before rendering styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ForceColor enables styling regardless of terminal detection. Used for
// the "always" color mode.
func ForceColor() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// DisableColor strips all styling. Used for the "never" color mode.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value, including empty) or if
// TERM=dumb. This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}
