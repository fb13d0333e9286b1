package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	todoerrors "todo/internal/errors"
)

// Terminal layout constants for prompts.
const (
	// TerminalEdgeMargin is the number of cells left between prompt
	// content and the terminal edge.
	TerminalEdgeMargin = 4

	// MinPromptWidth is the minimum usable width for prompt content.
	MinPromptWidth = 40

	// DefaultPromptWidth is used when the terminal width cannot be
	// determined.
	DefaultPromptWidth = 80
)

// IsInteractive reports whether stdin is attached to a terminal.
// Commands use this to decide between prompting and requiring flags.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// TodoTheme returns the huh theme used for all prompts.
// Uses AdaptiveColor for proper light/dark terminal support.
func TodoTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	// Primary color for focused interactive elements
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)

	// Success color for confirmed selections
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)

	// Error color for validation messages
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)

	// Muted color for blurred and secondary elements
	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// RunForm runs a huh form with the package theme and a width fitted to
// the terminal. Without a terminal on stdin it fails instead of hanging,
// and a user abort maps to ErrOperationCanceled so callers can exit
// quietly.
func RunForm(form *huh.Form) error {
	if !IsInteractive() {
		return todoerrors.ErrOperationCanceled
	}

	if err := form.WithTheme(TodoTheme()).WithWidth(promptWidth()).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return todoerrors.ErrOperationCanceled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}

	return nil
}

// Confirm presents a yes/no confirmation prompt and returns the choice.
// The user aborting, or stdin not being a terminal, returns
// ErrOperationCanceled.
func Confirm(title string, defaultYes bool) (bool, error) {
	confirmed := defaultYes

	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := RunForm(huh.NewForm(huh.NewGroup(field))); err != nil {
		return false, err
	}

	return confirmed, nil
}

// promptWidth returns the prompt width for the current terminal,
// clamped so prompts stay usable on narrow displays.
func promptWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultPromptWidth
	}

	available := width - TerminalEdgeMargin
	if available < MinPromptWidth {
		return MinPromptWidth
	}

	return available
}
