// Package tui renders command results for the terminal.
//
// Commands write through the Output interface, which has a styled text
// implementation for people and a JSON implementation for scripts. Styling
// honors the NO_COLOR convention and adapts to light and dark terminals.
package tui

import (
	"encoding/json"
	"fmt"
	"io"

	todoerrors "todo/internal/errors"
)

// Output provides methods for structured output to a terminal.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
}

// TTYOutput provides styled output for terminal displays.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a new TTYOutput. Styling is dropped when the
// environment asks for plain output.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// Success prints a success message with a ✓ icon.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render(IconDone+" "+msg))
}

// Error prints an error message with a ✗ icon. When a suggested action is
// known for the error, it is printed on a dim second line.
func (o *TTYOutput) Error(err error) {
	msg, action := todoerrors.Actionable(err)
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+msg))
	if action != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+action))
	}
}

// Warning prints a warning message with a ⚠ icon.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints an informational message.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// JSON outputs a value as formatted JSON.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// JSONOutput provides machine-readable output without styling. Messages
// become one JSON object per line so scripts can parse a stream of them.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

// jsonMessage is the envelope for Success, Warning and Info messages.
type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// jsonError is the envelope for Error messages.
type jsonError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// Success outputs a success message as JSON.
func (o *JSONOutput) Success(msg string) {
	o.message("success", msg)
}

// Error outputs the error as JSON, including the suggested action when
// one is known.
func (o *JSONOutput) Error(err error) {
	msg, action := todoerrors.Actionable(err)
	_ = json.NewEncoder(o.w).Encode(jsonError{
		Type:    "error",
		Message: msg,
		Action:  action,
	})
}

// Warning outputs a warning message as JSON.
func (o *JSONOutput) Warning(msg string) {
	o.message("warning", msg)
}

// Info outputs an informational message as JSON.
func (o *JSONOutput) Info(msg string) {
	o.message("info", msg)
}

// JSON outputs a value as formatted JSON.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

func (o *JSONOutput) message(kind, msg string) {
	_ = json.NewEncoder(o.w).Encode(jsonMessage{Type: kind, Message: msg})
}

// NewOutput creates the appropriate output based on format.
func NewOutput(w io.Writer, format string) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}

// encodeJSON writes v as indented JSON followed by a newline.
func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
