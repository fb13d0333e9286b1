// Package cli provides the command-line interface for todo.
package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// File is the task file path, overriding the configured one.
	File string
	// Output specifies the output format (text or json).
	Output string
	// Color controls styling (auto, always or never).
	Color string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.File, "file", "f", "", "task file path (default from config, then todo.json)")
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", config.DefaultOutput, "output format (text|json)")
	cmd.PersistentFlags().StringVar(&flags.Color, "color", config.DefaultColor, "color mode (auto|always|never)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// applyFlagOverrides folds explicitly set global flags into the loaded
// configuration. Flags sit above every other configuration layer, so only
// flags the user actually changed may shadow file and environment values.
// The lookups go through the root's persistent flag set because a local
// flag may shadow a persistent one on the command being run (the export
// command's --output destination does this).
func applyFlagOverrides(cmd *cobra.Command, flags *GlobalFlags, cfg *config.Config) {
	rootFlags := cmd.Root().PersistentFlags()

	if rootFlags.Changed("file") {
		cfg.File = flags.File
	}
	if rootFlags.Changed("output") {
		cfg.Output = flags.Output
	}
	if rootFlags.Changed("color") {
		cfg.Color = flags.Color
	}
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for user input
// errors (invalid flags, bad arguments), and ExitError (1) for all other errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for our custom exit code 2 error wrapper
	if errors.IsExitCode2Error(err) {
		return ExitInvalidInput
	}

	// Invalid values for the enumerated global settings are usage errors
	// wherever they surface from
	if stderrors.Is(err, errors.ErrInvalidOutputFormat) || stderrors.Is(err, errors.ErrInvalidColorMode) {
		return ExitInvalidInput
	}

	// Check for Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"accepts at most",
		"accepts 1 arg",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
