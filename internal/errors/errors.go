// Package errors provides centralized error handling for todo.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrEmptyTitle indicates a task title that was empty or whitespace-only.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrInvalidPriority indicates a priority value outside High, Medium, Low.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidFilter indicates an unknown task list filter.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidIndex indicates a task index argument that is not an integer.
	ErrInvalidIndex = errors.New("index must be an integer")

	// ErrIndexOutOfRange indicates a task index that does not refer to any
	// current task. Indexes are zero-based and shift down after removals, so
	// an index that once existed can become out of range.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrCorruptStore indicates the store file exists but does not contain a
	// valid task list.
	ErrCorruptStore = errors.New("store file is corrupt")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrLockTimeout indicates a file lock could not be acquired within the timeout period.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrUnsupportedFormat indicates an export format that is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrExportDestination indicates an export destination that would overwrite
	// the store file itself.
	ErrExportDestination = errors.New("export destination is the store file")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidColorMode indicates an invalid color mode was specified.
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidLockTimeout indicates a non-positive lock timeout in configuration.
	ErrInvalidLockTimeout = errors.New("lock timeout must be positive")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrUserInputRequired indicates user input is required but not provided.
	// Commands should exit with code 2 when this error is returned.
	ErrUserInputRequired = errors.New("user input required")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
