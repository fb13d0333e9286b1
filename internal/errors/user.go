package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Task Validation
	// ===================
	{
		err: ErrEmptyTitle,
		info: ErrorInfo{
			Message: "A task needs a non-empty title.",
			Action:  "Provide a title, e.g. 'todo add \"Buy milk\"'.",
		},
	},
	{
		err: ErrInvalidPriority,
		info: ErrorInfo{
			Message: "The specified priority is not recognized.",
			Action:  "Use one of: high, medium, low.",
		},
	},
	{
		err: ErrInvalidFilter,
		info: ErrorInfo{
			Message: "The specified list filter is not recognized.",
			Action:  "Use one of: all, completed, pending.",
		},
	},
	{
		err: ErrInvalidIndex,
		info: ErrorInfo{
			Message: "The task index must be a number.",
			Action:  "Run 'todo list' to see current task indexes.",
		},
	},
	{
		err: ErrIndexOutOfRange,
		info: ErrorInfo{
			Message: "No task exists at that index.",
			Action:  "Run 'todo list' to see current task indexes.",
		},
	},

	// ===================
	// Store
	// ===================
	{
		err: ErrCorruptStore,
		info: ErrorInfo{
			Message: "The task file exists but could not be parsed.",
			Action:  "Fix or remove the file, or point --file at a different one.",
		},
	},
	{
		err: ErrLockTimeout,
		info: ErrorInfo{
			Message: "Could not acquire the task file lock. Another todo process may be running.",
			Action:  "Wait and try again, or remove a stale .lock file.",
		},
	},

	// ===================
	// Export
	// ===================
	{
		err: ErrUnsupportedFormat,
		info: ErrorInfo{
			Message: "The specified export format is not supported.",
			Action:  "Use one of: json, csv, yaml, markdown.",
		},
	},
	{
		err: ErrExportDestination,
		info: ErrorInfo{
			Message: "Refusing to export over the task file itself.",
			Action:  "Choose a different --output path.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format specified.",
			Action:  "Use 'text' or 'json'.",
		},
	},
	{
		err: ErrInvalidColorMode,
		info: ErrorInfo{
			Message: "Invalid color mode specified.",
			Action:  "Use 'auto', 'always', or 'never'.",
		},
	},
	{
		err: ErrInvalidLockTimeout,
		info: ErrorInfo{
			Message: "The configured lock timeout is invalid.",
			Action:  "Set lock.timeout to a positive duration like '5s'.",
		},
	},

	// ===================
	// User Interaction
	// ===================
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation was canceled.",
			Action:  "",
		},
	},
	{
		err: ErrUserInputRequired,
		info: ErrorInfo{
			Message: "This operation requires user input.",
			Action:  "Run in an interactive terminal or provide required flags.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "This operation requires confirmation in non-interactive mode.",
			Action:  "Use --force flag to skip confirmation.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
