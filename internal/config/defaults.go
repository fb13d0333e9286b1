package config

import (
	"todo/internal/constants"
)

// Default values for the enumerated configuration keys.
const (
	// DefaultOutput renders human-readable text.
	DefaultOutput = "text"

	// DefaultColor enables color only on capable terminals.
	DefaultColor = "auto"

	// DefaultExportFormat matches the persisted store format.
	DefaultExportFormat = "json"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		// File: the store lives next to where the command runs, so each
		// directory naturally gets its own list.
		File: constants.StoreFileName,

		Output: DefaultOutput,
		Color:  DefaultColor,

		Export: ExportConfig{
			Format: DefaultExportFormat,
		},

		Log: LogConfig{
			// File: off by default; a todo list rarely needs an audit trail.
			File: false,
		},

		Lock: LockConfig{
			Timeout: constants.DefaultLockTimeout,
		},
	}
}
