// Package config provides configuration management for todo with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the command layer after loading)
//  2. Environment variables (TODO_* prefix)
//  3. Project config (./.todo.yaml)
//  4. Global config (~/.todo/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for todo.
type Config struct {
	// File is the backing store path. Relative paths resolve against the
	// current working directory.
	// Default: "todo.json"
	File string `yaml:"file" mapstructure:"file"`

	// Output selects how command results are rendered.
	// Valid values: "text", "json".
	// Default: "text"
	Output string `yaml:"output" mapstructure:"output"`

	// Color controls colored terminal output.
	// Valid values: "auto", "always", "never".
	// Default: "auto"
	Color string `yaml:"color" mapstructure:"color"`

	// Export contains settings for the export command.
	Export ExportConfig `yaml:"export" mapstructure:"export"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log" mapstructure:"log"`

	// Lock contains store locking settings.
	Lock LockConfig `yaml:"lock" mapstructure:"lock"`
}

// ExportConfig contains settings for the export command.
type ExportConfig struct {
	// Format is the export format used when --format is not given.
	// Valid values: "json", "csv", "yaml", "markdown". Membership is
	// checked by the export command, which owns the format tags.
	// Default: "json"
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File enables a rotating log file under ~/.todo/logs in addition to
	// stderr.
	// Default: false
	File bool `yaml:"file" mapstructure:"file"`
}

// LockConfig contains store locking settings.
type LockConfig struct {
	// Timeout is the maximum duration to wait for the store lock before
	// giving up.
	// Default: 5s
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}
