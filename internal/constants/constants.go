// Package constants provides centralized constant values used throughout todo.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// File names used by todo for state persistence.
const (
	// StoreFileName is the default name of the JSON file that stores tasks.
	// The file lives in the current working directory unless overridden by
	// configuration or the --file flag.
	StoreFileName = "todo.json"

	// LockFileSuffix is appended to the store path to form the sidecar lock
	// file that guards concurrent access to the store.
	LockFileSuffix = ".lock"
)

// Directory names and paths used by todo for organizing data.
const (
	// TodoHome is the hidden directory name where todo stores its global
	// configuration and logs. This directory is created in the user's home
	// directory.
	TodoHome = ".todo"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Timeout configurations for store locking.
const (
	// DefaultLockTimeout is the default maximum duration to wait for the
	// store lock before giving up.
	DefaultLockTimeout = 5 * time.Second

	// LockRetryInterval is the interval at which lock acquisition is retried.
	LockRetryInterval = 50 * time.Millisecond
)
