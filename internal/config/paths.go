package config

import (
	"os"
	"path/filepath"

	"todo/internal/constants"
	"todo/internal/errors"
)

// HomeDir returns the todo home directory. The TODO_HOME environment
// variable overrides the default ~/.todo, which keeps tests and multiple
// profiles isolated from the real home directory.
//
// Returns an error if the home directory cannot be determined.
func HomeDir() (string, error) {
	if custom := os.Getenv("TODO_HOME"); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.TodoHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.todo/config.yaml.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get global config path")
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file. This is always .todo.yaml in the current working directory.
func ProjectConfigPath() string {
	return constants.ProjectConfigName
}

// LogDir returns the directory for log files, typically ~/.todo/logs.
//
// Returns an error if the home directory cannot be determined.
func LogDir() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get log directory")
	}
	return filepath.Join(dir, constants.LogsDir), nil
}
