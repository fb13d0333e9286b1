package constants

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.todo/logs/todo.log
	CLILogFileName = "todo.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global todo configuration file.
	// This file is located in the todo home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the directory-local todo configuration
	// file. This file is looked up in the current working directory.
	ProjectConfigName = ".todo.yaml"
)
