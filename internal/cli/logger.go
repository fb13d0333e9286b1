package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"todo/internal/config"
	"todo/internal/constants"
)

// Rotation settings for the optional file log. A task list produces
// little log volume, so the caps are small.
const (
	logMaxSizeMB  = 5
	logMaxBackups = 2
	logMaxAgeDays = 30
)

// logFileWriter holds the log file writer for cleanup purposes.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// InitLogger creates and configures a zerolog.Logger based on verbosity flags.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// Output format is determined by the terminal:
//   - TTY with colors enabled: Console writer with timestamps
//   - Non-TTY or NO_COLOR set: JSON output to stderr
//
// When the log.file config key is on, entries are also written to
// ~/.todo/logs/todo.log with rotation. If the log file cannot be created,
// the logger continues with console-only output.
func InitLogger(verbose, quiet bool, cfg *config.Config) zerolog.Logger {
	writer := selectOutput()

	if cfg != nil && cfg.Log.File {
		if fileWriter, err := createLogFileWriter(); err == nil {
			logFileWriter = fileWriter
			writer = zerolog.MultiLevelWriter(writer, fileWriter)
		}
	}

	logger := zerolog.New(writer).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()
	setZerologGlobal(logger)
	return logger
}

// InitLoggerWithWriter creates and configures a zerolog.Logger with a custom
// writer. This is primarily intended for testing purposes.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()
	setZerologGlobal(logger)
	return logger
}

// setZerologGlobal configures the global zerolog logger to match the CLI
// logger, so any code using the zerolog/log package gets the same level
// and formatting. Safe for concurrent use.
func setZerologGlobal(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

// CloseLogFile closes the log file writer if it was opened.
// This should be called during application shutdown.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// selectLevel determines the appropriate log level based on flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput determines the appropriate output writer based on
// terminal capabilities and environment settings.
func selectOutput() io.Writer {
	// Use console writer for TTY without NO_COLOR
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}

	// Default to JSON output for non-TTY or when NO_COLOR is set
	return os.Stderr
}

// createLogFileWriter creates a rotating file writer for the CLI log
// under the todo home directory.
func createLogFileWriter() (io.WriteCloser, error) {
	logDir, err := config.LogDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.CLILogFileName),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Compress:   false,
	}, nil
}

// LogFilePath returns the path to the CLI log file, for displaying the
// log location to users.
func LogFilePath() (string, error) {
	logDir, err := config.LogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(logDir, constants.CLILogFileName), nil
}
