package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// globalConfig stores the configuration loaded during PersistentPreRunE,
// with flag overrides already applied. Accessed via GetConfig.
var (
	globalConfig   *config.Config //nolint:gochecknoglobals // Loaded once per invocation
	globalConfigMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalConfig
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// GetConfig returns the active configuration. Before the root command's
// PersistentPreRunE has run (subcommands executed in isolation, as tests
// do) it falls back to the defaults.
func GetConfig() *config.Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func setGlobalConfig(cfg *config.Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// newRootCmd creates and returns the root command for the todo CLI.
// This function-based approach avoids package-level globals, making the
// code more testable and avoiding gochecknoglobals linter warnings.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A simple task manager",
		Long: `todo tracks a task list in a local JSON file.

Tasks are identified by their zero-based position in the list, so
indexes shift down when an earlier task is removed. The task file
defaults to todo.json in the current directory; point --file (or the
TODO_FILE environment variable, or the "file" config key) elsewhere to
keep lists per project.

Examples:
  todo add "Buy milk" --priority high   # Add a prioritized task
  todo list --pending                   # Show open tasks
  todo complete 0                       # Mark the first task done
  todo export --format csv              # Write CSV to stdout`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without subcommands.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}

			applyFlagOverrides(cmd, flags, cfg)
			if err := config.Validate(cfg); err != nil {
				return err
			}

			applyColorMode(cfg.Color)

			logger := InitLogger(flags.Verbose, flags.Quiet, cfg)
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			// Downstream code reads the logger back with zerolog.Ctx.
			cmd.SetContext(logger.WithContext(cmd.Context()))

			setGlobalConfig(cfg)
			return nil
		},
		// The CLI renders its own errors (styled text or a JSON envelope),
		// so cobra's printing is disabled to avoid duplicates.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	cmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newCompleteCmd(),
		newRemoveCmd(),
		newResetCmd(),
		newExportCmd(),
		newViewCmd(),
		newVersionCmd(info),
	)

	return cmd
}

// applyColorMode maps the configured color mode onto the terminal
// styling profile.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		tui.ForceColor()
	case config.ColorNever:
		tui.DisableColor()
	default:
		tui.CheckNoColor()
	}
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	info = info.withDefaults()
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// withDefaults fills unset build fields with placeholder values.
func (info BuildInfo) withDefaults() BuildInfo {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

// Execute runs the root command with the provided context and build info.
// Errors are reported here, once, in the requested output format; the
// caller maps the returned error to an exit code.
func Execute(ctx context.Context, info BuildInfo) error {
	setGlobalConfig(nil)

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)

	err := cmd.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, errors.ErrOperationCanceled) {
		tui.NewOutput(cmd.ErrOrStderr(), errorOutputFormat(flags)).Error(err)
	}
	return err
}

// errorOutputFormat picks the format for rendering a top-level error.
// After PersistentPreRunE the loaded config is authoritative; before it
// (flag parse failures) only the parsed flag value is available.
func errorOutputFormat(flags *GlobalFlags) string {
	globalConfigMu.RLock()
	loaded := globalConfig != nil
	globalConfigMu.RUnlock()

	if loaded {
		return GetConfig().Output
	}
	return flags.Output
}
