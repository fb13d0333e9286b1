package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/errors"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "wrapped usage error",
			err:  errors.NewExitCode2Error(errors.ErrEmptyTitle),
			want: ExitInvalidInput,
		},
		{
			name: "wrapped usage error inside more context",
			err:  fmt.Errorf("adding task: %w", errors.NewExitCode2Error(errors.ErrInvalidPriority)),
			want: ExitInvalidInput,
		},
		{
			name: "invalid output format",
			err:  fmt.Errorf("invalid configuration: %w", errors.ErrInvalidOutputFormat),
			want: ExitInvalidInput,
		},
		{
			name: "invalid color mode",
			err:  errors.ErrInvalidColorMode,
			want: ExitInvalidInput,
		},
		{
			name: "unknown flag",
			err:  stderrors.New("unknown flag: --frobnicate"),
			want: ExitInvalidInput,
		},
		{
			name: "unknown shorthand flag",
			err:  stderrors.New(`unknown shorthand flag: 'z' in -z`),
			want: ExitInvalidInput,
		},
		{
			name: "mutually exclusive flags",
			err:  stderrors.New("if any flags in the group [verbose quiet] are set none of the others can be; [quiet verbose] were all set"),
			want: ExitInvalidInput,
		},
		{
			name: "wrong argument count",
			err:  stderrors.New("accepts 1 arg(s), received 0"),
			want: ExitInvalidInput,
		},
		{
			name: "unknown subcommand",
			err:  stderrors.New(`unknown command "destroy" for "todo"`),
			want: ExitInvalidInput,
		},
		{
			name: "index out of range is a runtime error",
			err:  errors.ErrIndexOutOfRange,
			want: ExitError,
		},
		{
			name: "lock timeout is a runtime error",
			err:  errors.ErrLockTimeout,
			want: ExitError,
		},
		{
			name: "corrupt store is a runtime error",
			err:  errors.ErrCorruptStore,
			want: ExitError,
		},
		{
			name: "export destination refusal is a runtime error",
			err:  errors.ErrExportDestination,
			want: ExitError,
		},
		{
			name: "plain error",
			err:  stderrors.New("disk unavailable"),
			want: ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestAddGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "file", shorthand: "f", defValue: ""},
		{name: "output", shorthand: "o", defValue: config.DefaultOutput},
		{name: "color", shorthand: "", defValue: config.DefaultColor},
		{name: "verbose", shorthand: "v", defValue: "false"},
		{name: "quiet", shorthand: "q", defValue: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flag := cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag, "flag %q should be registered", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	t.Parallel()

	newRoot := func() (*cobra.Command, *GlobalFlags) {
		cmd := &cobra.Command{Use: "todo"}
		flags := &GlobalFlags{}
		AddGlobalFlags(cmd, flags)
		return cmd, flags
	}

	t.Run("untouched flags leave config alone", func(t *testing.T) {
		t.Parallel()

		cmd, flags := newRoot()
		cfg := config.DefaultConfig()
		cfg.File = "from-config.json"
		cfg.Output = config.OutputJSON

		applyFlagOverrides(cmd, flags, cfg)

		assert.Equal(t, "from-config.json", cfg.File)
		assert.Equal(t, config.OutputJSON, cfg.Output)
	})

	t.Run("changed flags shadow config values", func(t *testing.T) {
		t.Parallel()

		cmd, flags := newRoot()
		cfg := config.DefaultConfig()
		cfg.File = "from-config.json"

		require.NoError(t, cmd.PersistentFlags().Set("file", "cli.json"))
		require.NoError(t, cmd.PersistentFlags().Set("output", "json"))
		require.NoError(t, cmd.PersistentFlags().Set("color", "never"))

		applyFlagOverrides(cmd, flags, cfg)

		assert.Equal(t, "cli.json", cfg.File)
		assert.Equal(t, config.OutputJSON, cfg.Output)
		assert.Equal(t, config.ColorNever, cfg.Color)
	})

	t.Run("local flag on a subcommand does not hide the global one", func(t *testing.T) {
		t.Parallel()

		root, flags := newRoot()

		// Mirrors the export command, whose local --output names a file.
		child := &cobra.Command{Use: "export", Run: func(*cobra.Command, []string) {}}
		child.Flags().String("output", "", "destination path")
		root.AddCommand(child)

		require.NoError(t, root.PersistentFlags().Set("output", "json"))

		cfg := config.DefaultConfig()
		applyFlagOverrides(child, flags, cfg)

		assert.Equal(t, config.OutputJSON, cfg.Output)
	})
}
