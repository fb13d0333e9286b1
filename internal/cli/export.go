package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/export"
	"todo/internal/tui"
)

type exportFlags struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to another format",
		Long: `Export the task list as JSON, CSV, YAML, or Markdown.

Without --output the rendered document goes to stdout with nothing
else around it, so it can be piped or redirected. With --output it is
written to the given file. The task store itself is never a valid
destination.

Examples:
  todo export --format csv
  todo export --format markdown --output tasks.md
  todo export > tasks.json

Exit codes:
  0: Success
  1: General error
  2: Invalid input (unknown format)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd.OutOrStdout(), GetConfig(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "export format (json, csv, yaml, markdown)")
	cmd.Flags().StringVar(&flags.output, "output", "", "write to a file instead of stdout")

	return cmd
}

func runExport(ctx context.Context, w io.Writer, cfg *config.Config, flags *exportFlags) error {
	name := flags.format
	if name == "" {
		name = cfg.Export.Format
	}

	format, err := export.ParseFormat(name)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	if flags.output == "" {
		data, err := export.Render(format, store.Snapshot())
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if err := guardExportDestination(flags.output, store.Path()); err != nil {
		return err
	}

	if err := export.WriteFile(flags.output, format, store.Snapshot()); err != nil {
		return err
	}

	out := tui.NewOutput(w, cfg.Output)
	out.Success(fmt.Sprintf("Exported %d tasks to %s (%s).", store.Len(), flags.output, format))

	return nil
}

// guardExportDestination refuses to write the export over the task store
// itself. An export format other than the persisted JSON would make the
// next load fail.
func guardExportDestination(dest, storePath string) error {
	destAbs, err := filepath.Abs(dest)
	if err != nil {
		return errors.Wrapf(errors.ErrExportDestination, "resolve %q", dest)
	}

	storeAbs, err := filepath.Abs(storePath)
	if err != nil {
		return errors.Wrapf(errors.ErrExportDestination, "resolve %q", storePath)
	}

	if destAbs == storeAbs {
		return errors.Wrapf(errors.ErrExportDestination, "%q is the task store", dest)
	}

	destInfo, err := os.Stat(destAbs)
	if err != nil {
		return nil
	}
	storeInfo, err := os.Stat(storeAbs)
	if err != nil {
		return nil
	}
	if os.SameFile(destInfo, storeInfo) {
		return errors.Wrapf(errors.ErrExportDestination, "%q is the task store", dest)
	}

	return nil
}
