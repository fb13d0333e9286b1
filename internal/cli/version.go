package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/tui"
)

func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Show the todo version, commit, and build date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd.OutOrStdout(), GetConfig(), info)
		},
	}
}

func runVersion(w io.Writer, cfg *config.Config, info BuildInfo) error {
	info = info.withDefaults()

	if cfg.Output == config.OutputJSON {
		return tui.NewOutput(w, cfg.Output).JSON(struct {
			Version string `json:"version"`
			Commit  string `json:"commit"`
			Date    string `json:"date"`
		}{info.Version, info.Commit, info.Date})
	}

	_, err := fmt.Fprintln(w, formatVersion(info))
	return err
}
