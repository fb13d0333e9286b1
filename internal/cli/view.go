package cli

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/export"
	"todo/internal/tui"
)

var (
	markdownOnce     sync.Once
	markdownRenderer *glamour.TermRenderer
	markdownErr      error
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View tasks as a rendered checklist",
		Long: `Render the task list as a Markdown checklist in the terminal.

This is the same document 'todo export --format markdown' produces,
drawn with terminal styling. Use export to get the raw Markdown.

Exit codes:
  0: Success
  1: General error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd.Context(), cmd.OutOrStdout(), GetConfig())
		},
	}
}

func runView(ctx context.Context, w io.Writer, cfg *config.Config) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	if store.Len() == 0 {
		tui.NewOutput(w, cfg.Output).Info("No tasks yet. Add one with 'todo add'.")
		return nil
	}

	markdown, err := export.Render(export.FormatMarkdown, store.Snapshot())
	if err != nil {
		return err
	}

	renderer, err := markdownTermRenderer()
	if err != nil {
		_, werr := w.Write(markdown)
		return werr
	}

	rendered, err := renderer.Render(string(markdown))
	if err != nil {
		_, werr := w.Write(markdown)
		return werr
	}

	_, err = io.WriteString(w, rendered)

	return err
}

// markdownTermRenderer returns the shared glamour renderer, built on
// first use. When construction fails the caller falls back to raw
// Markdown.
func markdownTermRenderer() (*glamour.TermRenderer, error) {
	markdownOnce.Do(func() {
		markdownRenderer, markdownErr = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	})

	return markdownRenderer, markdownErr
}
