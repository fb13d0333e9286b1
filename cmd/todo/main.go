// Package main provides the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/cli"
)

// Build metadata, injected via -ldflags at release time.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})

	stop()
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
