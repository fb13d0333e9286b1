package cli

import (
	"context"
	"strconv"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/flock"
	"todo/internal/task"
)

// openStore loads the task store from the configured path, honoring the
// configured lock timeout. The returned store keeps the same lock
// settings for its saves.
func openStore(ctx context.Context, cfg *config.Config) (*task.Store, error) {
	return task.LoadWithLock(ctx, cfg.File, flock.Acquirer{Timeout: cfg.Lock.Timeout})
}

// parseIndex converts a positional index argument into an int. A
// non-numeric argument is a usage error, reported with exit code 2.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewExitCode2Error(errors.Wrapf(errors.ErrInvalidIndex, "bad index %q", arg))
	}
	return index, nil
}
