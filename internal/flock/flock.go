package flock

import (
	"context"
	"os"
	"time"

	"todo/internal/clock"
	"todo/internal/constants"
	todoerrors "todo/internal/errors"
)

// lockFilePerm restricts sidecar lock files to the owning user.
const lockFilePerm = 0o600

// Acquirer acquires exclusive locks on sidecar lock files with a bounded
// retry loop. The zero value uses the system clock and the default timeout
// and retry interval.
type Acquirer struct {
	// Clock supplies time for deadline checks and retry sleeps.
	// Defaults to the system clock when nil.
	Clock clock.Clock

	// Timeout is the maximum duration to wait for the lock.
	// Defaults to constants.DefaultLockTimeout when zero.
	Timeout time.Duration

	// Interval is the delay between lock attempts.
	// Defaults to constants.LockRetryInterval when zero.
	Interval time.Duration
}

// Acquire opens the lock file at path, creating it if needed, and acquires an
// exclusive lock on it. The non-blocking lock attempt is retried until the
// timeout elapses or ctx is canceled. The returned release function unlocks
// and closes the lock file; the file itself is left in place for the next
// process.
func (a Acquirer) Acquire(ctx context.Context, path string) (release func(), err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFilePerm) // #nosec G304 -- lock path is derived from the store path
	if err != nil {
		return nil, todoerrors.Wrap(err, "failed to open lock file")
	}

	clk := a.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultLockTimeout
	}
	interval := a.Interval
	if interval <= 0 {
		interval = constants.LockRetryInterval
	}

	deadline := clk.Now().Add(timeout)
	for {
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		default:
		}

		if lockErr := Exclusive(f.Fd()); lockErr == nil {
			return func() {
				_ = Unlock(f.Fd())
				_ = f.Close()
			}, nil
		}

		if clk.Now().After(deadline) {
			_ = f.Close()
			return nil, todoerrors.Wrapf(todoerrors.ErrLockTimeout, "failed to lock %s within %s", path, timeout)
		}

		clk.Sleep(interval)
	}
}
