// Package flock provides cross-platform file locking utilities.
//
// It provides exclusive, non-blocking file locks that work on both Unix and
// Windows systems, plus an Acquirer that retries a non-blocking lock until a
// deadline passes. Locks are taken on a sidecar file next to the data file so
// the data file itself can be atomically replaced while the lock is held.
//
// Usage:
//
//	release, err := flock.Acquirer{}.Acquire(ctx, path+".lock")
//	if err != nil {
//	    // Lock not acquired within the timeout
//	}
//	defer release()
package flock
