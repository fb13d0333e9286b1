// Package testutil provides testing utilities for todo.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// ErrMockWriteFailed simulates a write failure in tests.
var ErrMockWriteFailed = errors.New("write failed")
