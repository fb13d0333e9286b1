package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrMockWriteFailed(t *testing.T) {
	if ErrMockWriteFailed.Error() != "write failed" {
		t.Errorf("ErrMockWriteFailed.Error() = %q, want %q", ErrMockWriteFailed.Error(), "write failed")
	}

	wrapped := fmt.Errorf("exporting CSV: %w", ErrMockWriteFailed)
	if !errors.Is(wrapped, ErrMockWriteFailed) {
		t.Error("wrapped error should match the sentinel")
	}

	if errors.Is(errors.New("write failed"), ErrMockWriteFailed) {
		t.Error("a distinct error with the same text should not match the sentinel")
	}
}
