package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockingConstants(t *testing.T) {
	t.Run("DefaultLockTimeout bounds lock waits", func(t *testing.T) {
		assert.Equal(t, 5*time.Second, DefaultLockTimeout)
		assert.Greater(t, DefaultLockTimeout, time.Second, "should tolerate a slow writer")
	})

	t.Run("LockRetryInterval is reasonable", func(t *testing.T) {
		assert.Equal(t, 50*time.Millisecond, LockRetryInterval)
		assert.Less(t, LockRetryInterval, time.Second, "should retry quickly")
	})
}

func TestFileNameConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"StoreFileName", StoreFileName, "todo.json"},
		{"LockFileSuffix", LockFileSuffix, ".lock"},
		{"CLILogFileName", CLILogFileName, "todo.log"},
		{"GlobalConfigName", GlobalConfigName, "config.yaml"},
		{"ProjectConfigName", ProjectConfigName, ".todo.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant)
		})
	}
}
