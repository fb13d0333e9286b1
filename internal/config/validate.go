package config

import (
	"todo/internal/errors"
)

// Output mode values accepted by the "output" key.
const (
	// OutputText renders human-readable text with optional color.
	OutputText = "text"

	// OutputJSON renders machine-readable JSON.
	OutputJSON = "json"
)

// Color mode values accepted by the "color" key.
const (
	// ColorAuto enables color when the terminal supports it.
	ColorAuto = "auto"

	// ColorAlways forces color on.
	ColorAlways = "always"

	// ColorNever forces color off.
	ColorNever = "never"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - file must not be empty
//   - output must be "text" or "json"
//   - color must be "auto", "always" or "never"
//   - lock timeout must be positive
//
// The export format is not checked here: the export command owns the format
// tags and reports an unsupported one itself.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(errors.ErrEmptyValue, "config must not be nil")
	}

	if cfg.File == "" {
		return errors.Wrap(errors.ErrEmptyValue, "file must not be empty")
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return errors.Wrapf(errors.ErrInvalidOutputFormat,
			"output must be %q or %q, got %q", OutputText, OutputJSON, cfg.Output)
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Wrapf(errors.ErrInvalidColorMode,
			"color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, cfg.Color)
	}

	if cfg.Lock.Timeout <= 0 {
		return errors.Wrapf(errors.ErrInvalidLockTimeout,
			"lock.timeout must be positive, got %s", cfg.Lock.Timeout)
	}

	return nil
}
