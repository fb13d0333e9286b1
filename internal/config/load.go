package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"todo/internal/constants"
	"todo/internal/errors"
)

// newViperInstance creates a new Viper instance with standard todo
// configuration: environment variable prefix (TODO_), key replacer, and
// defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	v.SetDefault("file", constants.StoreFileName)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("color", DefaultColor)
	v.SetDefault("export.format", DefaultExportFormat)
	v.SetDefault("log.file", false)
	v.SetDefault("lock.timeout", constants.DefaultLockTimeout.String())
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. This helps consolidate the common pattern of checking for
// missing config files.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into a Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (TODO_* prefix)
//  2. Project config (./.todo.yaml)
//  3. Global config (~/.todo/config.yaml)
//  4. Built-in defaults
//
// CLI flag overrides are applied by the command layer after loading, since
// only it knows which flags were explicitly set.
//
// The function returns an error only for actual configuration problems, not
// for missing config files (which are expected in many scenarios).
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence), project config merged over it
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("file", cfg.File).
		Str("output", cfg.Output).
		Str("export_format", cfg.Export.Format).
		Dur("lock_timeout", cfg.Lock.Timeout).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths for testing.
// This function allows precise control over which config files are loaded.
//
// projectConfigPath is the path to the project-level config (higher
// priority). globalConfigPath is the path to the global config (lower
// priority). Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// loadGlobalConfig attempts to load the global config file
// (~/.todo/config.yaml). Returns nil if the file doesn't exist or the home
// directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := globalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// globalConfigPathIfExists returns the global config path if it exists.
// Returns empty string and false if the home directory cannot be determined
// or the config file does not exist.
func globalConfigPathIfExists() (string, bool) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", false
	}
	if !fileExists(path) {
		return "", false
	}
	return path, true
}

// loadProjectConfig attempts to load the project config file (./.todo.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from
// strings, so "10s" in a config file or TODO_LOCK_TIMEOUT becomes a
// time.Duration.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
