// Package config loads rendercore settings from defaults, an optional file and
// RENDERCORE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix for environment overrides, e.g. RENDERCORE_LOGGING_LEVEL.
const EnvPrefix = "RENDERCORE"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration.
type Config struct {
	Logging Logging `mapstructure:"logging"`
	Errors  Errors  `mapstructure:"errors"`
	Pool    Pool    `mapstructure:"pool"`
}

// Logging configures the zap logger.
type Logging struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Errors configures the default error handler.
type Errors struct {
	// Verbose includes stack traces in logged errors.
	Verbose bool `mapstructure:"verbose"`
}

// Pool configures content pooling.
type Pool struct {
	// MaxPerKind caps retained content instances per content kind.
	MaxPerKind int `mapstructure:"max_per_kind"`
	// Prefill is how many instances of each scene kind are created before
	// mounting. It is capped by MaxPerKind.
	Prefill int `mapstructure:"prefill"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info"},
		Pool:    Pool{MaxPerKind: 8},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.development", d.Logging.Development)
	v.SetDefault("errors.verbose", d.Errors.Verbose)
	v.SetDefault("pool.max_per_kind", d.Pool.MaxPerKind)
	v.SetDefault("pool.prefill", d.Pool.Prefill)
}

// Load resolves the configuration. An empty path skips the file layer; the
// file format follows its extension (yaml, toml or json).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	if c.Pool.MaxPerKind < 0 {
		return fmt.Errorf("%w: pool.max_per_kind must be >= 0, got %d", ErrInvalidConfig, c.Pool.MaxPerKind)
	}
	if c.Pool.Prefill < 0 {
		return fmt.Errorf("%w: pool.prefill must be >= 0, got %d", ErrInvalidConfig, c.Pool.Prefill)
	}
	return nil
}
