// Package config loads and validates the quadra configuration from file,
// environment and flags via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/katalvlaran/quadra/newcotes"
)

// Config represents the complete quadra configuration.
type Config struct {
	Quadrature QuadratureConfig `mapstructure:"quadrature"`
	Log        LogConfig        `mapstructure:"log"`
}

// QuadratureConfig contains the numeric defaults commands fall back to
// when flags are absent.
type QuadratureConfig struct {
	// Rule is the default quadrature rule, by catalog name.
	Rule string `mapstructure:"rule"`

	// Subdivisions is the default n.
	Subdivisions int `mapstructure:"subdivisions"`

	// Tolerance is the absolute acceptance tolerance for the self-test
	// and suite commands.
	Tolerance float64 `mapstructure:"tolerance"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Quadrature: QuadratureConfig{
			Rule:         newcotes.RuleSimpson13.String(),
			Subdivisions: 100,
			Tolerance:    1e-5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := newcotes.ParseRule(c.Quadrature.Rule); err != nil {
		return fmt.Errorf("quadrature.rule: %w", err)
	}

	if c.Quadrature.Subdivisions < 1 {
		return fmt.Errorf("quadrature.subdivisions must be at least 1, got %d", c.Quadrature.Subdivisions)
	}

	if c.Quadrature.Tolerance <= 0 {
		return fmt.Errorf("quadrature.tolerance must be positive, got %g", c.Quadrature.Tolerance)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}

	return nil
}

// LoadConfig loads configuration from file, environment, and flags.
// Defaults are registered with viper first, so flag and file overrides
// survive the unmarshal.
func LoadConfig() (*Config, error) {
	defaults := DefaultConfig()

	viper.SetDefault("quadrature.rule", defaults.Quadrature.Rule)
	viper.SetDefault("quadrature.subdivisions", defaults.Quadrature.Subdivisions)
	viper.SetDefault("quadrature.tolerance", defaults.Quadrature.Tolerance)

	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	if err := viper.ReadInConfig(); err != nil {
		// Both error shapes mean "no config file": ConfigFileNotFoundError
		// from the search paths, os.ErrNotExist from an explicit --config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
