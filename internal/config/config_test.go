package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "simpson13", cfg.Quadrature.Rule)
	assert.Equal(t, 100, cfg.Quadrature.Subdivisions)
	assert.Equal(t, 1e-5, cfg.Quadrature.Tolerance)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	require.NoError(t, cfg.Validate(), "defaults must validate")
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("quadrature.rule", "boole")
	viper.Set("quadrature.subdivisions", 400)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "boole", cfg.Quadrature.Rule)
	assert.Equal(t, 400, cfg.Quadrature.Subdivisions)
	assert.Equal(t, 1e-5, cfg.Quadrature.Tolerance, "untouched keys keep defaults")
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "quadra.yaml")
	yaml := []byte("quadrature:\n  rule: trapezoid\n  subdivisions: 64\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	viper.SetConfigFile(path)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "trapezoid", cfg.Quadrature.Rule)
	assert.Equal(t, 64, cfg.Quadrature.Subdivisions)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "keys absent from the file keep defaults")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	cfg, err := LoadConfig()
	require.NoError(t, err, "a missing config file falls back to defaults")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "quadra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quadrature: [not: a: mapping\n"), 0o644))

	viper.SetConfigFile(path)
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown rule",
			mutate:  func(c *Config) { c.Quadrature.Rule = "gauss" },
			wantErr: "quadrature.rule",
		},
		{
			name:    "zero subdivisions",
			mutate:  func(c *Config) { c.Quadrature.Subdivisions = 0 },
			wantErr: "quadrature.subdivisions",
		},
		{
			name:    "negative tolerance",
			mutate:  func(c *Config) { c.Quadrature.Tolerance = -1e-5 },
			wantErr: "quadrature.tolerance",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestValidate_RuleAliases verifies the historical rule labels reach the
// parser, so config files may use them.
func TestValidate_RuleAliases(t *testing.T) {
	for _, name := range []string{"Simpson 1/3", "simpson-3/8", "MIDPOINT"} {
		cfg := DefaultConfig()
		cfg.Quadrature.Rule = name
		assert.NoError(t, cfg.Validate(), "rule %q", name)
	}
}
