package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative precision", func(c *Config) { c.Precision = -1 }, "precision"},
		{"precision above rounding contract", func(c *Config) { c.Precision = 15 }, "precision"},
		{"unknown velocity unit", func(c *Config) { c.Units.Velocity = "warp" }, "units.velocity"},
		{"velocity unit of wrong dimension", func(c *Config) { c.Units.Velocity = "psf" }, "units.velocity"},
		{"unknown pressure unit", func(c *Config) { c.Units.Pressure = "bars" }, "units.pressure"},
		{"pressure unit of wrong dimension", func(c *Config) { c.Units.Pressure = "kt" }, "units.pressure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_LoadsFromYAML(t *testing.T) {
	configYAML := `
precision: 2
atmosphere_table: /tmp/atmosphere.yaml
units:
  velocity: kt
  pressure: pa
`
	cfg := loadConfigFromYAML(t, configYAML)

	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, "/tmp/atmosphere.yaml", cfg.AtmosphereTable)
	assert.Equal(t, "kt", cfg.Units.Velocity)
	assert.Equal(t, "pa", cfg.Units.Pressure)
	require.NoError(t, cfg.Validate())
}

// TestDefaultConfigTemplate_RoundTrips verifies the commented template parses
// back into the default configuration.
func TestDefaultConfigTemplate_RoundTrips(t *testing.T) {
	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())
	assert.Equal(t, Defaults(), cfg)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigTemplate(), string(data))
}

// loadConfigFromYAML is a helper to load config from YAML string.
func loadConfigFromYAML(t *testing.T, yaml string) Config {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(yaml), 0644)
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(configPath)
	err = v.ReadInConfig()
	require.NoError(t, err)

	cfg := Defaults()
	err = v.Unmarshal(&cfg)
	require.NoError(t, err)

	return cfg
}
