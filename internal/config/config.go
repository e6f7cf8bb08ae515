// Package config provides configuration types and defaults for aeroquant.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/aeroquant/internal/quantity"
)

// UnitsConfig holds the default display units for performance commands.
type UnitsConfig struct {
	Velocity string `mapstructure:"velocity"` // e.g. "mph", "kt"
	Pressure string `mapstructure:"pressure"` // e.g. "psf", "pa"
}

// Config holds all configuration options for aeroquant.
type Config struct {
	// Precision is the number of decimal places printed for results.
	Precision int `mapstructure:"precision"`

	// AtmosphereTable optionally points at a YAML density-ratio table that
	// replaces the built-in standard atmosphere.
	AtmosphereTable string `mapstructure:"atmosphere_table"`

	Units UnitsConfig `mapstructure:"units"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Precision: 4,
		Units: UnitsConfig{
			Velocity: "mph",
			Pressure: "psf",
		},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > 14 {
		return fmt.Errorf("precision must be between 0 and 14, got %d", c.Precision)
	}
	if err := validateUnit("units.velocity", c.Units.Velocity, quantity.DimVelocity); err != nil {
		return err
	}
	if err := validateUnit("units.pressure", c.Units.Pressure, quantity.DimPressure); err != nil {
		return err
	}
	return nil
}

func validateUnit(field, id string, want quantity.Dimension) error {
	u, err := quantity.ParseUnit(id)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	dim, err := quantity.DimensionOf(quantity.New(0, u))
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if dim != want {
		return fmt.Errorf("%s: %q is a %s unit, want %s", field, id, dim, want)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Aeroquant Configuration

# Number of decimal places printed for results (0-14)
precision: 4

# Default display units for performance commands
units:
  velocity: mph   # stall speeds, climb speeds
  pressure: psf   # dynamic pressure

# Replace the built-in 5-point standard atmosphere with a custom
# density-ratio table. The file is a YAML list:
#
#   - altitude_ft: 0
#     density_ratio: 1.0
#   - altitude_ft: 5000
#     density_ratio: 0.86
#
# atmosphere_table: /path/to/atmosphere.yaml
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
