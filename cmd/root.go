// Package cmd implements the aeroquant command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/aeroquant/internal/aero"
	"github.com/zjrosen/aeroquant/internal/config"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aeroquant",
	Short: "Unit-aware aeronautical calculator",
	Long: `Aeroquant converts between physical units and evaluates basic aircraft
performance formulas (dynamic pressure, lift, drag, stall speed, climb rate)
with dimension-checked arithmetic.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default ~/.config/aeroquant/config.yaml)")
}

func loadConfig() error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "aeroquant"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("AEROQUANT")
	v.AutomaticEnv()

	cfg = config.Defaults()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		// No config file anywhere on the search path; defaults apply.
	} else if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return cfg.Validate()
}

// atmosphere returns the configured density-ratio table, falling back to the
// built-in standard atmosphere when no override is configured.
func atmosphere() (aero.Atmosphere, error) {
	if cfg.AtmosphereTable == "" {
		return aero.StandardAtmosphere(), nil
	}
	f, err := os.Open(cfg.AtmosphereTable)
	if err != nil {
		return aero.Atmosphere{}, fmt.Errorf("opening atmosphere table: %w", err)
	}
	defer f.Close()

	atm, err := aero.AtmosphereFromYAML(f)
	if err != nil {
		return aero.Atmosphere{}, fmt.Errorf("loading %s: %w", cfg.AtmosphereTable, err)
	}
	return atm, nil
}
