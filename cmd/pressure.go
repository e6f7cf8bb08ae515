package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/aeroquant/internal/aero"
	"github.com/zjrosen/aeroquant/internal/quantity"
)

var pressureAltitudeFt float64

var pressureCmd = &cobra.Command{
	Use:   "pressure VALUE UNIT",
	Short: "Compute dynamic pressure for a true airspeed",
	Long: `Compute the dynamic pressure q = 0.00256 · V² · σ for a true airspeed,
corrected for altitude with the configured density-ratio table. The result is
printed in the configured pressure unit.`,
	Example: `  aeroquant pressure 175 mph
  aeroquant pressure 154.4 kt --altitude 15000`,
	Args: cobra.ExactArgs(2),
	RunE: runPressure,
}

func init() {
	pressureCmd.Flags().Float64Var(&pressureAltitudeFt, "altitude", 0, "altitude in feet")
	rootCmd.AddCommand(pressureCmd)
}

func runPressure(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	unit, err := quantity.ParseUnit(args[1])
	if err != nil {
		return err
	}
	atm, err := atmosphere()
	if err != nil {
		return err
	}

	q, err := aero.DynamicPressure(
		quantity.New(value, unit),
		quantity.New(pressureAltitudeFt, quantity.UnitFoot),
		atm,
	)
	if err != nil {
		return err
	}

	display, err := quantity.ParseUnit(cfg.Units.Pressure)
	if err != nil {
		return err
	}
	out, err := quantity.Convert(q, display)
	if err != nil {
		return err
	}

	printQuantity(cmd, out)
	return nil
}
