package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/aeroquant/internal/aero"
	"github.com/zjrosen/aeroquant/internal/quantity"
)

var (
	stallWeight     float64
	stallWeightUnit string
	stallArea       float64
	stallAreaUnit   string
	stallCLMax      float64
	stallAltitudeFt float64

	climbAvailableHP float64
	climbRequiredHP  float64
	climbWeightLbf   float64
)

var stallCmd = &cobra.Command{
	Use:   "stall",
	Short: "Compute stall speed from weight, wing area, and maximum lift coefficient",
	Example: `  aeroquant stall --weight 2000 --area 200 --clmax 1.5
  aeroquant stall --weight 2400 --area 170 --clmax 1.6 --altitude 10000
  aeroquant stall --weight 1100 --weight-unit n --area 16 --area-unit m2 --clmax 1.4`,
	Args: cobra.NoArgs,
	RunE: runStall,
}

var climbCmd = &cobra.Command{
	Use:     "climb",
	Short:   "Compute rate of climb from excess power",
	Example: `  aeroquant climb --available 200 --required 120 --weight 2500`,
	Args:    cobra.NoArgs,
	RunE:    runClimb,
}

func init() {
	stallCmd.Flags().Float64Var(&stallWeight, "weight", 0, "gross weight")
	stallCmd.Flags().StringVar(&stallWeightUnit, "weight-unit", "lbf", "unit of --weight")
	stallCmd.Flags().Float64Var(&stallArea, "area", 0, "wing area")
	stallCmd.Flags().StringVar(&stallAreaUnit, "area-unit", "ft2", "unit of --area")
	stallCmd.Flags().Float64Var(&stallCLMax, "clmax", 0, "maximum lift coefficient")
	stallCmd.Flags().Float64Var(&stallAltitudeFt, "altitude", 0, "altitude in feet")
	_ = stallCmd.MarkFlagRequired("weight")
	_ = stallCmd.MarkFlagRequired("area")
	_ = stallCmd.MarkFlagRequired("clmax")
	rootCmd.AddCommand(stallCmd)

	climbCmd.Flags().Float64Var(&climbAvailableHP, "available", 0, "power available in hp")
	climbCmd.Flags().Float64Var(&climbRequiredHP, "required", 0, "power required in hp")
	climbCmd.Flags().Float64Var(&climbWeightLbf, "weight", 0, "gross weight in lbf")
	_ = climbCmd.MarkFlagRequired("available")
	_ = climbCmd.MarkFlagRequired("required")
	_ = climbCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(climbCmd)
}

func runStall(cmd *cobra.Command, args []string) error {
	atm, err := atmosphere()
	if err != nil {
		return err
	}
	weightUnit, err := quantity.ParseUnit(stallWeightUnit)
	if err != nil {
		return err
	}
	areaUnit, err := quantity.ParseUnit(stallAreaUnit)
	if err != nil {
		return err
	}

	vs, err := aero.StallSpeed(
		quantity.New(stallWeight, weightUnit),
		quantity.New(stallArea, areaUnit),
		stallCLMax,
		quantity.New(stallAltitudeFt, quantity.UnitFoot),
		atm,
	)
	if err != nil {
		return err
	}

	display, err := quantity.ParseUnit(cfg.Units.Velocity)
	if err != nil {
		return err
	}
	out, err := quantity.Convert(vs, display)
	if err != nil {
		return err
	}

	printQuantity(cmd, out)
	return nil
}

func runClimb(cmd *cobra.Command, args []string) error {
	rc, err := aero.RateOfClimb(
		quantity.New(climbAvailableHP, quantity.UnitHorsepower),
		quantity.New(climbRequiredHP, quantity.UnitHorsepower),
		quantity.New(climbWeightLbf, quantity.UnitPoundForce),
	)
	if err != nil {
		return err
	}

	printQuantity(cmd, rc)
	return nil
}
