package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/aeroquant/internal/quantity"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE FROM TO",
	Short: "Convert a value between units of the same dimension",
	Long: `Convert a numeric value from one unit to another unit of the same
dimension. Run 'aeroquant units' to list the known unit identifiers.`,
	Example: `  aeroquant convert 175 mph kt
  aeroquant convert 50 f c
  aeroquant convert 15000 ft m`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	from, err := quantity.ParseUnit(args[1])
	if err != nil {
		return err
	}
	to, err := quantity.ParseUnit(args[2])
	if err != nil {
		return err
	}

	out, err := quantity.Convert(quantity.New(value, from), to)
	if err != nil {
		return err
	}

	printQuantity(cmd, out)
	return nil
}

// printQuantity prints a quantity with the configured precision.
func printQuantity(cmd *cobra.Command, q quantity.Quantity) {
	fmt.Fprintf(cmd.OutOrStdout(), "%.*f %s\n", cfg.Precision, q.Value, q.Unit)
}
