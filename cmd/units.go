package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/aeroquant/internal/cli/styles"
	"github.com/zjrosen/aeroquant/internal/quantity"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the known units grouped by dimension",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, dim := range quantity.Dimensions() {
		base, err := quantity.BaseUnitOf(dim)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, styles.DimensionHeader.Render(dim.String()))
		for _, u := range quantity.Units() {
			d, err := quantity.DimensionOf(quantity.New(0, u))
			if err != nil {
				return err
			}
			if d != dim {
				continue
			}
			desc, err := quantity.Describe(quantity.New(0, u))
			if err != nil {
				return err
			}

			marker := ""
			if u == base {
				marker = " " + styles.BaseMarker.Render("(base)")
			}
			fmt.Fprintf(out, "  %-10s %s%s\n",
				styles.UnitID.Render(u.String()),
				styles.UnitDescription.Render(desc),
				marker)
		}
		fmt.Fprintln(out)
	}
	return nil
}
