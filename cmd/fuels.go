package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldcalc/pipeheat/internal/props"
)

var fuelsCmd = &cobra.Command{
	Use:   "fuels",
	Short: "List supported heater fuels and their energy content",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("SUPPORTED HEATER FUELS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tFuel\tEnergy Content\n")
		fmt.Fprintf(w, "  ──\t────\t──────────────\n")
		for _, f := range props.Fuels {
			fmt.Fprintf(w, "  %s\t%s\t%.0f Btu/%s\n", f.ID, f.Name, f.EnergyContent, f.Unit)
		}
		w.Flush()
		fmt.Println()
		fmt.Println("  Pass the ID to 'pipeheat sweep --fuel' with your local")
		fmt.Println("  --fuel-price per unit.")
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(fuelsCmd)
}
