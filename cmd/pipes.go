package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldcalc/pipeheat/internal/pipe"
	"github.com/fieldcalc/pipeheat/internal/props"
)

var pipesCmd = &cobra.Command{
	Use:   "pipes",
	Short: "List supported pipe families, sizes, and wall ratings",
	Run:   runPipes,
}

func init() {
	rootCmd.AddCommand(pipesCmd)
}

func runPipes(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("SUPPORTED PIPE FAMILIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  flex\tLay-flat TPU hose\twall %.2f in, k = %.3f Btu/hr-ft-°F\n",
		props.HoseWallThickness, props.TPUConductivity)
	fmt.Fprintf(w, "  hdpe\tRigid HDPE pipe\twall = OD/DR, k = %.2f Btu/hr-ft-°F\n",
		props.HDPEConductivity)
	fmt.Fprintf(w, "  dual\tHose-in-hose\touter hose 4 in larger, air gap k = %.3f\n",
		props.AirGapConductivity)
	w.Flush()
	fmt.Println()

	fmt.Println("NOMINAL SIZES AND HDPE OUTSIDE DIAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal (in)\tIPS OD (in)\n")
	fmt.Fprintf(w, "  ────────────\t───────────\n")
	for _, size := range pipe.NominalSizes {
		od, _ := pipe.OutsideDiameter(size)
		fmt.Fprintf(w, "  %.0f\t%.3f\n", size, od)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("COMMON HDPE DR RATINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  DR\t12 in wall (in)\n")
	fmt.Fprintf(w, "  ──\t───────────────\n")
	for _, dr := range pipe.CommonDRRatings {
		od, _ := pipe.OutsideDiameter(12)
		fmt.Fprintf(w, "  %.1f\t%.3f\n", dr, od/dr)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Any positive DR is accepted; the wall is OD/DR and the inside")
	fmt.Println("  diameter must stay positive.")
	fmt.Println()
}
