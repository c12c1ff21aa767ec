package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldcalc/pipeheat/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pipeheat",
	Short: "Pipeline Heat Loss & Line Heater Sizing Tool",
	Long: `pipeheat - Pipeline Heat Loss Calculator

A CLI tool for sizing line heaters and pre-heat boilers on heated-fluid
transfer lines exposed to cold ambient air.

This tool helps field and process engineers:
  - Model single-wall hose, HDPE pipe, and dual-wall (hose-in-hose) lines
  - Sweep a flow range for required inlet temperature and heat loss
  - Size auxiliary heater duty when the source is colder than required
  - Estimate daily fuel cost for diesel, propane, or natural gas heaters

The model is a steady-state lumped radial resistance network with an
exponential temperature decay along the line.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   pipeheat v%-46s║\n", version.Version)
		fmt.Println("  ║   Pipeline Heat Loss & Line Heater Sizing Tool            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for cold-climate fluid transfer line design.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Single-wall flexible hose, rigid HDPE, and dual-wall lines")
		fmt.Println("    • Required inlet temperature sweep over a flow range")
		fmt.Println("    • Line heater duty and daily fuel cost estimates")
		fmt.Println("    • Table, chart, CSV, and PDF report output")
		fmt.Println()
		fmt.Println("  Use 'pipeheat --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
