package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldcalc/pipeheat/internal/diagram"
	"github.com/fieldcalc/pipeheat/internal/pipe"
	"github.com/fieldcalc/pipeheat/internal/props"
	"github.com/fieldcalc/pipeheat/internal/report"
	"github.com/fieldcalc/pipeheat/internal/thermal"
)

var (
	// Pipe selection
	sweepFamily string
	sweepSize   float64
	sweepDR     float64

	// Conditions
	sweepAmbient float64
	sweepWind    float64
	sweepLength  float64
	sweepTarget  float64
	sweepSource  float64

	// Flow range (bbl/min)
	sweepFlowMin  float64
	sweepFlowMax  float64
	sweepFlowStep float64

	// Heater fuel
	sweepFuelType   string
	sweepFuelPrice  float64
	sweepEfficiency float64

	// Input file
	sweepFile string

	// Output options
	sweepChart   bool
	sweepPlotOut string
	sweepCSVOut  string
	sweepPDFOut  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep a flow range for required inlet temperature and heater sizing",
	Long: `Calculate, for each flow rate in a range, the inlet temperature
required to deliver a target outlet temperature through a cold exposed
line and the resulting heat loss. When the available source is colder
than required, also size the line heater duty and daily fuel cost.

Pipe families:
  flex  - single-wall lay-flat TPU hose (nominal size = inside diameter)
  hdpe  - rigid HDPE pipe (wall from --dr; OD from the IPS size table)
  dual  - hose-in-hose: inner hose at --size, outer hose 4 in larger

Inputs may also be supplied as a JSON case file via --file; flags are
ignored when a file is given.

Examples:
  # 12 in lay-flat hose, 9.5 mi line, -10 °F ambient, 20 mph wind
  pipeheat sweep --family flex --size 12 --ambient -10 --wind 20 \
    --length 9.5 --target 35 --source 60 --flow-min 15 --flow-max 60

  # Dual-wall run with an ASCII chart and a PDF report
  pipeheat sweep --family dual --size 12 --chart --report sweep.pdf

  # From a case file, exporting the table and a PNG chart
  pipeheat sweep --file case.json --csv results.csv --plot trend.png`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	// Pipe selection flags
	sweepCmd.Flags().StringVarP(&sweepFamily, "family", "F", "flex", "Pipe family: flex, hdpe, or dual")
	sweepCmd.Flags().Float64VarP(&sweepSize, "size", "s", 12, "Nominal pipe size (in), 4-24 in 2 in steps")
	sweepCmd.Flags().Float64Var(&sweepDR, "dr", 11, "Dimension ratio (HDPE only)")

	// Condition flags
	sweepCmd.Flags().Float64VarP(&sweepAmbient, "ambient", "a", -10, "Ambient temperature (°F)")
	sweepCmd.Flags().Float64VarP(&sweepWind, "wind", "w", 20, "Wind speed (mph)")
	sweepCmd.Flags().Float64VarP(&sweepLength, "length", "l", 9.5, "Line length (miles)")
	sweepCmd.Flags().Float64VarP(&sweepTarget, "target", "t", 35, "Target outlet temperature (°F)")
	sweepCmd.Flags().Float64Var(&sweepSource, "source", 60, "Available source temperature (°F)")

	// Flow range flags
	sweepCmd.Flags().Float64Var(&sweepFlowMin, "flow-min", 15, "Minimum flow (bbl/min)")
	sweepCmd.Flags().Float64Var(&sweepFlowMax, "flow-max", 60, "Maximum flow (bbl/min)")
	sweepCmd.Flags().Float64Var(&sweepFlowStep, "flow-step", 5, "Flow step (bbl/min)")

	// Fuel flags
	sweepCmd.Flags().StringVar(&sweepFuelType, "fuel", "diesel", "Heater fuel: diesel, propane, or natgas")
	sweepCmd.Flags().Float64Var(&sweepFuelPrice, "fuel-price", 3.50, "Fuel price per unit (gal or Mcf)")
	sweepCmd.Flags().Float64VarP(&sweepEfficiency, "efficiency", "e", 80, "Heater efficiency (%)")

	// Case file
	sweepCmd.Flags().StringVarP(&sweepFile, "file", "f", "", "JSON case file (overrides input flags)")

	// Output flags
	sweepCmd.Flags().BoolVar(&sweepChart, "chart", false, "Print an ASCII chart of required inlet temp vs flow")
	sweepCmd.Flags().StringVar(&sweepPlotOut, "plot", "", "Export a chart image (.png, .pdf, or .svg)")
	sweepCmd.Flags().StringVar(&sweepCSVOut, "csv", "", "Export the result table to a CSV file")
	sweepCmd.Flags().StringVar(&sweepPDFOut, "report", "", "Export a printable PDF report")
}

func runSweep(cmd *cobra.Command, args []string) {
	var calcCase *thermal.Case
	if sweepFile != "" {
		loaded, err := thermal.LoadCaseFromFile(sweepFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		calcCase = loaded
	} else {
		calcCase = &thermal.Case{
			Pipe: pipe.Spec{
				Family:      pipe.Family(sweepFamily),
				NominalSize: sweepSize,
				DR:          sweepDR,
			},
			Conditions: thermal.Conditions{
				AmbientTemp:      sweepAmbient,
				WindSpeed:        sweepWind,
				LineLength:       sweepLength,
				SourceTemp:       sweepSource,
				TargetOutletTemp: sweepTarget,
			},
			Flows: thermal.FlowRange{
				Min:  sweepFlowMin,
				Max:  sweepFlowMax,
				Step: sweepFlowStep,
			},
			Fuel: thermal.FuelCase{
				Type:              sweepFuelType,
				UnitPrice:         sweepFuelPrice,
				EfficiencyPercent: sweepEfficiency,
			},
		}
	}

	results, summary, err := calcCase.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fuel, _ := props.FuelByID(calcCase.Fuel.Type)
	cond := calcCase.Conditions

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════════")
	fmt.Println("          PIPELINE HEAT LOSS & LINE HEATER SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════════════")
	fmt.Println()

	inputLines := sweepInputLines(calcCase, fuel)

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, line := range inputLines {
		fmt.Fprintf(w, "  %s\n", line)
	}
	w.Flush()
	fmt.Println()

	// Conductance summary
	fmt.Println("LINE CONDUCTANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═══════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  UA per mile = %-12.0f Btu/hr-°F          \n", summary.UAPerMile)
	fmt.Printf("  ║  UA total    = %-12.0f Btu/hr-°F          \n", summary.UATotal)
	fmt.Printf("  ╚═══════════════════════════════════════════════╝\n")
	fmt.Println()

	// Result table
	fmt.Printf("RESULTS (target outlet %.0f °F | ambient %.0f °F | wind %.0f mph):\n",
		cond.TargetOutletTemp, cond.AmbientTemp, cond.WindSpeed)
	fmt.Println("───────────────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flow\tReq. Inlet\tOutlet\tHeat Loss\tHeater Duty\tFuel Cost\n")
	fmt.Fprintf(w, "  (bbl/min)\t(°F)\t(°F)\t(MMBtu/hr)\t(MMBtu/hr)\t($/day)\n")
	fmt.Fprintf(w, "  ─────\t──────────\t──────\t─────────\t───────────\t─────────\n")
	for _, r := range results {
		duty := "-"
		cost := "-"
		if r.HeaterRequired {
			duty = fmt.Sprintf("%.2f", r.HeaterDuty/1e6)
			cost = fmt.Sprintf("%.2f", r.DailyFuelCost)
		}
		fmt.Fprintf(w, "  %.0f\t%.1f\t%.1f\t%.2f\t%s\t%s\n",
			r.Flow, r.RequiredInletTemp, r.OutletTemp, r.HeatLossRate/1e6, duty, cost)
	}
	w.Flush()
	fmt.Println()

	trend := diagram.TrendData{
		Flows:      make([]float64, len(results)),
		InletTemps: make([]float64, len(results)),
		SourceTemp: cond.SourceTemp,
		Title:      fmt.Sprintf("Required Inlet Temp vs Flow (target %.0f °F)", cond.TargetOutletTemp),
	}
	for i, r := range results {
		trend.Flows[i] = r.Flow
		trend.InletTemps[i] = r.RequiredInletTemp
	}

	if sweepChart {
		fmt.Println(diagram.DrawASCIITrend(trend))
	}

	if sweepPlotOut != "" {
		if err := diagram.ExportTrendChart(trend, sweepPlotOut); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("  Chart exported to %s\n", sweepPlotOut)
		}
	}

	if sweepCSVOut != "" {
		if err := report.WriteCSV(results, sweepCSVOut); err != nil {
			fmt.Printf("Error exporting CSV: %v\n", err)
		} else {
			fmt.Printf("  Result table exported to %s\n", sweepCSVOut)
		}
	}

	if sweepPDFOut != "" {
		data := report.Data{
			Title:      "Pipeline Heat Loss & Line Heater Sizing",
			InputLines: inputLines,
			Summary:    summary,
			Results:    results,
		}
		if err := report.WritePDF(data, sweepPDFOut); err != nil {
			fmt.Printf("Error exporting PDF report: %v\n", err)
		} else {
			fmt.Printf("  PDF report exported to %s\n", sweepPDFOut)
		}
	}
}

// sweepInputLines formats the case inputs for the terminal summary and
// the PDF report.
func sweepInputLines(c *thermal.Case, fuel props.Fuel) []string {
	lines := []string{
		fmt.Sprintf("Pipe family:\t%s", familyName(c.Pipe.Family)),
		fmt.Sprintf("Nominal size:\t%.0f in", c.Pipe.NominalSize),
	}
	if c.Pipe.Family == pipe.HDPEPipe {
		lines = append(lines, fmt.Sprintf("Dimension ratio:\tDR %.1f", c.Pipe.DR))
	}
	lines = append(lines,
		fmt.Sprintf("Line length:\t%.2f mi", c.Conditions.LineLength),
		fmt.Sprintf("Ambient temperature:\t%.1f °F", c.Conditions.AmbientTemp),
		fmt.Sprintf("Wind speed:\t%.1f mph", c.Conditions.WindSpeed),
		fmt.Sprintf("Target outlet:\t%.1f °F", c.Conditions.TargetOutletTemp),
		fmt.Sprintf("Available source:\t%.1f °F", c.Conditions.SourceTemp),
		fmt.Sprintf("Flow range:\t%.0f-%.0f bbl/min, step %.0f", c.Flows.Min, c.Flows.Max, c.Flows.Step),
		fmt.Sprintf("Heater fuel:\t%s at %.2f/%s, %.0f%% efficient",
			fuel.Name, c.Fuel.UnitPrice, fuel.Unit, c.Fuel.EfficiencyPercent),
	)
	return lines
}

func familyName(f pipe.Family) string {
	switch f {
	case pipe.FlexibleHose:
		return "Lay-flat flexible hose"
	case pipe.HDPEPipe:
		return "Rigid HDPE pipe"
	case pipe.DualHose:
		return "Dual-wall (hose-in-hose)"
	default:
		return string(f)
	}
}
