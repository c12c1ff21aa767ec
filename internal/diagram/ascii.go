package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// TrendData holds the flow sweep series for charting.
type TrendData struct {
	Flows      []float64 // bbl/min, ascending
	InletTemps []float64 // required inlet °F, one per flow
	SourceTemp float64   // available source °F, drawn for reference
	Title      string
}

// DrawASCIITrend renders the required-inlet-temperature curve as an
// ASCII chart for terminal output. The x-axis runs over the flow
// samples in ascending order; a footer maps it back to flow rates.
func DrawASCIITrend(data TrendData) string {
	if len(data.InletTemps) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")

	graph := asciigraph.Plot(data.InletTemps,
		asciigraph.Height(12),
		asciigraph.Width(58),
		asciigraph.Precision(0),
		asciigraph.Caption(data.Title),
	)
	sb.WriteString(graph)
	sb.WriteString("\n\n")

	first := data.Flows[0]
	last := data.Flows[len(data.Flows)-1]
	sb.WriteString(fmt.Sprintf("  Flow: %.0f → %.0f bbl/min (left to right)\n", first, last))
	sb.WriteString(fmt.Sprintf("  Available source: %.1f °F (flows whose curve sits above it need a heater)\n", data.SourceTemp))

	return sb.String()
}
