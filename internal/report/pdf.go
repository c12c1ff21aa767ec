package report

import (
	"fmt"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/fieldcalc/pipeheat/internal/thermal"
)

// Data collects everything the printable report shows.
type Data struct {
	Title      string
	InputLines []string // formatted "label: value" input summary
	Summary    thermal.Summary
	Results    []thermal.Result
}

// WritePDF exports a printable tabular report of the sweep.
func WritePDF(data Data, filename string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(data.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(data.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Inputs", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range data.InputLines {
		// Terminal summary lines are tab-aligned; flatten for print.
		pdf.CellFormat(0, 5.5, tr("  "+strings.ReplaceAll(line, "\t", " ")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Line Conductance", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5.5, tr(fmt.Sprintf("  UA per mile: %.0f Btu/hr-°F", data.Summary.UAPerMile)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5.5, tr(fmt.Sprintf("  UA total:    %.0f Btu/hr-°F", data.Summary.UATotal)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Flow\n(bbl/min)", "Req. Inlet\n(°F)", "Outlet\n(°F)", "Heat Loss\n(MMBtu/hr)", "Heater Duty\n(MMBtu/hr)", "Fuel Cost\n($/day)"}
	widths := []float64{28, 30, 28, 34, 34, 32}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(14, 98, 81)
	pdf.SetTextColor(255, 255, 255)
	x, y := pdf.GetXY()
	for i, hdr := range headers {
		pdf.SetXY(x, y)
		pdf.MultiCell(widths[i], 5, tr(hdr), "1", "C", true)
		x += widths[i]
	}
	pdf.SetXY(pdf.GetX(), y+10)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 9)
	fill := false
	pdf.SetFillColor(242, 242, 242)
	for _, r := range data.Results {
		cells := []string{
			fmt.Sprintf("%.0f", r.Flow),
			fmt.Sprintf("%.1f", r.RequiredInletTemp),
			fmt.Sprintf("%.1f", r.OutletTemp),
			fmt.Sprintf("%.2f", r.HeatLossRate/1e6),
			fmt.Sprintf("%.2f", r.HeaterDuty/1e6),
			fmt.Sprintf("%.2f", r.DailyFuelCost),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	return pdf.OutputFileAndClose(filename)
}
