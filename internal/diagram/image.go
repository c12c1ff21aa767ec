package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportTrendChart exports the required-inlet-temperature curve to an
// image file. Format follows the file extension (.png, .pdf, .svg).
func ExportTrendChart(data TrendData, filename string) error {
	if len(data.Flows) != len(data.InletTemps) {
		return fmt.Errorf("trend data mismatch: %d flows vs %d temperatures", len(data.Flows), len(data.InletTemps))
	}
	if len(data.Flows) == 0 {
		return fmt.Errorf("trend data is empty")
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Flow (bbl/min)"
	p.Y.Label.Text = "Required Inlet Temp (°F)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(data.Flows))
	for i := range data.Flows {
		pts[i] = plotter.XY{X: data.Flows[i], Y: data.InletTemps[i]}
	}

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = color.RGBA{R: 14, G: 98, B: 81, A: 255}
	p.Add(curve)

	markers, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	markers.GlyphStyle.Color = color.RGBA{R: 14, G: 98, B: 81, A: 255}
	markers.GlyphStyle.Radius = vg.Points(3)
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(markers)

	// Reference line at the available source temperature
	sourceLine, err := plotter.NewLine(plotter.XYs{
		{X: data.Flows[0], Y: data.SourceTemp},
		{X: data.Flows[len(data.Flows)-1], Y: data.SourceTemp},
	})
	if err != nil {
		return err
	}
	sourceLine.LineStyle.Width = vg.Points(1.5)
	sourceLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	sourceLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(sourceLine)

	p.Legend.Add("required inlet", curve)
	p.Legend.Add("available source", sourceLine)
	p.Legend.Top = true

	switch filepath.Ext(filename) {
	case ".png", ".pdf", ".svg":
	default:
		return fmt.Errorf("unsupported image format %q (use .png, .pdf, or .svg)", filepath.Ext(filename))
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
