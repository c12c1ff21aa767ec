package thermal

import (
	"fmt"
	"math"

	"github.com/fieldcalc/pipeheat/internal/pipe"
	"github.com/fieldcalc/pipeheat/internal/props"
)

// Summary holds the flow-independent conductance of the line. Computed
// once per geometry/condition set and shared across the flow sweep.
type Summary struct {
	UAPerMile float64 // Btu/hr-°F per mile
	UATotal   float64 // Btu/hr-°F for the whole line
}

// ConductancePerMile reduces a resolved geometry and an outside film
// coefficient to one lumped conductance per mile of line. The geometry
// must already be validated; the series-resistance reduction assumes
// every logarithm argument exceeds one.
func ConductancePerMile(g pipe.Geometry, h float64) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	if h <= 0 {
		return 0, fmt.Errorf("film coefficient %.3f must be positive", h)
	}

	switch g := g.(type) {
	case pipe.SingleWall:
		return singleWallUA(g, h), nil
	case pipe.DualWall:
		return dualWallUA(g, h), nil
	default:
		return 0, fmt.Errorf("unsupported geometry type %T", g)
	}
}

// singleWallUA: cylindrical wall conduction in series with outside
// convection, per mile of line.
func singleWallUA(g pipe.SingleWall, h float64) float64 {
	rWall := math.Log(g.OuterRadius/g.InnerRadius) / (2 * math.Pi * g.WallK * props.FeetPerMile)
	rConv := 1 / (h * 2 * math.Pi * g.OuterRadius * props.FeetPerMile)
	return 1 / (rWall + rConv)
}

// dualWallUA: four series resistances (inner hose wall, annular air
// gap as an equivalent cylindrical conductor, outer hose wall, outside
// convection at the outer hose surface) with the eccentricity
// correction applied to the combined conductance.
func dualWallUA(g pipe.DualWall, h float64) float64 {
	perMileWall := 2 * math.Pi * g.WallK * props.FeetPerMile
	rInner := math.Log(g.InnerHoseOuterRadius/g.InnerHoseInnerRadius) / perMileWall
	rGap := math.Log(g.OuterHoseInnerRadius/g.InnerHoseOuterRadius) / (2 * math.Pi * g.GapK * props.FeetPerMile)
	rOuter := math.Log(g.OuterHoseOuterRadius/g.OuterHoseInnerRadius) / perMileWall
	rConv := 1 / (h * 2 * math.Pi * g.OuterHoseOuterRadius * props.FeetPerMile)
	return g.Correction / (rInner + rGap + rOuter + rConv)
}
