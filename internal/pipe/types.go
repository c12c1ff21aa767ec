package pipe

import "fmt"

// Family identifies the pipe construction family.
type Family string

const (
	// FlexibleHose is single-wall lay-flat TPU hose.
	FlexibleHose Family = "flex"

	// HDPEPipe is single-wall rigid HDPE pipe with a DR wall rating.
	HDPEPipe Family = "hdpe"

	// DualHose is a hose-in-hose run: two concentric lay-flat hoses
	// with an insulating air gap between them.
	DualHose Family = "dual"
)

// Spec is the user's pipe selection before geometry resolution.
type Spec struct {
	Family      Family  `json:"family"`
	NominalSize float64 `json:"nominal_size"`  // in
	DR          float64 `json:"dr,omitempty"`  // dimension ratio, HDPE only
}

// Geometry is the closed set of resolved pipe constructions handed to
// the thermal model. All radii are in feet.
type Geometry interface {
	// Validate checks radius ordering and positivity. A failed check
	// is a configuration error; the thermal model must not be invoked.
	Validate() error

	// SurfaceRadius is the outermost radius exposed to ambient air (ft).
	SurfaceRadius() float64
}

// SingleWall is a single-wall pipe or hose section.
type SingleWall struct {
	InnerRadius float64 // ft
	OuterRadius float64 // ft
	WallK       float64 // wall conductivity, Btu/hr-ft-°F
}

// Validate checks the single-wall geometry invariants.
func (g SingleWall) Validate() error {
	if g.InnerRadius <= 0 {
		return fmt.Errorf("invalid geometry: inner radius %.4f ft must be positive", g.InnerRadius)
	}
	if g.OuterRadius <= g.InnerRadius {
		return fmt.Errorf("invalid geometry: outer radius %.4f ft must exceed inner radius %.4f ft", g.OuterRadius, g.InnerRadius)
	}
	if g.WallK <= 0 {
		return fmt.Errorf("invalid geometry: wall conductivity %.4f must be positive", g.WallK)
	}
	return nil
}

// SurfaceRadius returns the radius of the wind-exposed surface (ft).
func (g SingleWall) SurfaceRadius() float64 {
	return g.OuterRadius
}

// DualWall is a hose-in-hose run. The gap between the inner hose's
// outer surface and the outer hose's inner surface is modeled as an
// equivalent cylindrical conductor of conductivity GapK, and the
// combined conductance is multiplied by Correction to cover eccentric
// (non-concentric) gap geometry.
type DualWall struct {
	InnerHoseInnerRadius float64 // ft
	InnerHoseOuterRadius float64 // ft
	OuterHoseInnerRadius float64 // ft
	OuterHoseOuterRadius float64 // ft
	WallK                float64 // hose wall conductivity, Btu/hr-ft-°F
	GapK                 float64 // effective air gap conductivity, Btu/hr-ft-°F
	Correction           float64 // multiplicative, typically 1.05
}

// Validate checks the dual-wall geometry invariants: every outer
// radius strictly exceeds its paired inner radius and the hoses do not
// overlap.
func (g DualWall) Validate() error {
	if g.InnerHoseInnerRadius <= 0 {
		return fmt.Errorf("invalid geometry: inner hose inner radius %.4f ft must be positive", g.InnerHoseInnerRadius)
	}
	if g.InnerHoseOuterRadius <= g.InnerHoseInnerRadius {
		return fmt.Errorf("invalid geometry: inner hose outer radius %.4f ft must exceed its inner radius %.4f ft",
			g.InnerHoseOuterRadius, g.InnerHoseInnerRadius)
	}
	if g.OuterHoseInnerRadius <= g.InnerHoseOuterRadius {
		return fmt.Errorf("invalid geometry: outer hose inner radius %.4f ft must clear the inner hose outer radius %.4f ft",
			g.OuterHoseInnerRadius, g.InnerHoseOuterRadius)
	}
	if g.OuterHoseOuterRadius <= g.OuterHoseInnerRadius {
		return fmt.Errorf("invalid geometry: outer hose outer radius %.4f ft must exceed its inner radius %.4f ft",
			g.OuterHoseOuterRadius, g.OuterHoseInnerRadius)
	}
	if g.WallK <= 0 || g.GapK <= 0 {
		return fmt.Errorf("invalid geometry: conductivities must be positive (wall %.4f, gap %.4f)", g.WallK, g.GapK)
	}
	if g.Correction <= 0 {
		return fmt.Errorf("invalid geometry: correction factor %.4f must be positive", g.Correction)
	}
	return nil
}

// SurfaceRadius returns the outer hose's outer radius (ft).
func (g DualWall) SurfaceRadius() float64 {
	return g.OuterHoseOuterRadius
}
