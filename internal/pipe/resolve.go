package pipe

import (
	"fmt"

	"github.com/fieldcalc/pipeheat/internal/props"
)

// Increment between a dual-wall run's inner and outer hose nominal
// sizes (in). A 12 in carrier hose rides inside a 16 in jacket hose.
const dualHoseSizeStep = 4

// Resolve turns a pipe selection into concrete geometry: radii in
// feet, wall thickness and conductivity per family. It fails with a
// configuration error when the selection produces a non-physical
// section, in which case no thermal calculation may proceed.
func (s Spec) Resolve() (Geometry, error) {
	if !nominalSupported(s.NominalSize) {
		return nil, fmt.Errorf("unsupported nominal size %.0f in (supported: 4-24 in 2 in steps)", s.NominalSize)
	}

	switch s.Family {
	case FlexibleHose:
		// Lay-flat hose: nominal size is the true inside diameter.
		ri := s.NominalSize / 24 // in → ft radius
		return SingleWall{
			InnerRadius: ri,
			OuterRadius: ri + props.HoseWallThickness/12,
			WallK:       props.TPUConductivity,
		}, nil

	case HDPEPipe:
		if s.DR <= 0 {
			return nil, fmt.Errorf("HDPE pipe requires a positive dimension ratio, got %.2f", s.DR)
		}
		od, ok := OutsideDiameter(s.NominalSize)
		if !ok {
			return nil, fmt.Errorf("no outside diameter listed for nominal size %.0f in", s.NominalSize)
		}
		wall := od / s.DR
		id := od - 2*wall
		if id <= 0 {
			return nil, fmt.Errorf("computed inside diameter %.3f in is not positive (OD %.3f in, DR %.2f)", id, od, s.DR)
		}
		return SingleWall{
			InnerRadius: id / 24,
			OuterRadius: od / 24,
			WallK:       props.HDPEConductivity,
		}, nil

	case DualHose:
		inner := s.NominalSize
		outer := inner + dualHoseSizeStep
		return DualWall{
			InnerHoseInnerRadius: inner / 24,
			InnerHoseOuterRadius: inner/24 + props.HoseWallThickness/12,
			OuterHoseInnerRadius: outer / 24,
			OuterHoseOuterRadius: outer/24 + props.HoseWallThickness/12,
			WallK:                props.TPUConductivity,
			GapK:                 props.AirGapConductivity,
			Correction:           props.DualWallCorrection,
		}, nil

	default:
		return nil, fmt.Errorf("unknown pipe family %q (supported: flex, hdpe, dual)", s.Family)
	}
}
