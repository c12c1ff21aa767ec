package thermal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldcalc/pipeheat/internal/pipe"
	"github.com/fieldcalc/pipeheat/internal/props"
)

// 12 in lay-flat hose, the reference geometry from the field scenario:
// wall 0.15 in, k 0.116 Btu/hr-ft-°F.
func referenceHose(t *testing.T) pipe.Geometry {
	t.Helper()
	g, err := pipe.Spec{Family: pipe.FlexibleHose, NominalSize: 12}.Resolve()
	require.NoError(t, err)
	return g
}

func TestConductanceSingleWall(t *testing.T) {
	t.Run("reference scenario per mile", func(t *testing.T) {
		// -10 °F ambient does not enter UA; 20 mph wind → h = 6.5
		ua, err := ConductancePerMile(referenceHose(t), props.FilmCoefficient(20))
		require.NoError(t, err)
		assert.InDelta(t, 64700, ua, 200)
	})

	t.Run("stronger wind raises conductance", func(t *testing.T) {
		g := referenceHose(t)
		prev := 0.0
		for wind := 0.0; wind <= 40; wind += 10 {
			ua, err := ConductancePerMile(g, props.FilmCoefficient(wind))
			require.NoError(t, err)
			assert.Greater(t, ua, prev)
			prev = ua
		}
	})

	t.Run("invalid film coefficient refused", func(t *testing.T) {
		_, err := ConductancePerMile(referenceHose(t), 0)
		assert.Error(t, err)
	})

	t.Run("invalid geometry refused", func(t *testing.T) {
		g := pipe.SingleWall{InnerRadius: 0.5, OuterRadius: 0.45, WallK: 0.116}
		_, err := ConductancePerMile(g, 6.5)
		assert.Error(t, err)
	})
}

func TestConductanceDualWall(t *testing.T) {
	resolve := func(t *testing.T) pipe.DualWall {
		t.Helper()
		g, err := pipe.Spec{Family: pipe.DualHose, NominalSize: 12}.Resolve()
		require.NoError(t, err)
		return g.(pipe.DualWall)
	}

	t.Run("correction factor scales the uncorrected reduction", func(t *testing.T) {
		corrected := resolve(t)
		uncorrected := resolve(t)
		uncorrected.Correction = 1.0

		uaCorrected, err := ConductancePerMile(corrected, 6.5)
		require.NoError(t, err)
		uaBase, err := ConductancePerMile(uncorrected, 6.5)
		require.NoError(t, err)

		assert.InDelta(t, props.DualWallCorrection, uaCorrected/uaBase, 1e-9)
	})

	t.Run("air gap dominates the resistance chain", func(t *testing.T) {
		dual, err := pipe.Spec{Family: pipe.DualHose, NominalSize: 12}.Resolve()
		require.NoError(t, err)
		single := referenceHose(t)

		uaDual, err := ConductancePerMile(dual, 6.5)
		require.NoError(t, err)
		uaSingle, err := ConductancePerMile(single, 6.5)
		require.NoError(t, err)

		// The insulating annulus should cut conductance well below the
		// bare hose despite the larger outside surface.
		assert.Less(t, uaDual, uaSingle/2)
	})

	t.Run("wider gap conductivity raises conductance", func(t *testing.T) {
		base := resolve(t)
		warm := resolve(t)
		warm.GapK = base.GapK * 2

		uaBase, err := ConductancePerMile(base, 6.5)
		require.NoError(t, err)
		uaWarm, err := ConductancePerMile(warm, 6.5)
		require.NoError(t, err)
		assert.Greater(t, uaWarm, uaBase)
	})
}
