package thermal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldcalc/pipeheat/internal/pipe"
	"github.com/fieldcalc/pipeheat/internal/props"
)

// The field scenario the model was calibrated against: 12 in lay-flat
// hose, 9.5 mi line, -10 °F ambient, 20 mph wind, 35 °F target outlet.
func referenceCase(t *testing.T) (pipe.Geometry, Conditions, FlowRange, FuelProfile) {
	t.Helper()
	g, err := pipe.Spec{Family: pipe.FlexibleHose, NominalSize: 12}.Resolve()
	require.NoError(t, err)

	cond := Conditions{
		AmbientTemp:      -10,
		WindSpeed:        20,
		LineLength:       9.5,
		SourceTemp:       60,
		TargetOutletTemp: 35,
	}
	flows := FlowRange{Min: 15, Max: 60, Step: 5}
	fuel := FuelProfile{EnergyContent: 138500, UnitCost: 3.50, Efficiency: 0.80}
	return g, cond, flows, fuel
}

func TestCalculateReferenceScenario(t *testing.T) {
	g, cond, flows, fuel := referenceCase(t)
	results, summary, err := Calculate(g, cond, flows, fuel)
	require.NoError(t, err)
	require.Len(t, results, 10)

	t.Run("conductance summary", func(t *testing.T) {
		assert.InDelta(t, 64700, summary.UAPerMile, 200)
		assert.InDelta(t, 614000, summary.UATotal, 2000)
		assert.InDelta(t, summary.UAPerMile*cond.LineLength, summary.UATotal, 1e-6)
	})

	t.Run("low flow needs a hot inlet", func(t *testing.T) {
		r := results[0]
		assert.InDelta(t, 15, r.Flow, 1e-12)
		assert.InDelta(t, 306, r.RequiredInletTemp, 1.0)
		assert.InDelta(t, 85.4e6, r.HeatLossRate, 0.3e6)
		assert.True(t, r.HeaterRequired)
	})

	t.Run("high flow needs far less", func(t *testing.T) {
		r := results[len(results)-1]
		assert.InDelta(t, 60, r.Flow, 1e-12)
		assert.InDelta(t, 63.3, r.RequiredInletTemp, 0.3)
	})

	t.Run("required inlet monotonically non-increasing in flow", func(t *testing.T) {
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i].RequiredInletTemp, results[i-1].RequiredInletTemp,
				"flow %.0f vs %.0f", results[i].Flow, results[i-1].Flow)
		}
	})

	t.Run("forward relation round trip", func(t *testing.T) {
		for _, r := range results {
			mDot := r.Flow * props.PoundsPerBarrel * props.MinutesPerHour
			outlet := cond.AmbientTemp +
				(r.RequiredInletTemp-cond.AmbientTemp)*math.Exp(-summary.UATotal/(mDot*props.WaterCp))
			assert.InDelta(t, cond.TargetOutletTemp, outlet, 1e-9, "flow %.0f", r.Flow)
		}
	})

	t.Run("heat loss never negative", func(t *testing.T) {
		for _, r := range results {
			assert.GreaterOrEqual(t, r.HeatLossRate, 0.0)
		}
	})

	t.Run("ascending flow order", func(t *testing.T) {
		for i := 1; i < len(results); i++ {
			assert.Greater(t, results[i].Flow, results[i-1].Flow)
		}
	})
}

func TestHeaterEconomics(t *testing.T) {
	g, cond, flows, fuel := referenceCase(t)

	t.Run("duty and cost exactly when source is short", func(t *testing.T) {
		results, _, err := Calculate(g, cond, flows, fuel)
		require.NoError(t, err)

		for _, r := range results {
			if cond.SourceTemp < r.RequiredInletTemp {
				assert.True(t, r.HeaterRequired, "flow %.0f", r.Flow)
				assert.Positive(t, r.HeaterDuty)
				assert.Positive(t, r.DailyFuelCost)
				// Heater closes the gap, so delivery hits target
				assert.InDelta(t, cond.TargetOutletTemp, r.OutletTemp, 1e-9)
			} else {
				assert.False(t, r.HeaterRequired, "flow %.0f", r.Flow)
				assert.Zero(t, r.HeaterDuty)
				assert.Zero(t, r.DailyFuelCost)
			}
		}
	})

	t.Run("duty covers source-to-required-inlet rise", func(t *testing.T) {
		results, _, err := Calculate(g, cond, flows, fuel)
		require.NoError(t, err)

		r := results[0] // flow 15, heater definitely required
		mDot := r.Flow * props.PoundsPerBarrel * props.MinutesPerHour
		wantDuty := mDot * props.WaterCp * (r.RequiredInletTemp - cond.SourceTemp)
		assert.InDelta(t, wantDuty, r.HeaterDuty, 1e-3)

		wantCost := r.HeaterDuty * 24 / fuel.Efficiency / fuel.EnergyContent * fuel.UnitCost
		assert.InDelta(t, wantCost, r.DailyFuelCost, 1e-9)
	})

	t.Run("hot source runs warmer than target with no heater", func(t *testing.T) {
		hot := cond
		hot.SourceTemp = 400
		results, summary, err := Calculate(g, hot, flows, fuel)
		require.NoError(t, err)

		for _, r := range results {
			if r.HeaterRequired {
				continue
			}
			assert.Zero(t, r.HeaterDuty)
			assert.Zero(t, r.DailyFuelCost)
			assert.GreaterOrEqual(t, r.OutletTemp, hot.TargetOutletTemp, "flow %.0f", r.Flow)

			// Actual outlet follows the forward decay from the source
			mDot := r.Flow * props.PoundsPerBarrel * props.MinutesPerHour
			want := hot.AmbientTemp +
				(hot.SourceTemp-hot.AmbientTemp)*math.Exp(-summary.UATotal/(mDot*props.WaterCp))
			assert.InDelta(t, want, r.OutletTemp, 1e-9)
		}
	})
}

func TestSweepSampleZeroFlow(t *testing.T) {
	// Zero mass flow collapses the exponent instead of dividing by
	// zero: required inlet degenerates to the target and nothing is
	// lost or heated. FlowRange validation keeps this off the CLI
	// path; the fallback guards direct library use.
	_, cond, _, fuel := referenceCase(t)
	r := sweepSample(0, 614000, cond, fuel)

	assert.InDelta(t, cond.TargetOutletTemp, r.RequiredInletTemp, 1e-12)
	assert.Zero(t, r.HeatLossRate)
	assert.Zero(t, r.HeaterDuty)
	assert.Zero(t, r.DailyFuelCost)
}

func TestFlowRangeSamples(t *testing.T) {
	t.Run("inclusive of max on a step boundary", func(t *testing.T) {
		flows := FlowRange{Min: 15, Max: 60, Step: 5}.Samples()
		require.Len(t, flows, 10)
		assert.InDelta(t, 15, flows[0], 1e-12)
		assert.InDelta(t, 60, flows[len(flows)-1], 1e-12)
	})

	t.Run("max off the step grid is not overshot", func(t *testing.T) {
		flows := FlowRange{Min: 15, Max: 60, Step: 7}.Samples()
		require.Len(t, flows, 7)
		assert.InDelta(t, 57, flows[len(flows)-1], 1e-12)
	})

	t.Run("single sample range", func(t *testing.T) {
		flows := FlowRange{Min: 20, Max: 20, Step: 5}.Samples()
		require.Len(t, flows, 1)
		assert.InDelta(t, 20, flows[0], 1e-12)
	})
}

func TestCalculateRefusesBadConfiguration(t *testing.T) {
	g, cond, flows, fuel := referenceCase(t)

	t.Run("no partial table on geometry error", func(t *testing.T) {
		bad := pipe.SingleWall{InnerRadius: 0.5, OuterRadius: 0.4, WallK: 0.116}
		results, _, err := Calculate(bad, cond, flows, fuel)
		require.Error(t, err)
		assert.Nil(t, results)
	})

	t.Run("non-positive line length", func(t *testing.T) {
		badCond := cond
		badCond.LineLength = 0
		_, _, err := Calculate(g, badCond, flows, fuel)
		assert.Error(t, err)
	})

	t.Run("non-finite condition", func(t *testing.T) {
		badCond := cond
		badCond.AmbientTemp = math.NaN()
		_, _, err := Calculate(g, badCond, flows, fuel)
		assert.Error(t, err)
	})

	t.Run("zero or inverted flow range", func(t *testing.T) {
		_, _, err := Calculate(g, cond, FlowRange{Min: 0, Max: 60, Step: 5}, fuel)
		assert.Error(t, err)

		_, _, err = Calculate(g, cond, FlowRange{Min: 60, Max: 15, Step: 5}, fuel)
		assert.Error(t, err)
	})

	t.Run("fuel profile bounds", func(t *testing.T) {
		badFuel := fuel
		badFuel.Efficiency = 0
		_, _, err := Calculate(g, cond, flows, badFuel)
		assert.Error(t, err)

		badFuel = fuel
		badFuel.Efficiency = 1.2
		_, _, err = Calculate(g, cond, flows, badFuel)
		assert.Error(t, err)

		badFuel = fuel
		badFuel.EnergyContent = 0
		_, _, err = Calculate(g, cond, flows, badFuel)
		assert.Error(t, err)
	})
}
