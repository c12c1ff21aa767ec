package thermal

import (
	"math"

	"github.com/fieldcalc/pipeheat/internal/pipe"
	"github.com/fieldcalc/pipeheat/internal/props"
)

// Result is one row of the flow sweep.
type Result struct {
	Flow              float64 // bbl/min
	RequiredInletTemp float64 // °F to hit the target outlet
	OutletTemp        float64 // °F actually delivered
	HeatLossRate      float64 // Btu/hr lost to ambient at the required inlet

	// Heater sizing when the available source is colder than the
	// required inlet temperature.
	HeaterRequired bool
	HeaterDuty     float64 // Btu/hr
	DailyFuelCost  float64 // currency per 24 hr day
}

// Calculate runs the full model: film coefficient and conductance once
// per geometry/condition set, then one steady-state solution per flow
// sample in ascending flow order. Pure; identical inputs always give
// identical outputs. A configuration error refuses the whole run; no
// partial table is produced.
func Calculate(g pipe.Geometry, cond Conditions, flows FlowRange, fuel FuelProfile) ([]Result, Summary, error) {
	if err := cond.Validate(); err != nil {
		return nil, Summary{}, err
	}
	if err := flows.Validate(); err != nil {
		return nil, Summary{}, err
	}
	if err := fuel.Validate(); err != nil {
		return nil, Summary{}, err
	}

	h := props.FilmCoefficient(cond.WindSpeed)
	perMile, err := ConductancePerMile(g, h)
	if err != nil {
		return nil, Summary{}, err
	}
	summary := Summary{
		UAPerMile: perMile,
		UATotal:   perMile * cond.LineLength,
	}

	samples := flows.Samples()
	results := make([]Result, 0, len(samples))
	for _, flow := range samples {
		results = append(results, sweepSample(flow, summary.UATotal, cond, fuel))
	}
	return results, summary, nil
}

// sweepSample solves one flow rate against the shared line conductance.
//
// The line is a single-pass exchanger with uniformly distributed
// conductance and a fixed ambient sink:
//
//	T_out = T_amb + (T_in − T_amb) · exp(−UA/(ṁ·cp))
//
// inverted here for the inlet temperature that lands on the target
// outlet. Zero mass flow collapses the exponent to zero, so the
// required inlet degenerates to the target itself (no flow, no loss).
func sweepSample(flow, uaTotal float64, cond Conditions, fuel FuelProfile) Result {
	mDot := flow * props.PoundsPerBarrel * props.MinutesPerHour // lb/hr
	exponent := 0.0
	if mDot > 0 {
		exponent = uaTotal / (mDot * props.WaterCp)
	}

	requiredInlet := cond.AmbientTemp + (cond.TargetOutletTemp-cond.AmbientTemp)*math.Exp(exponent)
	heatLoss := mDot * props.WaterCp * (requiredInlet - cond.TargetOutletTemp)

	r := Result{
		Flow:              flow,
		RequiredInletTemp: requiredInlet,
		HeatLossRate:      heatLoss,
	}

	if cond.SourceTemp < requiredInlet {
		// Heater supplies the shortfall; delivery hits the target.
		r.HeaterRequired = true
		r.HeaterDuty = mDot * props.WaterCp * (requiredInlet - cond.SourceTemp)
		r.OutletTemp = cond.TargetOutletTemp
		fuelPerDay := r.HeaterDuty * props.HoursPerDay / fuel.Efficiency / fuel.EnergyContent
		r.DailyFuelCost = fuelPerDay * fuel.UnitCost
	} else {
		// Source already hot enough; delivery runs warmer than target.
		r.OutletTemp = cond.AmbientTemp + (cond.SourceTemp-cond.AmbientTemp)*math.Exp(-exponent)
	}
	return r
}
