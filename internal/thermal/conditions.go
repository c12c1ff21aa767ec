package thermal

import (
	"fmt"
	"math"
)

// Conditions holds the ambient and line conditions for a calculation.
type Conditions struct {
	AmbientTemp      float64 `json:"ambient_f"`       // °F
	WindSpeed        float64 `json:"wind_mph"`        // mph
	LineLength       float64 `json:"length_miles"`    // mi
	SourceTemp       float64 `json:"source_f"`        // °F, available fluid source
	TargetOutletTemp float64 `json:"target_outlet_f"` // °F, required at delivery
}

// Validate checks the conditions for a physically meaningful run.
func (c Conditions) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"ambient temperature", c.AmbientTemp},
		{"wind speed", c.WindSpeed},
		{"line length", c.LineLength},
		{"source temperature", c.SourceTemp},
		{"target outlet temperature", c.TargetOutletTemp},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s must be a finite number", v.name)
		}
	}
	if c.LineLength <= 0 {
		return fmt.Errorf("line length %.2f mi must be positive", c.LineLength)
	}
	if c.WindSpeed < 0 {
		return fmt.Errorf("wind speed %.1f mph must not be negative", c.WindSpeed)
	}
	return nil
}

// FlowRange defines an inclusive arithmetic sequence of volumetric
// flow rates (bbl/min) to sweep.
type FlowRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Validate checks the flow range bounds.
func (r FlowRange) Validate() error {
	if r.Min <= 0 || r.Max <= 0 || r.Step <= 0 {
		return fmt.Errorf("flow range values must be positive (min %.2f, max %.2f, step %.2f)", r.Min, r.Max, r.Step)
	}
	if r.Max < r.Min {
		return fmt.Errorf("flow range max %.2f must not be below min %.2f", r.Max, r.Min)
	}
	return nil
}

// Samples expands the range into its ordered, inclusive sequence of
// flow rates. Max is included when it lands on a step boundary.
func (r FlowRange) Samples() []float64 {
	n := int((r.Max-r.Min)/r.Step+1e-9) + 1
	flows := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		flows = append(flows, r.Min+float64(i)*r.Step)
	}
	return flows
}

// FuelProfile describes the heater fuel economics for a run.
type FuelProfile struct {
	EnergyContent float64 // Btu per purchase unit
	UnitCost      float64 // currency per purchase unit
	Efficiency    float64 // heater efficiency fraction, (0, 1]
}

// Validate checks the fuel profile bounds.
func (f FuelProfile) Validate() error {
	if f.EnergyContent <= 0 {
		return fmt.Errorf("fuel energy content %.0f Btu/unit must be positive", f.EnergyContent)
	}
	if f.UnitCost < 0 {
		return fmt.Errorf("fuel unit cost %.2f must not be negative", f.UnitCost)
	}
	if f.Efficiency <= 0 || f.Efficiency > 1 {
		return fmt.Errorf("heater efficiency %.2f must be within (0, 1]", f.Efficiency)
	}
	return nil
}
