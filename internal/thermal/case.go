package thermal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fieldcalc/pipeheat/internal/pipe"
	"github.com/fieldcalc/pipeheat/internal/props"
)

// Case is one complete calculation configuration as supplied by the
// presentation layer, loadable from a JSON case file.
type Case struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Pipe       pipe.Spec  `json:"pipe"`
	Conditions Conditions `json:"conditions"`
	Flows      FlowRange  `json:"flows"`
	Fuel       FuelCase   `json:"fuel"`
}

// FuelCase selects a fuel by ID with its local price and the heater
// efficiency as a percentage, the way field inputs are quoted.
type FuelCase struct {
	Type              string  `json:"type"`               // props fuel ID
	UnitPrice         float64 `json:"unit_price"`         // currency per unit
	EfficiencyPercent float64 `json:"efficiency_percent"` // e.g. 80
}

// Profile resolves the fuel selection against the fuel table.
func (f FuelCase) Profile() (FuelProfile, error) {
	fuel, ok := props.FuelByID(f.Type)
	if !ok {
		return FuelProfile{}, fmt.Errorf("unknown fuel type %q", f.Type)
	}
	return FuelProfile{
		EnergyContent: fuel.EnergyContent,
		UnitCost:      f.UnitPrice,
		Efficiency:    f.EfficiencyPercent / 100,
	}, nil
}

// LoadCaseFromFile loads a calculation case from a JSON file.
func LoadCaseFromFile(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Run resolves the case geometry and executes the calculation.
func (c *Case) Run() ([]Result, Summary, error) {
	geom, err := c.Pipe.Resolve()
	if err != nil {
		return nil, Summary{}, err
	}
	fuel, err := c.Fuel.Profile()
	if err != nil {
		return nil, Summary{}, err
	}
	return Calculate(geom, c.Conditions, c.Flows, fuel)
}
