package props

// Fuel describes a heater fuel and its energy content per purchase unit.
type Fuel struct {
	ID            string
	Name          string
	Unit          string  // purchase unit, e.g. gal, Mcf
	EnergyContent float64 // Btu per unit
}

// Fuels lists the fuels supported for line heater sizing.
// Energy contents are standard higher heating values.
var Fuels = []Fuel{
	{
		ID:            "diesel",
		Name:          "No. 2 Diesel",
		Unit:          "gal",
		EnergyContent: 138500,
	},
	{
		ID:            "propane",
		Name:          "Propane",
		Unit:          "gal",
		EnergyContent: 91500,
	},
	{
		ID:            "natgas",
		Name:          "Natural Gas",
		Unit:          "Mcf",
		EnergyContent: 1037000,
	},
}

// FuelByID looks up a fuel by its identifier.
func FuelByID(id string) (Fuel, bool) {
	for _, f := range Fuels {
		if f.ID == id {
			return f, true
		}
	}
	return Fuel{}, false
}
