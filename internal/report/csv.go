package report

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/fieldcalc/pipeheat/internal/thermal"
)

// csvRow maps one sweep result onto CSV columns.
type csvRow struct {
	Flow              float64 `csv:"flow_bbl_min"`
	RequiredInletTemp float64 `csv:"required_inlet_f"`
	OutletTemp        float64 `csv:"outlet_f"`
	HeatLossRate      float64 `csv:"heat_loss_btu_hr"`
	HeaterRequired    bool    `csv:"heater_required"`
	HeaterDuty        float64 `csv:"heater_duty_btu_hr"`
	DailyFuelCost     float64 `csv:"fuel_cost_per_day"`
}

// WriteCSV exports the sweep result table to a CSV file.
func WriteCSV(results []thermal.Result, filename string) error {
	rows := make([]csvRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, csvRow{
			Flow:              r.Flow,
			RequiredInletTemp: r.RequiredInletTemp,
			OutletTemp:        r.OutletTemp,
			HeatLossRate:      r.HeatLossRate,
			HeaterRequired:    r.HeaterRequired,
			HeaterDuty:        r.HeaterDuty,
			DailyFuelCost:     r.DailyFuelCost,
		})
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}
