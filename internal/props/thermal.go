package props

// Physical and empirical constants for the pipeline heat loss model.
// Field units throughout: temperatures in °F, lengths in miles/feet/
// inches as noted, heat rates in Btu/hr, flow in bbl/min.

const (
	// Specific heat of water
	WaterCp = 1.0 // Btu/lb-°F

	// Mass of one barrel of water (42 gal/bbl at 8.34 lb/gal)
	PoundsPerBarrel = 42 * 8.34 // lb/bbl

	FeetPerMile    = 5280.0
	MinutesPerHour = 60.0
	HoursPerDay    = 24.0

	// Outside air film coefficients for an exposed cylinder,
	// h = FilmStillAir + FilmWindSlope * wind (mph).
	// Simple linear fit; no Reynolds-number correlation.
	FilmStillAir  = 1.5  // Btu/hr-ft²-°F
	FilmWindSlope = 0.25 // Btu/hr-ft²-°F per mph

	// Wall conductivities
	TPUConductivity  = 0.116 // Btu/hr-ft-°F, lay-flat TPU hose
	HDPEConductivity = 0.26  // Btu/hr-ft-°F

	// Wall thickness of lay-flat flexible hose
	HoseWallThickness = 0.15 // in

	// Effective conductivity of the annular air gap in a dual-wall
	// (hose-in-hose) run. Empirical, close to still air; override on
	// the DualWall geometry if field data says otherwise.
	AirGapConductivity = 0.015 // Btu/hr-ft-°F

	// Multiplier on dual-wall conductance covering eccentric gap
	// geometry the concentric-annulus model misses. Empirical.
	DualWallCorrection = 1.05
)

// FilmCoefficient returns the outside air film coefficient for a given
// wind speed in mph. Monotonically increasing in wind speed.
func FilmCoefficient(windMPH float64) float64 {
	return FilmStillAir + FilmWindSlope*windMPH
}
