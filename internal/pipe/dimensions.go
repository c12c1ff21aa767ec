package pipe

// NominalSizes lists the supported nominal sizes (in), common lay-flat
// hose and HDPE transfer line sizes.
var NominalSizes = []float64{4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24}

// ipsOutsideDiameter maps nominal IPS pipe size to true outside
// diameter (in). Below 14 in the nominal size is not the actual OD.
var ipsOutsideDiameter = map[float64]float64{
	4:  4.500,
	6:  6.625,
	8:  8.625,
	10: 10.750,
	12: 12.750,
	14: 14.000,
	16: 16.000,
	18: 18.000,
	20: 20.000,
	22: 22.000,
	24: 24.000,
}

// CommonDRRatings lists typical HDPE dimension ratios, thickest wall
// first. Informational only; Resolve accepts any positive DR.
var CommonDRRatings = []float64{7, 9, 11, 13.5, 17, 21}

// OutsideDiameter returns the true outside diameter (in) for a nominal
// IPS pipe size.
func OutsideDiameter(nominal float64) (float64, bool) {
	od, ok := ipsOutsideDiameter[nominal]
	return od, ok
}

// nominalSupported reports whether a nominal size is in the supported set.
func nominalSupported(nominal float64) bool {
	for _, s := range NominalSizes {
		if s == nominal {
			return true
		}
	}
	return false
}
