package atomdata

// Line energies in keV. Composite lines are the mean of their components.
// The tungsten M-alpha1,2 value is not a NIST value.
var lineEnergies = map[Line]map[int]float64{
	KAlpha12: {
		24: (5.406 + 5.415) / 2,
		45: (20.074 + 20.216) / 2,
		74: (57.982 + 59.319) / 2,
	},
	KBeta1: {24: 5.947, 45: 22.274, 74: 67.245},
	LAlpha12: {
		45: (2.693 + 2.697) / 2,
		74: (8.335 + 8.398) / 2,
	},
	MAlpha12: {74: 1.774},
	LAlpha1:  {45: 2.697, 74: 8.398},
	LAlpha2:  {45: 2.692, 74: 8.335},
	LBeta2:   {45: 3.001, 74: 9.964},
	LIota:    {45: 2.377, 74: 7.388},
	LBeta1:   {45: 2.834, 74: 9.673},
	LBeta3:   {45: 2.916, 74: 9.819},
	LBeta4:   {45: 2.891, 74: 9.525},
	LEta:     {45: 2.519, 74: 8.724},
	LGamma1:  {45: 3.144, 74: 11.286},
	LGamma3:  {45: 3.364, 74: 11.680},
	LGamma2:  {45: 3.364, 74: 11.611},
	LBeta5:   {},
	LBeta6:   {45: 2.923, 74: 9.608},
}

// Energy returns the energy of line l for element z in keV.
func Energy(l Line, z int) (float64, bool) {
	e, ok := lineEnergies[l][z]
	return e, ok
}
