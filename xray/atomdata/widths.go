package atomdata

// Natural line widths in eV, built as the sum of the initial and final
// level widths. Level widths not tabulated for an element are linearly
// interpolated between neighbours, which is where the fractions come from.
var lineWidths = map[Line]map[int]float64{
	KAlpha12: {
		24: 1.02 + (0.76+0.32)/2,
		45: 1.62 + (15.0/17.0)*(6.8-1.62) + (2.13+1.96)/2,
		74: 37.9 + (49.5-37.9)/5 + (4.82+4.81)/2,
	},
	KBeta1: {
		24: 1.02 + 1.2,
		45: 1.62 + (15.0/17.0)*(6.8-1.62) + 2.25,
		74: 37.9 + (49.5-37.9)/5 + 6.4,
	},
	LAlpha12: {
		45: 1.96 + (0.21+0.21)/2,
		74: 4.81 + (1.7+1.7)/2,
	},
	MAlpha12: {74: 1.7 + (0.1+0.06)/2},
	LAlpha1:  {45: 1.96 + 0.21, 74: 4.81 + 1.7},
	LAlpha2:  {45: 1.96 + 0.61, 74: 4.81 + 1.7},
	LBeta2:   {45: 1.96 + 0.05, 74: 4.81 + 3.8},
	LIota: {
		45: 1.96 + 7.2 + (8.0-7.2)/2,
		74: 4.81 + 13.8 + (5.0/8.0)*(14.8-13.8),
	},
	LBeta1: {45: 2.13 + 0.61, 74: 4.82 + 1.7},
	LBeta3: {45: 4.0 + 2.25, 74: 6.3 + 6.4},
	LBeta4: {45: 4.0 + 2.25, 74: 6.3 + 8.5},
	LEta: {
		45: 2.13 + 7.2 + (8.0-7.2)/2,
		74: 4.82 + 13.8 + (5.0/8.0)*(14.8-13.8),
	},
	LGamma1: {45: 2.13 + 0.05, 74: 4.82 + 4.1},
	LGamma3: {45: 4.0 + 3.8, 74: 6.3 + 4.2},
	LGamma2: {74: 6.3 + 5.8},
	// O-level widths are not tabulated; only the L3 width is counted.
	LBeta5: {74: 4.81},
	LBeta6: {45: 1.96 + 4.2, 74: 4.81 + 7.3},
}

// Width returns the natural width of line l for element z in eV.
func Width(l Line, z int) (float64, bool) {
	w, ok := lineWidths[l][z]
	return w, ok
}
