package atomdata

// lerp interpolates between tabulated neighbour elements.
func lerp(lo, hi, frac float64) float64 {
	return lo + frac*(hi-lo)
}

// Radiative transition rates normalised by the total radiative rate of the
// initial vacancy. Chromium and rhodium rates are interpolated between the
// neighbouring tabulated elements.
var transitionProbabilities = map[Line]map[int]float64{
	KAlpha12: {
		24: (0.0563 + 0.1107 + (2.0/3.0)*(0.1003-0.0563+0.1967-0.1107)) / lerp(0.1860, 0.332, 2.0/3.0),
		45: (0.970 + 1.848 + (3.0/5.0)*(1.571-0.970+2.961-1.848)) / lerp(3.33, 5.42, 3.0/5.0),
		74: (10.88 + 18.88) / 37.4,
	},
	KBeta1: {
		24: lerp(0.0126, 0.0235, 2.0/3.0) / lerp(0.1860, 0.332, 2.0/3.0),
		45: lerp(0.2930, 0.5017, 3.0/5.0) / lerp(3.33, 5.42, 3.0/5.0),
		74: 3.92 / 37.4,
	},
	LAlpha12: {
		45: (0.0058 + 0.0513 + (3.0/5.0)*(0.0107-0.0058+0.0946-0.0513)) / lerp(0.0616, 0.1196, 3.0/5.0),
		74: (0.0102 + 0.898) / 1.244,
	},
	// M5-N6,7 rates are not tabulated.
	MAlpha12: {},
	LAlpha1: {
		45: lerp(0.0513, 0.0946, 3.0/5.0) / lerp(0.0616, 0.1196, 3.0/5.0),
		74: 0.898 / 1.244,
	},
	LAlpha2: {
		45: lerp(0.0058, 0.0107, 3.0/5.0) / lerp(0.0616, 0.1196, 3.0/5.0),
		74: 0.102 / 1.244,
	},
	LBeta2: {
		45: (0.00020 + 0.00173 + (3.0/5.0)*(0.00098-0.00020+0.0086-0.00173)) / lerp(0.0616, 0.1196, 3.0/5.0),
		74: (0.0178 + 0.159) / 1.244,
	},
	LIota: {
		45: lerp(0.00217, 0.0039, 3.0/5.0) / lerp(0.0616, 0.1196, 3.0/5.0),
		74: 0.047 / 1.244,
	},
	LBeta1: {
		45: lerp(0.0595, 0.1109, 3.0/5.0) / lerp(0.0638, 0.1253, 3.0/5.0),
		74: 1.138 / 1.397,
	},
	LBeta3: {
		45: lerp(0.0222, 0.0396, 3.0/5.0) / lerp(0.0412, 0.0761, 3.0/5.0),
		74: 0.330 / 0.804,
	},
	LBeta4: {
		45: lerp(0.0129, 0.0238, 3.0/5.0) / lerp(0.0412, 0.0761, 3.0/5.0),
		74: 0.264 / 0.804,
	},
	LEta: {
		45: lerp(0.00188, 0.0033, 3.0/5.0) / lerp(0.0638, 0.1253, 3.0/5.0),
		74: 0.031 / 1.397,
	},
	LGamma1: {
		45: lerp(0.0020, 0.0104, 3.0/5.0) / lerp(0.0638, 0.1253, 3.0/5.0),
		74: 0.212 / 1.397,
	},
	LGamma3: {
		45: lerp(0.00349, 0.0071, 3.0/5.0) / lerp(0.0412, 0.0761, 3.0/5.0),
		74: 0.086 / 0.804,
	},
	LGamma2: {
		45: lerp(0.00201, 0.0043, 3.0/5.0) / lerp(0.0412, 0.0761, 3.0/5.0),
		74: 0.065 / 0.804,
	},
	LBeta5: {74: 0.0047 / 1.244},
	LBeta6: {
		45: lerp(0.00037, 0.00075, 3.0/5.0) / lerp(0.0616, 0.1196, 3.0/5.0),
		74: 0.0112 / 1.244,
	},
}

// TransitionProbability returns the probability that a vacancy in the
// parent shell of l decays through l, for element z.
func TransitionProbability(l Line, z int) (float64, bool) {
	p, ok := transitionProbabilities[l][z]
	return p, ok
}
