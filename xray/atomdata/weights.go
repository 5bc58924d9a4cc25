package atomdata

// Relative atomic masses for Z = 1..100 from the NIST "Atomic Weights and
// Isotopic Compositions" database (Coursey, Schwab, Tsai, Dragoset). Each
// entry is the mass of the first isotope listed for the element, not the
// abundance-weighted standard atomic weight.
var atomicWeights = [...]float64{
	1.00782503223, 3.0160293201, 6.0151228874, 9.012183065, 10.01293695,
	12.0000000, 14.00307400443, 15.99491461957, 18.99840316273, 19.9924401762,
	22.9897692820, 23.985041697, 26.98153853, 27.97692653465, 30.97376199842,
	31.9720711744, 34.968852682, 35.967545105, 38.9637064864, 39.962590863,
	44.95590828, 45.95262772, 49.94715601, 49.94604183, 54.93804391,
	53.93960899, 58.93319429, 57.93534241, 62.92959772, 63.92914201,
	68.9255735, 69.92424875, 74.92159457, 73.922475934, 78.9183376,
	77.92036494, 84.9117897379, 83.9134191, 88.9058403, 89.9046977,
	92.9063730, 91.90680796, 96.9063667, 95.90759025, 102.9054980,
	101.9056022, 106.9050916, 105.9064599, 112.90406184, 111.90482387,
	120.9038120, 119.9040593, 126.9044719, 123.9058920, 132.9054519610,
	129.9063207, 137.9071149, 135.90712921, 140.9076576, 141.9077290,
	144.9127559, 143.9120065, 150.9198578, 151.9197995, 158.9253547,
	155.9242847, 164.9303288, 161.9287884, 168.9342179, 167.9338896,
	174.9407752, 173.9400461, 179.9474648, 179.9467108, 184.9529545,
	183.9524885, 190.9605893, 189.9599297, 196.96656879, 195.9658326,
	202.9723446, 203.9730440, 208.9803991, 208.9824308, 209.9871479,
	210.9906011, 223.0197360, 223.0185023, 227.0277523, 230.0331341,
	231.0358842, 233.0396355, 236.046570, 238.0495601, 241.0568293,
	243.0613893, 247.0703073, 249.0748539, 252.082980, 257.0951061,
}

// MaxZ is the highest atomic number with a tabulated weight.
const MaxZ = len(atomicWeights)

// AtomicWeight returns the relative atomic mass of element z.
func AtomicWeight(z int) (float64, bool) {
	if z < 1 || z > MaxZ {
		return 0, false
	}
	return atomicWeights[z-1], true
}
