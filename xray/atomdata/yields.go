package atomdata

// Fluorescence yields after Hubbell et al., J. Phys. Chem. Ref. Data 23,
// 339 (1994). The L entries are averaged over L1, L2 and L3.
var (
	kYields = map[int]float64{24: 0.286, 45: 0.792, 74: 0.982}
	lYields = map[int]float64{45: 0.0499, 74: 0.290}
	mYields = map[int]float64{74: 0.0205}
)

// Yield returns the fluorescence yield of edge e for element z.
func Yield(z int, e Edge) (float64, bool) {
	var tbl map[int]float64
	switch e {
	case EdgeK:
		tbl = kYields
	case EdgeL1, EdgeL2, EdgeL3:
		tbl = lYields
	case EdgeM5:
		tbl = mYields
	default:
		return 0, false
	}
	y, ok := tbl[z]
	return y, ok
}
