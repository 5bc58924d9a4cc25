package atomdata

// Edge is an absorption-edge type.
type Edge int

const (
	EdgeK Edge = iota
	EdgeL1
	EdgeL2
	EdgeL3
	EdgeM5
)

func (e Edge) String() string {
	switch e {
	case EdgeK:
		return "K"
	case EdgeL1:
		return "L1"
	case EdgeL2:
		return "L2"
	case EdgeL3:
		return "L3"
	case EdgeM5:
		return "M5"
	default:
		return "unknown"
	}
}

// Several lines share one parent edge: the vacancy that must be created
// before the line can be emitted.
var lineEdges = [lineCount]Edge{
	KAlpha12: EdgeK,
	KBeta1:   EdgeK,
	LAlpha12: EdgeL3,
	LAlpha1:  EdgeL3,
	LAlpha2:  EdgeL3,
	LBeta5:   EdgeL3,
	LBeta6:   EdgeL3,
	LIota:    EdgeL3,
	LBeta2:   EdgeL3,
	LBeta3:   EdgeL1,
	LBeta4:   EdgeL1,
	LGamma2:  EdgeL1,
	LGamma3:  EdgeL1,
	LBeta1:   EdgeL2,
	LGamma1:  EdgeL2,
	LEta:     EdgeL2,
	MAlpha12: EdgeM5,
}

// EdgeOf returns the parent absorption edge of l.
func EdgeOf(l Line) (Edge, bool) {
	if !l.Valid() {
		return 0, false
	}
	return lineEdges[l], true
}
