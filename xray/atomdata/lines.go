package atomdata

// Line identifies a characteristic x-ray transition.
type Line int

const (
	KAlpha12 Line = iota // mean of K-L2 and K-L3
	KBeta1               // K-M3
	LAlpha12             // mean of L3-M4 and L3-M5
	LBeta1               // L2-M4
	MAlpha12             // mean of M5-N6 and M5-N7
	LAlpha1              // L3-M5
	LAlpha2              // L3-M4
	LBeta2               // L3-N5
	LIota                // L3-M1
	LBeta3               // L1-M3
	LBeta4               // L1-M2
	LEta                 // L2-M1
	LGamma1              // L2-N4
	LGamma3              // L1-N3
	LGamma2              // L1-N2
	LBeta5               // L3-O4,5
	LBeta6               // L3-N1

	lineCount
)

// Family groups lines by the shell holding the initial vacancy.
type Family int

const (
	FamilyK Family = iota
	FamilyL
	FamilyM
)

var lineNames = [lineCount]string{
	KAlpha12: "K-alpha1,2",
	KBeta1:   "K-beta1",
	LAlpha12: "L-alpha1,2",
	LBeta1:   "L-beta1",
	MAlpha12: "M-alpha1,2",
	LAlpha1:  "L-alpha1",
	LAlpha2:  "L-alpha2",
	LBeta2:   "L-beta2",
	LIota:    "L-l",
	LBeta3:   "L-beta3",
	LBeta4:   "L-beta4",
	LEta:     "L-eta",
	LGamma1:  "L-gamma1",
	LGamma3:  "L-gamma3",
	LGamma2:  "L-gamma2",
	LBeta5:   "L-beta5",
	LBeta6:   "L-beta6",
}

var lineFamilies = [lineCount]Family{
	KAlpha12: FamilyK,
	KBeta1:   FamilyK,
	LAlpha12: FamilyL,
	LBeta1:   FamilyL,
	MAlpha12: FamilyM,
	LAlpha1:  FamilyL,
	LAlpha2:  FamilyL,
	LBeta2:   FamilyL,
	LIota:    FamilyL,
	LBeta3:   FamilyL,
	LBeta4:   FamilyL,
	LEta:     FamilyL,
	LGamma1:  FamilyL,
	LGamma3:  FamilyL,
	LGamma2:  FamilyL,
	LBeta5:   FamilyL,
	LBeta6:   FamilyL,
}

// Lines returns every known line in declaration order.
func Lines() []Line {
	out := make([]Line, 0, lineCount)
	for l := Line(0); l < lineCount; l++ {
		out = append(out, l)
	}
	return out
}

// Valid reports whether l is one of the declared lines.
func (l Line) Valid() bool {
	return l >= 0 && l < lineCount
}

func (l Line) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return lineNames[l]
}

// Family returns the line family. Invalid lines report FamilyK.
func (l Line) Family() Family {
	if !l.Valid() {
		return FamilyK
	}
	return lineFamilies[l]
}

func (f Family) String() string {
	switch f {
	case FamilyK:
		return "K"
	case FamilyL:
		return "L"
	case FamilyM:
		return "M"
	default:
		return "unknown"
	}
}

// LinesInFamily returns the lines of family f in declaration order.
func LinesInFamily(f Family) []Line {
	var out []Line
	for l := Line(0); l < lineCount; l++ {
		if lineFamilies[l] == f {
			out = append(out, l)
		}
	}
	return out
}
