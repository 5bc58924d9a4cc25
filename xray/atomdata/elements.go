package atomdata

import "strings"

// Element names a chemical element by symbol and atomic number.
type Element struct {
	Symbol string
	Z      int
}

func (e Element) String() string { return e.Symbol }

var (
	rhodium   = Element{"Rh", 45}
	chromium  = Element{"Cr", 24}
	tungsten  = Element{"W", 74}
	beryllium = Element{"Be", 4}
)

var anodeElements = []Element{rhodium, chromium, tungsten}

var windowElements = []Element{beryllium}

var filterElements = []Element{
	{"Al", 13},
	{"Cu", 29},
	{"Zn", 30},
	{"Pb", 82},
}

// AnodeElements returns the supported anode materials, default first.
func AnodeElements() []Element { return append([]Element(nil), anodeElements...) }

// WindowElements returns the supported tube window materials, default first.
func WindowElements() []Element { return append([]Element(nil), windowElements...) }

// FilterElements returns the elements offered as primary filter components.
func FilterElements() []Element { return append([]Element(nil), filterElements...) }

// AnodeZ returns the atomic numbers of the supported anodes.
func AnodeZ() []int {
	out := make([]int, len(anodeElements))
	for i, e := range anodeElements {
		out[i] = e.Z
	}
	return out
}

// Lookup finds a registered element by symbol, ignoring case.
func Lookup(symbol string) (Element, bool) {
	for _, list := range [][]Element{anodeElements, windowElements, filterElements} {
		for _, e := range list {
			if strings.EqualFold(e.Symbol, symbol) {
				return e, true
			}
		}
	}
	return Element{}, false
}

// IsAnode reports whether z is one of the supported anode elements.
func IsAnode(z int) bool {
	for _, e := range anodeElements {
		if e.Z == z {
			return true
		}
	}
	return false
}
