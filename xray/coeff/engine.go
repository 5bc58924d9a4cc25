package coeff

import "github.com/cwbudde/algo-xrf/xray/atomdata"

// Coefficients holds the absorption data of one element at one wavelength.
type Coefficients struct {
	// Tau is the photoelectric mass absorption coefficient in cm²/g.
	Tau float64
	// CrossSection is the total mass attenuation coefficient in cm²/g.
	CrossSection float64
	// Attenuation is the linear attenuation coefficient in 1/cm.
	Attenuation float64
}

// Shell indexes the edge and yield arrays of a Summary.
type Shell int

const (
	ShellK Shell = iota
	ShellL1
	ShellL2
	ShellL3

	shellCount
)

// Summary holds the element data that does not depend on wavelength.
// An edge energy of zero means the element has no such edge.
type Summary struct {
	// Edges are the K, L1, L2 and L3 edge energies in keV.
	Edges [shellCount]float64
	// Yields are the K, L1, L2 and L3 fluorescence yields.
	Yields [shellCount]float64
}

// Engine computes absorption coefficients. Implementations must be safe for
// concurrent use.
type Engine interface {
	// Coefficients returns the absorption data of element z at wavelength
	// (Å). It fails with ErrWithinEdge or ErrNoData.
	Coefficients(z int, wavelength float64) (Coefficients, error)
	// Summary returns edge energies and yields of element z. It fails with
	// ErrNoData.
	Summary(z int) (Summary, error)
}

// ShellOf maps an edge type onto a Summary index. M edges have no index.
func ShellOf(e atomdata.Edge) (Shell, bool) {
	switch e {
	case atomdata.EdgeK:
		return ShellK, true
	case atomdata.EdgeL1:
		return ShellL1, true
	case atomdata.EdgeL2:
		return ShellL2, true
	case atomdata.EdgeL3:
		return ShellL3, true
	default:
		return 0, false
	}
}
