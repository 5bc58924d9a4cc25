// Package kramers is a small, approximate coeff.Engine for the elements an
// x-ray tube model touches: the anodes, the window and the filter materials.
//
// Photo-absorption follows the Bragg–Pierce law τ = C·Z⁴·λ³/A, divided by
// the empirical jump ratio of every edge the wavelength lies beyond. A
// Z/A-proportional term stands in for coherent and incoherent scattering.
// Edge energies, densities and fluorescence yields are tabulated. The
// result is good to tens of percent, which is enough to drive the spectrum
// models and the command line tool; calibration work should plug in a full
// cross-section library through the same coeff.Engine interface.
package kramers

import (
	"math"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/units"
)

const (
	// braggPierce is C in τ = C·Z⁴·λ³/A (cm²/g, λ in Å) above the K edge.
	braggPierce = 0.0103

	// scatterPerZA is the scattering mass coefficient per unit Z/A.
	scatterPerZA = 0.4

	// EdgeTolerance is the distance (keV) from an edge inside which the
	// engine refuses to answer.
	EdgeTolerance = 0.001

	jumpL1 = 1.16
	jumpL2 = 1.41
	jumpL3 = 3.0
)

type element struct {
	density float64 // g/cm³
	edges   [4]float64
	yields  [4]float64
}

var elements = map[int]element{
	4:  {1.848, [4]float64{0.1115}, [4]float64{3.3e-4}},
	13: {2.699, [4]float64{1.5596, 0.1177, 0.0731, 0.0727}, [4]float64{0.039, 2.9e-5, 3.8e-5, 3.8e-5}},
	24: {7.19, [4]float64{5.9892, 0.6960, 0.5837, 0.5745}, [4]float64{0.275, 2.9e-4, 2.7e-3, 2.7e-3}},
	29: {8.96, [4]float64{8.9789, 1.0961, 0.9510, 0.9311}, [4]float64{0.44, 1.2e-3, 5.6e-3, 5.6e-3}},
	30: {7.133, [4]float64{9.6586, 1.1936, 1.0428, 1.0197}, [4]float64{0.474, 1.3e-3, 6.5e-3, 6.4e-3}},
	45: {12.41, [4]float64{23.2199, 3.4119, 3.1461, 3.0038}, [4]float64{0.807, 0.012, 0.045, 0.043}},
	74: {19.3, [4]float64{69.5250, 12.0998, 11.5440, 10.2068}, [4]float64{0.958, 0.147, 0.270, 0.255}},
	82: {11.35, [4]float64{88.0045, 15.8608, 15.2000, 13.0352}, [4]float64{0.963, 0.112, 0.373, 0.360}},
}

// Engine is the approximate engine. The zero value is ready to use.
type Engine struct{}

var _ coeff.Engine = Engine{}

// New returns an Engine.
func New() Engine { return Engine{} }

// Coefficients implements coeff.Engine.
func (Engine) Coefficients(z int, wavelength float64) (coeff.Coefficients, error) {
	el, ok := elements[z]
	if !ok || !(wavelength > 0) || math.IsInf(wavelength, 0) {
		return coeff.Coefficients{}, coeff.ErrNoData
	}
	weight, ok := atomdata.AtomicWeight(z)
	if !ok {
		return coeff.Coefficients{}, coeff.ErrNoData
	}

	energy := units.Energy(wavelength)
	for _, edge := range el.edges {
		if edge > 0 && math.Abs(energy-edge) < EdgeTolerance {
			return coeff.Coefficients{}, coeff.ErrWithinEdge
		}
	}

	zf := float64(z)
	tau := braggPierce * zf * zf * zf * zf * wavelength * wavelength * wavelength / weight
	jumps := [4]float64{jumpK(z), jumpL1, jumpL2, jumpL3}
	for i, edge := range el.edges {
		if edge > 0 && energy < edge {
			tau /= jumps[i]
		}
	}

	total := tau + scatterPerZA*zf/weight
	return coeff.Coefficients{
		Tau:          tau,
		CrossSection: total,
		Attenuation:  total * el.density,
	}, nil
}

// Summary implements coeff.Engine.
func (Engine) Summary(z int) (coeff.Summary, error) {
	el, ok := elements[z]
	if !ok {
		return coeff.Summary{}, coeff.ErrNoData
	}
	return coeff.Summary{Edges: el.edges, Yields: el.yields}, nil
}

// jumpK is the empirical K-edge jump ratio.
func jumpK(z int) float64 {
	return 125/float64(z) + 3.5
}
