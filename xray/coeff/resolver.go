package coeff

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/units"
)

const (
	// EdgeRetryShift is the energy step (keV) taken below an edge when the
	// engine reports ErrWithinEdge.
	EdgeRetryShift = 0.003

	// TungstenM5Edge is the literature M5 edge energy of tungsten in keV.
	// Engines do not resolve M shells, and tungsten is the only anode with
	// a tabulated M line.
	TungstenM5Edge = 1.816

	tungstenZ = 74
)

// Resolver wraps an Engine with the edge retry and turns every failure into
// a missing result. It holds no mutable state.
type Resolver struct {
	engine Engine
}

// NewResolver wraps engine.
func NewResolver(engine Engine) *Resolver {
	return &Resolver{engine: engine}
}

// Coefficients returns the coefficients of element z at wavelength (Å).
func (r *Resolver) Coefficients(z int, wavelength float64) (Coefficients, bool) {
	if r == nil || r.engine == nil || !(wavelength > 0) {
		return Coefficients{}, false
	}

	c, err := r.engine.Coefficients(z, wavelength)
	if errors.Is(err, ErrWithinEdge) {
		shifted := units.Energy(wavelength) - EdgeRetryShift
		if shifted <= 0 {
			return Coefficients{}, false
		}
		c, err = r.engine.Coefficients(z, units.Wavelength(shifted))
	}
	if err != nil || !finite(c.Tau, c.CrossSection, c.Attenuation) {
		return Coefficients{}, false
	}
	return c, true
}

// Tau returns the photoelectric mass absorption coefficient (cm²/g).
func (r *Resolver) Tau(z int, wavelength float64) (float64, bool) {
	c, ok := r.Coefficients(z, wavelength)
	return c.Tau, ok
}

// MassAttenuation returns the total mass attenuation coefficient (cm²/g).
func (r *Resolver) MassAttenuation(z int, wavelength float64) (float64, bool) {
	c, ok := r.Coefficients(z, wavelength)
	return c.CrossSection, ok
}

// Attenuation returns the linear attenuation coefficient (1/cm).
func (r *Resolver) Attenuation(z int, wavelength float64) (float64, bool) {
	c, ok := r.Coefficients(z, wavelength)
	return c.Attenuation, ok
}

// Summary returns the edge energies and yields of element z.
func (r *Resolver) Summary(z int) (Summary, bool) {
	if r == nil || r.engine == nil {
		return Summary{}, false
	}
	s, err := r.engine.Summary(z)
	if err != nil {
		return Summary{}, false
	}
	return s, true
}

// EdgeEnergy returns the energy (keV) of edge e of element z. K and L edges
// come from the engine; the only M5 edge known is tungsten's.
func (r *Resolver) EdgeEnergy(z int, e atomdata.Edge) (float64, bool) {
	if e == atomdata.EdgeM5 {
		if z == tungstenZ {
			return TungstenM5Edge, true
		}
		return 0, false
	}

	shell, ok := ShellOf(e)
	if !ok {
		return 0, false
	}
	s, ok := r.Summary(z)
	if !ok {
		return 0, false
	}
	energy := s.Edges[shell]
	if !(energy > 0) || math.IsInf(energy, 0) {
		return 0, false
	}
	return energy, true
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
