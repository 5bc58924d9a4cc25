package tube

import (
	"math"

	pkgerrors "github.com/pkg/errors"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/units"
)

// ConcentrationTolerance is the allowed deviation of the summed filter
// concentrations from 1.
const ConcentrationTolerance = 1e-6

// FilterComponent is one element of a primary beam filter.
type FilterComponent struct {
	Element atomdata.Element
	// Concentration is the mass fraction, 0..1.
	Concentration float64
}

// Params configures one calculation. Angles are in degrees, thicknesses in
// µm, the voltage in kV and wavelengths in Å.
type Params struct {
	Anode           atomdata.Element
	InAngle         float64
	OutAngle        float64
	Window          atomdata.Element
	WindowThickness float64
	Filter          []FilterComponent
	FilterThickness float64
	Voltage         float64
	Slice           float64
	MaxWavelength   float64
	SplitAtEdge     bool
	Model           Model
}

// Option mutates Params.
type Option func(*Params)

// DefaultParams returns a rhodium tube at 50 kV with a 50 µm beryllium
// window, no filter, 0.1 Å slices up to 12 Å, split at the anode edges and
// the NIST model.
func DefaultParams() Params {
	anode := atomdata.AnodeElements()[0]
	window := atomdata.WindowElements()[0]
	return Params{
		Anode:           anode,
		InAngle:         90,
		OutAngle:        90,
		Window:          window,
		WindowThickness: 50,
		Voltage:         50,
		Slice:           0.1,
		MaxWavelength:   12,
		SplitAtEdge:     true,
		Model:           ModelNIST,
	}
}

// NewParams applies opts to DefaultParams.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// WithAnode sets the anode element.
func WithAnode(e atomdata.Element) Option {
	return func(p *Params) {
		p.Anode = e
	}
}

// WithAngles sets the electron incidence and photon take-off angles,
// measured from the anode surface.
func WithAngles(in, out float64) Option {
	return func(p *Params) {
		if in > 0 && in <= 90 {
			p.InAngle = in
		}
		if out > 0 && out <= 90 {
			p.OutAngle = out
		}
	}
}

// WithWindow sets the window element and thickness.
func WithWindow(e atomdata.Element, thickness float64) Option {
	return func(p *Params) {
		p.Window = e
		if thickness >= 0 {
			p.WindowThickness = thickness
		}
	}
}

// WithFilter sets the filter components and thickness. An empty component
// list or a zero thickness means no filter.
func WithFilter(thickness float64, components ...FilterComponent) Option {
	return func(p *Params) {
		p.Filter = append([]FilterComponent(nil), components...)
		if thickness >= 0 {
			p.FilterThickness = thickness
		}
	}
}

// WithVoltage sets the tube voltage.
func WithVoltage(kv float64) Option {
	return func(p *Params) {
		if kv > 0 {
			p.Voltage = kv
		}
	}
}

// WithSlice sets the continuum slice width.
func WithSlice(width float64) Option {
	return func(p *Params) {
		if width > 0 {
			p.Slice = width
		}
	}
}

// WithMaxWavelength sets the long-wavelength end of the spectrum.
func WithMaxWavelength(w float64) Option {
	return func(p *Params) {
		if w > 0 {
			p.MaxWavelength = w
		}
	}
}

// WithSplitAtEdge enables or disables continuum splitting at anode edges.
func WithSplitAtEdge(split bool) Option {
	return func(p *Params) {
		p.SplitAtEdge = split
	}
}

// WithModel selects the physical model.
func WithModel(m Model) Option {
	return func(p *Params) {
		if m.Valid() {
			p.Model = m
		}
	}
}

// MinWavelength returns the Duane–Hunt limit hc/eV in Å.
func (p Params) MinWavelength() float64 { return units.Wavelength(p.Voltage) }

// HasFilter reports whether the filter takes part in the calculation.
func (p Params) HasFilter() bool {
	return len(p.Filter) > 0 && p.FilterThickness > 0
}

// Clone returns a copy of p that shares no memory with it.
func (p Params) Clone() Params {
	p.Filter = append([]FilterComponent(nil), p.Filter...)
	return p
}

// Validate reports the first problem that keeps p from being calculated.
func (p Params) Validate() error {
	if p.Anode.Z <= 0 {
		return ErrNoAnode
	}
	if p.Anode.Z > atomdata.MaxZ {
		return pkgerrors.Wrapf(ErrInvalidParams, "anode Z=%d", p.Anode.Z)
	}
	if !inRange(p.InAngle, 0, 90) || !inRange(p.OutAngle, 0, 90) {
		return pkgerrors.Wrapf(ErrInvalidParams, "angles %v/%v must lie in (0, 90] degrees", p.InAngle, p.OutAngle)
	}
	if !(p.Voltage > 0) || math.IsInf(p.Voltage, 0) {
		return pkgerrors.Wrapf(ErrInvalidParams, "voltage %v kV", p.Voltage)
	}
	if !(p.Slice > 0) || math.IsInf(p.Slice, 0) {
		return pkgerrors.Wrapf(ErrInvalidParams, "slice width %v Å", p.Slice)
	}
	if !(p.MaxWavelength > p.MinWavelength()) || math.IsInf(p.MaxWavelength, 0) {
		return pkgerrors.Wrapf(ErrInvalidParams, "max wavelength %v Å is not above the %v Å limit", p.MaxWavelength, p.MinWavelength())
	}
	if !(p.WindowThickness >= 0) || !(p.FilterThickness >= 0) || math.IsInf(p.WindowThickness, 0) || math.IsInf(p.FilterThickness, 0) {
		return pkgerrors.Wrapf(ErrInvalidParams, "thickness %v/%v µm", p.WindowThickness, p.FilterThickness)
	}
	if p.WindowThickness > 0 && p.Window.Z <= 0 {
		return pkgerrors.Wrapf(ErrInvalidParams, "window thickness %v µm without a window element", p.WindowThickness)
	}
	if !p.Model.Valid() {
		return pkgerrors.Wrapf(ErrUnknownModel, "model %d", int(p.Model))
	}
	if !p.HasFilter() {
		return nil
	}
	sum := 0.0
	for _, c := range p.Filter {
		if c.Element.Z <= 0 || !(c.Concentration >= 0 && c.Concentration <= 1) {
			return pkgerrors.Wrapf(ErrInvalidParams, "filter component %v at %v", c.Element, c.Concentration)
		}
		sum += c.Concentration
	}
	if !(math.Abs(sum-1) <= ConcentrationTolerance) {
		return pkgerrors.Wrapf(ErrFilterConcentration, "sum is %v", sum)
	}
	return nil
}

// inRange reports lo < v <= hi.
func inRange(v, lo, hi float64) bool { return v > lo && v <= hi }
