package testutil

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-xrf/xray/coeff"
)

// FakeElement describes one element of a FakeEngine.
type FakeElement struct {
	// TauScale is k in τ = k·λ³.
	TauScale float64
	// Scatter is added to τ to form the total cross section.
	Scatter float64
	Density float64
	Edges   [4]float64
	Yields  [4]float64
	// NoCoefficients makes every coefficient query fail with ErrNoData.
	NoCoefficients bool
	// NoSummary makes Summary fail with ErrNoData.
	NoSummary bool
}

// FakeEngine is a deterministic coeff.Engine with simple closed forms so
// tests can predict every coefficient. Energies within EdgeBand of an edge
// fail with coeff.ErrWithinEdge.
type FakeEngine struct {
	Elements map[int]FakeElement
	EdgeBand float64

	calls atomic.Int64
}

var _ coeff.Engine = (*FakeEngine)(nil)

// NewFakeEngine returns an engine populated with the anode, window and
// filter elements, using round-number coefficients and real edge energies.
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{
		EdgeBand: 0.001,
		Elements: map[int]FakeElement{
			4:  {TauScale: 0.3, Scatter: 0.15, Density: 1.848, Edges: [4]float64{0.1115}},
			13: {TauScale: 15, Scatter: 0.15, Density: 2.699, Edges: [4]float64{1.5596, 0.1177, 0.0731, 0.0727}, Yields: [4]float64{0.039}},
			24: {TauScale: 60, Scatter: 0.18, Density: 7.19, Edges: [4]float64{5.9892, 0.696, 0.5837, 0.5745}, Yields: [4]float64{0.275, 3e-4, 2.7e-3, 2.7e-3}},
			29: {TauScale: 80, Scatter: 0.18, Density: 8.96, Edges: [4]float64{8.9789, 1.0961, 0.951, 0.9311}, Yields: [4]float64{0.44, 1.2e-3, 5.6e-3, 5.6e-3}},
			30: {TauScale: 85, Scatter: 0.18, Density: 7.133, Edges: [4]float64{9.6586, 1.1936, 1.0428, 1.0197}, Yields: [4]float64{0.474, 1.3e-3, 6.5e-3, 6.4e-3}},
			45: {TauScale: 40, Scatter: 0.17, Density: 12.41, Edges: [4]float64{23.2199, 3.4119, 3.1461, 3.0038}, Yields: [4]float64{0.807, 0.012, 0.045, 0.043}},
			74: {TauScale: 90, Scatter: 0.16, Density: 19.3, Edges: [4]float64{69.525, 12.0998, 11.544, 10.2068}, Yields: [4]float64{0.958, 0.147, 0.27, 0.255}},
			82: {TauScale: 100, Scatter: 0.16, Density: 11.35, Edges: [4]float64{88.0045, 15.8608, 15.2, 13.0352}, Yields: [4]float64{0.963, 0.112, 0.373, 0.36}},
		},
	}
}

// Coefficients implements coeff.Engine.
func (f *FakeEngine) Coefficients(z int, wavelength float64) (coeff.Coefficients, error) {
	f.calls.Add(1)
	el, ok := f.Elements[z]
	if !ok || el.NoCoefficients || !(wavelength > 0) {
		return coeff.Coefficients{}, coeff.ErrNoData
	}
	energy := 12.398 / wavelength
	for _, edge := range el.Edges {
		if edge > 0 && math.Abs(energy-edge) < f.EdgeBand {
			return coeff.Coefficients{}, coeff.ErrWithinEdge
		}
	}
	tau := el.TauScale * wavelength * wavelength * wavelength
	total := tau + el.Scatter
	return coeff.Coefficients{Tau: tau, CrossSection: total, Attenuation: total * el.Density}, nil
}

// Summary implements coeff.Engine.
func (f *FakeEngine) Summary(z int) (coeff.Summary, error) {
	el, ok := f.Elements[z]
	if !ok || el.NoSummary {
		return coeff.Summary{}, coeff.ErrNoData
	}
	return coeff.Summary{Edges: el.Edges, Yields: el.Yields}, nil
}

// Calls returns how many coefficient queries the engine has answered.
func (f *FakeEngine) Calls() int64 { return f.calls.Load() }

// Edited returns a copy of f whose element z has been modified by edit.
func (f *FakeEngine) Edited(z int, edit func(*FakeElement)) *FakeEngine {
	out := &FakeEngine{EdgeBand: f.EdgeBand, Elements: make(map[int]FakeElement, len(f.Elements))}
	for k, v := range f.Elements {
		out.Elements[k] = v
	}
	el := out.Elements[z]
	edit(&el)
	out.Elements[z] = el
	return out
}
