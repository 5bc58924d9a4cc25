package tube

import (
	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/spectrum"
	"github.com/cwbudde/algo-xrf/xray/units"
)

const (
	// EdgeHalfBand is the energy (keV) kept clear on each side of an
	// absorption edge when the continuum is split.
	EdgeHalfBand = 0.002

	// MinimumSlice is the narrowest boundary slice (Å) worth emitting.
	MinimumSlice = 0.001
)

// anodeEdges returns the K, L1, L2 and L3 edge energies of element z, in
// that order, skipping any the engine does not know.
func anodeEdges(r *coeff.Resolver, z int) []float64 {
	s, ok := r.Summary(z)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(s.Edges))
	for _, e := range s.Edges {
		if e > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Slices partitions [MinWavelength, MaxWavelength] into continuum slices
// of width p.Slice. Each energy in edges (keV, decreasing) opens a gap of
// ±EdgeHalfBand around the edge: the slice running into the gap is cut
// short at its lower boundary, and uniform slicing restarts at its upper
// boundary. Boundary slices narrower than MinimumSlice are dropped. The
// last slice always ends at MaxWavelength; a remainder narrower than
// MinimumSlice is merged into the slice before it. Intensities are left at
// zero.
func Slices(p Params, edges []float64) []spectrum.Part {
	var (
		out   []spectrum.Part
		width = p.Slice
		limit = p.MaxWavelength
		lower = p.MinWavelength()
	)
	if !(width > 0) || !(limit > lower) {
		return nil
	}
	var lastLo, lastHi float64
	emit := func(lo, hi float64) {
		out = append(out, spectrum.Part{Wavelength: (lo + hi) / 2, Width: hi - lo})
		lastLo, lastHi = lo, hi
	}
	// uniform emits full slices from lower while they end before stop and
	// returns where the next slice would start.
	uniform := func(lower, stop float64) float64 {
		start := lower
		for k := 1; ; k++ {
			upper := start + float64(k)*width
			if !(upper < stop) {
				return start + float64(k-1)*width
			}
			emit(start+float64(k-1)*width, upper)
		}
	}

	for _, edge := range edges {
		if edge <= EdgeHalfBand {
			continue
		}
		below := units.Wavelength(edge + EdgeHalfBand)
		above := units.Wavelength(edge - EdgeHalfBand)
		if below >= limit {
			break
		}
		if below <= lower {
			if above > lower {
				lower = above
			}
			continue
		}
		lower = uniform(lower, below)
		if below-lower > MinimumSlice {
			emit(lower, below)
		}
		lower = above
	}

	lower = uniform(lower, limit)
	switch {
	case !(limit > lower):
	case limit-lower > MinimumSlice || len(out) == 0 || lastHi != lower:
		emit(lower, limit)
	default:
		// A sliver after a full slice widens that slice to the limit.
		out = out[:len(out)-1]
		emit(lastLo, limit)
	}
	return out
}
