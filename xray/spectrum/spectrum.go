// Package spectrum holds the output of a tube calculation: characteristic
// lines and continuum samples, each a (wavelength, width, intensity) part.
package spectrum

import (
	"sort"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xrf/xray/units"
)

// Part is one line or continuum sample.
type Part struct {
	// Wavelength is the centre wavelength in Å.
	Wavelength float64
	// Width is the extent of the part in Å.
	Width float64
	// Intensity is a line's intensity per Å, or a continuum sample's
	// intensity integrated over its slice.
	Intensity float64
}

// Energy returns the centre energy in keV.
func (p Part) Energy() float64 { return units.Energy(p.Wavelength) }

// Integrated returns Intensity × Width.
func (p Part) Integrated() float64 { return p.Intensity * p.Width }

// Lower returns the short-wavelength boundary of the part.
func (p Part) Lower() float64 { return p.Wavelength - p.Width/2 }

// Upper returns the long-wavelength boundary of the part.
func (p Part) Upper() float64 { return p.Wavelength + p.Width/2 }

// Spectrum is a computed tube spectrum. Lines are sorted by wavelength once
// generation is complete; the continuum is generated in ascending order.
type Spectrum struct {
	Lines     []Part
	Continuum []Part
}

// Clone returns a deep copy of s.
func (s *Spectrum) Clone() *Spectrum {
	return &Spectrum{
		Lines:     append([]Part(nil), s.Lines...),
		Continuum: append([]Part(nil), s.Continuum...),
	}
}

// Empty reports whether s has neither lines nor continuum.
func (s *Spectrum) Empty() bool { return len(s.Lines) == 0 && len(s.Continuum) == 0 }

// SortLines orders the lines by ascending wavelength. Equal wavelengths keep
// their generation order.
func (s *Spectrum) SortLines() {
	sort.SliceStable(s.Lines, func(i, j int) bool {
		return s.Lines[i].Wavelength < s.Lines[j].Wavelength
	})
}

// MaxLineIntegrated returns the largest Intensity × Width over the lines.
// It reports false when no line has a positive integrated intensity.
func (s *Spectrum) MaxLineIntegrated() (float64, bool) {
	best := 0.0
	for _, p := range s.Lines {
		if v := p.Integrated(); v > best {
			best = v
		}
	}
	return best, best > 0
}

// Scale multiplies every intensity by factor.
func (s *Spectrum) Scale(factor float64) {
	scaleParts(s.Lines, factor)
	scaleParts(s.Continuum, factor)
}

// Normalize scales s so that the strongest line integrates to ref. It
// reports false, leaving s unchanged, when there is no line to normalise to.
func (s *Spectrum) Normalize(ref float64) bool {
	peak, ok := s.MaxLineIntegrated()
	if !ok {
		return false
	}
	s.Scale(ref / peak)
	return true
}

// Multiply scales the intensity of parts[i] by factors[i]. The slices must
// have the same length.
func Multiply(parts []Part, factors []float64) {
	if len(parts) == 0 {
		return
	}
	buf := Intensities(parts)
	vecmath.MulBlockInPlace(buf, factors[:len(parts)])
	setIntensities(parts, buf)
}

// Intensities returns the intensities of parts.
func Intensities(parts []Part) []float64 {
	out := make([]float64, len(parts))
	for i, p := range parts {
		out[i] = p.Intensity
	}
	return out
}

// Wavelengths returns the centre wavelengths of parts.
func Wavelengths(parts []Part) []float64 {
	out := make([]float64, len(parts))
	for i, p := range parts {
		out[i] = p.Wavelength
	}
	return out
}

func setIntensities(parts []Part, values []float64) {
	for i := range parts {
		parts[i].Intensity = values[i]
	}
}

func scaleParts(parts []Part, factor float64) {
	for i := range parts {
		parts[i].Intensity *= factor
	}
}
