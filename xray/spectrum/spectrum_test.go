package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xrf/internal/testutil"
)

func sample() *Spectrum {
	return &Spectrum{
		Lines: []Part{
			{Wavelength: 0.6, Width: 0.001, Intensity: 500},
			{Wavelength: 0.55, Width: 0.002, Intensity: 1000},
			{Wavelength: 4.6, Width: 0.004, Intensity: 100},
		},
		Continuum: []Part{
			{Wavelength: 0.3, Width: 0.1, Intensity: 3},
			{Wavelength: 0.4, Width: 0.1, Intensity: 5},
		},
	}
}

func TestSortLines(t *testing.T) {
	s := sample()
	s.SortLines()
	testutil.RequireStrictlyIncreasing(t, Wavelengths(s.Lines))
}

func TestNormalize(t *testing.T) {
	s := sample()
	require.True(t, s.Normalize(1))

	peak, ok := s.MaxLineIntegrated()
	require.True(t, ok)
	assert.InDelta(t, 1.0, peak, 1e-12)
	// 1000 * 0.002 = 2 is the strongest line.
	testutil.RequireSliceNearlyEqual(t, Intensities(s.Continuum), []float64{1.5, 2.5}, 1e-12)

	again := s.Clone()
	require.True(t, again.Normalize(1))
	testutil.RequireSliceNearlyEqual(t, Intensities(again.Lines), Intensities(s.Lines), 1e-12)
}

func TestNormalizeWithoutLines(t *testing.T) {
	s := &Spectrum{Continuum: []Part{{Wavelength: 1, Width: 0.1, Intensity: 2}}}
	assert.False(t, s.Normalize(1))
	assert.Equal(t, 2.0, s.Continuum[0].Intensity)

	s.Lines = []Part{{Wavelength: 1, Width: 0.1, Intensity: 0}}
	assert.False(t, s.Normalize(1), "zero-intensity lines give no maximum")
}

func TestMultiply(t *testing.T) {
	s := sample()
	before := s.Clone()
	factors := make([]float64, len(s.Continuum))
	for i, p := range s.Continuum {
		factors[i] = math.Exp(-p.Wavelength)
	}
	Multiply(s.Continuum, factors)
	Multiply(nil, nil)

	for i, p := range s.Continuum {
		assert.InDelta(t, before.Continuum[i].Intensity*math.Exp(-p.Wavelength), p.Intensity, 1e-12)
	}
	assert.Equal(t, before.Lines, s.Lines)
}

func TestPartGeometry(t *testing.T) {
	p := Part{Wavelength: 1, Width: 0.2, Intensity: 5}
	assert.InDelta(t, 0.9, p.Lower(), 1e-15)
	assert.InDelta(t, 1.1, p.Upper(), 1e-15)
	assert.InDelta(t, 1.0, p.Integrated(), 1e-15)
	assert.InDelta(t, 12.398, p.Energy(), 1e-12)
	assert.True(t, (&Spectrum{}).Empty())
	assert.False(t, sample().Empty())
}
