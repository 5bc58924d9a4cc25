package tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xrf/internal/testutil"
	"github.com/cwbudde/algo-xrf/xray/spectrum"
	"github.com/cwbudde/algo-xrf/xray/units"
)

var rhodiumEdges = []float64{23.2199, 3.4119, 3.1461, 3.0038}

// gaps returns the indices i where part i does not start where part i-1
// ended.
func gaps(parts []spectrum.Part) []int {
	var out []int
	for i := 1; i < len(parts); i++ {
		if math.Abs(parts[i].Lower()-parts[i-1].Upper()) > 1e-9 {
			out = append(out, i)
		}
	}
	return out
}

func TestSlicesWithoutSplitting(t *testing.T) {
	p := DefaultParams()
	parts := Slices(p, nil)
	require.NotEmpty(t, parts)

	testutil.RequireStrictlyIncreasing(t, spectrum.Wavelengths(parts))
	assert.Empty(t, gaps(parts))
	assert.InDelta(t, p.MinWavelength(), parts[0].Lower(), 1e-12)
	assert.InDelta(t, p.MaxWavelength, parts[len(parts)-1].Upper(), 1e-9)
	for _, s := range parts[:len(parts)-1] {
		assert.InDelta(t, p.Slice, s.Width, 1e-9)
	}
}

func TestSlicesSplitAtEdges(t *testing.T) {
	p := DefaultParams()
	parts := Slices(p, rhodiumEdges)

	testutil.RequireStrictlyIncreasing(t, spectrum.Wavelengths(parts))
	assert.InDelta(t, 0.24796, parts[0].Lower(), 1e-9)
	assert.InDelta(t, 12.0, parts[len(parts)-1].Upper(), 1e-9)

	g := gaps(parts)
	assert.LessOrEqual(t, len(g), 4)
	for _, i := range g {
		gapLo, gapHi := parts[i-1].Upper(), parts[i].Lower()
		assert.Greater(t, gapHi, gapLo)
		// Every gap is the ±2 eV band of one edge, possibly widened by a
		// dropped boundary slice.
		found := false
		for _, e := range rhodiumEdges {
			below := units.Wavelength(e + EdgeHalfBand)
			above := units.Wavelength(e - EdgeHalfBand)
			if math.Abs(gapHi-above) < 1e-9 && gapLo <= below+1e-9 && below-gapLo <= MinimumSlice+1e-9 {
				found = true
			}
		}
		assert.True(t, found, "gap %v..%v is not an edge band", gapLo, gapHi)
	}

	for _, s := range parts {
		assert.Greater(t, s.Width, MinimumSlice)
		for _, e := range rhodiumEdges {
			edgeWl := units.Wavelength(e)
			assert.False(t, s.Lower() < edgeWl && edgeWl < s.Upper(), "slice at %v straddles edge %v", s.Wavelength, e)
		}
	}
}

func TestSlicesSkipEdgesBehindStart(t *testing.T) {
	p := NewParams(WithVoltage(15))
	split := Slices(p, rhodiumEdges)
	// The K edge lies above 15 keV; only the three L edges split.
	assert.Len(t, gaps(split), 3)
	assert.InDelta(t, p.MinWavelength(), split[0].Lower(), 1e-12)
}

func TestSlicesStartInsideEdgeBand(t *testing.T) {
	p := NewParams(WithVoltage(23.2209))
	parts := Slices(p, rhodiumEdges)
	require.NotEmpty(t, parts)
	assert.InDelta(t, units.Wavelength(23.2199-EdgeHalfBand), parts[0].Lower(), 1e-9)
}

func TestSlicesEdgeBeyondLimit(t *testing.T) {
	p := NewParams(WithMaxWavelength(2))
	parts := Slices(p, rhodiumEdges)
	assert.Len(t, gaps(parts), 1, "only the K edge lies below 2 Å")
	assert.InDelta(t, 2.0, parts[len(parts)-1].Upper(), 1e-9)
}

func TestSlicesDropNarrowBoundary(t *testing.T) {
	p := NewParams(WithSlice(0.1), WithMaxWavelength(1))
	start := p.MinWavelength()
	// Place an edge so that its lower band boundary falls 0.0005 Å after a
	// full slice ends.
	below := start + 2*0.1 + 0.0005
	edge := units.Energy(below) - EdgeHalfBand
	parts := Slices(p, []float64{edge})

	require.GreaterOrEqual(t, len(parts), 3)
	assert.InDelta(t, 0.1, parts[0].Width, 1e-12)
	assert.InDelta(t, 0.1, parts[1].Width, 1e-12)
	assert.InDelta(t, units.Wavelength(edge-EdgeHalfBand), parts[2].Lower(), 1e-9)
}

func TestSlicesMergeFinalSliver(t *testing.T) {
	p := DefaultParams()
	p.MaxWavelength = p.MinWavelength() + 3*0.1 + 0.0005
	parts := Slices(p, nil)

	require.Len(t, parts, 3)
	assert.Empty(t, gaps(parts))
	last := parts[len(parts)-1]
	assert.InDelta(t, p.MaxWavelength, last.Upper(), 1e-12)
	assert.InDelta(t, 0.1005, last.Width, 1e-12)

	// A sliver right after an edge band has no slice to join and stands
	// alone.
	p.MaxWavelength = 2
	above := 1.9995
	edge := units.Energy(above) + EdgeHalfBand
	parts = Slices(p, []float64{edge})
	last = parts[len(parts)-1]
	assert.InDelta(t, 2, last.Upper(), 1e-12)
	assert.InDelta(t, units.Wavelength(edge-EdgeHalfBand), last.Lower(), 1e-12)
}

func TestSlicesDegenerate(t *testing.T) {
	p := DefaultParams()
	p.Slice = 0
	assert.Nil(t, Slices(p, nil))
}
