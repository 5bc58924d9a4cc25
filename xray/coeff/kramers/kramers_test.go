package kramers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/units"
)

func TestSummary(t *testing.T) {
	s, err := New().Summary(45)
	require.NoError(t, err)
	assert.InDelta(t, 23.2199, s.Edges[coeff.ShellK], 1e-9)
	assert.Greater(t, s.Edges[coeff.ShellL1], s.Edges[coeff.ShellL2])
	assert.Greater(t, s.Edges[coeff.ShellL2], s.Edges[coeff.ShellL3])

	_, err = New().Summary(92)
	assert.ErrorIs(t, err, coeff.ErrNoData)
}

func TestCoefficientsJumpAtEdge(t *testing.T) {
	eng := New()
	below, err := eng.Coefficients(45, units.Wavelength(23.2199-0.01))
	require.NoError(t, err)
	above, err := eng.Coefficients(45, units.Wavelength(23.2199+0.01))
	require.NoError(t, err)

	assert.Greater(t, above.Tau, 3*below.Tau, "photo-absorption jumps up across the K edge")
	assert.InDelta(t, above.CrossSection*12.41, above.Attenuation, 1e-9)
}

func TestCoefficientsDecreaseWithEnergyBetweenEdges(t *testing.T) {
	eng := New()
	prev := 0.0
	for e := 20.0; e > 4.0; e -= 1.0 {
		c, err := eng.Coefficients(45, units.Wavelength(e))
		require.NoError(t, err)
		assert.Greater(t, c.Tau, prev, "E=%v", e)
		prev = c.Tau
	}
}

func TestCoefficientsWithinEdge(t *testing.T) {
	_, err := New().Coefficients(45, units.Wavelength(23.2199))
	assert.ErrorIs(t, err, coeff.ErrWithinEdge)

	r := coeff.NewResolver(New())
	c, ok := r.Coefficients(45, units.Wavelength(23.2199))
	require.True(t, ok, "a 3 eV step leaves the edge band")
	assert.Greater(t, c.Tau, 0.0)
}

func TestCoefficientsNoData(t *testing.T) {
	_, err := New().Coefficients(92, 1)
	assert.ErrorIs(t, err, coeff.ErrNoData)
	_, err = New().Coefficients(45, 0)
	assert.ErrorIs(t, err, coeff.ErrNoData)
}
