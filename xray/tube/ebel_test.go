package tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/coeff/kramers"
)

func linesOf(ems []Emission) map[atomdata.Line]float64 {
	out := make(map[atomdata.Line]float64, len(ems))
	for _, em := range ems {
		out[em.Record.Line] = em.Intensity
	}
	return out
}

func TestStoppingTerm(t *testing.T) {
	assert.Zero(t, stoppingTerm(1))
	assert.Greater(t, stoppingTerm(1.5), 0.0)
	assert.InDelta(t, 2*math.Log(2)-1, stoppingTerm(2), 1e-15)
}

func TestInverseStoppingNearThreshold(t *testing.T) {
	zb := 2 * ebelSeries[atomdata.FamilyK].b
	assert.Zero(t, inverseStopping(45, zb, 23.22, 1))
	for _, u0 := range []float64{1 + 1e-15, 1 + 1e-12, 1 + 1e-9} {
		v := inverseStopping(45, zb, 23.22, u0)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "u0=%v", u0)
		assert.InDelta(t, 0, v, 1e-9, "u0=%v", u0)
	}

	u0 := 2.0
	sqrtU := math.Sqrt(u0)
	want := zb / 45 * (2*math.Log(2) - 1 +
		16.05*math.Sqrt(0.0135*45/23.22)*(sqrtU*math.Log(u0)+2*(1-sqrtU)))
	assert.InDelta(t, want, inverseStopping(45, zb, 23.22, u0), 1e-12)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, 1.0, escape(0))
	assert.InDelta(t, 1-0.5e-9, escape(1e-9), 1e-15)
	assert.InDelta(t, (1-math.Exp(-2))/2, escape(2), 1e-15)
}

func TestEbelMassDepth(t *testing.T) {
	weight, _ := atomdata.AtomicWeight(45)
	assert.InDelta(t, 0, ebelMassDepth(45, weight, 50, 1), 1e-18)
	shallow := ebelMassDepth(45, weight, 50, 1.5)
	deep := ebelMassDepth(45, weight, 50, 10)
	assert.Greater(t, shallow, 0.0)
	assert.Greater(t, deep, shallow)
}

func TestEbelLines(t *testing.T) {
	eng := newEngine(t, kramers.New())
	s := NewEbel(eng.Env())

	p := DefaultParams()
	rh := linesOf(s.LineIntensities(&p))
	for _, l := range []atomdata.Line{atomdata.KAlpha12, atomdata.KBeta1, atomdata.LAlpha1, atomdata.LAlpha2, atomdata.LBeta2} {
		require.Contains(t, rh, l)
		assert.Greater(t, rh[l], 0.0, "%v", l)
	}
	assert.NotContains(t, rh, atomdata.LAlpha12)
	assert.Greater(t, rh[atomdata.KAlpha12], rh[atomdata.KBeta1])

	w := NewParams(WithAnode(element(t, "W")))
	tungsten := linesOf(s.LineIntensities(&w))
	assert.NotContains(t, tungsten, atomdata.KAlpha12, "50 kV is below the W K edge")
	assert.NotContains(t, tungsten, atomdata.MAlpha12, "no M transition probability")
	assert.Contains(t, tungsten, atomdata.LIota)
}

func TestEbelContinuum(t *testing.T) {
	eng := newEngine(t, kramers.New())
	s := NewEbel(eng.Env())
	p := DefaultParams()

	near, ok := s.ContinuumIntensity(&p, p.MinWavelength()*1.01, 0.01)
	require.True(t, ok)
	mid, ok := s.ContinuumIntensity(&p, 1, 0.01)
	require.True(t, ok)
	assert.Greater(t, mid, near)

	at, ok := s.ContinuumIntensity(&p, p.MinWavelength(), 0.01)
	require.True(t, ok)
	assert.Zero(t, at)
}
