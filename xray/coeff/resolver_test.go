package coeff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/units"
)

// scriptedEngine fails with a scripted error on its first calls, then
// reports the energy it was asked for through Tau.
type scriptedEngine struct {
	errs    []error
	calls   []float64
	summary Summary
	sumErr  error
}

func (s *scriptedEngine) Coefficients(_ int, wavelength float64) (Coefficients, error) {
	s.calls = append(s.calls, units.Energy(wavelength))
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return Coefficients{}, err
		}
	}
	e := units.Energy(wavelength)
	return Coefficients{Tau: e, CrossSection: 2 * e, Attenuation: 3 * e}, nil
}

func (s *scriptedEngine) Summary(int) (Summary, error) {
	return s.summary, s.sumErr
}

func TestResolverDirectHit(t *testing.T) {
	eng := &scriptedEngine{}
	r := NewResolver(eng)

	c, ok := r.Coefficients(45, units.Wavelength(10))
	require.True(t, ok)
	assert.InDelta(t, 10.0, c.Tau, 1e-12)
	assert.Len(t, eng.calls, 1)
}

func TestResolverRetriesBelowEdgeOnce(t *testing.T) {
	eng := &scriptedEngine{errs: []error{ErrWithinEdge}}
	r := NewResolver(eng)

	tau, ok := r.Tau(45, units.Wavelength(23.22))
	require.True(t, ok)
	require.Len(t, eng.calls, 2)
	assert.InDelta(t, 23.22-EdgeRetryShift, eng.calls[1], 1e-9)
	assert.InDelta(t, 23.22-EdgeRetryShift, tau, 1e-9)
}

func TestResolverFailedRetryIsMissingData(t *testing.T) {
	eng := &scriptedEngine{errs: []error{ErrWithinEdge, ErrWithinEdge}}
	r := NewResolver(eng)

	_, ok := r.Attenuation(45, 1.0)
	assert.False(t, ok)
	assert.Len(t, eng.calls, 2, "only one retry is allowed")
}

func TestResolverNoData(t *testing.T) {
	eng := &scriptedEngine{errs: []error{ErrNoData}}
	r := NewResolver(eng)

	_, ok := r.MassAttenuation(200, 1.0)
	assert.False(t, ok)
	assert.Len(t, eng.calls, 1)
}

func TestResolverRejectsBadInput(t *testing.T) {
	var nilResolver *Resolver
	_, ok := nilResolver.Coefficients(45, 1)
	assert.False(t, ok)

	r := NewResolver(&scriptedEngine{})
	_, ok = r.Coefficients(45, 0)
	assert.False(t, ok)
	_, ok = r.Coefficients(45, math.NaN())
	assert.False(t, ok)
}

func TestEdgeEnergy(t *testing.T) {
	eng := &scriptedEngine{summary: Summary{Edges: [4]float64{23.22, 3.41, 3.15, 3.0}}}
	r := NewResolver(eng)

	k, ok := r.EdgeEnergy(45, atomdata.EdgeK)
	require.True(t, ok)
	assert.InDelta(t, 23.22, k, 1e-12)

	l3, ok := r.EdgeEnergy(45, atomdata.EdgeL3)
	require.True(t, ok)
	assert.InDelta(t, 3.0, l3, 1e-12)

	_, ok = r.EdgeEnergy(45, atomdata.EdgeM5)
	assert.False(t, ok, "only tungsten has an M5 edge")

	m5, ok := r.EdgeEnergy(74, atomdata.EdgeM5)
	require.True(t, ok)
	assert.InDelta(t, TungstenM5Edge, m5, 0)
}

func TestEdgeEnergyMissing(t *testing.T) {
	r := NewResolver(&scriptedEngine{summary: Summary{Edges: [4]float64{0.111}}})
	_, ok := r.EdgeEnergy(4, atomdata.EdgeL1)
	assert.False(t, ok, "zero edge means no edge")

	r = NewResolver(&scriptedEngine{sumErr: ErrNoData})
	_, ok = r.EdgeEnergy(45, atomdata.EdgeK)
	assert.False(t, ok)
}
