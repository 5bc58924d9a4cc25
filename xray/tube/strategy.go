package tube

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-xrf/xray/catalog"
	"github.com/cwbudde/algo-xrf/xray/coeff"
)

// Emission is a characteristic line intensity proposed by a Strategy.
// Intensity is per Å over the natural width of the line.
type Emission struct {
	Record    catalog.Record
	Intensity float64
}

// Strategy is one physical model of tube emission.
type Strategy interface {
	// ContinuumIntensity returns the continuum intensity integrated over
	// the slice [wavelength-width/2, wavelength+width/2]. It reports false
	// when a required coefficient is unavailable.
	ContinuumIntensity(p *Params, wavelength, width float64) (float64, bool)
	// LineIntensities returns the characteristic lines of the anode. Lines
	// that cannot be computed are left out.
	LineIntensities(p *Params) []Emission
}

// Env is the read-only data a calculation draws on. It is safe to share
// between goroutines.
type Env struct {
	Catalog  *catalog.Catalog
	Resolver *coeff.Resolver
	Log      logrus.FieldLogger
}

func (env Env) logger() logrus.FieldLogger {
	if env.Log != nil {
		return env.Log
	}
	return discard
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// NewStrategy returns the Strategy implementing m.
func NewStrategy(m Model, env Env) (Strategy, error) {
	switch m {
	case ModelNIST:
		return NewNIST(env), nil
	case ModelEbel:
		return NewEbel(env), nil
	case ModelFinPav:
		return NewFinPav(env), nil
	default:
		return nil, ErrUnknownModel
	}
}
