package tube

import (
	"math"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-xrf/xray/catalog"
	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/spectrum"
)

// NormalizedPeak is the integrated intensity of the strongest line after
// normalisation.
const NormalizedPeak = 1.0

// Engine runs calculations against a fixed catalog and coefficient source.
type Engine struct {
	env Env
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger makes the engine report skipped lines and zeroed samples at
// debug level.
func WithLogger(log logrus.FieldLogger) EngineOption {
	return func(e *Engine) {
		if log != nil {
			e.env.Log = log
		}
	}
}

// New returns an Engine.
func New(cat *catalog.Catalog, res *coeff.Resolver, opts ...EngineOption) *Engine {
	e := &Engine{env: Env{Catalog: cat, Resolver: res}}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Env returns the environment strategies of this engine draw on.
func (e *Engine) Env() Env { return e.env }

// Calculate computes the spectrum with the model selected in p.
func (e *Engine) Calculate(p Params) (*spectrum.Spectrum, error) {
	s, err := NewStrategy(p.Model, e.env)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "model %d", int(p.Model))
	}
	return Compute(e.env, p, s)
}

// Compute runs the shared pipeline with strategy s: generate, attenuate,
// normalise. When no line has a positive intensity it returns the
// attenuated, unnormalised spectrum together with ErrNoLines.
func Compute(env Env, p Params, s Strategy) (*spectrum.Spectrum, error) {
	if s == nil {
		return nil, ErrUnknownModel
	}
	sp, err := Generate(env, p, s)
	if err != nil {
		return nil, err
	}
	Attenuate(env, p, sp)
	if !sp.Normalize(NormalizedPeak) {
		return sp, ErrNoLines
	}
	return sp, nil
}

// Generate validates p and produces the unattenuated continuum and sorted
// line intensities.
func Generate(env Env, p Params, s Strategy) (*spectrum.Spectrum, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if env.Catalog == nil || env.Resolver == nil {
		return nil, pkgerrors.Wrap(ErrInvalidParams, "missing catalog or resolver")
	}
	p = p.Clone()
	log := env.logger().WithFields(logrus.Fields{
		"anode":   p.Anode.Symbol,
		"voltage": p.Voltage,
		"model":   p.Model,
	})

	var edges []float64
	if p.SplitAtEdge {
		edges = anodeEdges(env.Resolver, p.Anode.Z)
	}
	continuum := Slices(p, edges)
	zeroed := 0
	for i := range continuum {
		v, ok := s.ContinuumIntensity(&p, continuum[i].Wavelength, continuum[i].Width)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			zeroed++
			v = 0
		}
		continuum[i].Intensity = v
	}
	if zeroed > 0 {
		log.WithField("samples", zeroed).Debug("continuum samples without coefficients set to zero")
	}

	sp := &spectrum.Spectrum{
		Lines:     gateLines(p, s.LineIntensities(&p), log),
		Continuum: continuum,
	}
	sp.SortLines()
	log.WithFields(logrus.Fields{
		"lines":     len(sp.Lines),
		"continuum": len(sp.Continuum),
	}).Debug("spectrum generated")
	return sp, nil
}

// gateLines applies the overvoltage gate, converts widths to Å and drops
// intensities that are not finite and non-negative.
func gateLines(p Params, emissions []Emission, log logrus.FieldLogger) []spectrum.Part {
	out := make([]spectrum.Part, 0, len(emissions))
	for _, em := range emissions {
		rec := em.Record
		if !rec.Excited(p.Voltage) {
			continue
		}
		if math.IsNaN(em.Intensity) || math.IsInf(em.Intensity, 0) || em.Intensity < 0 {
			log.WithFields(logrus.Fields{
				"line":      rec.Line,
				"intensity": em.Intensity,
			}).Debug("line dropped")
			continue
		}
		out = append(out, spectrum.Part{
			Wavelength: rec.Wavelength(),
			Width:      rec.WidthAngstrom(),
			Intensity:  em.Intensity,
		})
	}
	return out
}
