package tube

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/spectrum"
)

// micrometre in cm.
const micrometre = 1e-4

// Transmission returns the fraction of radiation at wavelength (Å) that
// passes the window and, if configured, the filter. It reports false when
// an attenuation coefficient is unavailable.
func Transmission(r *coeff.Resolver, p Params, wavelength float64) (float64, bool) {
	mu := 0.0
	if p.WindowThickness > 0 {
		att, ok := r.Attenuation(p.Window.Z, wavelength)
		if !ok {
			return 0, false
		}
		mu += att * p.WindowThickness * micrometre
	}
	if p.HasFilter() {
		filter := 0.0
		for _, c := range p.Filter {
			att, ok := r.Attenuation(c.Element.Z, wavelength)
			if !ok {
				return 0, false
			}
			filter += c.Concentration * att
		}
		mu += filter * p.FilterThickness * micrometre
	}
	return math.Exp(-mu), true
}

// Attenuate multiplies every part of sp by its window and filter
// transmission, evaluated once per part. Lines whose transmission cannot be
// computed are removed; such continuum samples are set to zero.
func Attenuate(env Env, p Params, sp *spectrum.Spectrum) {
	log := env.logger()

	kept := sp.Lines[:0]
	factors := make([]float64, 0, len(sp.Lines))
	for _, line := range sp.Lines {
		t, ok := Transmission(env.Resolver, p, line.Wavelength)
		if !ok {
			log.WithField("wavelength", line.Wavelength).Debug("line dropped: no attenuation coefficient")
			continue
		}
		kept = append(kept, line)
		factors = append(factors, t)
	}
	sp.Lines = kept
	spectrum.Multiply(sp.Lines, factors)

	missing := 0
	factors = make([]float64, len(sp.Continuum))
	for i, c := range sp.Continuum {
		t, ok := Transmission(env.Resolver, p, c.Wavelength)
		if !ok {
			missing++
		}
		factors[i] = t
	}
	spectrum.Multiply(sp.Continuum, factors)
	if missing > 0 {
		log.WithFields(logrus.Fields{"samples": missing}).Debug("continuum samples without attenuation set to zero")
	}
}
