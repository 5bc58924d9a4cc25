package tube

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/units"
)

// finPavExponents are the continuum shape exponents a of the tabulated
// anodes, from p. 28 of Finkelshtein and Pavlova (1999).
var finPavExponents = map[int]float64{
	24: 0.23,
	45: 0.17,
	74: 0.15,
}

const (
	// finPavBK is the K-shell b parameter.
	finPavBK = 0.35 * 1.73
	// Continuum and line σ numerators.
	finPavSigmaContinuum = 4.0e5
	finPavSigmaLine      = 4.5e5
)

type finPav struct {
	env Env
}

// NewFinPav returns the model of Finkelshtein and Pavlova. Anodes without a
// tabulated exponent produce no continuum.
func NewFinPav(env Env) Strategy { return finPav{env: env} }

func (f finPav) ContinuumIntensity(p *Params, wavelength, width float64) (float64, bool) {
	z := p.Anode.Z
	a, ok := finPavExponents[z]
	if !ok {
		return 0, true
	}
	zf := float64(z)
	e0 := p.Voltage
	energy := units.Energy(wavelength)
	minWl := p.MinWavelength()

	b := math.Pow(wavelength/(2*minWl), a)
	t := math.Pi / math.Sqrt(3)
	l := finPavLog(zf, e0, energy)
	sigma := finPavSigmaContinuum / (math.Pow(e0, 1.65) - math.Pow(energy, 1.65))
	absorb, ok := f.absorption(p, wavelength, sigma)
	if !ok {
		return 0, false
	}
	r := backscatter(zf, e0/energy)

	perAngstrom := 7.52e-5 * zf * (1/minWl - 1/wavelength) * (1 / wavelength) *
		b * (t / l) * absorb * r / (4 * math.Pi)
	return perAngstrom * width, true
}

// absorption is the depth-distribution absorption factor
// 1/((1+χ/σ)(1+h/(1+h)·χ/σ)) with χ = μ/sin(take-off) and h = 1.2·A/Z².
func (f finPav) absorption(p *Params, wavelength, sigma float64) (float64, bool) {
	z := p.Anode.Z
	weight, ok := atomdata.AtomicWeight(z)
	if !ok {
		return 0, false
	}
	mu, ok := f.env.Resolver.MassAttenuation(z, wavelength)
	if !ok {
		return 0, false
	}
	h := 1.2 * weight / float64(z*z)
	chi := mu / math.Sin(p.OutAngle*units.Degree)
	return 1 / ((1 + chi/sigma) * (1 + h/(1+h)*chi/sigma)), true
}

func (f finPav) LineIntensities(p *Params) []Emission {
	z := p.Anode.Z
	zf := float64(z)
	e0 := p.Voltage
	log := f.env.logger()
	if _, ok := finPavExponents[z]; !ok {
		log.WithField("anode", z).Debug("finpav: no continuum exponent, continuum is zero")
	}
	bL := 2.519/(zf-26.6) - 0.0968 + 0.0103*zf

	var out []Emission
	for _, rec := range modelRecords(f.env.Catalog, z) {
		family := rec.Line.Family()
		if family != atomdata.FamilyK && family != atomdata.FamilyL {
			continue
		}
		yield, okY := atomdata.Yield(z, rec.Edge)
		prob, okP := atomdata.TransitionProbability(rec.Line, z)
		if !okY || !okP {
			continue
		}
		ec := rec.EdgeEnergy
		u := rec.Overvoltage(e0)
		if u <= 1 {
			continue
		}
		sigma := finPavSigmaLine / (math.Pow(e0, 1.65) - math.Pow(ec, 1.65))
		absorb, ok := f.absorption(p, rec.Wavelength(), sigma)
		if !ok {
			log.WithFields(logrus.Fields{"line": rec.Line}).Debug("finpav: no coefficient at line")
			continue
		}

		ne, b, delta := shellElectrons(rec.Edge), bL, 0.0
		if family == atomdata.FamilyK {
			b = finPavBK
			delta = 1.098e-5 * zf * zf * 0.88 * (ec / (ne * b)) * 0.75
		}
		integrated := yield * prob * (ne * b / (2 * zf)) * stoppingTerm(u) /
			finPavLog(zf, e0, ec) * absorb * backscatter(zf, u) / (4 * math.Pi) * (1 + delta)
		out = append(out, Emission{Record: rec, Intensity: integrated / rec.WidthAngstrom()})
	}
	return out
}

// finPavLog is ln((1166/J)·(2E0+E)/3) with the mean ionisation energy
// J = 11.5·Z eV.
func finPavLog(z, e0, energy float64) float64 {
	return math.Log(1166 / (11.5 * z) * (2*e0 + energy) / 3)
}

// backscatter is the electron backscatter factor R for overvoltage u,
// capped at u = 10. The constant term of r2 is -0.1836; the source book
// prints it with the wrong sign.
func backscatter(z, u float64) float64 {
	u = math.Min(10, u)
	u2, u3 := u*u, u*u*u
	r1 := 8.73e-3*u3 - 0.1669*u2 + 0.9662*u + 0.4523
	r2 := 2.703e-3*u3 - 5.182e-2*u2 + 0.302*u - 0.1836
	r3 := (0.887*u3 - 3.44*u2 + 9.33*u - 6.43) / u3
	return r1 - r2*math.Log(r3*z+25)
}
