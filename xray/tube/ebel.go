package tube

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/catalog"
	"github.com/cwbudde/algo-xrf/xray/units"
)

// Ebel line constants per family: the stopping-power factor b and the
// overall scale. b is multiplied by the occupancy of the ionised shell.
var ebelSeries = map[atomdata.Family]struct {
	b, scale float64
}{
	atomdata.FamilyK: {0.35, 6.0e13},
	atomdata.FamilyL: {0.25, 6.9e13},
}

type ebel struct {
	env Env
}

// NewEbel returns the model of H. Ebel.
func NewEbel(env Env) Strategy { return ebel{env: env} }

func (e ebel) ContinuumIntensity(p *Params, wavelength, width float64) (float64, bool) {
	z := p.Anode.Z
	zf := float64(z)
	weight, ok := atomdata.AtomicWeight(z)
	if !ok {
		return 0, false
	}
	mu, ok := e.env.Resolver.MassAttenuation(z, wavelength)
	if !ok {
		return 0, false
	}
	e0 := p.Voltage
	energy := units.Energy(wavelength)
	if energy >= e0 {
		return 0, true
	}
	x := 1.109 - 0.00435*zf + 0.00175*e0
	depth := ebelMassDepth(zf, weight, e0, e0/energy)
	f := escape(2 * mu * depth * e.pathRatio(p))
	perAngstrom := 1.35e9 * zf * math.Pow(e0/energy-1, x) * f *
		units.KeVAngstrom / (wavelength * wavelength)
	return perAngstrom * width, true
}

// pathRatio is sin φ / sin ε for incidence φ and take-off ε.
func (e ebel) pathRatio(p *Params) float64 {
	return math.Sin(p.InAngle*units.Degree) / math.Sin(p.OutAngle*units.Degree)
}

func (e ebel) LineIntensities(p *Params) []Emission {
	z := p.Anode.Z
	zf := float64(z)
	log := e.env.logger()
	weight, ok := atomdata.AtomicWeight(z)
	if !ok {
		return nil
	}

	var out []Emission
	for _, rec := range modelRecords(e.env.Catalog, z) {
		series, ok := ebelSeries[rec.Line.Family()]
		if !ok {
			continue
		}
		yield, okY := atomdata.Yield(z, rec.Edge)
		prob, okP := atomdata.TransitionProbability(rec.Line, z)
		if !okY || !okP {
			continue
		}
		u0 := rec.Overvoltage(p.Voltage)
		if u0 <= 1 {
			continue
		}
		tau, ok := e.env.Resolver.Tau(z, rec.Wavelength())
		if !ok {
			log.WithFields(logrus.Fields{"line": rec.Line}).Debug("ebel: no coefficient at line")
			continue
		}

		invS := inverseStopping(zf, shellElectrons(rec.Edge)*series.b, rec.EdgeEnergy, u0)
		r := 1 - 0.0081517*zf + 3.613e-5*zf*zf + 0.009583*zf*math.Exp(-u0) + 0.001141*p.Voltage
		f := escape(2 * tau * ebelMassDepth(zf, weight, p.Voltage, u0) * e.pathRatio(p))

		integrated := series.scale * invS * r * yield * prob * f
		out = append(out, Emission{Record: rec, Intensity: integrated / rec.WidthAngstrom()})
	}
	return out
}

// inverseStopping is the stopping-power factor 1/S for atomic number z,
// zb = z_j·b_j, edge energy (keV) and overvoltage u0. It stays finite as
// u0 approaches 1.
func inverseStopping(z, zb, edgeEnergy, u0 float64) float64 {
	j := 0.0135 * z
	sqrtU := math.Sqrt(u0)
	return zb / z * (stoppingTerm(u0) +
		16.05*math.Sqrt(j/edgeEnergy)*(sqrtU*math.Log(u0)+2*(1-sqrtU)))
}

// ebelMassDepth is the mean depth ρz (g/cm²) of photon generation for
// overvoltage u0.
func ebelMassDepth(z, weight, e0, u0 float64) float64 {
	j := 0.0135 * z
	rangeM := weight / z * (0.787e-5*math.Sqrt(j)*math.Pow(e0, 1.5) + 0.735e-6*e0*e0)
	lnZ := math.Log(z)
	m := 0.1382 - 0.9211/math.Sqrt(z)
	eta := math.Pow(e0, m) * (0.1904 - 0.2236*lnZ + 0.1292*lnZ*lnZ - 0.0149*lnZ*lnZ*lnZ)
	lnU := math.Log(u0)
	return rangeM * lnU * (0.49269 - 1.0987*eta + 0.78557*eta*eta) /
		(0.70256 - 1.09865*eta + 1.0046*eta*eta + lnU)
}

// escape is the absorption correction (1 - e^-x)/x, 1 at x = 0.
func escape(x float64) float64 {
	if x == 0 {
		return 1
	}
	return -math.Expm1(-x) / x
}

// stoppingTerm is u·ln u + 1 - u, the integral of ln u over the electron
// path, which vanishes at u = 1.
func stoppingTerm(u float64) float64 {
	return u*math.Log(u) + 1 - u
}

// shellElectrons is the occupancy of the shell behind edge e.
func shellElectrons(e atomdata.Edge) float64 {
	if e == atomdata.EdgeL3 {
		return 4
	}
	return 2
}

// modelRecords returns the catalog records of element z that the
// probability-based models evaluate: every line except the composite
// L-alpha1,2, which would count L-alpha1 and L-alpha2 twice.
func modelRecords(cat *catalog.Catalog, z int) []catalog.Record {
	recs := cat.Records(z)
	out := recs[:0]
	for _, r := range recs {
		if r.Line == atomdata.LAlpha12 {
			continue
		}
		out = append(out, r)
	}
	return out
}
