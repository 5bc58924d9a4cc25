package tube

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/units"
)

// pellaConstants are the A, B and D regression constants of the line to
// continuum ratio, from Pella et al. (1985) p. 131 and (1991) p. 109.
var pellaConstants = []struct {
	line    atomdata.Line
	a, b, d float64
}{
	{atomdata.KAlpha12, 3.22e6, 9.76e4, -0.39},
	{atomdata.KBeta1, 5.13e5, 2.05e5, -0.014},
	{atomdata.LAlpha12, 2.02e7, 2.65e6, 0.21},
	{atomdata.MAlpha12, 1.76e8, 1.02e6, 0},
}

// eulerGamma is the Euler–Mascheroni constant.
const eulerGamma = 0.5772156649015329

type nist struct {
	env Env
}

// NewNIST returns the Pella, Feng and Small model.
func NewNIST(env Env) Strategy { return nist{env: env} }

func (n nist) ContinuumIntensity(p *Params, wavelength, width float64) (float64, bool) {
	z := p.Anode.Z
	minWl := p.MinWavelength()
	f, ok := n.absorption(p, wavelength)
	if !ok {
		return 0, false
	}
	perAngstrom := f * 2.72e-6 * float64(z) * ((wavelength/minWl - 1) / (wavelength * wavelength))
	return perAngstrom * width, true
}

// absorption is the anode self-absorption factor F = 1/(1+c·ξ)².
func (n nist) absorption(p *Params, wavelength float64) (float64, bool) {
	z := p.Anode.Z
	tau, ok := n.env.Resolver.Tau(z, wavelength)
	if !ok {
		return 0, false
	}
	minWl := p.MinWavelength()
	zz := float64(z * z)
	xi := tau / math.Sin(p.OutAngle*units.Degree) *
		(math.Pow(minWl, -1.65) - math.Pow(wavelength, -1.65))
	c := (1 + 1/(1+2.56e-3*zz)) /
		((1 + 2.56e3*minWl/zz) * (0.25*xi + 1e4))
	return 1 / ((1 + c*xi) * (1 + c*xi)), true
}

func (n nist) LineIntensities(p *Params) []Emission {
	var (
		z     = p.Anode.Z
		zf    = float64(z)
		log   = n.env.logger()
		out   []Emission
		la12  Emission
		hasLa bool
	)
	for _, k := range pellaConstants {
		rec, ok := n.env.Catalog.Lookup(k.line, z)
		if !ok || rec.Wavelength() > p.MaxWavelength {
			continue
		}
		u0 := rec.Overvoltage(p.Voltage)
		if u0 <= 1 {
			continue
		}
		ratio := (k.a/(k.b+zf*zf*zf*zf) + k.d) *
			math.Exp(-0.5*sq((u0-1)/(1.17*u0+3.2))) *
			(u0*math.Log(u0)/(u0-1) - 1)

		width := rec.WidthAngstrom()
		cont, ok := n.ContinuumIntensity(p, rec.Wavelength(), width)
		if !ok {
			log.WithField("line", k.line).Debug("nist: no coefficient at line")
			continue
		}
		em := Emission{Record: rec, Intensity: ratio * cont / width}
		if k.line == atomdata.LAlpha12 {
			la12, hasLa = em, true
			continue
		}
		out = append(out, em)
	}
	if !hasLa {
		return out
	}
	lines, ok := n.lSeries(p, la12.Intensity)
	if !ok {
		log.WithField("anode", z).Debug("nist: keeping combined L-alpha, L-series data incomplete")
		return append(out, la12)
	}
	return append(out, lines...)
}

// lSeries splits L-alpha1,2 into the L lines of Pella et al. (1991). Every
// line is expressed relative to L-alpha1, taken as la12/1.1, and corrected
// for the difference in anode self-absorption against L-alpha.
func (n nist) lSeries(p *Params, la12 float64) ([]Emission, bool) {
	z := p.Anode.Z
	sum, ok := n.env.Resolver.Summary(z)
	if !ok {
		return nil, false
	}
	a1, ok1 := n.env.Catalog.Lookup(atomdata.LAlpha1, z)
	a2, ok2 := n.env.Catalog.Lookup(atomdata.LAlpha2, z)
	if !ok1 || !ok2 {
		return nil, false
	}
	fAlpha, ok := n.absorption(p, units.Wavelength((a1.Energy+a2.Energy)/2))
	if !ok || fAlpha == 0 {
		return nil, false
	}

	yield := (sum.Yields[coeff.ShellL1] + sum.Yields[coeff.ShellL2] + sum.Yields[coeff.ShellL3]) / 3
	var cross [3]float64
	for i, shell := range []coeff.Shell{coeff.ShellL1, coeff.ShellL2, coeff.ShellL3} {
		edge := sum.Edges[shell]
		if !(edge > 0) {
			return nil, false
		}
		electrons := 2.0
		if shell == coeff.ShellL3 {
			electrons = 4
		}
		cross[i] = ionization(electrons, p.Voltage/edge, pellaEZ(edge, z), yield)
	}
	uL1, uL2, uL3 := cross[0], cross[1], cross[2]
	if !(uL3 > 0) || math.IsInf(uL3, 0) {
		return nil, false
	}

	lnZ := math.Log(float64(z))
	ref := la12 / 1.1
	beta1 := (0.565*lnZ - 0.9445) * (uL2 / uL3) * ref
	beta3 := (0.5632*lnZ - 1.9501) * (uL1 / uL3) * ref
	series := []struct {
		line      atomdata.Line
		intensity float64
		// absorbed lines are corrected by F(line)/F(L-alpha).
		absorbed bool
	}{
		{atomdata.LAlpha1, ref, false},
		{atomdata.LAlpha2, 0.1 * ref, false},
		{atomdata.LBeta2, (0.2575*lnZ - 0.8845) * ref, true},
		{atomdata.LIota, 0.044 * ref, true},
		{atomdata.LBeta1, beta1, true},
		{atomdata.LBeta3, beta3, true},
		{atomdata.LBeta4, 0.626 * beta3, true},
		{atomdata.LEta, 0.024 * beta1, true},
		{atomdata.LGamma1, (0.3749*lnZ - 1.2873) * (uL2 / uL3) * ref, true},
		{atomdata.LGamma3, 0.068 * (uL1 / uL3) * ref, true},
	}

	out := make([]Emission, 0, len(series))
	for _, s := range series {
		rec, ok := n.env.Catalog.Lookup(s.line, z)
		if !ok || rec.Wavelength() > p.MaxWavelength {
			continue
		}
		intensity := s.intensity
		if s.absorbed {
			f, ok := n.absorption(p, rec.Wavelength())
			if !ok {
				n.env.logger().WithFields(logrus.Fields{"line": s.line}).Debug("nist: no coefficient at line")
				continue
			}
			intensity *= f / fAlpha
		}
		out = append(out, Emission{Record: rec, Intensity: intensity})
	}
	return out, true
}

// pellaEZ is the reduced edge energy of the ionisation cross-section fit,
// 1166·Ec / (9.76·Z + 58.5·Z^-0.19).
func pellaEZ(edge float64, z int) float64 {
	zf := float64(z)
	return 1166 * edge / (9.76*zf + 58.5*math.Pow(zf, -0.19))
}

// ionization is the relative subshell ionisation term
// n·ω·(U0 - 1 - (ln eZ/eZ)·(Ei(ln U0·eZ) - Ei(ln eZ))).
func ionization(electrons, u0, eZ, yield float64) float64 {
	lnEZ := math.Log(eZ)
	bracket := expIntegral(math.Log(u0*eZ)) - expIntegral(lnEZ)
	return electrons * yield * (u0 - 1 - lnEZ/eZ*bracket)
}

// expIntegral evaluates Ei(x) for x > 0 by its power series
// γ + ln x + Σ x^k/(k·k!).
func expIntegral(x float64) float64 {
	if !(x > 0) {
		return math.NaN()
	}
	sum := eulerGamma + math.Log(x)
	term := 1.0 // x^k / k!
	for k := 1; k < 500; k++ {
		term *= x / float64(k)
		add := term / float64(k)
		sum += add
		if float64(k) > x && add < 1e-15*math.Abs(sum) {
			break
		}
	}
	return sum
}

func sq(x float64) float64 { return x * x }
