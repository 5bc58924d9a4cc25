package detector

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xrf/xray/spectrum"
	"github.com/cwbudde/algo-xrf/xray/units"
)

// fwhmToSigma converts a Gaussian FWHM to its standard deviation.
var fwhmToSigma = 1 / (2 * math.Sqrt(2*math.Ln2))

// kernelHalfWidth is the kernel extent in standard deviations.
const kernelHalfWidth = 5

// Profile is a spectrum on a uniform energy grid.
type Profile struct {
	// Step is the bin width in keV.
	Step float64
	// Energy holds the bin centres in keV.
	Energy []float64
	// Counts holds the intensity collected in each bin.
	Counts []float64
}

// Total returns the sum of all bins.
func (p *Profile) Total() float64 {
	sum := 0.0
	for _, v := range p.Counts {
		sum += v
	}
	return sum
}

// Config holds the detector settings.
type Config struct {
	// FWHM is the resolution in keV.
	FWHM float64
	// Step is the bin width in keV.
	Step float64
	// Efficiency, if set, weights each bin by the detection probability at
	// its centre energy.
	Efficiency func(energy float64) float64
}

// Option mutates a Config.
type Option func(*Config)

// WithStep sets the bin width in keV.
func WithStep(step float64) Option {
	return func(c *Config) {
		if step > 0 {
			c.Step = step
		}
	}
}

// WithEfficiency sets the detection efficiency curve.
func WithEfficiency(eff func(energy float64) float64) Option {
	return func(c *Config) {
		c.Efficiency = eff
	}
}

// Detector bins and broadens spectra. It is not safe for concurrent use.
type Detector struct {
	cfg    Config
	kernel []float64
	conv   *overlapAdd
}

// New returns a detector with resolution fwhm (keV). The default bin width
// is a tenth of the FWHM.
func New(fwhm float64, opts ...Option) (*Detector, error) {
	if !(fwhm > 0) || math.IsInf(fwhm, 0) {
		return nil, ErrInvalidFWHM
	}
	cfg := Config{FWHM: fwhm, Step: fwhm / 10}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !(cfg.Step > 0) || math.IsInf(cfg.Step, 0) {
		return nil, ErrInvalidStep
	}

	kernel := gaussian(cfg.FWHM*fwhmToSigma/cfg.Step, kernelHalfWidth)
	conv, err := newOverlapAdd(kernel)
	if err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg, kernel: kernel, conv: conv}, nil
}

// Config returns the detector settings.
func (d *Detector) Config() Config { return d.cfg }

// Kernel returns a copy of the sampled resolution function; it sums to one.
func (d *Detector) Kernel() []float64 { return append([]float64(nil), d.kernel...) }

// Bin collects s onto the energy grid without broadening. The grid runs
// from zero to past the highest energy by half a kernel. Line intensity
// is integrated over the line width and lands in one bin; continuum
// samples are spread over the bins their energy range covers.
func (d *Detector) Bin(s *spectrum.Spectrum) (*Profile, error) {
	if s == nil || s.Empty() {
		return nil, ErrEmptySpectrum
	}
	step := d.cfg.Step
	top := 0.0
	for _, parts := range [][]spectrum.Part{s.Lines, s.Continuum} {
		for _, p := range parts {
			top = math.Max(top, units.Energy(math.Max(p.Lower(), p.Wavelength/2)))
		}
	}
	n := int(math.Ceil(top/step)) + len(d.kernel)/2 + 1
	prof := &Profile{Step: step, Energy: make([]float64, n), Counts: make([]float64, n)}
	for i := range prof.Energy {
		prof.Energy[i] = (float64(i) + 0.5) * step
	}

	for _, p := range s.Lines {
		prof.deposit(p.Energy(), p.Integrated())
	}
	for _, p := range s.Continuum {
		lo := units.Energy(p.Upper())
		hi := units.Energy(math.Max(p.Lower(), p.Wavelength/2))
		prof.spread(lo, hi, p.Intensity)
	}
	return prof, nil
}

// Apply bins s, applies the efficiency curve and convolves with the
// resolution function. The result has the grid of Bin.
func (d *Detector) Apply(s *spectrum.Spectrum) (*Profile, error) {
	prof, err := d.Bin(s)
	if err != nil {
		return nil, err
	}
	if d.cfg.Efficiency != nil {
		eff := make([]float64, len(prof.Energy))
		for i, e := range prof.Energy {
			eff[i] = d.cfg.Efficiency(e)
		}
		vecmath.MulBlockInPlace(prof.Counts, eff)
	}

	full, err := d.conv.process(prof.Counts)
	if err != nil {
		return nil, err
	}
	half := len(d.kernel) / 2
	copy(prof.Counts, full[half:half+len(prof.Counts)])
	return prof, nil
}

func (p *Profile) deposit(energy, amount float64) {
	i := int(energy / p.Step)
	if i < 0 || i >= len(p.Counts) {
		return
	}
	p.Counts[i] += amount
}

// spread distributes amount uniformly over the energy range [lo, hi].
func (p *Profile) spread(lo, hi, amount float64) {
	if !(hi > lo) {
		p.deposit(lo, amount)
		return
	}
	first := int(lo / p.Step)
	last := min(int(hi/p.Step), len(p.Counts)-1)
	for i := max(first, 0); i <= last; i++ {
		binLo := float64(i) * p.Step
		overlap := math.Min(hi, binLo+p.Step) - math.Max(lo, binLo)
		if overlap > 0 {
			p.Counts[i] += amount * overlap / (hi - lo)
		}
	}
}

// gaussian samples a unit-area Gaussian of standard deviation sigma (in
// bins) over ±halfWidth·sigma.
func gaussian(sigma float64, halfWidth int) []float64 {
	m := int(math.Ceil(float64(halfWidth) * sigma))
	k := make([]float64, 2*m+1)
	sum := 0.0
	for i := range k {
		x := float64(i-m) / sigma
		k[i] = math.Exp(-0.5 * x * x)
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}
