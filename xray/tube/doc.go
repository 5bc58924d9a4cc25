// Package tube computes the emission spectrum of an x-ray tube.
//
// A calculation slices the bremsstrahlung continuum between the
// Duane–Hunt limit and a maximum wavelength, optionally breaking the slices
// at the anode absorption edges, and asks a Strategy for the continuum
// intensity of every slice and for the characteristic line intensities.
// The shared driver then gates the lines on overvoltage, sorts them,
// applies window and filter transmission and normalises the result so that
// the strongest line integrates to one.
//
// Three published models are provided:
//
//   - ModelNIST: Pella, Feng and Small (X-Ray Spectrom. 14, 1985 and 20,
//     1991), with empirical L-series lines derived from L-alpha.
//   - ModelEbel: H. Ebel (X-Ray Spectrom. 28, 1999), using electron
//     mass-depth and stopping-power expressions.
//   - ModelFinPav: A.L. Finkelshtein and T.O. Pavlova (X-Ray Spectrom. 28,
//     1999), with a backscatter polynomial and per-anode exponents.
//
// Calculations never fail on missing atomic data. A line whose data is
// missing is skipped and a continuum sample whose coefficient is missing
// is zeroed. Only the complete absence of lines is reported, as ErrNoLines.
//
// Basic usage:
//
//	res := coeff.NewResolver(kramers.New())
//	eng := tube.New(catalog.NewForAnodes(res), res)
//	sp, err := eng.Calculate(tube.DefaultParams())
package tube
