// Package detector turns a tube spectrum into what an energy-dispersive
// detector would record: the spectrum is binned on a uniform energy grid
// and convolved with a Gaussian resolution function of fixed FWHM.
//
// The convolution runs as FFT overlap-add, so the cost grows with the
// number of bins rather than with bins × kernel length.
package detector
