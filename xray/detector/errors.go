package detector

import "errors"

var (
	ErrInvalidFWHM   = errors.New("detector: FWHM must be positive")
	ErrInvalidStep   = errors.New("detector: bin width must be positive")
	ErrEmptySpectrum = errors.New("detector: spectrum has no parts")
)
