package tube

import "errors"

var (
	ErrNoAnode             = errors.New("tube: no anode element")
	ErrFilterConcentration = errors.New("tube: filter concentrations must sum to 1")
	ErrInvalidParams       = errors.New("tube: invalid parameters")
	ErrUnknownModel        = errors.New("tube: unknown model")
	ErrNoLines             = errors.New("tube: no characteristic lines generated")
)
