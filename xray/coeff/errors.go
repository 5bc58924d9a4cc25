package coeff

import "errors"

var (
	// ErrWithinEdge reports a photon energy too close to an absorption edge
	// for the engine to resolve.
	ErrWithinEdge = errors.New("coeff: energy within absorption edge")

	// ErrNoData reports an element or energy the engine has no data for.
	ErrNoData = errors.New("coeff: no data")
)
