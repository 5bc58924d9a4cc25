// Package coeff defines the contract of the absorption-coefficient oracle
// consumed by the spectrum models, and a Resolver that adds the recovery
// rules every caller relies on.
//
// An Engine is an external collaborator. It answers two questions: the
// absorption coefficients of an element at a wavelength, and the edge
// energies and fluorescence yields of an element. It may fail with
// [ErrWithinEdge] when the requested energy sits on an absorption edge, or
// with [ErrNoData] when it has nothing for the element.
//
// Resolver turns those failures into optional results. A within-edge
// failure is retried once with the photon energy lowered by 3 eV; any other
// failure, including a failed retry, is reported as missing data with a
// false second return value.
package coeff
