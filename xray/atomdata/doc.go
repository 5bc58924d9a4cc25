// Package atomdata holds the tabulated atomic-physics data used to model
// x-ray tube emission: the closed set of characteristic lines, their parent
// absorption edges, and sparse per-element tables of line energies, natural
// widths, fluorescence yields, transition probabilities and atomic weights.
//
// Every table is sparse. A missing (line, Z) entry means the quantity is not
// covered by the literature the table was compiled from; lookups report that
// with a false second return value and never panic.
//
// All tables are package-level values built from literals. Nothing is
// computed or logged at load time and the data is safe for concurrent reads.
package atomdata
