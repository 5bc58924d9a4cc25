// Package catalog joins the sparse atomic data tables into one record per
// (line, element) pair.
//
// A record exists only when the line energy, natural width, parent edge and
// edge energy are all known for that element. Missing facts are common in
// the literature tables and simply leave the line out. The join runs once
// in New; afterwards a Catalog is read-only and safe for concurrent use.
package catalog
