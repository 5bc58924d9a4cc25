package catalog

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/units"
)

// Record is everything known about one characteristic line of one element.
type Record struct {
	Line atomdata.Line
	Z    int
	// Energy is the line energy in keV.
	Energy float64
	// Width is the natural line width in eV.
	Width float64
	// Edge is the absorption edge whose vacancy feeds the line.
	Edge atomdata.Edge
	// EdgeEnergy is the energy of Edge in keV.
	EdgeEnergy float64
}

// Wavelength returns the line wavelength in Å.
func (r Record) Wavelength() float64 { return units.Wavelength(r.Energy) }

// WidthAngstrom returns the natural width converted to Å.
func (r Record) WidthAngstrom() float64 { return units.LineWidth(r.Energy, r.Width) }

// Overvoltage returns voltage / EdgeEnergy for a tube voltage in kV.
func (r Record) Overvoltage(voltage float64) float64 { return voltage / r.EdgeEnergy }

// Excited reports whether a tube at voltage kV can create the parent
// vacancy: the overvoltage ratio must be strictly greater than one.
func (r Record) Excited(voltage float64) bool { return r.Overvoltage(voltage) > 1 }

type key struct {
	line atomdata.Line
	z    int
}

// Catalog is the joined line table for a fixed set of elements.
type Catalog struct {
	records map[key]Record
	byZ     map[int][]Record
	zs      []int
}

// New joins the atomic data tables for every element in zs. Edge energies
// come from r. Duplicate elements are ignored.
func New(r *coeff.Resolver, zs ...int) *Catalog {
	c := &Catalog{
		records: make(map[key]Record),
		byZ:     make(map[int][]Record),
	}
	for _, z := range zs {
		if _, seen := c.byZ[z]; seen {
			continue
		}
		c.zs = append(c.zs, z)
		c.byZ[z] = nil
		for _, l := range atomdata.Lines() {
			rec, ok := join(r, l, z)
			if !ok {
				continue
			}
			c.records[key{l, z}] = rec
			c.byZ[z] = append(c.byZ[z], rec)
		}
	}
	sort.Ints(c.zs)
	return c
}

// NewForAnodes builds a catalog for the supported anode elements.
func NewForAnodes(r *coeff.Resolver) *Catalog {
	return New(r, atomdata.AnodeZ()...)
}

func join(r *coeff.Resolver, l atomdata.Line, z int) (Record, bool) {
	energy, ok := atomdata.Energy(l, z)
	if !ok {
		return Record{}, false
	}
	width, ok := atomdata.Width(l, z)
	if !ok {
		return Record{}, false
	}
	edge, ok := atomdata.EdgeOf(l)
	if !ok {
		return Record{}, false
	}
	edgeEnergy, ok := r.EdgeEnergy(z, edge)
	if !ok {
		return Record{}, false
	}
	return Record{
		Line:       l,
		Z:          z,
		Energy:     energy,
		Width:      width,
		Edge:       edge,
		EdgeEnergy: edgeEnergy,
	}, true
}

// Lookup returns the record of line l for element z.
func (c *Catalog) Lookup(l atomdata.Line, z int) (Record, bool) {
	rec, ok := c.records[key{l, z}]
	return rec, ok
}

// Records returns the records of element z in line declaration order.
func (c *Catalog) Records(z int) []Record {
	return append([]Record(nil), c.byZ[z]...)
}

// Elements returns the atomic numbers the catalog was built for, ascending.
func (c *Catalog) Elements() []int {
	return append([]int(nil), c.zs...)
}

// Len returns the number of joined records.
func (c *Catalog) Len() int { return len(c.records) }

// FamilyOf returns the family of line l.
func FamilyOf(l atomdata.Line) atomdata.Family { return l.Family() }

// LinesInFamily returns the lines of family f.
func LinesInFamily(f atomdata.Family) []atomdata.Line { return atomdata.LinesInFamily(f) }

// LogCoverage writes one debug entry per joined record and one info entry
// per element summarising coverage. Nothing is logged unless called.
func (c *Catalog) LogCoverage(log logrus.FieldLogger) {
	total := len(atomdata.Lines())
	for _, z := range c.zs {
		for _, rec := range c.byZ[z] {
			log.WithFields(logrus.Fields{
				"z":           z,
				"line":        rec.Line,
				"energy_kev":  rec.Energy,
				"width_ev":    rec.Width,
				"edge":        rec.Edge,
				"edge_energy": rec.EdgeEnergy,
			}).Debug("line record")
		}
		log.WithFields(logrus.Fields{
			"z":       z,
			"lines":   len(c.byZ[z]),
			"missing": total - len(c.byZ[z]),
		}).Info("catalog coverage")
	}
}
