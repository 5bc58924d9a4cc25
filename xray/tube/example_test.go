package tube_test

import (
	"fmt"

	"github.com/cwbudde/algo-xrf/xray/catalog"
	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/coeff/kramers"
	"github.com/cwbudde/algo-xrf/xray/tube"
)

func ExampleEngine_Calculate() {
	res := coeff.NewResolver(kramers.New())
	eng := tube.New(catalog.NewForAnodes(res), res)

	// Rhodium anode, 50 kV, 50 µm beryllium window
	sp, err := eng.Calculate(tube.DefaultParams())
	if err != nil {
		fmt.Println(err)
		return
	}

	first, last := sp.Continuum[0], sp.Continuum[len(sp.Continuum)-1]
	peak, _ := sp.MaxLineIntegrated()
	fmt.Printf("Continuum: %.4f to %.2f Å\n", first.Lower(), last.Upper())
	fmt.Printf("Strongest line: %.6f\n", peak)
	fmt.Printf("Shortest line: %.4f Å\n", sp.Lines[0].Wavelength)

	// Output:
	// Continuum: 0.2480 to 12.00 Å
	// Strongest line: 1.000000
	// Shortest line: 0.5566 Å
}

func ExampleParseModel() {
	for _, name := range []string{"nist", "ebel", "finpav"} {
		m, _ := tube.ParseModel(name)
		fmt.Println(m.Description())
	}

	// Output:
	// NIST (Pella et al.)
	// Horst Ebel's algorithms
	// Finkelshtein and Pavlova
}

func ExampleCompute() {
	res := coeff.NewResolver(kramers.New())
	env := tube.Env{Catalog: catalog.NewForAnodes(res), Resolver: res}

	// A calculation below every anode edge yields no lines.
	p := tube.DefaultParams()
	p.Voltage = 2
	_, err := tube.Compute(env, p, tube.NewEbel(env))
	fmt.Println(err)

	// Output:
	// tube: no characteristic lines generated
}
