package detector_test

import (
	"fmt"

	"github.com/cwbudde/algo-xrf/xray/detector"
	"github.com/cwbudde/algo-xrf/xray/spectrum"
	"github.com/cwbudde/algo-xrf/xray/units"
)

func ExampleDetector_Apply() {
	d, err := detector.New(0.15, detector.WithStep(0.01))
	if err != nil {
		panic(err)
	}

	// One rhodium K-alpha line with unit integrated intensity.
	s := &spectrum.Spectrum{Lines: []spectrum.Part{
		{Wavelength: units.Wavelength(20.145), Width: 0.001, Intensity: 1000},
	}}
	prof, err := d.Apply(s)
	if err != nil {
		panic(err)
	}

	peak := 0
	for i, v := range prof.Counts {
		if v > prof.Counts[peak] {
			peak = i
		}
	}
	fmt.Printf("Peak at %.3f keV\n", prof.Energy[peak])
	fmt.Printf("Total %.4f\n", prof.Total())
	// Output:
	// Peak at 20.145 keV
	// Total 1.0000
}
