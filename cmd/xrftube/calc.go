package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/detector"
	"github.com/cwbudde/algo-xrf/xray/spectrum"
	"github.com/cwbudde/algo-xrf/xray/tube"
)

type calcFlags struct {
	anode           string
	voltage         float64
	inAngle         float64
	outAngle        float64
	window          string
	windowThickness float64
	filter          string
	filterThickness float64
	slice           float64
	maxWavelength   float64
	noSplit         bool
	model           string
	continuum       bool
	fwhm            float64
}

func NewCalcCommand() *cobra.Command {
	def := tube.DefaultParams()
	f := calcFlags{
		anode:           def.Anode.Symbol,
		voltage:         def.Voltage,
		inAngle:         def.InAngle,
		outAngle:        def.OutAngle,
		window:          def.Window.Symbol,
		windowThickness: def.WindowThickness,
		slice:           def.Slice,
		maxWavelength:   def.MaxWavelength,
		model:           def.Model.String(),
	}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a tube spectrum",
		Long: `Calculate the spectrum of a tube. Line intensities are printed relative
to the strongest line; continuum intensities share that scale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			s, err := newEngine().Calculate(p)
			if err != nil && !errors.Is(err, tube.ErrNoLines) {
				return err
			}
			out := cmd.OutOrStdout()
			printSummary(out, p, s)
			if errors.Is(err, tube.ErrNoLines) {
				fmt.Fprintln(out, dim("  no characteristic lines at %.1f kV; spectrum is not normalised", p.Voltage))
			}
			printLines(out, s.Lines)
			if f.continuum {
				printParts(out, "Continuum:", s.Continuum)
			}
			if f.fwhm > 0 {
				return printDetector(out, s, f.fwhm)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.anode, "anode", "a", f.anode, "anode element (Rh, Cr, W)")
	fl.Float64VarP(&f.voltage, "voltage", "v", f.voltage, "tube voltage in kV")
	fl.Float64Var(&f.inAngle, "in-angle", f.inAngle, "electron incidence angle in degrees")
	fl.Float64Var(&f.outAngle, "out-angle", f.outAngle, "take-off angle in degrees")
	fl.StringVar(&f.window, "window", f.window, "window element")
	fl.Float64Var(&f.windowThickness, "window-thickness", f.windowThickness, "window thickness in µm")
	fl.StringVar(&f.filter, "filter", "", "filter composition as Symbol:fraction,... (Al, Cu, Zn, Pb)")
	fl.Float64Var(&f.filterThickness, "filter-thickness", 0, "filter thickness in µm")
	fl.Float64Var(&f.slice, "slice", f.slice, "continuum slice width in Å")
	fl.Float64Var(&f.maxWavelength, "max-wavelength", f.maxWavelength, "longest wavelength in Å")
	fl.BoolVar(&f.noSplit, "no-split", false, "do not split continuum slices at anode absorption edges")
	fl.StringVarP(&f.model, "model", "m", f.model, "calculation model (nist, ebel, finpav)")
	fl.BoolVar(&f.continuum, "continuum", false, "print every continuum slice")
	fl.Float64Var(&f.fwhm, "fwhm", 0, "also show the spectrum seen by a detector with this resolution in keV")

	return cmd
}

func (f calcFlags) params() (tube.Params, error) {
	anode, err := lookupElement("anode", f.anode, atomdata.AnodeElements())
	if err != nil {
		return tube.Params{}, err
	}
	window, err := lookupElement("window", f.window, atomdata.WindowElements())
	if err != nil {
		return tube.Params{}, err
	}
	filter, err := parseFilter(f.filter)
	if err != nil {
		return tube.Params{}, err
	}
	model, err := tube.ParseModel(f.model)
	if err != nil {
		return tube.Params{}, err
	}

	// Options drop out-of-range values; flags are taken as given so that
	// Validate sees what the user asked for.
	p := tube.Params{
		Anode:           anode,
		InAngle:         f.inAngle,
		OutAngle:        f.outAngle,
		Window:          window,
		WindowThickness: f.windowThickness,
		Filter:          filter,
		FilterThickness: f.filterThickness,
		Voltage:         f.voltage,
		Slice:           f.slice,
		MaxWavelength:   f.maxWavelength,
		SplitAtEdge:     !f.noSplit,
		Model:           model,
	}
	return p, p.Validate()
}

func printSummary(out io.Writer, p tube.Params, s *spectrum.Spectrum) {
	fmt.Fprintln(out, bold("Tube:"))
	fmt.Fprintf(out, "  Anode: %s at %.1f kV, angles %.0f°/%.0f°\n", p.Anode, p.Voltage, p.InAngle, p.OutAngle)
	fmt.Fprintf(out, "  Window: %.0f µm %s\n", p.WindowThickness, p.Window)
	if p.HasFilter() {
		fmt.Fprintf(out, "  Filter: %.0f µm", p.FilterThickness)
		for _, c := range p.Filter {
			fmt.Fprintf(out, " %s %.0f%%", c.Element, 100*c.Concentration)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  Model: %s\n", p.Model.Description())

	total := 0.0
	for _, c := range s.Continuum {
		total += c.Intensity
	}
	fmt.Fprintln(out, bold("Continuum:"))
	if n := len(s.Continuum); n > 0 {
		fmt.Fprintf(out, "  %d slices from %.4f to %.2f Å, total %.4g\n",
			n, s.Continuum[0].Lower(), s.Continuum[n-1].Upper(), total)
	}
}

func printLines(out io.Writer, lines []spectrum.Part) {
	printParts(out, "Lines:", lines)
}

func printParts(out io.Writer, title string, parts []spectrum.Part) {
	fmt.Fprintln(out, bold("%s", title))
	if len(parts) == 0 {
		fmt.Fprintln(out, dim("  none"))
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  λ [Å]\tE [keV]\tWidth [Å]\tIntensity\n")
	for _, p := range parts {
		fmt.Fprintf(tw, "  %.5f\t%.4f\t%.5f\t%.6g\n", p.Wavelength, p.Energy(), p.Width, p.Intensity)
	}
	_ = tw.Flush()
}

func printDetector(out io.Writer, s *spectrum.Spectrum, fwhm float64) error {
	d, err := detector.New(fwhm)
	if err != nil {
		return err
	}
	prof, err := d.Apply(s)
	if err != nil {
		return err
	}
	peak := 0
	for i, v := range prof.Counts {
		if v > prof.Counts[peak] {
			peak = i
		}
	}
	fmt.Fprintln(out, bold("Detector:"))
	fmt.Fprintf(out, "  %d bins of %.4f keV, FWHM %.3f keV\n", len(prof.Counts), prof.Step, fwhm)
	fmt.Fprintf(out, "  Peak at %.3f keV, total %.4g\n", prof.Energy[peak], prof.Total())
	return nil
}
