package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/catalog"
)

func NewLinesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lines [anode ...]",
		Short: "List the characteristic lines known for the anodes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			anodes := atomdata.AnodeElements()
			if len(args) > 0 {
				anodes = anodes[:0]
				for _, a := range args {
					e, err := lookupElement("anode", a, atomdata.AnodeElements())
					if err != nil {
						return err
					}
					anodes = append(anodes, e)
				}
			}

			cat := catalog.NewForAnodes(newResolver())
			cat.LogCoverage(logrusLogger())

			out := cmd.OutOrStdout()
			for _, a := range anodes {
				fmt.Fprintln(out, bold("%s (Z=%d):", a.Symbol, a.Z))
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "  Line\tE [keV]\tλ [Å]\tWidth [eV]\tEdge\tEdge [keV]\n")
				for _, r := range cat.Records(a.Z) {
					fmt.Fprintf(tw, "  %s\t%.4f\t%.5f\t%.2f\t%s\t%.4f\n",
						r.Line, r.Energy, r.Wavelength(), r.Width, r.Edge, r.EdgeEnergy)
				}
				_ = tw.Flush()
			}
			return nil
		},
	}
}
