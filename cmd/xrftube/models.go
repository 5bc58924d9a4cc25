package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrf/xray/tube"
)

func NewModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the calculation models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, m := range tube.Models() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", m, m.Description())
			}
		},
	}
}
