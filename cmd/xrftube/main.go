// Command xrftube computes x-ray tube emission spectra.
//
// Usage:
//
//	xrftube calc [flags]
//	xrftube lines [anode]
//	xrftube models
//
// Examples:
//
//	xrftube calc --anode Rh --voltage 50
//	xrftube calc --anode W --voltage 30 --model ebel --filter Al:1 --filter-thickness 100
//	xrftube calc --continuum --fwhm 0.15
package main

import (
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultLogLevel = "warn"

var logLevel = defaultLogLevel

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to parse log level")
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func logrusLogger() logrus.FieldLogger { return logrus.StandardLogger() }

func main() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xrftube",
		Short: "xrftube computes x-ray tube emission spectra",
		Long: `xrftube computes the primary spectrum of an x-ray tube: the
bremsstrahlung continuum and the characteristic lines of the anode,
attenuated by the tube window and an optional filter.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", defaultLogLevel, "log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(
		NewCalcCommand(),
		NewLinesCommand(),
		NewModelsCommand(),
	)

	return cmd
}
