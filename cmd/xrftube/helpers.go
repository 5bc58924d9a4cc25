package main

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"

	"github.com/cwbudde/algo-xrf/xray/atomdata"
	"github.com/cwbudde/algo-xrf/xray/catalog"
	"github.com/cwbudde/algo-xrf/xray/coeff"
	"github.com/cwbudde/algo-xrf/xray/coeff/kramers"
	"github.com/cwbudde/algo-xrf/xray/tube"
)

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func dim(format string, a ...interface{}) string {
	return color.New(color.Faint).Sprintf(format, a...)
}

// newResolver returns the coefficient source the command line tools use.
func newResolver() *coeff.Resolver {
	return coeff.NewResolver(kramers.New())
}

func newEngine() *tube.Engine {
	res := newResolver()
	return tube.New(catalog.NewForAnodes(res), res, tube.WithLogger(logrusLogger()))
}

func lookupElement(kind, symbol string, allowed []atomdata.Element) (atomdata.Element, error) {
	e, ok := atomdata.Lookup(symbol)
	if ok {
		for _, a := range allowed {
			if a == e {
				return e, nil
			}
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = a.Symbol
	}
	return atomdata.Element{}, pkgerrors.Errorf("unknown %s %q (choose from %s)", kind, symbol, strings.Join(names, ", "))
}

// parseFilter reads a comma separated list of Symbol:fraction pairs.
func parseFilter(list string) ([]tube.FilterComponent, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}
	var out []tube.FilterComponent
	for _, item := range strings.Split(list, ",") {
		symbol, frac, found := strings.Cut(strings.TrimSpace(item), ":")
		if !found {
			return nil, pkgerrors.Errorf("filter component %q: want Symbol:fraction", item)
		}
		e, err := lookupElement("filter element", symbol, atomdata.FilterElements())
		if err != nil {
			return nil, err
		}
		c, err := strconv.ParseFloat(frac, 64)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "filter component %q", item)
		}
		out = append(out, tube.FilterComponent{Element: e, Concentration: c})
	}
	return out, nil
}
