package tube

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Model selects the physical model used for a calculation.
type Model int

const (
	ModelNIST Model = iota
	ModelEbel
	ModelFinPav

	modelCount
)

var modelInfo = [modelCount]struct {
	name        string
	description string
	aliases     []string
}{
	ModelNIST:   {"nist", "NIST (Pella et al.)", []string{"pella"}},
	ModelEbel:   {"ebel", "Horst Ebel's algorithms", nil},
	ModelFinPav: {"finpav", "Finkelshtein and Pavlova", []string{"finkelshtein", "fp"}},
}

// Models returns every model in declaration order.
func Models() []Model {
	out := make([]Model, 0, modelCount)
	for m := Model(0); m < modelCount; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is a declared model.
func (m Model) Valid() bool { return m >= 0 && m < modelCount }

func (m Model) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modelInfo[m].name
}

// Description returns the display name of the model.
func (m Model) Description() string {
	if !m.Valid() {
		return "unknown model"
	}
	return modelInfo[m].description
}

// ParseModel resolves a model name or alias, ignoring case.
func ParseModel(s string) (Model, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m := Model(0); m < modelCount; m++ {
		if s == modelInfo[m].name {
			return m, nil
		}
		for _, a := range modelInfo[m].aliases {
			if s == a {
				return m, nil
			}
		}
	}
	return 0, pkgerrors.Wrapf(ErrUnknownModel, "%q", s)
}
