package eos

import (
	"fmt"
	"sort"
	"strings"
)

// Params holds model parameters by name, as read from configuration.
type Params map[string]float64

const (
	ParamGamma   = "gamma"
	ParamPCutoff = "pcutoff"
	ParamPInf    = "pinf"
)

type builder struct {
	required []string
	optional []string
	build    func(id int, p Params) Model
}

var builders = [numKinds]builder{
	KindLinearGas: {
		required: []string{ParamGamma},
		optional: []string{ParamPCutoff},
		build: func(id int, p Params) Model {
			return NewLinearGas(id, p[ParamGamma], p[ParamPCutoff])
		},
	},
	KindStiffenedGas: {
		required: []string{ParamGamma},
		optional: []string{ParamPCutoff, ParamPInf},
		build: func(id int, p Params) Model {
			return NewStiffenedGas(id, p[ParamGamma], p[ParamPCutoff], p[ParamPInf])
		},
	},
}

// NewModel builds a variant of kind k. Missing optional parameters are zero.
func NewModel(k Kind, id int, p Params) (Model, error) {
	if k < 0 || k >= numKinds {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	b := builders[k]

	for _, name := range b.required {
		if _, ok := p[name]; !ok {
			return nil, fmt.Errorf("%w: %s needs %q", ErrMissingParam, k, name)
		}
	}
	for name := range p {
		if !contains(b.required, name) && !contains(b.optional, name) {
			return nil, fmt.Errorf("%w: %s does not take %q", ErrUnknownParam, k, name)
		}
	}
	return b.build(id, p), nil
}

// NewModelNamed is NewModel with the kind given by name.
func NewModelNamed(kind string, id int, p Params) (Model, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return NewModel(k, id, p)
}

// ParamsOf returns the current parameters of m.
func ParamsOf(m Model) Params {
	p := Params{ParamGamma: m.Gamma(), ParamPCutoff: m.PCutoff()}
	if sg, ok := m.(StiffenedGas); ok {
		p[ParamPInf] = sg.PInf()
	}
	return p
}

// Example returns typical parameters: dry air for the linear gas, water for
// the stiffened gas (Pa).
func Example(k Kind) Params {
	switch k {
	case KindLinearGas:
		return Params{ParamGamma: 1.4, ParamPCutoff: 1e-6}
	case KindStiffenedGas:
		return Params{ParamGamma: 4.4, ParamPCutoff: 1e-6, ParamPInf: 6e8}
	}
	return nil
}

// Describe formats m as kind#id followed by its parameters.
func Describe(m Model) string {
	p := ParamsOf(m)
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, p[name])
	}
	return fmt.Sprintf("%s#%d (%s)", m.Kind(), m.ID(), strings.Join(parts, ", "))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
