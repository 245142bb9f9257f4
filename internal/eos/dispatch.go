package eos

import (
	"fmt"

	"github.com/san-kum/sphiros/internal/compute"
)

// Collection is an ordered set of closure models. Order is evaluation order.
type Collection []Model

// Dispatch runs the kernel of m against f. The type switch is the single tag
// check per model; inside each case the kernel is a direct call on the
// concrete variant.
func Dispatch(rt *compute.Runtime, m Model, f Fields) {
	switch v := m.(type) {
	case LinearGas:
		v.PressureSoS(rt, f)
	case StiffenedGas:
		v.PressureSoS(rt, f)
	default:
		panic(fmt.Errorf("%w: %T", ErrUnknownVariant, m))
	}
}

// Evaluate runs every model in order against the same arrays.
//
// All models write the same P and C, so after the call they hold only the
// last model's results. There is no mapping of models to particle subsets.
func (c Collection) Evaluate(rt *compute.Runtime, f Fields) error {
	return c.EvaluateEach(rt, f, nil)
}

// EvaluateEach is Evaluate with a callback after each model, before the next
// one overwrites the outputs.
func (c Collection) EvaluateEach(rt *compute.Runtime, f Fields, visit func(Model, Fields)) error {
	if _, err := f.Len(); err != nil {
		return err
	}
	for _, m := range c {
		Dispatch(rt, m, f)
		if visit != nil {
			visit(m, f)
		}
	}
	return nil
}

// Validate reports duplicate model ids.
func (c Collection) Validate() error {
	seen := make(map[int]Kind, len(c))
	for _, m := range c {
		if k, ok := seen[m.ID()]; ok {
			return fmt.Errorf("%w: %d used by %s and %s", ErrDuplicateID, m.ID(), k, m.Kind())
		}
		seen[m.ID()] = m.Kind()
	}
	return nil
}

func (c Collection) Find(id int) (Model, bool) {
	for _, m := range c {
		if m.ID() == id {
			return m, true
		}
	}
	return nil, false
}

// launchDevice hands the kernel to the backend's device launcher when one
// exists. A device failure is not recoverable.
func launchDevice(rt *compute.Runtime, k Kind, params []float64, f Fields) bool {
	dev, ok := rt.Device()
	if !ok {
		return false
	}
	err := dev.Launch(k.String(), params, [][]float64{f.Rho, f.E}, [][]float64{f.P, f.C})
	if err != nil {
		panic(fmt.Errorf("eos: %s kernel: %w", k, err))
	}
	return true
}
