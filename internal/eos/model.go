package eos

import (
	"fmt"
	"strings"
)

// Kind tags a closure model variant.
type Kind int

const (
	KindLinearGas Kind = iota
	KindStiffenedGas

	numKinds
)

var kindNames = [numKinds]string{
	KindLinearGas:    "linear_gas",
	KindStiffenedGas: "stiffened_gas",
}

// Kinds returns every variant of the closed set in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Model is a closure model. The set of implementations is closed: only the
// value types in this package satisfy it, and Dispatch has one case for each.
type Model interface {
	ID() int
	Kind() Kind
	Gamma() float64
	PCutoff() float64

	closure()
}
