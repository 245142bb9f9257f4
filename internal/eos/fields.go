package eos

import "fmt"

// Fields are the per-particle arrays a closure model reads and writes.
// Rho and E are inputs; P (pressure) and C (sound speed) are overwritten.
// The arrays belong to the caller.
type Fields struct {
	Rho []float64
	E   []float64
	P   []float64
	C   []float64
}

// NewFields allocates four zeroed arrays of length n.
func NewFields(n int) Fields {
	return Fields{
		Rho: make([]float64, n),
		E:   make([]float64, n),
		P:   make([]float64, n),
		C:   make([]float64, n),
	}
}

// Len returns the common length of the arrays.
func (f Fields) Len() (int, error) {
	n := len(f.Rho)
	if len(f.E) != n || len(f.P) != n || len(f.C) != n {
		return 0, fmt.Errorf("%w: rho=%d eint=%d p=%d sos=%d",
			ErrLengthMismatch, len(f.Rho), len(f.E), len(f.P), len(f.C))
	}
	return n, nil
}
