package eos

import (
	"math"

	"github.com/san-kum/sphiros/internal/compute"
)

// LinearGas is the ideal-gas closure p = (gamma-1)·rho·e, floored at pcutoff.
type LinearGas struct {
	id      int
	gamma   float64 // adiabatic index, > 1
	pcutoff float64 // pressure floor against cavitation
}

func NewLinearGas(id int, gamma, pcutoff float64) LinearGas {
	return LinearGas{id: id, gamma: gamma, pcutoff: pcutoff}
}

func (g LinearGas) ID() int          { return g.id }
func (g LinearGas) Kind() Kind       { return KindLinearGas }
func (g LinearGas) Gamma() float64   { return g.gamma }
func (g LinearGas) PCutoff() float64 { return g.pcutoff }
func (LinearGas) closure()           {}

// At evaluates the closure for one particle. rho must be positive.
// The sound speed term is gamma·p/rho, without a square root.
func (g LinearGas) At(rho, e float64) (p, c float64) {
	p = math.Max((g.gamma-1.0)*rho*e, g.pcutoff)
	c = g.gamma * p / rho
	return
}

// PressureSoS overwrites f.P and f.C for every particle.
func (g LinearGas) PressureSoS(rt *compute.Runtime, f Fields) {
	if launchDevice(rt, KindLinearGas, []float64{g.gamma, g.pcutoff}, f) {
		return
	}
	rho, e, p, c := f.Rho, f.E, f.P, f.C
	rt.ParallelFor(KindLinearGas.String(), len(rho), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p[i], c[i] = g.At(rho[i], e[i])
		}
	})
}
