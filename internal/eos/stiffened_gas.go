package eos

import (
	"math"

	"github.com/san-kum/sphiros/internal/compute"
)

// StiffenedGas adds a stiffening pressure pinf to the ideal gas, the usual
// closure for liquids: p = (gamma-1)·rho·e − gamma·pinf, floored at pcutoff.
type StiffenedGas struct {
	id      int
	gamma   float64
	pcutoff float64
	pinf    float64
}

func NewStiffenedGas(id int, gamma, pcutoff, pinf float64) StiffenedGas {
	return StiffenedGas{id: id, gamma: gamma, pcutoff: pcutoff, pinf: pinf}
}

func (g StiffenedGas) ID() int          { return g.id }
func (g StiffenedGas) Kind() Kind       { return KindStiffenedGas }
func (g StiffenedGas) Gamma() float64   { return g.gamma }
func (g StiffenedGas) PCutoff() float64 { return g.pcutoff }
func (g StiffenedGas) PInf() float64    { return g.pinf }
func (StiffenedGas) closure()           {}

// At evaluates the closure for one particle. rho must be positive.
func (g StiffenedGas) At(rho, e float64) (p, c float64) {
	p = math.Max((g.gamma-1.0)*rho*e-g.gamma*g.pinf, g.pcutoff)
	c = g.gamma * (p + g.pinf) / rho
	return
}

// PressureSoS overwrites f.P and f.C for every particle.
func (g StiffenedGas) PressureSoS(rt *compute.Runtime, f Fields) {
	if launchDevice(rt, KindStiffenedGas, []float64{g.gamma, g.pcutoff, g.pinf}, f) {
		return
	}
	rho, e, p, c := f.Rho, f.E, f.P, f.C
	rt.ParallelFor(KindStiffenedGas.String(), len(rho), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p[i], c[i] = g.At(rho[i], e[i])
		}
	})
}
