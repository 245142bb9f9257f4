package analysis

import (
	"fmt"

	"github.com/san-kum/sphiros/internal/compute"
	"github.com/san-kum/sphiros/internal/eos"
)

// Curve is one model's response along an energy grid at fixed density.
type Curve struct {
	Model eos.Model
	Rho   float64
	E     []float64
	P     []float64
	C     []float64
}

// Sweep evaluates m at density rho for n energies evenly spaced in [eMin, eMax].
func Sweep(rt *compute.Runtime, m eos.Model, rho, eMin, eMax float64, n int) (*Curve, error) {
	if n < 2 {
		return nil, fmt.Errorf("analysis: sweep needs at least 2 points, got %d", n)
	}
	if eMax <= eMin {
		return nil, fmt.Errorf("analysis: empty energy range [%g, %g]", eMin, eMax)
	}

	f := eos.NewFields(n)
	step := (eMax - eMin) / float64(n-1)
	for i := 0; i < n; i++ {
		f.Rho[i] = rho
		f.E[i] = eMin + float64(i)*step
	}

	if err := (eos.Collection{m}).Evaluate(rt, f); err != nil {
		return nil, err
	}
	return &Curve{Model: m, Rho: rho, E: f.E, P: f.P, C: f.C}, nil
}

// SweepAll sweeps every model in order.
func SweepAll(rt *compute.Runtime, models eos.Collection, rho, eMin, eMax float64, n int) ([]*Curve, error) {
	curves := make([]*Curve, 0, len(models))
	for _, m := range models {
		c, err := Sweep(rt, m, rho, eMin, eMax, n)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

// Monotone reports whether P never decreases along the sweep.
func (c *Curve) Monotone() bool {
	for i := 1; i < len(c.P); i++ {
		if c.P[i] < c.P[i-1] {
			return false
		}
	}
	return true
}

// FloorStart returns the first grid energy at which pressure is above the
// model's floor, and false when the whole sweep is clamped.
func (c *Curve) FloorStart() (float64, bool) {
	floor := c.Model.PCutoff()
	for i, p := range c.P {
		if p > floor {
			return c.E[i], true
		}
	}
	return 0, false
}
