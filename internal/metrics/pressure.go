package metrics

import (
	"math"

	"github.com/san-kum/sphiros/internal/eos"
)

type MaxPressure struct {
	max  float64
	seen bool
}

func NewMaxPressure() *MaxPressure { return &MaxPressure{} }

func (m *MaxPressure) Name() string { return "max_pressure" }

func (m *MaxPressure) Observe(f eos.Fields) {
	for _, p := range f.P {
		if math.IsNaN(p) {
			continue
		}
		if !m.seen || p > m.max {
			m.max, m.seen = p, true
		}
	}
}

func (m *MaxPressure) Value() float64 { return m.max }

func (m *MaxPressure) Reset() { m.max, m.seen = 0, false }

// Clamped is the fraction of particles whose pressure sits on the floor.
type Clamped struct {
	pcutoff float64
	clamped int
	total   int
}

func NewClamped(pcutoff float64) *Clamped { return &Clamped{pcutoff: pcutoff} }

func (c *Clamped) Name() string { return "clamped_fraction" }

func (c *Clamped) Observe(f eos.Fields) {
	for _, p := range f.P {
		c.total++
		if p <= c.pcutoff {
			c.clamped++
		}
	}
}

func (c *Clamped) Value() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.clamped) / float64(c.total)
}

func (c *Clamped) Reset() { c.clamped, c.total = 0, 0 }
