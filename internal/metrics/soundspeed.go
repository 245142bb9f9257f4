package metrics

import (
	"math"

	"github.com/san-kum/sphiros/internal/eos"
)

type MeanSoundSpeed struct {
	sum float64
	n   int
}

func NewMeanSoundSpeed() *MeanSoundSpeed { return &MeanSoundSpeed{} }

func (m *MeanSoundSpeed) Name() string { return "mean_sos" }

func (m *MeanSoundSpeed) Observe(f eos.Fields) {
	for _, c := range f.C {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			continue
		}
		m.sum += c
		m.n++
	}
}

func (m *MeanSoundSpeed) Value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

func (m *MeanSoundSpeed) Reset() { m.sum, m.n = 0, 0 }

// NonFinite counts Inf or NaN outputs, which come from non-positive densities.
type NonFinite struct {
	count int
}

func NewNonFinite() *NonFinite { return &NonFinite{} }

func (m *NonFinite) Name() string { return "non_finite" }

func (m *NonFinite) Observe(f eos.Fields) {
	for i := range f.P {
		if !finite(f.P[i]) || (i < len(f.C) && !finite(f.C[i])) {
			m.count++
		}
	}
}

func (m *NonFinite) Value() float64 { return float64(m.count) }

func (m *NonFinite) Reset() { m.count = 0 }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
