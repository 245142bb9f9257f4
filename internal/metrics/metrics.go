package metrics

import "github.com/san-kum/sphiros/internal/eos"

// Metric summarises the output arrays of one evaluation.
type Metric interface {
	Name() string
	Observe(f eos.Fields)
	Value() float64
	Reset()
}

func Defaults(pcutoff float64) []Metric {
	return []Metric{
		NewMaxPressure(),
		NewMeanSoundSpeed(),
		NewClamped(pcutoff),
		NewNonFinite(),
	}
}

// Collect observes f with every metric and returns name -> value.
func Collect(f eos.Fields, ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		m.Observe(f)
		out[m.Name()] = m.Value()
	}
	return out
}
