package compute

// View is a labelled host array of float64 values, the unit of particle
// storage handed to kernels.
type View struct {
	Label string
	Data  []float64
}

func NewView(label string, n int) *View {
	return &View{Label: label, Data: make([]float64, n)}
}

func (v *View) Len() int { return len(v.Data) }

// Fill sets every element to x using the runtime's executor.
func (v *View) Fill(rt *Runtime, x float64) {
	data := v.Data
	rt.ParallelFor("fill:"+v.Label, len(data), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			data[i] = x
		}
	})
}

// Mirror returns an independent host copy of the view.
func (v *View) Mirror() *View {
	m := &View{Label: v.Label, Data: make([]float64, len(v.Data))}
	copy(m.Data, v.Data)
	return m
}

// CopyFrom copies src into v; the shorter length wins.
func (v *View) CopyFrom(src *View) int {
	return copy(v.Data, src.Data)
}
