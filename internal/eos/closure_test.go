package eos_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sphiros/internal/compute"
	"github.com/san-kum/sphiros/internal/eos"
)

const tol = 1e-8

func filled(n int, rho, e float64) eos.Fields {
	f := eos.NewFields(n)
	for i := 0; i < n; i++ {
		f.Rho[i] = rho
		f.E[i] = e
	}
	return f
}

var _ = Describe("closure models", func() {
	var rt *compute.Runtime

	BeforeEach(func() {
		var err error
		rt, err = compute.Open(compute.Options{Backend: "cpu", Workers: 4, MinChunk: 8})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(rt.Close)
	})

	Describe("LinearGas", func() {
		It("gives p = 0.4 for rho=1, e=1, gamma=1.4", func() {
			f := filled(10, 1.0, 1.0)
			eos.NewLinearGas(0, 1.4, 1e-6).PressureSoS(rt, f)

			for i := range f.P {
				Expect(f.P[i]).To(BeNumerically("~", 0.4, tol))
				Expect(f.C[i]).To(BeNumerically("~", 1.4*0.4, tol))
			}
		})

		It("matches max((gamma-1)·rho·e, pcutoff) across inputs", func() {
			g := eos.NewLinearGas(0, 1.67, 0.05)
			rhos := []float64{0.01, 0.5, 1.0, 7.3, 1000}
			es := []float64{-5, -0.01, 0, 0.02, 1, 250}
			for _, rho := range rhos {
				for _, e := range es {
					p, c := g.At(rho, e)
					want := math.Max(0.67*rho*e, 0.05)
					Expect(p).To(BeNumerically("~", want, tol), "rho=%g e=%g", rho, e)
					Expect(c).To(BeNumerically("~", 1.67*want/rho, tol))
				}
			}
		})

		It("uses pcutoff as a hard floor", func() {
			g := eos.NewLinearGas(0, 1.4, 1e-6)
			for _, e := range []float64{0, -1, -1e6, math.Inf(-1)} {
				p, _ := g.At(1.0, e)
				Expect(p).To(Equal(1e-6))
			}
		})

		It("writes every particle of a large array", func() {
			n := 10000
			f := eos.NewFields(n)
			for i := 0; i < n; i++ {
				f.Rho[i] = 1.0 + float64(i%7)
				f.E[i] = float64(i) * 0.001
			}
			g := eos.NewLinearGas(0, 1.4, 1e-6)
			g.PressureSoS(rt, f)

			for i := 0; i < n; i++ {
				p, c := g.At(f.Rho[i], f.E[i])
				Expect(f.P[i]).To(Equal(p))
				Expect(f.C[i]).To(Equal(c))
			}
		})
	})

	Describe("StiffenedGas", func() {
		It("gives p = 0.66 and c = 1.064 for rho=1, e=2, pinf=0.1", func() {
			f := filled(1, 1.0, 2.0)
			eos.NewStiffenedGas(0, 1.4, 1e-6, 0.1).PressureSoS(rt, f)

			Expect(f.P[0]).To(BeNumerically("~", 0.66, tol))
			Expect(f.C[0]).To(BeNumerically("~", 1.064, tol))
		})

		It("reduces to LinearGas when pinf is zero", func() {
			lg := eos.NewLinearGas(0, 1.4, 1e-6)
			sg := eos.NewStiffenedGas(1, 1.4, 1e-6, 0)
			for _, rho := range []float64{0.1, 1, 3} {
				for _, e := range []float64{-1, 0, 0.5, 2, 100} {
					pl, cl := lg.At(rho, e)
					ps, cs := sg.At(rho, e)
					Expect(ps).To(Equal(pl))
					Expect(cs).To(Equal(cl))
				}
			}
		})

		It("clamps at pcutoff when pinf dominates", func() {
			g := eos.NewStiffenedGas(0, 4.4, 10, 6e8)
			p, c := g.At(1000, 1)
			Expect(p).To(Equal(10.0))
			Expect(c).To(BeNumerically("~", 4.4*(10+6e8)/1000, 1e-3))
		})
	})

	DescribeTable("pressure is non-decreasing in e",
		func(m eos.Model) {
			n := 2001
			f := eos.NewFields(n)
			for i := 0; i < n; i++ {
				f.Rho[i] = 1.3
				f.E[i] = -10 + 20*float64(i)/float64(n-1)
			}
			eos.Dispatch(rt, m, f)
			for i := 1; i < n; i++ {
				Expect(f.P[i]).To(BeNumerically(">=", f.P[i-1]))
			}
		},
		Entry("linear gas", eos.NewLinearGas(0, 1.4, 1e-6)),
		Entry("stiffened gas", eos.NewStiffenedGas(1, 1.4, 1e-6, 0.1)),
		Entry("stiff water", eos.NewStiffenedGas(2, 4.4, 0, 0.5)),
	)

	It("produces Inf or NaN for zero density without failing", func() {
		f := filled(3, 0, 1)
		Expect(func() { eos.NewLinearGas(0, 1.4, 1e-6).PressureSoS(rt, f) }).NotTo(Panic())
		for _, c := range f.C {
			Expect(math.IsInf(c, 0) || math.IsNaN(c)).To(BeTrue())
		}
	})
})
