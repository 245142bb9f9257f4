package eos_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sphiros/internal/compute"
	"github.com/san-kum/sphiros/internal/eos"
)

var _ = Describe("Collection", func() {
	var rt *compute.Runtime

	BeforeEach(func() {
		var err error
		rt, err = compute.Open(compute.Options{Backend: "serial"})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(rt.Close)
	})

	It("leaves only the last model's results in the shared outputs", func() {
		first := eos.NewStiffenedGas(0, 1.4, 1e-6, 0.1)
		last := eos.NewLinearGas(1, 1.67, 1e-6)
		models := eos.Collection{first, last}

		f := filled(16, 1.0, 2.0)
		Expect(models.Evaluate(rt, f)).To(Succeed())

		pLast, cLast := last.At(1.0, 2.0)
		pFirst, _ := first.At(1.0, 2.0)
		Expect(pFirst).NotTo(BeNumerically("~", pLast, tol))
		for i := range f.P {
			Expect(f.P[i]).To(Equal(pLast))
			Expect(f.C[i]).To(Equal(cLast))
		}
	})

	It("lets a visitor observe each model's output before it is overwritten", func() {
		models := eos.Collection{
			eos.NewLinearGas(0, 1.4, 1e-6),
			eos.NewStiffenedGas(1, 1.4, 1e-6, 0.1),
			eos.NewLinearGas(2, 1.4, 1e-6),
		}
		f := filled(4, 1.0, 2.0)

		var ids []int
		var p0 []float64
		err := models.EvaluateEach(rt, f, func(m eos.Model, f eos.Fields) {
			ids = append(ids, m.ID())
			p0 = append(p0, f.P[0])
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(Equal([]int{0, 1, 2}))
		Expect(p0[0]).To(BeNumerically("~", 0.8, tol))
		Expect(p0[1]).To(BeNumerically("~", 0.66, tol))
		Expect(p0[2]).To(BeNumerically("~", 0.8, tol))
	})

	It("rejects arrays of different lengths before touching outputs", func() {
		f := eos.Fields{
			Rho: []float64{1, 1},
			E:   []float64{1, 1},
			P:   []float64{-1},
			C:   []float64{-1, -1},
		}
		err := eos.Collection{eos.NewLinearGas(0, 1.4, 0)}.Evaluate(rt, f)
		Expect(err).To(MatchError(eos.ErrLengthMismatch))
		Expect(f.P).To(Equal([]float64{-1}))
	})

	It("is a no-op on empty arrays", func() {
		f := eos.NewFields(0)
		Expect(eos.Collection{eos.NewLinearGas(0, 1.4, 0)}.Evaluate(rt, f)).To(Succeed())
	})

	It("reports duplicate ids", func() {
		models := eos.Collection{
			eos.NewLinearGas(3, 1.4, 0),
			eos.NewStiffenedGas(3, 1.4, 0, 0),
		}
		Expect(models.Validate()).To(MatchError(eos.ErrDuplicateID))

		m, ok := models.Find(3)
		Expect(ok).To(BeTrue())
		Expect(m.Kind()).To(Equal(eos.KindLinearGas))

		_, ok = models.Find(9)
		Expect(ok).To(BeFalse())
	})
})
