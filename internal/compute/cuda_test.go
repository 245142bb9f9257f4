//go:build cuda

package compute_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sphiros/internal/compute"
)

var _ = Describe("CUDABackend", func() {
	var b *compute.CUDABackend

	BeforeEach(func() {
		b = compute.NewCUDABackend()
		if !b.Available() {
			Skip("no CUDA device")
		}
	})

	It("evaluates the linear gas kernel on the device", func() {
		rho := []float64{1, 1}
		eint := []float64{1, 2}
		p := []float64{-1, -1}
		sos := []float64{-1, -1}

		Expect(b.Launch("linear_gas", []float64{1.4, 1e-6}, [][]float64{rho, eint}, [][]float64{p, sos})).To(Succeed())
		Expect(p[0]).To(BeNumerically("~", 0.4, 1e-12))
		Expect(p[1]).To(BeNumerically("~", 0.8, 1e-12))
		Expect(sos[0]).To(BeNumerically("~", 0.56, 1e-12))
	})

	It("reports a failed launch and leaves the outputs alone", func() {
		p := []float64{-1}
		sos := []float64{-1}

		err := b.Launch("tait", []float64{7}, [][]float64{{1}, {1}}, [][]float64{p, sos})
		Expect(err).To(MatchError(ContainSubstring("failed with code 1")))
		Expect(p[0]).To(Equal(-1.0))
		Expect(sos[0]).To(Equal(-1.0))
	})
})
