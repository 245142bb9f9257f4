package compute_test

import (
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sphiros/internal/compute"
)

var _ = Describe("CPUBackend", func() {
	DescribeTable("visits every index exactly once",
		func(workers, n int) {
			b := compute.NewCPUBackend(workers)
			hits := make([]int32, n)
			b.ParallelFor("count", n, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			for i, h := range hits {
				Expect(h).To(Equal(int32(1)), "index %d", i)
			}
		},
		Entry("serial, small", 1, 17),
		Entry("serial, large", 1, 100000),
		Entry("four workers, below min chunk", 4, 100),
		Entry("four workers, uneven", 4, 3*compute.DefaultMinChunk+5),
		Entry("many workers", 64, 1<<18),
	)

	It("hands out disjoint chunks", func() {
		b := compute.NewCPUBackend(8)
		n := 8*compute.DefaultMinChunk + 3

		var mu sync.Mutex
		var chunks [][2]int
		b.ParallelFor("chunks", n, func(lo, hi int) {
			mu.Lock()
			chunks = append(chunks, [2]int{lo, hi})
			mu.Unlock()
		})

		Expect(len(chunks)).To(BeNumerically(">", 1))
		covered := 0
		for _, c := range chunks {
			Expect(c[0]).To(BeNumerically("<", c[1]))
			covered += c[1] - c[0]
		}
		Expect(covered).To(Equal(n))
	})

	It("does nothing for an empty range", func() {
		called := false
		compute.NewCPUBackend(2).ParallelFor("empty", 0, func(lo, hi int) { called = true })
		Expect(called).To(BeFalse())
	})

	It("names the serial configuration", func() {
		Expect(compute.NewCPUBackend(1).Name()).To(Equal("serial"))
		Expect(compute.NewCPUBackend(3).Name()).To(Equal("cpu (3 workers)"))
	})
})

var _ = Describe("Runtime", func() {
	It("opens the requested host backends", func() {
		for _, name := range []string{"auto", "cpu", "serial", ""} {
			rt, err := compute.Open(compute.Options{Backend: name})
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(rt.Name()).NotTo(BeEmpty())
			Expect(rt.Close()).To(Succeed())
		}
	})

	It("rejects unknown backends", func() {
		_, err := compute.Open(compute.Options{Backend: "opencl"})
		Expect(err).To(MatchError(compute.ErrUnknownBackend))
	})

	It("fails to open cuda when no device is present", func() {
		if compute.NewCUDABackend().Available() {
			Skip("cuda device present")
		}
		_, err := compute.Open(compute.Options{Backend: "cuda"})
		Expect(err).To(MatchError(compute.ErrUnavailable))
	})

	It("releases the backend once and refuses use after Close", func() {
		b := &countingBackend{CPUBackend: compute.NewCPUBackend(1)}
		rt := compute.NewRuntime(b)

		Expect(rt.Close()).To(Succeed())
		Expect(rt.Close()).To(Succeed())
		Expect(b.cleanups).To(Equal(1))
		Expect(rt.Closed()).To(BeTrue())
		Expect(func() { rt.ParallelFor("late", 1, func(lo, hi int) {}) }).To(Panic())
	})

	It("refuses an empty range after Close", func() {
		rt := compute.NewRuntime(compute.NewCPUBackend(1))
		Expect(rt.Close()).To(Succeed())
		Expect(func() { rt.ParallelFor("empty", 0, func(lo, hi int) {}) }).To(Panic())
	})

	It("reports no device kernels for host backends", func() {
		rt := compute.NewRuntime(compute.NewCPUBackend(2))
		defer rt.Close()
		_, ok := rt.Device()
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("View", func() {
	It("fills and mirrors", func() {
		rt := compute.NewRuntime(compute.NewCPUBackend(2))
		defer rt.Close()

		v := compute.NewView("rho", 10)
		v.Fill(rt, 1.5)
		Expect(v.Data).To(HaveEach(1.5))

		m := v.Mirror()
		m.Data[0] = 9
		Expect(v.Data[0]).To(Equal(1.5))
		Expect(m.Label).To(Equal("rho"))

		Expect(v.CopyFrom(m)).To(Equal(10))
		Expect(v.Data[0]).To(Equal(9.0))
	})
})

type countingBackend struct {
	*compute.CPUBackend
	cleanups int
}

func (c *countingBackend) Cleanup() { c.cleanups++ }
