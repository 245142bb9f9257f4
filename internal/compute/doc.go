// Package compute provides the parallel elementwise executor used to run
// equation-of-state kernels over particle arrays.
//
// A [Runtime] is opened once per process and closed after the last
// evaluation:
//
//	rt, err := compute.Open(compute.DefaultOptions())
//	if err != nil {
//	    // fatal: no execution backend
//	}
//	defer rt.Close()
//
//	rt.ParallelFor("pressure", n, func(lo, hi int) {
//	    for i := lo; i < hi; i++ {
//	        // write only slot i
//	    }
//	})
//
// Backends:
//
//   - CPU: goroutines over contiguous chunks, inline below MinChunk
//   - serial: one worker, useful for debugging and reproducible timing
//   - CUDA: named device kernels, built with -tags cuda
//
// ParallelFor is synchronous. Indices must be independent; there is no
// ordering between chunks and no cancellation once a pass starts.
package compute
