package compute

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest number of indices handed to one goroutine.
const DefaultMinChunk = 4096

type CPUBackend struct {
	workers  int
	minChunk int
}

// NewCPUBackend returns a host backend using the given number of worker
// goroutines; workers <= 0 uses runtime.NumCPU().
func NewCPUBackend(workers int) *CPUBackend {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUBackend{
		workers:  workers,
		minChunk: DefaultMinChunk,
	}
}

func (c *CPUBackend) Name() string {
	if c.workers == 1 {
		return "serial"
	}
	return fmt.Sprintf("cpu (%d workers)", c.workers)
}

func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}
func (c *CPUBackend) Workers() int    { return c.workers }

func (c *CPUBackend) ParallelFor(_ string, n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := c.workers
	if n/c.minChunk < workers {
		workers = n / c.minChunk
	}
	if workers <= 1 {
		body(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		lo, hi := start, end
		g.Go(func() error {
			body(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
