package compute

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrUnknownBackend is returned by Open for a backend name it does not know.
	ErrUnknownBackend = errors.New("compute: unknown backend")

	// ErrUnavailable is returned when the requested backend cannot run on this host.
	ErrUnavailable = errors.New("compute: backend not available")
)

// Backend runs elementwise kernels over an index range.
//
// ParallelFor calls body with disjoint half-open chunks that together cover
// [0, n) exactly once and returns only after every chunk has completed.
// The body must only touch the slots of its own chunk.
type Backend interface {
	Name() string
	Available() bool
	ParallelFor(label string, n int, body func(lo, hi int))
	Cleanup()
}

// DeviceKernels is implemented by accelerator backends that run named
// kernels on device memory instead of Go closures.
type DeviceKernels interface {
	Launch(kernel string, params []float64, in [][]float64, out [][]float64) error
}

type Options struct {
	Backend  string // auto, cpu, serial or cuda
	Workers  int    // host worker count, 0 means runtime.NumCPU()
	MinChunk int    // below this many indices work runs inline
}

func DefaultOptions() Options {
	return Options{Backend: "auto", MinChunk: DefaultMinChunk}
}

// Runtime is the process-scoped execution context. It is acquired once with
// Open before any evaluation and released with Close after the last one.
type Runtime struct {
	mu      sync.Mutex
	backend Backend
	closed  bool
}

func Open(opts Options) (*Runtime, error) {
	b, err := selectBackend(opts)
	if err != nil {
		return nil, err
	}
	return &Runtime{backend: b}, nil
}

// NewRuntime wraps an already constructed backend.
func NewRuntime(b Backend) *Runtime {
	return &Runtime{backend: b}
}

func selectBackend(opts Options) (Backend, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Backend))
	switch name {
	case "", "auto":
		return AutoSelectBackend(opts), nil
	case "cpu":
		return newCPU(opts), nil
	case "serial":
		return NewCPUBackend(1), nil
	case "cuda":
		cuda := NewCUDABackend()
		if !cuda.Available() {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, cuda.Name())
		}
		return cuda, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}

func AutoSelectBackend(opts Options) Backend {
	cuda := NewCUDABackend()
	if cuda.Available() {
		return cuda
	}
	return newCPU(opts)
}

func newCPU(opts Options) *CPUBackend {
	c := NewCPUBackend(opts.Workers)
	if opts.MinChunk > 0 {
		c.minChunk = opts.MinChunk
	}
	return c
}

// Backend returns the active backend. It panics once the runtime is closed.
func (r *Runtime) Backend() Backend {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		panic("compute: runtime used after Close")
	}
	return r.backend
}

func (r *Runtime) Name() string {
	return r.Backend().Name()
}

func (r *Runtime) ParallelFor(label string, n int, body func(lo, hi int)) {
	b := r.Backend()
	if n <= 0 {
		return
	}
	b.ParallelFor(label, n, body)
}

// Device returns the device kernel launcher when the backend has one.
func (r *Runtime) Device() (DeviceKernels, bool) {
	dk, ok := r.Backend().(DeviceKernels)
	return dk, ok
}

// Close releases the backend. Calling it more than once is a no-op.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.backend.Cleanup()
	return nil
}

func (r *Runtime) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Backends lists the backend names accepted by Open.
func Backends() []string {
	return []string{"auto", "cpu", "serial", "cuda"}
}
