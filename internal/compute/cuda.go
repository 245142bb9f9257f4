//go:build cuda

package compute

/*
#cgo CFLAGS: -I/opt/cuda/include
#cgo LDFLAGS: -L/opt/cuda/lib64 -L${SRCDIR} -lcudart -lkernels -lstdc++
#include <stdlib.h>

extern int cuda_device_count();
extern const char* cuda_device_name_get();
extern int eos_kernel_launch(const char* kernel, const double* params, int nparams,
                             const double* rho, const double* eint,
                             double* p, double* sos, int n);
*/
import "C"

import (
	"fmt"
	"unsafe"
)

type CUDABackend struct {
	available  bool
	deviceName string
	host       *CPUBackend
}

func NewCUDABackend() *CUDABackend {
	count := int(C.cuda_device_count())
	name := ""
	if count > 0 {
		name = C.GoString(C.cuda_device_name_get())
	}
	return &CUDABackend{
		available:  count > 0,
		deviceName: name,
		host:       NewCPUBackend(0),
	}
}

func (c *CUDABackend) Name() string {
	if c.available {
		return "cuda (" + c.deviceName + ")"
	}
	return "cuda (not available)"
}

func (c *CUDABackend) Available() bool { return c.available }
func (c *CUDABackend) Cleanup()        {}

// ParallelFor runs Go closures on the host; device work goes through Launch.
func (c *CUDABackend) ParallelFor(label string, n int, body func(lo, hi int)) {
	c.host.ParallelFor(label, n, body)
}

// Launch runs a named two-in/two-out kernel on the device, copying the
// arrays to device memory and back before returning.
func (c *CUDABackend) Launch(kernel string, params []float64, in [][]float64, out [][]float64) error {
	if !c.available {
		return ErrUnavailable
	}
	if len(in) != 2 || len(out) != 2 {
		return fmt.Errorf("compute: kernel %s expects 2 inputs and 2 outputs", kernel)
	}
	n := len(in[0])
	if n == 0 {
		return nil
	}

	cname := C.CString(kernel)
	defer C.free(unsafe.Pointer(cname))

	var pp *C.double
	if len(params) > 0 {
		pp = (*C.double)(unsafe.Pointer(&params[0]))
	}

	rc := C.eos_kernel_launch(
		cname,
		pp,
		C.int(len(params)),
		(*C.double)(unsafe.Pointer(&in[0][0])),
		(*C.double)(unsafe.Pointer(&in[1][0])),
		(*C.double)(unsafe.Pointer(&out[0][0])),
		(*C.double)(unsafe.Pointer(&out[1][0])),
		C.int(n),
	)
	if rc != 0 {
		return fmt.Errorf("compute: kernel %s failed with code %d", kernel, int(rc))
	}
	return nil
}
