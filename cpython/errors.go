//go:build !ios && !android && (amd64 || arm64)

package cpython

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Error-state bindings. CPython keeps the pending exception in per-thread
// state; this layer never translates or swallows it, it only exposes the
// query/clear/print/fetch operations.
var (
	pyErrOccurred           func() PyObject
	pyErrClear              func()
	pyErrPrint              func()
	pyErrFetch              func(ptype, pvalue, ptraceback unsafe.Pointer)
	pyErrNormalizeException func(ptype, pvalue, ptraceback unsafe.Pointer)
)

func registerErrorBindings(lib uintptr) {
	purego.RegisterLibFunc(&pyErrOccurred, lib, "PyErr_Occurred")
	purego.RegisterLibFunc(&pyErrClear, lib, "PyErr_Clear")
	purego.RegisterLibFunc(&pyErrPrint, lib, "PyErr_Print")
	purego.RegisterLibFunc(&pyErrFetch, lib, "PyErr_Fetch")
	purego.RegisterLibFunc(&pyErrNormalizeException, lib, "PyErr_NormalizeException")
}

// ErrOccurred returns a borrowed reference to the pending exception type, or
// nil if no error is set. Must be called with the GIL held.
func ErrOccurred() PyObject {
	if pyErrOccurred == nil {
		return nil
	}
	return pyErrOccurred()
}

// ErrClear clears the pending error state, if any.
func ErrClear() {
	if pyErrClear == nil {
		return
	}
	pyErrClear()
}

// ErrPrint prints the pending exception and traceback to sys.stderr and
// clears the error state. No-op if no error is set.
func ErrPrint() {
	if pyErrPrint == nil {
		return
	}
	pyErrPrint()
}

// ErrFetch retrieves and clears the pending error state, transferring
// ownership of the three references (any of which may be nil) to the caller.
func ErrFetch() (ptype, pvalue, ptraceback PyObject) {
	if pyErrFetch == nil {
		return nil, nil, nil
	}
	pyErrFetch(
		unsafe.Pointer(&ptype),
		unsafe.Pointer(&pvalue),
		unsafe.Pointer(&ptraceback),
	)
	return ptype, pvalue, ptraceback
}

// ErrNormalizeException turns a raw fetched (type, value, traceback) triple
// into a fully instantiated exception. The references are updated in place.
func ErrNormalizeException(ptype, pvalue, ptraceback *PyObject) {
	if pyErrNormalizeException == nil {
		return
	}
	pyErrNormalizeException(
		unsafe.Pointer(ptype),
		unsafe.Pointer(pvalue),
		unsafe.Pointer(ptraceback),
	)
}
