//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/jitpy/cpython"
)

// Common errors
var (
	// ErrNotLoaded indicates libpython is not loaded.
	ErrNotLoaded = errors.New("jitpy: libpython not loaded")

	// ErrNotInitialized indicates the interpreter has not been initialized.
	ErrNotInitialized = errors.New("jitpy: interpreter not initialized")

	// ErrFinalize indicates interpreter shutdown reported a failure.
	ErrFinalize = errors.New("jitpy: interpreter finalization failed")

	// ErrNoBuffer indicates the object does not export a compatible buffer.
	ErrNoBuffer = errors.New("jitpy: object does not support the buffer protocol")
)

// PythonError is a Python exception surfaced to Go callers.
// The pending error state it was built from has been consumed.
type PythonError struct {
	Type    string // exception type name, e.g. "ValueError"
	Message string // str(exception value)
	Op      string // operation that failed
}

// Error implements the error interface.
func (e *PythonError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("python %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("python %s: %s: %s", e.Op, e.Type, e.Message)
}

// ErrorOccurred reports whether the interpreter has a pending exception.
// Must be called with the GIL held.
func ErrorOccurred() bool {
	return cpython.ErrOccurred() != nil
}

// ClearError clears any pending exception.
func ClearError() {
	cpython.ErrClear()
}

// PrintError prints any pending exception to sys.stderr and clears it.
func PrintError() {
	cpython.ErrPrint()
}

// lastError consumes the pending exception and wraps it as a *PythonError.
// Returns nil if no error is pending. Must be called with the GIL held.
func lastError(op string) error {
	if cpython.ErrOccurred() == nil {
		return nil
	}

	ptype, pvalue, ptb := cpython.ErrFetch()
	cpython.ErrNormalizeException(&ptype, &pvalue, &ptb)

	perr := &PythonError{Op: op}
	if ptype != nil {
		name := StealObject(cpython.GetAttrString(ptype, "__name__"))
		perr.Type = cpython.UnicodeAsString(name.Raw())
		name.Free()
		cpython.ErrClear() // a non-str __name__ would re-raise
	}
	if pvalue != nil {
		str := StealObject(cpython.ObjectStr(pvalue))
		perr.Message = cpython.UnicodeAsString(str.Raw())
		str.Free()
		cpython.ErrClear()
	}

	cpython.DecRef(ptype)
	cpython.DecRef(pvalue)
	cpython.DecRef(ptb)
	return perr
}
