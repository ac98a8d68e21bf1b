//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"github.com/obinnaokechukwu/jitpy/cpython"
)

// Object is an owning wrapper around a CPython object pointer.
//
// At most one live Object drops a given reference count: construction via
// StealObject or BorrowObject creates the obligation, and exactly one of
// Free, Release, Reset or Move discharges or transfers it. Objects are not
// meant to be copied; copying would create two release obligations over one
// count.
//
// The required usage pattern is to wrap a raw pointer the moment the
// interpreter hands it over, before any operation that might fail:
//
//	res := jitpy.StealObject(cpython.CallObject(fn, nil))
//	defer res.Free()
//
// All methods assume the calling thread holds the GIL.
type Object struct {
	ptr   cpython.PyObject
	owned bool
}

// StealObject adopts an existing reference count: no increment is performed
// and the returned Object must drop it. Use for pointers CPython returns as
// new references.
func StealObject(p cpython.PyObject) Object {
	return Object{ptr: p, owned: p != nil}
}

// BorrowObject increments the count and adopts the new reference. Use for
// pointers CPython returns as borrowed references that must outlive the
// producing call.
func BorrowObject(p cpython.PyObject) Object {
	cpython.IncRef(p)
	return Object{ptr: p, owned: p != nil}
}

// WrapBorrowed wraps a pointer without taking any count. The wrapper is a
// non-owning view: Free is a no-op and the pointer is valid only as long as
// whoever does own it keeps it alive.
func WrapBorrowed(p cpython.PyObject) Object {
	return Object{ptr: p, owned: false}
}

// Raw returns the wrapped pointer without any ownership change.
func (o *Object) Raw() cpython.PyObject {
	if o == nil {
		return nil
	}
	return o.ptr
}

// IsNil reports whether the wrapper holds no object.
func (o *Object) IsNil() bool {
	return o == nil || o.ptr == nil
}

// Release hands the raw pointer back and clears the wrapper; the caller now
// owns the count. Calling Release on a non-owning wrapper returns the
// pointer without transferring anything.
func (o *Object) Release() cpython.PyObject {
	if o == nil {
		return nil
	}
	p := o.ptr
	o.ptr = nil
	o.owned = false
	return p
}

// Reset drops the current count (if owned) and adopts p as a stolen
// reference.
func (o *Object) Reset(p cpython.PyObject) {
	if o == nil {
		return
	}
	if o.owned {
		cpython.DecRef(o.ptr)
	}
	o.ptr = p
	o.owned = p != nil
}

// Free drops the owned count and clears the wrapper. Safe to call on a nil,
// already-freed, or non-owning wrapper.
func (o *Object) Free() {
	if o == nil || o.ptr == nil {
		return
	}
	if o.owned {
		cpython.DecRef(o.ptr)
	}
	o.ptr = nil
	o.owned = false
}

// Move transfers the release obligation to the returned Object and leaves
// the receiver cleared.
func (o *Object) Move() Object {
	if o == nil {
		return Object{}
	}
	moved := Object{ptr: o.ptr, owned: o.owned}
	o.ptr = nil
	o.owned = false
	return moved
}

// RefCount returns the wrapped object's current reference count.
// For leak accounting in tests and diagnostics.
func (o *Object) RefCount() int64 {
	if o == nil {
		return 0
	}
	return cpython.RefCount(o.ptr)
}
