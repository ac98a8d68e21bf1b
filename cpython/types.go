//go:build !ios && !android && (amd64 || arm64)

package cpython

import "unsafe"

// PyObject is an opaque CPython object pointer.
//
// Two reference disciplines exist and must never be conflated: a borrowed
// PyObject is valid only for the duration of the call that produced it and
// must not be released; an owned (new) PyObject carries exactly one reference
// count that its holder must drop exactly once via DecRef.
type PyObject = unsafe.Pointer

// ThreadState is an opaque CPython PyThreadState pointer, produced by
// SaveThread and consumed by RestoreThread.
type ThreadState = unsafe.Pointer

// GILState is the token returned by GILStateEnsure and consumed by
// GILStateRelease. It records whether the calling thread already held the
// GIL, which is what makes nested acquisitions safe.
type GILState = int32

// Start tokens for RunString (CPython compile start symbols).
const (
	SingleInput int32 = 256
	FileInput   int32 = 257
	EvalInput   int32 = 258
)

// Buffer protocol request flags.
const (
	BufSimple   int32 = 0x0000
	BufWritable int32 = 0x0001
	BufFormat   int32 = 0x0004
	BufND       int32 = 0x0008
	BufStrides  int32 = 0x0010 | BufND
)

// PyObject header field offsets (64-bit CPython layout):
//
//	Py_ssize_t ob_refcnt;   // offset 0
//	PyTypeObject *ob_type;  // offset 8
//
// Py_REFCNT and Py_TYPE are macros, not exported symbols, so jitpy reads the
// fields directly the same way it would with offsetof() verified against the
// target interpreter.
const (
	offsetRefCount = 0
	offsetType     = 8
)

// RefCount returns the object's current reference count.
//
// Intended for leak accounting in tests and diagnostics only. On Python 3.12+
// immortal objects (None, small ints, interned strings) report a saturated
// count that never changes; meaningful deltas require ordinary heap objects.
func RefCount(obj PyObject) int64 {
	if obj == nil {
		return 0
	}
	return *(*int64)(unsafe.Pointer(uintptr(obj) + offsetRefCount))
}

// TypeOf returns the object's type object (borrowed).
func TypeOf(obj PyObject) PyObject {
	if obj == nil {
		return nil
	}
	return *(*PyObject)(unsafe.Pointer(uintptr(obj) + offsetType))
}

// GoString copies a NUL-terminated C string into a Go string.
// Returns "" for a nil pointer.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
