//go:build !ios && !android && (amd64 || arm64)

package cpython

import "unsafe"

// PyBufferView mirrors CPython's Py_buffer struct (64-bit layout):
//
//	void *buf;              // offset  0
//	PyObject *obj;          // offset  8
//	Py_ssize_t len;         // offset 16
//	Py_ssize_t itemsize;    // offset 24
//	int readonly;           // offset 32
//	int ndim;               // offset 36
//	char *format;           // offset 40
//	Py_ssize_t *shape;      // offset 48
//	Py_ssize_t *strides;    // offset 56
//	Py_ssize_t *suboffsets; // offset 64
//	void *internal;         // offset 72
//
// It is filled in place by ObjectGetBuffer and must be handed back to
// BufferRelease exactly once. Every field is owned by the exporter; none of
// the pointers outlive the release.
type PyBufferView struct {
	Buf        unsafe.Pointer
	Obj        PyObject
	Len        int64
	ItemSize   int64
	Readonly   int32
	Ndim       int32
	Format     *byte
	Shape      *int64
	Strides    *int64
	Suboffsets *int64
	Internal   unsafe.Pointer
}

// ShapeSlice returns the per-dimension extents as a Go slice aliasing the
// exporter's storage. Valid only while the view is held.
func (v *PyBufferView) ShapeSlice() []int64 {
	if v == nil || v.Shape == nil || v.Ndim <= 0 {
		return nil
	}
	return unsafe.Slice(v.Shape, int(v.Ndim))
}

// StridesSlice returns the per-dimension byte strides as a Go slice aliasing
// the exporter's storage. Valid only while the view is held.
func (v *PyBufferView) StridesSlice() []int64 {
	if v == nil || v.Strides == nil || v.Ndim <= 0 {
		return nil
	}
	return unsafe.Slice(v.Strides, int(v.Ndim))
}

// FormatString returns the struct-module format tag ("d", "i", "B", ...).
// Returns "B" when the exporter supplied no format, matching the buffer
// protocol's documented default of unsigned bytes.
func (v *PyBufferView) FormatString() string {
	if v == nil || v.Format == nil {
		return "B"
	}
	return GoString(v.Format)
}
