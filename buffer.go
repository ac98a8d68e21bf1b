//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"unsafe"

	"github.com/obinnaokechukwu/jitpy/cpython"
)

// BufferView is a zero-copy strided view onto an object's underlying storage,
// acquired through the buffer protocol with strided-access and format
// metadata requested. While the view is outstanding the exporter keeps the
// storage alive and may block mutation/resizing; Release hands the view back
// and lifts that restriction.
//
// Every pointer, shape and stride the view exposes is valid only while the
// view is alive. All methods assume the calling thread holds the GIL.
type BufferView struct {
	view  cpython.PyBufferView
	valid bool
}

// AcquireBuffer requests a strided, format-tagged view of obj.
// If the object does not export a compatible buffer the returned view
// reports Valid()==false, no reference is retained, and the interpreter's
// error flag is left exactly as the runtime set it.
func AcquireBuffer(obj cpython.PyObject) *BufferView {
	b := &BufferView{}
	if obj == nil {
		return b
	}
	if cpython.ObjectGetBuffer(obj, &b.view, cpython.BufStrides|cpython.BufFormat) == 0 {
		b.valid = true
	}
	return b
}

// Valid reports whether the view was successfully acquired and not yet
// released.
func (b *BufferView) Valid() bool {
	return b != nil && b.valid
}

// Data returns the base pointer of the exporter's storage.
func (b *BufferView) Data() unsafe.Pointer {
	if !b.Valid() {
		return nil
	}
	return b.view.Buf
}

// Len returns the total length of the buffer in bytes.
func (b *BufferView) Len() int64 {
	if !b.Valid() {
		return 0
	}
	return b.view.Len
}

// ItemSize returns the size in bytes of one element.
func (b *BufferView) ItemSize() int64 {
	if !b.Valid() {
		return 0
	}
	return b.view.ItemSize
}

// NDim returns the number of dimensions.
func (b *BufferView) NDim() int {
	if !b.Valid() {
		return 0
	}
	return int(b.view.Ndim)
}

// Shape returns the per-dimension extents, aliasing the exporter's storage.
func (b *BufferView) Shape() []int64 {
	if !b.Valid() {
		return nil
	}
	return b.view.ShapeSlice()
}

// Strides returns the per-dimension byte strides, aliasing the exporter's
// storage.
func (b *BufferView) Strides() []int64 {
	if !b.Valid() {
		return nil
	}
	return b.view.StridesSlice()
}

// Format returns the struct-module format tag declared by the exporter.
func (b *BufferView) Format() string {
	if !b.Valid() {
		return ""
	}
	return b.view.FormatString()
}

// ReadOnly reports whether the exporter forbids writes through this view.
func (b *BufferView) ReadOnly() bool {
	if !b.Valid() {
		return true
	}
	return b.view.Readonly != 0
}

// Bytes returns the whole buffer as a []byte aliasing the exporter's
// storage. Valid only while the view is held.
func (b *BufferView) Bytes() []byte {
	if !b.Valid() || b.view.Buf == nil || b.view.Len <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.view.Buf), int(b.view.Len))
}

// Release hands the view back to the exporter and drops the reference the
// view held. The first call releases; later calls are no-ops. All pointers
// previously returned by this view are invalid afterwards.
func (b *BufferView) Release() {
	if b == nil || !b.valid {
		return
	}
	b.valid = false
	cpython.BufferRelease(&b.view)
}

// Move transfers the descriptor and exporter reference to the returned view
// and leaves the receiver invalid.
func (b *BufferView) Move() *BufferView {
	if b == nil || !b.valid {
		return &BufferView{}
	}
	moved := &BufferView{view: b.view, valid: true}
	b.view = cpython.PyBufferView{}
	b.valid = false
	return moved
}

// ViewAs reinterprets the buffer as a slice of T with no bounds or format
// checking. Matching T to the view's Format and ItemSize is the caller's
// job; this is a deliberate zero-copy, zero-overhead contract.
func ViewAs[T any](b *BufferView) []T {
	if !b.Valid() || b.view.Buf == nil || b.view.Len <= 0 {
		return nil
	}
	var elem T
	n := int(b.view.Len) / int(unsafe.Sizeof(elem))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.view.Buf), n)
}
