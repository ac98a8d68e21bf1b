//go:build !ios && !android && (amd64 || arm64)

// Package abi exposes the jitpy safety layer as a flat table of C-callable
// symbols for JIT-generated native code. Each jit_* entry is a
// purego.NewCallback function pointer; a code generator installs the table
// in its symbol resolver and emits direct calls by exact name.
//
// Ownership convention, preserved across the entire surface: every function
// that returns a PyObject pointer returns a NEW owned reference unless its
// doc says otherwise, and every function that accepts a PyObject pointer
// BORROWS it (never consumes or releases it). Callers release owned
// references with jit_decref, and opaque handles with the matching
// *_free/*_release/*_end call, exactly once. Using a handle after its free
// is a contract violation, not a recoverable error.
//
// Unless a symbol's doc says otherwise, the caller must hold the GIL
// (jit_gil_acquire) around every call into this table.
package abi

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/jitpy"
	"github.com/obinnaokechukwu/jitpy/cpython"
	"github.com/obinnaokechukwu/jitpy/internal/handles"
)

var (
	symbolsOnce sync.Once
	symbols     map[string]uintptr
)

// Symbols returns the complete jit_* symbol table, building the callback
// trampolines on first use. The map must be treated as read-only.
func Symbols() map[string]uintptr {
	symbolsOnce.Do(buildSymbols)
	return symbols
}

// Lookup returns the address of a single symbol, or 0 if the name is not
// part of the surface.
func Lookup(name string) uintptr {
	return Symbols()[name]
}

func buildSymbols() {
	// jit_py_to_double returns a C double, which NewCallback cannot express;
	// its entry point is the assembly stub over a bit-pattern callback. See
	// trampoline.go.
	pyToDoubleCallback = purego.NewCallback(pyToDoubleBits)

	symbols = map[string]uintptr{
		// GIL management
		"jit_gil_acquire":       purego.NewCallback(gilAcquire),
		"jit_gil_release":       purego.NewCallback(gilRelease),
		"jit_gil_release_begin": purego.NewCallback(gilReleaseBegin),
		"jit_gil_release_end":   purego.NewCallback(gilReleaseEnd),

		// Python object lifetime
		"jit_pyobj_new":  purego.NewCallback(pyObjNew),
		"jit_pyobj_free": purego.NewCallback(pyObjFree),
		"jit_pyobj_get":  purego.NewCallback(pyObjGet),

		// Buffer access
		"jit_buffer_new":  purego.NewCallback(bufferNew),
		"jit_buffer_free": purego.NewCallback(bufferFree),
		"jit_buffer_data": purego.NewCallback(bufferData),
		"jit_buffer_size": purego.NewCallback(bufferSize),

		// Type conversions
		"jit_py_to_long":   purego.NewCallback(pyToLong),
		"jit_py_to_double": pyToDoubleAddr(),
		"jit_py_to_string": purego.NewCallback(pyToString),
		"jit_long_to_py":   purego.NewCallback(longToPy),
		"jit_double_to_py": purego.NewCallback(doubleToPy),
		"jit_string_to_py": purego.NewCallback(stringToPy),

		// Function calls
		"jit_call_python": purego.NewCallback(callPython),
		"jit_call1":       purego.NewCallback(call1),
		"jit_call2":       purego.NewCallback(call2),
		"jit_call3":       purego.NewCallback(call3),

		// Method calls
		"jit_call_method":  purego.NewCallback(callMethod),
		"jit_call_method0": purego.NewCallback(callMethod0),
		"jit_call_method1": purego.NewCallback(callMethod1),
		"jit_call_method2": purego.NewCallback(callMethod2),

		// Argument tuple builders
		"jit_build_args1":       purego.NewCallback(buildArgs1),
		"jit_build_args2":       purego.NewCallback(buildArgs2),
		"jit_build_args3":       purego.NewCallback(buildArgs3),
		"jit_build_int_args1":   purego.NewCallback(buildIntArgs1),
		"jit_build_int_args2":   purego.NewCallback(buildIntArgs2),
		"jit_build_float_args1": purego.NewCallback(buildFloatArgs1),
		"jit_build_float_args2": purego.NewCallback(buildFloatArgs2),

		// List operations
		"jit_list_new":    purego.NewCallback(listNew),
		"jit_list_size":   purego.NewCallback(listSize),
		"jit_list_get":    purego.NewCallback(listGet),
		"jit_list_set":    purego.NewCallback(listSet),
		"jit_list_append": purego.NewCallback(listAppend),

		// Dict operations
		"jit_dict_new":     purego.NewCallback(dictNew),
		"jit_dict_get":     purego.NewCallback(dictGet),
		"jit_dict_get_obj": purego.NewCallback(dictGetObj),
		"jit_dict_set":     purego.NewCallback(dictSet),
		"jit_dict_set_obj": purego.NewCallback(dictSetObj),
		"jit_dict_del":     purego.NewCallback(dictDel),
		"jit_dict_keys":    purego.NewCallback(dictKeys),

		// Tuple operations
		"jit_tuple_new": purego.NewCallback(tupleNew),
		"jit_tuple_get": purego.NewCallback(tupleGet),
		"jit_tuple_set": purego.NewCallback(tupleSet),

		// Attribute access
		"jit_getattr": purego.NewCallback(getAttr),
		"jit_setattr": purego.NewCallback(setAttr),
		"jit_hasattr": purego.NewCallback(hasAttr),

		// Reference counting
		"jit_incref": purego.NewCallback(incRef),
		"jit_decref": purego.NewCallback(decRef),

		// Module import
		"jit_import": purego.NewCallback(importModule),

		// Sequence/mapping access
		"jit_len":         purego.NewCallback(length),
		"jit_getitem":     purego.NewCallback(getItem),
		"jit_setitem":     purego.NewCallback(setItem),
		"jit_getitem_obj": purego.NewCallback(getItemObj),
		"jit_setitem_obj": purego.NewCallback(setItemObj),

		// Type checking
		"jit_is_list":     purego.NewCallback(isList),
		"jit_is_dict":     purego.NewCallback(isDict),
		"jit_is_tuple":    purego.NewCallback(isTuple),
		"jit_is_int":      purego.NewCallback(isInt),
		"jit_is_float":    purego.NewCallback(isFloat),
		"jit_is_str":      purego.NewCallback(isStr),
		"jit_is_none":     purego.NewCallback(isNone),
		"jit_is_callable": purego.NewCallback(isCallable),

		// Constants
		"jit_none":  purego.NewCallback(noneConst),
		"jit_true":  purego.NewCallback(trueConst),
		"jit_false": purego.NewCallback(falseConst),

		// Iterator support
		"jit_get_iter":   purego.NewCallback(getIter),
		"jit_iter_next":  purego.NewCallback(iterNext),
		"jit_iter_check": purego.NewCallback(iterCheck),

		// Bytes support
		"jit_bytes_new":  purego.NewCallback(bytesNew),
		"jit_bytes_data": purego.NewCallback(bytesData),
		"jit_bytes_len":  purego.NewCallback(bytesLen),

		// Error handling
		"jit_error_occurred": purego.NewCallback(errorOccurred),
		"jit_error_clear":    purego.NewCallback(errorClear),
		"jit_error_print":    purego.NewCallback(errorPrint),

		// Source evaluation escape hatches
		"jit_py_eval": purego.NewCallback(pyEval),
		"jit_py_exec": purego.NewCallback(pyExec),
	}
}

// Boundary pointer plumbing. The untyped uintptr<->typed casts live here and
// nowhere else; internal logic only ever sees cpython.PyObject and the
// typed wrappers.

func obj(p uintptr) cpython.PyObject {
	return cpython.PyObject(unsafe.Pointer(p)) //nolint:govet // foreign pointer, not a Go pointer
}

func ref(p cpython.PyObject) uintptr {
	return uintptr(p)
}

// newRef increfs a borrowed pointer and returns it, applying the surface's
// "returned pointers are new references" rule to CPython calls that hand
// back borrowed ones.
func newRef(p cpython.PyObject) uintptr {
	cpython.IncRef(p)
	return ref(p)
}

func cstr(p uintptr) string {
	return cpython.GoString((*byte)(unsafe.Pointer(p)))
}

// --- GIL management --------------------------------------------------------

// gilAcquire implements jit_gil_acquire: acquires the GIL (re-entrant) and
// returns an opaque guard handle. May be called without holding the GIL.
func gilAcquire() uintptr {
	g := jitpy.AcquireGIL()
	return handles.Register(handles.KindGIL, g)
}

// gilRelease implements jit_gil_release: releases the guard created by
// jit_gil_acquire. The handle is dead afterwards.
func gilRelease(h uintptr) {
	v := handles.Lookup(handles.KindGIL, h)
	if v == nil {
		return
	}
	handles.Unregister(handles.KindGIL, h)
	v.(*jitpy.GILGuard).Release()
}

// gilReleaseBegin implements jit_gil_release_begin: releases the GIL so
// native code can run in parallel, returning the thread-state token to pass
// to jit_gil_release_end. Precondition: the calling thread holds the GIL.
// Between begin and end the caller must not touch any Python object or any
// other symbol in this table.
func gilReleaseBegin() uintptr {
	return uintptr(cpython.SaveThread())
}

// gilReleaseEnd implements jit_gil_release_end: blocks until the GIL is
// available and restores the saved thread state.
func gilReleaseEnd(save uintptr) {
	cpython.RestoreThread(cpython.ThreadState(unsafe.Pointer(save)))
}

// --- Python object lifetime ------------------------------------------------

// pyObjNew implements jit_pyobj_new: wraps a borrowed object pointer in an
// owning handle (takes its own reference count). Freeing the handle drops
// that count.
func pyObjNew(p uintptr) uintptr {
	o := jitpy.BorrowObject(obj(p))
	if o.IsNil() {
		return 0
	}
	return handles.Register(handles.KindObject, &o)
}

// pyObjFree implements jit_pyobj_free: drops the handle's reference count
// and destroys the handle. Exactly one free per handle.
func pyObjFree(h uintptr) {
	v := handles.Lookup(handles.KindObject, h)
	if v == nil {
		return
	}
	handles.Unregister(handles.KindObject, h)
	v.(*jitpy.Object).Free()
}

// pyObjGet implements jit_pyobj_get: returns the wrapped pointer, borrowed;
// the handle keeps owning the count.
func pyObjGet(h uintptr) uintptr {
	v := handles.Lookup(handles.KindObject, h)
	if v == nil {
		return 0
	}
	return ref(v.(*jitpy.Object).Raw())
}

// --- Buffer access ---------------------------------------------------------

// bufferNew implements jit_buffer_new: acquires a zero-copy strided view of
// the object and returns an opaque view handle, or NULL if the object does
// not export a compatible buffer (no reference is leaked; the interpreter's
// error flag is left as the runtime set it).
func bufferNew(arr uintptr) uintptr {
	v := jitpy.AcquireBuffer(obj(arr))
	if !v.Valid() {
		return 0
	}
	return handles.Register(handles.KindBuffer, v)
}

// bufferFree implements jit_buffer_free: releases the view back to the
// exporter and destroys the handle. All pointers previously obtained from
// the view are invalid afterwards.
func bufferFree(h uintptr) {
	v := handles.Lookup(handles.KindBuffer, h)
	if v == nil {
		return
	}
	handles.Unregister(handles.KindBuffer, h)
	v.(*jitpy.BufferView).Release()
}

// bufferData implements jit_buffer_data: returns the view's base pointer,
// valid until jit_buffer_free.
func bufferData(h uintptr) uintptr {
	v := handles.Lookup(handles.KindBuffer, h)
	if v == nil {
		return 0
	}
	return uintptr(v.(*jitpy.BufferView).Data())
}

// bufferSize implements jit_buffer_size: returns the view's total byte
// length, or -1 for a dead handle.
func bufferSize(h uintptr) int64 {
	v := handles.Lookup(handles.KindBuffer, h)
	if v == nil {
		return -1
	}
	return v.(*jitpy.BufferView).Len()
}
