//go:build !ios && !android && (amd64 || arm64)

package abi

import (
	"unsafe"

	"github.com/obinnaokechukwu/jitpy"
	"github.com/obinnaokechukwu/jitpy/cpython"
)

// --- Type conversions ------------------------------------------------------

// pyToLong implements jit_py_to_long: lenient conversion to a C long long.
// A float truncates; any other type yields 0 without raising.
func pyToLong(o uintptr) int64 {
	return jitpy.ToInt(obj(o))
}

// pyToDouble implements jit_py_to_double: lenient conversion to a C double.
// An int widens; any other type yields 0.0 without raising. C callers reach
// it through pyToDoubleStub (trampoline.go), which handles the float
// return.
func pyToDouble(o uintptr) float64 {
	return jitpy.ToFloat(obj(o))
}

// pyToString implements jit_py_to_string: returns the UTF-8 representation
// of a str object. The pointer is borrowed: valid only while the object is
// alive and unmodified, never a new allocation. NULL for non-str objects.
func pyToString(o uintptr) uintptr {
	return uintptr(unsafe.Pointer(cpython.UnicodeAsUTF8(obj(o))))
}

// longToPy implements jit_long_to_py: returns a new int object.
func longToPy(v int64) uintptr {
	return ref(jitpy.FromInt(v))
}

// doubleToPy implements jit_double_to_py: returns a new float object.
func doubleToPy(v float64) uintptr {
	return ref(jitpy.FromFloat(v))
}

// stringToPy implements jit_string_to_py: returns a new str object, or NULL
// with the error state set for invalid UTF-8.
func stringToPy(s uintptr) uintptr {
	return ref(jitpy.FromString(cstr(s)))
}

// --- Type checking ---------------------------------------------------------
//
// Each predicate returns 1 or 0 and never raises. Subclasses match, as with
// the interpreter's own checks.

func isList(o uintptr) int32 {
	return boolInt(cpython.IsInstance(obj(o), cpython.ListType()) == 1)
}

func isDict(o uintptr) int32 {
	return boolInt(cpython.IsInstance(obj(o), cpython.DictType()) == 1)
}

func isTuple(o uintptr) int32 {
	return boolInt(cpython.IsInstance(obj(o), cpython.TupleType()) == 1)
}

func isInt(o uintptr) int32 {
	return boolInt(cpython.IsInstance(obj(o), cpython.LongType()) == 1)
}

func isFloat(o uintptr) int32 {
	return boolInt(cpython.IsInstance(obj(o), cpython.FloatType()) == 1)
}

func isStr(o uintptr) int32 {
	return boolInt(cpython.IsInstance(obj(o), cpython.UnicodeType()) == 1)
}

func isNone(o uintptr) int32 {
	return boolInt(obj(o) == cpython.None() && cpython.None() != nil)
}

func isCallable(o uintptr) int32 {
	return boolInt(cpython.CallableCheck(obj(o)) == 1)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// --- Constants -------------------------------------------------------------

// noneConst implements jit_none: returns a new reference to None.
func noneConst() uintptr {
	return newRef(cpython.None())
}

// trueConst implements jit_true: returns a new reference to True.
func trueConst() uintptr {
	return newRef(cpython.True())
}

// falseConst implements jit_false: returns a new reference to False.
func falseConst() uintptr {
	return newRef(cpython.False())
}

// --- Error handling --------------------------------------------------------

// errorOccurred implements jit_error_occurred: returns 1 if the interpreter
// has a pending exception.
func errorOccurred() int32 {
	return boolInt(cpython.ErrOccurred() != nil)
}

// errorClear implements jit_error_clear: clears any pending exception.
func errorClear() {
	cpython.ErrClear()
}

// errorPrint implements jit_error_print: prints any pending exception to
// sys.stderr and clears it.
func errorPrint() {
	cpython.ErrPrint()
}
