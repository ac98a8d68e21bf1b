//go:build !ios && !android && (amd64 || arm64)

package abi

import (
	"math"
	"reflect"
)

// purego callbacks can only move integer-class results back to C, so
// jit_py_to_double cannot be a plain NewCallback: its double result would
// never reach the float return register. The symbol table instead points C
// callers at pyToDoubleStub (trampoline_amd64.s / trampoline_arm64.s),
// which forwards the object argument to pyToDoubleCallback and moves the
// returned bit pattern into XMM0 / D0.

// pyToDoubleCallback is the C-callable pointer the stub chains to. Set
// once by buildSymbols before the table is published.
var pyToDoubleCallback uintptr

// pyToDoubleBits performs the conversion and hands the result back as its
// IEEE-754 bit pattern in an integer register.
func pyToDoubleBits(o uintptr) uintptr {
	return uintptr(math.Float64bits(pyToDouble(o)))
}

// pyToDoubleStub is the C entry point for jit_py_to_double. Implemented in
// assembly; never call it from Go.
func pyToDoubleStub()

// pyToDoubleAddr returns the stub's entry point for the symbol table.
func pyToDoubleAddr() uintptr {
	return reflect.ValueOf(pyToDoubleStub).Pointer()
}
