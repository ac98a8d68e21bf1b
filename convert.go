//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"github.com/obinnaokechukwu/jitpy/cpython"
)

// Type converters between Go scalars and Python objects.
//
// The *To* direction is deliberately lenient: a value of the wrong type
// coerces to zero without raising. Generated code depends on this silent
// coercion; do not upgrade it to a hard failure. The From* direction returns
// a new owned reference, or nil with the interpreter's error flag set.
// All converters assume the calling thread holds the GIL.

// FromInt converts an int64 to a Python int. New reference.
func FromInt(v int64) cpython.PyObject {
	return cpython.LongFromLongLong(v)
}

// FromFloat converts a float64 to a Python float. New reference.
func FromFloat(v float64) cpython.PyObject {
	return cpython.FloatFromDouble(v)
}

// FromString converts a Go string to a Python str. New reference.
func FromString(s string) cpython.PyObject {
	return cpython.UnicodeFromString(s)
}

// FromBool converts a bool to Python True/False. New reference.
func FromBool(v bool) cpython.PyObject {
	if v {
		return cpython.BoolFromLong(1)
	}
	return cpython.BoolFromLong(0)
}

// ToInt converts a Python int to int64. A float truncates; any other type
// yields 0 without raising.
func ToInt(obj cpython.PyObject) int64 {
	switch {
	case obj == nil:
		return 0
	case cpython.IsInstance(obj, cpython.LongType()) == 1:
		return cpython.LongAsLongLong(obj)
	case cpython.IsInstance(obj, cpython.FloatType()) == 1:
		return int64(cpython.FloatAsDouble(obj))
	}
	return 0
}

// ToFloat converts a Python float to float64. An int widens; any other type
// yields 0 without raising.
func ToFloat(obj cpython.PyObject) float64 {
	switch {
	case obj == nil:
		return 0
	case cpython.IsInstance(obj, cpython.FloatType()) == 1:
		return cpython.FloatAsDouble(obj)
	case cpython.IsInstance(obj, cpython.LongType()) == 1:
		return float64(cpython.LongAsLongLong(obj))
	}
	return 0
}

// ToString copies a Python str into a Go string. Returns "" for non-str
// objects (error flag set by the runtime).
func ToString(obj cpython.PyObject) string {
	return cpython.UnicodeAsString(obj)
}

// ToBool reports the object's truthiness.
func ToBool(obj cpython.PyObject) bool {
	return cpython.ObjectIsTrue(obj) > 0
}
