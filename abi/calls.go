//go:build !ios && !android && (amd64 || arm64)

package abi

import (
	"github.com/obinnaokechukwu/jitpy"
	"github.com/obinnaokechukwu/jitpy/cpython"
)

// packArgs builds an argument tuple from borrowed object pointers.
// PyTuple_SetItem steals, so each slot takes its own count first.
// Returns an owned tuple, or nil with the error state set.
func packArgs(args ...cpython.PyObject) cpython.PyObject {
	t := cpython.TupleNew(int64(len(args)))
	if t == nil {
		return nil
	}
	for i, a := range args {
		cpython.IncRef(a)
		if cpython.TupleSetItem(t, int64(i), a) != 0 {
			cpython.DecRef(t)
			return nil
		}
	}
	return t
}

// callPython implements jit_call_python: calls a callable with a borrowed
// argument tuple (may be NULL for no arguments). Returns a new reference,
// or NULL with the error state set.
func callPython(fn, args uintptr) uintptr {
	return ref(cpython.CallObject(obj(fn), obj(args)))
}

// call1 implements jit_call1: calls fn with one borrowed argument.
func call1(fn, arg uintptr) uintptr {
	t := jitpy.StealObject(packArgs(obj(arg)))
	if t.IsNil() {
		return 0
	}
	defer t.Free()
	return ref(cpython.CallObject(obj(fn), t.Raw()))
}

// call2 implements jit_call2: calls fn with two borrowed arguments.
func call2(fn, arg1, arg2 uintptr) uintptr {
	t := jitpy.StealObject(packArgs(obj(arg1), obj(arg2)))
	if t.IsNil() {
		return 0
	}
	defer t.Free()
	return ref(cpython.CallObject(obj(fn), t.Raw()))
}

// call3 implements jit_call3: calls fn with three borrowed arguments.
func call3(fn, arg1, arg2, arg3 uintptr) uintptr {
	t := jitpy.StealObject(packArgs(obj(arg1), obj(arg2), obj(arg3)))
	if t.IsNil() {
		return 0
	}
	defer t.Free()
	return ref(cpython.CallObject(obj(fn), t.Raw()))
}

// boundMethod returns an owned reference to obj.<name>, or a nil wrapper
// with the error state set.
func boundMethod(o uintptr, name uintptr) jitpy.Object {
	return jitpy.StealObject(cpython.GetAttrString(obj(o), cstr(name)))
}

// callMethod implements jit_call_method: calls obj.<method> with a borrowed
// argument tuple (may be NULL). Returns a new reference.
func callMethod(o, method, args uintptr) uintptr {
	m := boundMethod(o, method)
	if m.IsNil() {
		return 0
	}
	defer m.Free()
	return ref(cpython.CallObject(m.Raw(), obj(args)))
}

// callMethod0 implements jit_call_method0: calls obj.<method>().
func callMethod0(o, method uintptr) uintptr {
	m := boundMethod(o, method)
	if m.IsNil() {
		return 0
	}
	defer m.Free()
	return ref(cpython.CallObject(m.Raw(), nil))
}

// callMethod1 implements jit_call_method1: calls obj.<method> with one
// borrowed argument.
func callMethod1(o, method, arg uintptr) uintptr {
	m := boundMethod(o, method)
	if m.IsNil() {
		return 0
	}
	defer m.Free()
	t := jitpy.StealObject(packArgs(obj(arg)))
	if t.IsNil() {
		return 0
	}
	defer t.Free()
	return ref(cpython.CallObject(m.Raw(), t.Raw()))
}

// callMethod2 implements jit_call_method2: calls obj.<method> with two
// borrowed arguments.
func callMethod2(o, method, arg1, arg2 uintptr) uintptr {
	m := boundMethod(o, method)
	if m.IsNil() {
		return 0
	}
	defer m.Free()
	t := jitpy.StealObject(packArgs(obj(arg1), obj(arg2)))
	if t.IsNil() {
		return 0
	}
	defer t.Free()
	return ref(cpython.CallObject(m.Raw(), t.Raw()))
}

// buildArgs1 implements jit_build_args1: packs one borrowed object into a
// new argument tuple.
func buildArgs1(arg uintptr) uintptr {
	return ref(packArgs(obj(arg)))
}

// buildArgs2 implements jit_build_args2.
func buildArgs2(arg1, arg2 uintptr) uintptr {
	return ref(packArgs(obj(arg1), obj(arg2)))
}

// buildArgs3 implements jit_build_args3.
func buildArgs3(arg1, arg2, arg3 uintptr) uintptr {
	return ref(packArgs(obj(arg1), obj(arg2), obj(arg3)))
}

// packFresh builds an argument tuple from references this surface just
// created; the steal by PyTuple_SetItem is exactly the transfer wanted.
func packFresh(args ...cpython.PyObject) cpython.PyObject {
	t := cpython.TupleNew(int64(len(args)))
	if t == nil {
		for _, a := range args {
			cpython.DecRef(a)
		}
		return nil
	}
	for i, a := range args {
		if cpython.TupleSetItem(t, int64(i), a) != 0 {
			cpython.DecRef(t)
			return nil
		}
	}
	return t
}

// buildIntArgs1 implements jit_build_int_args1: converts and packs one C
// integer into a new argument tuple.
func buildIntArgs1(v1 int64) uintptr {
	return ref(packFresh(jitpy.FromInt(v1)))
}

// buildIntArgs2 implements jit_build_int_args2.
func buildIntArgs2(v1, v2 int64) uintptr {
	return ref(packFresh(jitpy.FromInt(v1), jitpy.FromInt(v2)))
}

// buildFloatArgs1 implements jit_build_float_args1: converts and packs one C
// double into a new argument tuple.
func buildFloatArgs1(v1 float64) uintptr {
	return ref(packFresh(jitpy.FromFloat(v1)))
}

// buildFloatArgs2 implements jit_build_float_args2.
func buildFloatArgs2(v1, v2 float64) uintptr {
	return ref(packFresh(jitpy.FromFloat(v1), jitpy.FromFloat(v2)))
}

// pyEval implements jit_py_eval: evaluates an expression against the given
// borrowed namespace dict (NULL for __main__). Returns a new reference to
// the result, or NULL with the error state set.
func pyEval(expr, locals uintptr) uintptr {
	globals := jitpy.MainNamespace()
	if globals == nil {
		return 0
	}
	loc := obj(locals)
	if loc == nil {
		loc = globals
	}
	return ref(cpython.RunString(cstr(expr), cpython.EvalInput, globals, loc))
}

// pyExec implements jit_py_exec: executes statements against the given
// borrowed namespace dict (NULL for __main__). Returns a new reference to
// None on success, or NULL with the error state set.
func pyExec(code, locals uintptr) uintptr {
	globals := jitpy.MainNamespace()
	if globals == nil {
		return 0
	}
	loc := obj(locals)
	if loc == nil {
		loc = globals
	}
	return ref(cpython.RunString(cstr(code), cpython.FileInput, globals, loc))
}
