//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"github.com/obinnaokechukwu/jitpy/cpython"
)

// High-level conveniences over the cpython package. All functions here
// assume the calling thread holds the GIL (see AcquireGIL / WithGIL).

// Import imports a module by name and returns an owning wrapper.
func Import(name string) (Object, error) {
	mod := cpython.ImportModule(name)
	if mod == nil {
		return Object{}, lastError("import " + name)
	}
	return StealObject(mod), nil
}

// MainNamespace returns the __main__ module's namespace dict (borrowed).
// Evaluation helpers fall back to it when no namespace is supplied.
func MainNamespace() cpython.PyObject {
	main := cpython.ImportAddModule("__main__")
	if main == nil {
		return nil
	}
	return cpython.ModuleGetDict(main)
}

// Eval evaluates a Python expression against the given local namespace
// (may be nil for __main__) and returns the owning wrapper of the result.
func Eval(expr string, locals cpython.PyObject) (Object, error) {
	globals := MainNamespace()
	if globals == nil {
		return Object{}, ErrNotInitialized
	}
	if locals == nil {
		locals = globals
	}
	res := cpython.RunString(expr, cpython.EvalInput, globals, locals)
	if res == nil {
		return Object{}, lastError("eval")
	}
	return StealObject(res), nil
}

// Exec executes Python statements against the given local namespace
// (may be nil for __main__).
func Exec(code string, locals cpython.PyObject) error {
	globals := MainNamespace()
	if globals == nil {
		return ErrNotInitialized
	}
	if locals == nil {
		locals = globals
	}
	res := cpython.RunString(code, cpython.FileInput, globals, locals)
	if res == nil {
		return lastError("exec")
	}
	cpython.DecRef(res) // statement result is always None
	return nil
}

// Call invokes a callable with the given arguments, each borrowed from the
// caller, and returns an owning wrapper of the result.
func Call(callable cpython.PyObject, args ...cpython.PyObject) (Object, error) {
	var argTuple Object
	if len(args) > 0 {
		t := cpython.TupleNew(int64(len(args)))
		if t == nil {
			return Object{}, lastError("call")
		}
		argTuple = StealObject(t)
		for i, a := range args {
			// TupleSetItem steals; take a count first so the caller's
			// reference is untouched.
			cpython.IncRef(a)
			if cpython.TupleSetItem(t, int64(i), a) != 0 {
				argTuple.Free()
				return Object{}, lastError("call")
			}
		}
	}
	defer argTuple.Free()

	res := cpython.CallObject(callable, argTuple.Raw())
	if res == nil {
		return Object{}, lastError("call")
	}
	return StealObject(res), nil
}

// None returns the None singleton (immortal; no ownership transferred).
func None() cpython.PyObject { return cpython.None() }

// True returns the True singleton.
func True() cpython.PyObject { return cpython.True() }

// False returns the False singleton.
func False() cpython.PyObject { return cpython.False() }
