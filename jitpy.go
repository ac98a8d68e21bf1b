//go:build !ios && !android && (amd64 || arm64)

// Package jitpy provides a resource-safety layer between JIT-generated
// native code and an embedded CPython interpreter, without CGO using purego.
//
// The package wraps CPython's reference counting, GIL, containers and buffer
// protocol behind scope-bound guards (GILGuard, GILRelease, ScopeGuard),
// an owning object wrapper (Object) and a zero-copy buffer view (BufferView),
// and projects all of it through a flat C-callable symbol table (package abi)
// that generated code can call directly.
//
// For most use cases, the high-level helpers (Initialize, Import, Eval,
// Call) are enough. For advanced use cases, the low-level cpython package
// is available.
package jitpy

import (
	"runtime"
	"sync"

	"github.com/obinnaokechukwu/jitpy/cpython"
	"github.com/obinnaokechukwu/jitpy/internal/bindings"
)

// Init loads libpython and registers all bindings. This is called
// automatically by Initialize, but can be called explicitly to check for
// errors. It is safe to call multiple times.
func Init() error {
	return bindings.Load()
}

// IsLoaded returns true if libpython has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Version returns the interpreter version string, or "" if libpython is not
// loaded.
func Version() string {
	return bindings.Version()
}

var (
	initMu      sync.Mutex
	initialized bool
	mainState   cpython.ThreadState
)

// Initialize loads libpython, starts the interpreter if it is not already
// running, and releases the GIL so that any thread may subsequently acquire
// it with AcquireGIL. It is safe to call multiple times.
//
// Signal handling is left to the embedding process (Py_InitializeEx(0)).
func Initialize() error {
	initMu.Lock()
	defer initMu.Unlock()

	if initialized {
		return nil
	}
	if err := bindings.Load(); err != nil {
		return err
	}

	// The interpreter binds its main thread state to the OS thread that
	// initializes it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if cpython.IsInitialized() == 0 {
		cpython.InitializeEx(0)
	} else {
		// Interpreter already running (embedded elsewhere); take the GIL so
		// the SaveThread below has a state to detach.
		cpython.GILStateEnsure()
	}

	// Detach the initializing thread so worker threads can contend for the
	// GIL through GILStateEnsure.
	mainState = cpython.SaveThread()
	initialized = true
	return nil
}

// IsInitialized returns true after a successful Initialize.
func IsInitialized() bool {
	initMu.Lock()
	defer initMu.Unlock()
	return initialized
}

// Finalize restores the main thread state and shuts the interpreter down.
// All objects, views and guards must have been released first; using any of
// them afterwards is undefined.
func Finalize() error {
	initMu.Lock()
	defer initMu.Unlock()

	if !initialized {
		return ErrNotInitialized
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cpython.RestoreThread(mainState)
	mainState = nil
	initialized = false
	if cpython.FinalizeEx() < 0 {
		return ErrFinalize
	}
	return nil
}
