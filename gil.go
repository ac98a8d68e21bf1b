//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"runtime"

	"github.com/obinnaokechukwu/jitpy/cpython"
)

// GILGuard holds the global interpreter lock for its lifetime. Construction
// acquires (a no-op nesting if the calling thread already holds the lock,
// via CPython's own nested-state token); Release puts the lock state back
// exactly as it was.
//
// Guards are stack-discipline only: acquire and release on the same OS
// thread, in the frame that created the guard. Do not store one beyond that
// frame except through the abi package's begin/end calls, which simulate the
// pairing for callers that cannot express scoped lifetimes.
type GILGuard struct {
	state    cpython.GILState
	released bool
}

// AcquireGIL acquires the GIL and returns the guard that releases it.
//
//	g := jitpy.AcquireGIL()
//	defer g.Release()
func AcquireGIL() *GILGuard {
	return &GILGuard{state: cpython.GILStateEnsure()}
}

// Release puts the GIL back into its pre-acquisition state. The first call
// releases; later calls are no-ops.
func (g *GILGuard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	cpython.GILStateRelease(g.state)
}

// GILRelease is the inverse guard: it releases the GIL for its lifetime so
// long-running native work can proceed in parallel, and reacquires on
// Reacquire. While the guard is open the calling thread must not touch any
// Python object, reference count, or abi call; doing so is a data race.
//
// Precondition: the calling thread holds the GIL. Violating it crashes or
// deadlocks inside CPython; this layer does not attempt to recover.
type GILRelease struct {
	save       cpython.ThreadState
	reacquired bool
}

// ReleaseGIL releases the GIL and returns the guard that reacquires it.
//
//	r := jitpy.ReleaseGIL()
//	// ... parallel native work, no Python access ...
//	r.Reacquire()
func ReleaseGIL() *GILRelease {
	return &GILRelease{save: cpython.SaveThread()}
}

// Reacquire blocks until the GIL is available and restores the saved thread
// state. The first call reacquires; later calls are no-ops.
func (g *GILRelease) Reacquire() {
	if g == nil || g.reacquired {
		return
	}
	g.reacquired = true
	cpython.RestoreThread(g.save)
	g.save = nil
}

// WithGIL pins the goroutine to its OS thread, runs fn under the GIL, and
// releases on every exit path including panic. This is the safe way to use
// the GIL from goroutines, which otherwise migrate between OS threads and
// break the guard pairing.
func WithGIL(fn func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	g := AcquireGIL()
	defer g.Release()
	fn()
}

// WithoutGIL releases the GIL around fn, reacquiring on every exit path.
// The caller must hold the GIL and must already be pinned to its OS thread.
// fn must not touch the interpreter.
func WithoutGIL(fn func()) {
	r := ReleaseGIL()
	defer r.Reacquire()
	fn()
}
