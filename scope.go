//go:build !ios && !android && (amd64 || arm64)

package jitpy

// ScopeGuard runs a cleanup action exactly once at the end of the owning
// scope unless dismissed. It is the building block the other guards
// specialize: construct it next to the resource acquisition and defer Run.
//
//	g := jitpy.NewScopeGuard(func() { obj.Free() })
//	defer g.Run()
//
// A panic raised by the cleanup action is swallowed: a cleanup path must
// never let a secondary failure escape and mask the failure already in
// flight.
type ScopeGuard struct {
	cleanup func()
	active  bool
}

// NewScopeGuard returns a guard holding a pending cleanup action.
func NewScopeGuard(cleanup func()) *ScopeGuard {
	return &ScopeGuard{cleanup: cleanup, active: cleanup != nil}
}

// Run executes the pending cleanup action if the guard is still active.
// Subsequent calls are no-ops. Intended to be deferred.
func (g *ScopeGuard) Run() {
	if g == nil || !g.active {
		return
	}
	g.active = false
	defer func() {
		_ = recover()
	}()
	g.cleanup()
}

// Dismiss permanently disables the pending cleanup action. Idempotent.
func (g *ScopeGuard) Dismiss() {
	if g == nil {
		return
	}
	g.active = false
}

// Active reports whether the cleanup action is still pending.
func (g *ScopeGuard) Active() bool {
	return g != nil && g.active
}

// Move transfers the pending obligation to a new guard and leaves the
// receiver inert. Running the moved-from guard does nothing.
func (g *ScopeGuard) Move() *ScopeGuard {
	if g == nil {
		return &ScopeGuard{}
	}
	moved := &ScopeGuard{cleanup: g.cleanup, active: g.active}
	g.cleanup = nil
	g.active = false
	return moved
}
