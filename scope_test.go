//go:build !ios && !android && (amd64 || arm64)

package jitpy

import "testing"

func TestScopeGuardRunsOnce(t *testing.T) {
	ran := 0
	g := NewScopeGuard(func() { ran++ })

	if !g.Active() {
		t.Error("guard should be active before Run")
	}

	g.Run()
	g.Run()

	if ran != 1 {
		t.Errorf("cleanup ran %d times, want 1", ran)
	}
	if g.Active() {
		t.Error("guard should be inert after Run")
	}
}

func TestScopeGuardDeferred(t *testing.T) {
	ran := false
	func() {
		g := NewScopeGuard(func() { ran = true })
		defer g.Run()

		if ran {
			t.Error("cleanup must not run before scope exit")
		}
	}()
	if !ran {
		t.Error("cleanup should run at scope exit")
	}
}

func TestScopeGuardDismiss(t *testing.T) {
	ran := false
	g := NewScopeGuard(func() { ran = true })

	g.Dismiss()
	g.Dismiss() // idempotent
	g.Run()

	if ran {
		t.Error("dismissed guard must not run its cleanup")
	}
}

func TestScopeGuardMove(t *testing.T) {
	ran := 0
	g := NewScopeGuard(func() { ran++ })

	moved := g.Move()

	g.Run()
	if ran != 0 {
		t.Error("moved-from guard must be inert")
	}

	moved.Run()
	if ran != 1 {
		t.Errorf("moved guard should run the cleanup once, ran %d", ran)
	}
}

func TestScopeGuardSwallowsPanic(t *testing.T) {
	g := NewScopeGuard(func() { panic("cleanup failed") })

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("panic escaped the guard: %v", r)
		}
	}()
	g.Run()
}

func TestScopeGuardPanicStillDisarms(t *testing.T) {
	ran := 0
	g := NewScopeGuard(func() {
		ran++
		panic("cleanup failed")
	})

	g.Run()
	g.Run()

	if ran != 1 {
		t.Errorf("panicking cleanup ran %d times, want 1", ran)
	}
}

func TestScopeGuardNilCleanup(t *testing.T) {
	g := NewScopeGuard(nil)
	if g.Active() {
		t.Error("guard with nil cleanup should be inert")
	}
	g.Run() // must not panic
}
