//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"testing"

	"github.com/obinnaokechukwu/jitpy/cpython"
)

// newTestList returns a fresh, non-immortal object with refcount 1.
// Callers run under WithGIL.
func newTestList(t *testing.T) cpython.PyObject {
	t.Helper()
	list := cpython.ListNew(0)
	if list == nil {
		t.Fatal("ListNew returned nil")
	}
	return list
}

func TestStealAndFree(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		list := newTestList(t)
		base := cpython.RefCount(list)

		o := StealObject(list)
		if o.IsNil() {
			t.Fatal("StealObject produced nil wrapper")
		}
		if got := o.RefCount(); got != base {
			t.Errorf("steal must not change the count: got %d, want %d", got, base)
		}
		o.Free()
		if !o.IsNil() {
			t.Error("wrapper should be cleared after Free")
		}
		// list storage is gone: base was 1 and Free dropped it.
	})
}

func TestBorrowAddsACount(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		list := newTestList(t)
		owner := StealObject(list)
		defer owner.Free()
		base := owner.RefCount()

		b := BorrowObject(list)
		if got := b.RefCount(); got != base+1 {
			t.Errorf("borrow should add one count: got %d, want %d", got, base+1)
		}
		b.Free()
		if got := owner.RefCount(); got != base {
			t.Errorf("freeing the borrow should restore the count: got %d, want %d", got, base)
		}
	})
}

func TestDoubleFreeIsSafe(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		list := newTestList(t)
		owner := StealObject(list)
		probe := BorrowObject(list)
		defer probe.Free()
		before := probe.RefCount()

		owner.Free()
		owner.Free() // second free must be a no-op

		if got := probe.RefCount(); got != before-1 {
			t.Errorf("double Free dropped too many counts: got %d, want %d", got, before-1)
		}
	})
}

func TestMoveTransfersObligation(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		list := newTestList(t)
		probe := BorrowObject(list)
		defer probe.Free()
		owner := StealObject(list)
		before := probe.RefCount()

		moved := owner.Move()
		if !owner.IsNil() {
			t.Error("moved-from wrapper should be nil")
		}
		owner.Free() // no-op on moved-from

		if got := probe.RefCount(); got != before {
			t.Errorf("move must not change the count: got %d, want %d", got, before)
		}

		moved.Free()
		if got := probe.RefCount(); got != before-1 {
			t.Errorf("freeing the moved wrapper should drop one count: got %d, want %d", got, before-1)
		}
	})
}

func TestReleaseHandsBackOwnership(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		list := newTestList(t)
		probe := BorrowObject(list)
		defer probe.Free()
		owner := StealObject(list)
		before := probe.RefCount()

		raw := owner.Release()
		if raw != list {
			t.Error("Release should return the wrapped pointer")
		}
		if !owner.IsNil() {
			t.Error("wrapper should be cleared after Release")
		}
		owner.Free() // no-op

		if got := probe.RefCount(); got != before {
			t.Errorf("release must not change the count: got %d, want %d", got, before)
		}
		cpython.DecRef(raw) // the caller now owns it
	})
}

func TestResetSwapsReferences(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		first := newTestList(t)
		firstProbe := BorrowObject(first)
		defer firstProbe.Free()
		firstBefore := firstProbe.RefCount()

		second := newTestList(t)

		o := StealObject(first)
		o.Reset(second) // drops first, adopts second

		if got := firstProbe.RefCount(); got != firstBefore-1 {
			t.Errorf("Reset should drop the old count: got %d, want %d", got, firstBefore-1)
		}
		if o.Raw() != second {
			t.Error("Reset should adopt the new pointer")
		}
		o.Free()
	})
}

func TestWrapBorrowedDoesNotOwn(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		list := newTestList(t)
		owner := StealObject(list)
		defer owner.Free()
		before := owner.RefCount()

		view := WrapBorrowed(list)
		view.Free() // non-owning: must not decref

		if got := owner.RefCount(); got != before {
			t.Errorf("freeing a borrowed view changed the count: got %d, want %d", got, before)
		}
	})
}

func TestNetDeltaAcrossMixedOps(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		list := newTestList(t)
		owner := StealObject(list)
		defer owner.Free()
		base := owner.RefCount()

		// Two borrows, one moved, one released: the net delta must equal the
		// number of outstanding owning wrappers at each point.
		a := BorrowObject(list)
		b := BorrowObject(list)
		if got := owner.RefCount(); got != base+2 {
			t.Fatalf("after two borrows: got %d, want %d", got, base+2)
		}

		moved := a.Move()
		if got := owner.RefCount(); got != base+2 {
			t.Errorf("move is count-neutral: got %d, want %d", got, base+2)
		}

		raw := b.Release()
		if got := owner.RefCount(); got != base+2 {
			t.Errorf("release is count-neutral: got %d, want %d", got, base+2)
		}

		moved.Free()
		cpython.DecRef(raw)
		if got := owner.RefCount(); got != base {
			t.Errorf("after discharging both: got %d, want %d", got, base)
		}
	})
}
