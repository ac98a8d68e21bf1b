// Package handles provides a thread-safe registry backing the opaque handles
// jitpy hands across the C call boundary.
//
// JIT-generated code cannot hold Go pointers, so every stateful resource it
// receives (an owned object wrapper, a GIL snapshot, a buffer view) is
// registered here and referenced by a uintptr ID. Each handle carries a kind
// tag; looking a handle up under the wrong kind returns nil, which lets the
// boundary functions reject a buffer handle passed where an object handle was
// expected instead of corrupting unrelated state.
package handles

import (
	"sync"
)

// Kind tags the resource type behind a handle.
type Kind uint8

const (
	KindObject Kind = iota + 1 // owned foreign object wrapper
	KindGIL                    // GIL acquisition snapshot
	KindBuffer                 // zero-copy buffer view
)

type entry struct {
	kind  Kind
	value any
}

var (
	mu      sync.RWMutex
	handles         = make(map[uintptr]entry)
	nextID  uintptr = 1
)

// Register stores a resource and returns a handle ID that can be safely
// stored in C memory (as uintptr or void*). The resource remains reachable
// until Unregister is called.
//
// Thread-safe.
func Register(kind Kind, v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	handles[id] = entry{kind: kind, value: v}
	return id
}

// Lookup retrieves a resource by its handle ID. Returns nil if the handle is
// not registered or was registered under a different kind.
//
// Thread-safe.
func Lookup(kind Kind, id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := handles[id]
	if !ok || e.kind != kind {
		return nil
	}
	return e.value
}

// Unregister removes a handle. The matching free call for every handle must
// run exactly once; Unregister reports whether the handle was still live so
// callers can treat a second free as the contract violation it is.
//
// Thread-safe.
func Unregister(kind Kind, id uintptr) bool {
	mu.Lock()
	defer mu.Unlock()
	e, ok := handles[id]
	if !ok || e.kind != kind {
		return false
	}
	delete(handles, id)
	return true
}

// Count returns the number of currently registered handles.
// Useful for leak checks in tests.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(handles)
}
