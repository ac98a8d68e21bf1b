//go:build !ios && !android && (amd64 || arm64)

package jitpy

import (
	"os"
	"strings"
	"testing"
)

var pythonAvailable bool

func TestMain(m *testing.M) {
	if err := Initialize(); err == nil {
		pythonAvailable = true
	}
	os.Exit(m.Run())
}

func skipIfNoPython(t *testing.T) {
	t.Helper()
	if !pythonAvailable {
		t.Skip("libpython not available")
	}
}

func TestInit(t *testing.T) {
	skipIfNoPython(t)
	if err := Init(); err != nil {
		t.Fatalf("Init after Initialize should succeed: %v", err)
	}
	if !IsLoaded() {
		t.Error("IsLoaded should be true")
	}
}

func TestInitializeIdempotent(t *testing.T) {
	skipIfNoPython(t)
	if err := Initialize(); err != nil {
		t.Fatalf("second Initialize should be a no-op: %v", err)
	}
	if !IsInitialized() {
		t.Error("IsInitialized should be true")
	}
}

func TestVersion(t *testing.T) {
	skipIfNoPython(t)
	ver := Version()
	if !strings.HasPrefix(ver, "3.") {
		t.Errorf("expected a Python 3 version string, got %q", ver)
	}
}
