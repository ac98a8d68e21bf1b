//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	err := Load()
	if err != nil {
		t.Skipf("libpython not available: %v", err)
	}

	if !IsLoaded() {
		t.Error("IsLoaded should be true after successful Load")
	}
	if LibPython() == 0 {
		t.Error("LibPython handle should be non-zero after Load")
	}
}

func TestLoadIdempotent(t *testing.T) {
	err1 := Load()
	err2 := Load()
	if (err1 == nil) != (err2 == nil) {
		t.Errorf("Load not idempotent: first=%v second=%v", err1, err2)
	}
}

func TestVersion(t *testing.T) {
	if err := Load(); err != nil {
		t.Skipf("libpython not available: %v", err)
	}

	ver := Version()
	if ver == "" {
		t.Fatal("Version should be non-empty after Load")
	}
	if !strings.HasPrefix(ver, "3.") {
		t.Errorf("expected a Python 3 version string, got %q", ver)
	}
}

func TestLibrarySearchPaths(t *testing.T) {
	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Error("expected at least one search path")
	}
}
