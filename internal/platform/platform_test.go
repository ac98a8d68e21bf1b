//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestIs64Bit(t *testing.T) {
	// We only support 64-bit platforms
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		version string
		goos    string
		want    string
	}{
		{"3.12", "linux", "libpython3.12.so.1.0"},
		{"", "linux", "libpython3.so"},
		{"3.12", "darwin", "libpython3.12.dylib"},
		{"", "darwin", "libpython3.dylib"},
		{"3.12", "windows", "python312.dll"},
		{"", "windows", "python3.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.version+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			got := FormatLibraryName(tt.version)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q) = %q, want %q", tt.version, got, tt.want)
			}
		})
	}
}

func TestFormatUnversionedSoname(t *testing.T) {
	got := FormatUnversionedSoname("3.11")
	switch runtime.GOOS {
	case "linux":
		if got != "libpython3.11.so" {
			t.Errorf("FormatUnversionedSoname(3.11) = %q", got)
		}
	case "darwin":
		if got != "libpython3.11.dylib" {
			t.Errorf("FormatUnversionedSoname(3.11) = %q", got)
		}
	case "windows":
		if got != "python311.dll" {
			t.Errorf("FormatUnversionedSoname(3.11) = %q", got)
		}
	}
}
