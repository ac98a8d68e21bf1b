//go:build !ios && !android && (amd64 || arm64)

// Package platform provides platform detection and shared-library naming for jitpy.
// It determines how a CPython shared library is named on the current operating system.
package platform

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// jitpy only supports 64-bit platforms due to purego limitations and because
// the CPython struct offsets it relies on are 64-bit layouts.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific libpython filename for an
// interpreter version such as "3.12". An empty version returns the
// unversioned library name.
//
// Examples:
//   - Linux:   FormatLibraryName("3.12") -> "libpython3.12.so.1.0"
//   - macOS:   FormatLibraryName("3.12") -> "libpython3.12.dylib"
//   - Windows: FormatLibraryName("3.12") -> "python312.dll"
func FormatLibraryName(version string) string {
	switch runtime.GOOS {
	case "darwin":
		if version != "" {
			return fmt.Sprintf("%spython%s%s", LibraryPrefix, version, LibraryExtension)
		}
		return fmt.Sprintf("%spython3%s", LibraryPrefix, LibraryExtension)
	case "windows":
		if version != "" {
			return fmt.Sprintf("python%s%s", strings.ReplaceAll(version, ".", ""), LibraryExtension)
		}
		return fmt.Sprintf("python3%s", LibraryExtension)
	default: // linux, freebsd
		if version != "" {
			return fmt.Sprintf("%spython%s%s.1.0", LibraryPrefix, version, LibraryExtension)
		}
		return fmt.Sprintf("%spython3%s", LibraryPrefix, LibraryExtension)
	}
}

// FormatUnversionedSoname returns the plain ".so"/".dylib" name for a version,
// used as a fallback when the fully-versioned soname is not installed.
//
// Example:
//   - Linux: FormatUnversionedSoname("3.12") -> "libpython3.12.so"
func FormatUnversionedSoname(version string) string {
	if runtime.GOOS == "windows" {
		return FormatLibraryName(version)
	}
	return fmt.Sprintf("%spython%s%s", LibraryPrefix, version, LibraryExtension)
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
