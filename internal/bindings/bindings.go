//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles locating and loading the CPython shared library
// using purego. All jitpy packages resolve libpython symbols through the
// handle this package owns.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/jitpy/internal/platform"
)

// ErrNotLoaded is returned when libpython functions are called before Load().
var ErrNotLoaded = errors.New("jitpy: libpython not loaded; call jitpy.Init() first")

// ErrLibraryNotFound is returned when no CPython shared library can be found.
var ErrLibraryNotFound = errors.New("jitpy: libpython not found")

// Interpreter versions probed during discovery, newest first.
var probeVersions = []string{"3.13", "3.12", "3.11", "3.10", "3.9", "3.8"}

var (
	libPython uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Version probe binding. Py_GetVersion returns a static string and is safe to
// call before Py_Initialize.
var pyGetVersion func() string

// IsLoaded returns true if libpython has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load locates and loads libpython and registers the version probe.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error
	libPython, err = loadLibrary()
	if err != nil {
		return fmt.Errorf("loading libpython: %w", err)
	}

	purego.RegisterLibFunc(&pyGetVersion, libPython, "Py_GetVersion")
	return nil
}

// loadLibrary tries an explicit override first, then versioned sonames in
// every search path, then lets the system resolver find one.
func loadLibrary() (uintptr, error) {
	// JITPY_PYTHON_LIB points at the exact shared library to use.
	if override := os.Getenv("JITPY_PYTHON_LIB"); override != "" {
		lib, err := tryOpen(override)
		if err != nil {
			return 0, fmt.Errorf("%w: JITPY_PYTHON_LIB=%s: %v", ErrLibraryNotFound, override, err)
		}
		return lib, nil
	}

	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range probeVersions {
			for _, libName := range candidateNames(ver) {
				lib, err := tryOpen(filepath.Join(searchPath, libName))
				if err == nil {
					return lib, nil
				}
			}
		}
	}

	// Bare names: let the dynamic loader search its own paths.
	for _, ver := range probeVersions {
		for _, libName := range candidateNames(ver) {
			lib, err := tryOpen(libName)
			if err == nil {
				return lib, nil
			}
		}
	}
	lib, err := tryOpen(platform.FormatLibraryName(""))
	if err == nil {
		return lib, nil
	}

	return 0, ErrLibraryNotFound
}

func candidateNames(version string) []string {
	names := []string{platform.FormatLibraryName(version)}
	if alt := platform.FormatUnversionedSoname(version); alt != names[0] {
		names = append(names, alt)
	}
	return names
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// RTLD_GLOBAL is required: compiled extension modules imported later resolve
// their Py* symbols against the already-loaded interpreter image.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for a CPython library and returns its full path.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range probeVersions {
			for _, libName := range candidateNames(ver) {
				fullPath := filepath.Join(searchPath, libName)
				if _, err := os.Stat(fullPath); err == nil {
					return fullPath, nil
				}
			}
		}
	}
	return "", ErrLibraryNotFound
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib",
			"/usr/lib64",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
			"/opt/homebrew/opt/python/lib",
			"/usr/local/opt/python/lib",
			"/Library/Frameworks/Python.framework/Versions/Current/lib",
		)

	case "windows":
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		paths = append(paths,
			"C:\\Python313",
			"C:\\Python312",
			"C:\\Windows\\System32",
		)

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}

// Version returns the interpreter version string ("3.12.4 (main, ...)").
// Returns "" if libpython is not loaded.
func Version() string {
	if !loaded || pyGetVersion == nil {
		return ""
	}
	return pyGetVersion()
}

// LibPython returns the libpython library handle.
func LibPython() uintptr {
	return libPython
}
