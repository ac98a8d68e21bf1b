//go:build !ios && !android && (amd64 || arm64)

package cpython

import (
	"os"
	"runtime"
	"testing"
	"unsafe"

	"github.com/obinnaokechukwu/jitpy/internal/bindings"
)

var pythonAvailable bool

func TestMain(m *testing.M) {
	if err := bindings.Load(); err == nil && Loaded() {
		runtime.LockOSThread()
		if IsInitialized() == 0 {
			InitializeEx(0)
		}
		pythonAvailable = true
		// Tests acquire the GIL per-test.
		save := SaveThread()
		code := m.Run()
		RestoreThread(save)
		os.Exit(code)
	}
	os.Exit(m.Run())
}

func skipIfNoPython(t *testing.T) {
	t.Helper()
	if !pythonAvailable {
		t.Skip("libpython not available")
	}
}

func withGIL(t *testing.T, fn func()) {
	t.Helper()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	state := GILStateEnsure()
	defer GILStateRelease(state)
	fn()
}

func TestSingletonsResolved(t *testing.T) {
	skipIfNoPython(t)
	if None() == nil || True() == nil || False() == nil {
		t.Fatal("singletons should resolve at load time")
	}
	for name, typ := range map[string]PyObject{
		"list":  ListType(),
		"dict":  DictType(),
		"tuple": TupleType(),
		"int":   LongType(),
		"float": FloatType(),
		"str":   UnicodeType(),
		"bool":  BoolType(),
		"bytes": BytesType(),
	} {
		if typ == nil {
			t.Errorf("type object %q not resolved", name)
		}
	}
}

func TestLongRoundTrip(t *testing.T) {
	skipIfNoPython(t)
	withGIL(t, func() {
		o := LongFromLongLong(1234567890123)
		if o == nil {
			t.Fatal("PyLong_FromLongLong returned nil")
		}
		defer DecRef(o)
		if got := LongAsLongLong(o); got != 1234567890123 {
			t.Errorf("got %d", got)
		}
		if IsInstance(o, LongType()) != 1 {
			t.Error("should be an int instance")
		}
		if IsInstance(o, FloatType()) != 0 {
			t.Error("should not be a float instance")
		}
	})
}

func TestRefCountAndTypeOf(t *testing.T) {
	skipIfNoPython(t)
	withGIL(t, func() {
		o := ListNew(0)
		defer DecRef(o)
		if rc := RefCount(o); rc != 1 {
			t.Errorf("fresh list refcount = %d, want 1", rc)
		}
		IncRef(o)
		if rc := RefCount(o); rc != 2 {
			t.Errorf("after incref = %d, want 2", rc)
		}
		DecRef(o)
		if TypeOf(o) != ListType() {
			t.Error("ob_type should be PyList_Type")
		}
	})
}

func TestListOps(t *testing.T) {
	skipIfNoPython(t)
	withGIL(t, func() {
		l := ListNew(0)
		defer DecRef(l)
		for i := int64(0); i < 3; i++ {
			v := LongFromLongLong(i * 10)
			if ListAppend(l, v) != 0 {
				t.Fatal("append failed")
			}
			DecRef(v) // append does not steal
		}
		if ListSize(l) != 3 {
			t.Fatalf("size = %d", ListSize(l))
		}
		// GetItem borrows
		if got := LongAsLongLong(ListGetItem(l, 2)); got != 20 {
			t.Errorf("l[2] = %d, want 20", got)
		}
		// SetItem steals
		if ListSetItem(l, 0, LongFromLongLong(99)) != 0 {
			t.Fatal("set failed")
		}
		if got := LongAsLongLong(ListGetItem(l, 0)); got != 99 {
			t.Errorf("l[0] = %d, want 99", got)
		}
	})
}

func TestDictOps(t *testing.T) {
	skipIfNoPython(t)
	withGIL(t, func() {
		d := DictNew()
		defer DecRef(d)
		v := LongFromLongLong(7)
		defer DecRef(v)
		if DictSetItemString(d, "k", v) != 0 {
			t.Fatal("set failed")
		}
		if got := DictGetItemString(d, "k"); got == nil || LongAsLongLong(got) != 7 {
			t.Error("lookup returned wrong value")
		}
		if DictGetItemString(d, "missing") != nil {
			t.Error("missing key should return nil without raising")
		}
		if ErrOccurred() != nil {
			t.Error("missing-key lookup must not set an error")
		}
		if DictDelItemString(d, "k") != 0 {
			t.Error("delete failed")
		}
		if ObjectSize(d) != 0 {
			t.Error("dict should be empty")
		}
	})
}

func TestUnicodeRoundTrip(t *testing.T) {
	skipIfNoPython(t)
	withGIL(t, func() {
		s := UnicodeFromString("héllo")
		if s == nil {
			t.Fatal("PyUnicode_FromString returned nil")
		}
		defer DecRef(s)
		if got := UnicodeAsString(s); got != "héllo" {
			t.Errorf("got %q", got)
		}
		if p := UnicodeAsUTF8(s); p == nil || GoString(p) != "héllo" {
			t.Error("UTF-8 pointer form disagrees")
		}
	})
}

func TestBytesRoundTrip(t *testing.T) {
	skipIfNoPython(t)
	withGIL(t, func() {
		src := []byte{0, 1, 2, 255}
		b := BytesFromStringAndSize(unsafe.Pointer(&src[0]), int64(len(src)))
		if b == nil {
			t.Fatal("PyBytes_FromStringAndSize returned nil")
		}
		defer DecRef(b)
		if BytesSize(b) != 4 {
			t.Errorf("size = %d", BytesSize(b))
		}
		p := BytesAsString(b)
		if p == nil {
			t.Fatal("nil data pointer")
		}
		got := unsafe.Slice(p, 4)
		for i := range src {
			if got[i] != src[i] {
				t.Errorf("byte %d = %d, want %d", i, got[i], src[i])
			}
		}
	})
}

func TestErrFetchNormalize(t *testing.T) {
	skipIfNoPython(t)
	withGIL(t, func() {
		main := ImportAddModule("__main__")
		g := ModuleGetDict(main)
		res := RunString("1/0", EvalInput, g, g)
		if res != nil {
			DecRef(res)
			t.Fatal("1/0 should fail")
		}
		if ErrOccurred() == nil {
			t.Fatal("error flag should be set")
		}
		ptype, pvalue, ptb := ErrFetch()
		ErrNormalizeException(&ptype, &pvalue, &ptb)
		if ptype == nil || pvalue == nil {
			t.Fatal("normalized exception missing type or value")
		}
		name := GetAttrString(ptype, "__name__")
		if UnicodeAsString(name) != "ZeroDivisionError" {
			t.Errorf("exception type = %q", UnicodeAsString(name))
		}
		DecRef(name)
		DecRef(ptype)
		DecRef(pvalue)
		DecRef(ptb)
		if ErrOccurred() != nil {
			t.Error("fetch should consume the error state")
		}
	})
}

func TestBufferViewLayout(t *testing.T) {
	// Struct layout must match the C ABI regardless of Python availability.
	var v PyBufferView
	if got := unsafe.Sizeof(v); got != 80 {
		t.Errorf("PyBufferView size = %d, want 80", got)
	}
	if off := unsafe.Offsetof(v.Len); off != 16 {
		t.Errorf("Len offset = %d, want 16", off)
	}
	if off := unsafe.Offsetof(v.Format); off != 40 {
		t.Errorf("Format offset = %d, want 40", off)
	}
	if off := unsafe.Offsetof(v.Shape); off != 48 {
		t.Errorf("Shape offset = %d, want 48", off)
	}
}
