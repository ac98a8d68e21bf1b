//go:build !ios && !android && (amd64 || arm64)

package jitpy

import "testing"

func TestScalarRoundTrips(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		i := StealObject(FromInt(-7))
		defer i.Free()
		if got := ToInt(i.Raw()); got != -7 {
			t.Errorf("int round trip = %d, want -7", got)
		}

		f := StealObject(FromFloat(3.14))
		defer f.Free()
		if got := ToFloat(f.Raw()); got != 3.14 {
			t.Errorf("float round trip = %v, want 3.14", got)
		}

		s := StealObject(FromString("abc"))
		defer s.Free()
		if got := ToString(s.Raw()); got != "abc" {
			t.Errorf("string round trip = %q, want %q", got, "abc")
		}

		b := StealObject(FromBool(true))
		defer b.Free()
		if !ToBool(b.Raw()) {
			t.Error("bool round trip lost the value")
		}
	})
}

func TestLenientCoercion(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		f := StealObject(FromFloat(9.9))
		defer f.Free()
		// float truncates toward zero
		if got := ToInt(f.Raw()); got != 9 {
			t.Errorf("ToInt(9.9) = %d, want 9", got)
		}

		i := StealObject(FromInt(4))
		defer i.Free()
		// int widens
		if got := ToFloat(i.Raw()); got != 4.0 {
			t.Errorf("ToFloat(4) = %v, want 4", got)
		}

		// wrong type coerces to zero, quietly
		s := StealObject(FromString("not a number"))
		defer s.Free()
		if got := ToInt(s.Raw()); got != 0 {
			t.Errorf("ToInt(str) = %d, want 0", got)
		}
		if got := ToFloat(s.Raw()); got != 0 {
			t.Errorf("ToFloat(str) = %v, want 0", got)
		}
		if ErrorOccurred() {
			t.Error("lenient coercion must not set the error flag")
		}

		if got := ToInt(nil); got != 0 {
			t.Errorf("ToInt(nil) = %d, want 0", got)
		}
		if got := ToFloat(nil); got != 0 {
			t.Errorf("ToFloat(nil) = %v, want 0", got)
		}
	})
}

func TestTruthiness(t *testing.T) {
	skipIfNoPython(t)
	WithGIL(func() {
		empty, err := Eval("[]", nil)
		if err != nil {
			t.Fatal(err)
		}
		defer empty.Free()
		if ToBool(empty.Raw()) {
			t.Error("empty list should be falsy")
		}

		full, err := Eval("[0]", nil)
		if err != nil {
			t.Fatal(err)
		}
		defer full.Free()
		if !ToBool(full.Raw()) {
			t.Error("non-empty list should be truthy")
		}
	})
}
