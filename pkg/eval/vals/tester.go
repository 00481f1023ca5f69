package vals

import (
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v Value
}

// TestValue returns a ValueTester.
func TestValue(t *testing.T, v Value) Tester {
	return Tester{t, v}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind Kind) Tester {
	vt.t.Helper()
	if kind := vt.v.Kind(); kind != wantKind {
		vt.t.Errorf("v.Kind() = %v, want %v", kind, wantKind)
	}
	return vt
}

// TypeName tests the TypeName of the value.
func (vt Tester) TypeName(wantName string) Tester {
	vt.t.Helper()
	if name := vt.v.TypeName(); name != wantName {
		vt.t.Errorf("v.TypeName() = %s, want %s", name, wantName)
	}
	return vt
}

// Numeric tests the IsNumeric of the value.
func (vt Tester) Numeric(wantNumeric bool) Tester {
	vt.t.Helper()
	if numeric := vt.v.IsNumeric(); numeric != wantNumeric {
		vt.t.Errorf("v.IsNumeric() = %v, want %v", numeric, wantNumeric)
	}
	return vt
}

// Repr tests the Repr of the value.
func (vt Tester) Repr(wantRepr string) Tester {
	vt.t.Helper()
	if repr := Repr(vt.v); repr != wantRepr {
		vt.t.Errorf("Repr(v) = %s, want %s", repr, wantRepr)
	}
	return vt
}

// Equal tests that the value is Equal to every of the given values, and has
// the same canonical form as each of them.
func (vt Tester) Equal(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if !Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = false, want true", other)
		} else if Repr(vt.v) != Repr(other) {
			vt.t.Errorf("Repr(v) = %s, Repr(%v) = %s, want the same", Repr(vt.v), other, Repr(other))
		}
	}
	return vt
}

// NotEqual tests that the value is not Equal to any of the given values.
func (vt Tester) NotEqual(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %v) = true, want false", other)
		}
	}
	return vt
}

// Clone tests that a clone of the value is equal to it and has the same
// canonical form.
func (vt Tester) Clone() Tester {
	vt.t.Helper()
	c := vt.v.Clone()
	if !Equal(c, vt.v) {
		vt.t.Errorf("Equal(v.Clone(), v) = false, want true")
	}
	if Repr(c) != Repr(vt.v) {
		vt.t.Errorf("Repr(v.Clone()) = %s, want %s", Repr(c), Repr(vt.v))
	}
	return vt
}
