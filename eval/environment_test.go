package eval

import (
	"testing"

	"github.com/AgustinCB/smoked/types"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", types.NewInt(1))

	val, ok := env.Get("x")
	if !ok {
		t.Fatal("x not found")
	}
	if !val.Equal(types.NewInt(1)) {
		t.Errorf("x = %v, want 1", val)
	}

	if _, ok := env.Get("y"); ok {
		t.Error("undefined y reported as found")
	}
}

func TestEnvironmentNesting(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", types.NewInt(1))
	outer.Define("y", types.NewInt(2))

	inner := NewNestedEnvironment(outer)
	inner.Define("x", types.NewInt(10))

	// Inner shadows outer
	val, _ := inner.Get("x")
	if !val.Equal(types.NewInt(10)) {
		t.Errorf("inner x = %v, want 10", val)
	}

	// Outer still visible through inner
	val, ok := inner.Get("y")
	if !ok || !val.Equal(types.NewInt(2)) {
		t.Errorf("inner y = %v, want 2", val)
	}

	// Outer unaffected by shadow
	val, _ = outer.Get("x")
	if !val.Equal(types.NewInt(1)) {
		t.Errorf("outer x = %v, want 1", val)
	}
}

func TestEnvironmentAssignWalksOutward(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", types.NewInt(1))
	inner := NewNestedEnvironment(outer)

	if !inner.Assign("x", types.NewInt(5)) {
		t.Fatal("assign to outer x failed")
	}

	val, _ := outer.Get("x")
	if !val.Equal(types.NewInt(5)) {
		t.Errorf("outer x = %v, want 5 after inner assign", val)
	}

	// Assignment never creates a binding
	if inner.Assign("missing", types.NewInt(1)) {
		t.Error("assign invented a binding for an undefined name")
	}
	if _, ok := inner.Get("missing"); ok {
		t.Error("failed assign left a binding behind")
	}
}

func TestEnvironmentAssignPrefersNearestScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", types.NewInt(1))
	inner := NewNestedEnvironment(outer)
	inner.Define("x", types.NewInt(2))

	inner.Assign("x", types.NewInt(3))

	innerVal, _ := inner.GetLocal("x")
	if !innerVal.Equal(types.NewInt(3)) {
		t.Errorf("inner x = %v, want 3", innerVal)
	}
	outerVal, _ := outer.Get("x")
	if !outerVal.Equal(types.NewInt(1)) {
		t.Errorf("outer x = %v, want 1", outerVal)
	}
}

func TestEnvironmentGetLocalSkipsParents(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", types.NewInt(1))
	inner := NewNestedEnvironment(outer)

	if _, ok := inner.GetLocal("x"); ok {
		t.Error("GetLocal leaked a parent binding")
	}

	inner.Define("x", types.NewInt(2))
	val, ok := inner.GetLocal("x")
	if !ok || !val.Equal(types.NewInt(2)) {
		t.Errorf("GetLocal x = %v, want 2", val)
	}
}
