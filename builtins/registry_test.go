package builtins

import (
	"sort"
	"testing"

	"github.com/AgustinCB/smoked/types"
)

func TestRegistryHasCoreBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{
		"typeof", "tostr", "toint", "tofloat",
		"length", "array", "push", "pop", "capacity", "clock",
	} {
		if !r.Has(name) {
			t.Errorf("registry missing builtin %q", name)
		}
	}

	if r.Has("eval") {
		t.Error("registry should not know 'eval'")
	}
	if _, ok := r.Get("no_such_builtin"); ok {
		t.Error("Get returned a function for an unknown name")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	if len(names) == 0 {
		t.Fatal("Names returned nothing")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names not sorted: %v", names)
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("answer", func(args []types.Value) types.Result {
		return types.Ok(types.NewInt(42))
	})

	fn, ok := r.Get("answer")
	if !ok {
		t.Fatal("registered builtin not found")
	}
	result := fn(nil)
	if !result.IsNormal() || !result.Val.Equal(types.NewInt(42)) {
		t.Errorf("custom builtin returned %v", result)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		arg  types.Value
		want int64
	}{
		{"empty string", types.NewStr(""), 0},
		{"ascii string", types.NewStr("hello"), 5},
		{"multibyte string counts runes", types.NewStr("héllo"), 5},
		{"array", types.NewArray([]types.Value{types.Nil, types.Nil, types.Nil}), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := builtinLength([]types.Value{tt.arg})
			if !result.IsNormal() {
				t.Fatalf("length failed: %v", result.Err)
			}
			if got := result.Val.(types.IntValue).Val; got != tt.want {
				t.Errorf("length = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLengthRejectsOtherTypes(t *testing.T) {
	result := builtinLength([]types.Value{types.NewInt(5)})
	if !result.IsError() {
		t.Fatal("expected error for length(5)")
	}
	if result.Err.Message != "length takes a string or an array." {
		t.Errorf("message = %q", result.Err.Message)
	}
}

func TestClock(t *testing.T) {
	first := builtinClock(nil)
	if !first.IsNormal() {
		t.Fatalf("clock failed: %v", first.Err)
	}
	firstVal, ok := first.Val.(types.FloatValue)
	if !ok {
		t.Fatalf("clock returned %T, want FloatValue", first.Val)
	}
	if firstVal.Val < 0 {
		t.Errorf("clock went backwards: %v", firstVal.Val)
	}

	second := builtinClock(nil)
	if second.Val.(types.FloatValue).Val < firstVal.Val {
		t.Error("clock is not monotonic across calls")
	}
}
