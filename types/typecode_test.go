package types

import "testing"

func TestTypeCodes(t *testing.T) {
	tests := []struct {
		code TypeCode
		val  int
		name string
	}{
		{TYPE_NIL, 0, "NIL"},
		{TYPE_UNINITIALIZED, 1, "UNINITIALIZED"},
		{TYPE_BOOL, 2, "BOOL"},
		{TYPE_INT, 3, "INT"},
		{TYPE_FLOAT, 4, "FLOAT"},
		{TYPE_STR, 5, "STR"},
		{TYPE_FUNC, 6, "FUNC"},
		{TYPE_METHOD, 7, "METHOD"},
		{TYPE_CLASS, 8, "CLASS"},
		{TYPE_OBJ, 9, "OBJ"},
		{TYPE_TRAIT, 10, "TRAIT"},
		{TYPE_ARRAY, 11, "ARRAY"},
		{TYPE_MODULE, 12, "MODULE"},
	}

	for _, tt := range tests {
		if int(tt.code) != tt.val {
			t.Errorf("Type code %s should be %d, got %d", tt.name, tt.val, int(tt.code))
		}
		if tt.code.String() != tt.name {
			t.Errorf("Type code %d should stringify to %s, got %s", tt.val, tt.name, tt.code.String())
		}
	}
}

// TestVariantsCoverEveryTypeCode pins the closed union: one variant per
// type code, no code unreachable, no variant sharing a code. Adding a
// variant without extending this list is a compile-and-test failure.
func TestVariantsCoverEveryTypeCode(t *testing.T) {
	values := []Value{
		Nil,
		Uninitialized,
		NewBool(true),
		NewInt(1),
		NewFloat(1.5),
		NewStr("s"),
		NewFunction(&Function{Name: "f"}),
		NewMethod(&Function{Name: "m"}, NewInstance(&Class{Name: "C"})),
		NewClass(&Class{Name: "C"}),
		NewObject(NewInstance(&Class{Name: "C"})),
		NewTrait(&Trait{Name: "T"}),
		NewArray(nil),
		NewModule("m"),
	}

	seen := make(map[TypeCode]bool)
	for _, v := range values {
		code := v.Type()
		if seen[code] {
			t.Errorf("Type code %s claimed by more than one variant", code)
		}
		seen[code] = true
		if code.String() == "UNKNOWN" {
			t.Errorf("Variant %T has no type code name", v)
		}
	}

	if len(seen) != 13 {
		t.Errorf("Expected 13 distinct type codes, got %d", len(seen))
	}
}
