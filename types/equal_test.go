package types

import "testing"

func TestScalarEquality(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"nil vs nil", Nil, Nil, true},
		{"nil vs uninitialized", Nil, Uninitialized, false},
		{"uninitialized vs uninitialized", Uninitialized, Uninitialized, true},
		{"equal ints", NewInt(3), NewInt(3), true},
		{"unequal ints", NewInt(3), NewInt(4), false},
		{"equal floats", NewFloat(2.5), NewFloat(2.5), true},
		{"int vs float at same magnitude", NewInt(1), NewFloat(1.0), false},
		{"equal strings", NewStr("a"), NewStr("a"), true},
		{"strings are case-sensitive", NewStr("a"), NewStr("A"), false},
		{"equal bools", NewBool(true), NewBool(true), true},
		{"bool vs int", NewBool(true), NewInt(1), false},
		{"equal modules", NewModule("io"), NewModule("io"), true},
		{"unequal modules", NewModule("io"), NewModule("net"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal = %v, want %v", got, tt.equal)
			}
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("Equal is not symmetric: %v, want %v", got, tt.equal)
			}
		})
	}
}

// Object equality is structural: same class, deeply equal fields. The
// policy is pinned both ways so a silent switch to identity comparison
// fails this test.
func TestObjectEqualityIsStructural(t *testing.T) {
	class := &Class{Name: "Point"}

	a := NewInstance(class)
	a.SetField("x", NewInt(1))
	b := NewInstance(class)
	b.SetField("x", NewInt(1))

	if !NewObject(a).Equal(NewObject(b)) {
		t.Error("distinct instances with identical fields should be equal under the structural policy")
	}

	b.SetField("x", NewInt(2))
	if NewObject(a).Equal(NewObject(b)) {
		t.Error("instances should stop being equal once a field diverges")
	}

	// An alias is always equal to itself, regardless of contents.
	alias := NewObject(a)
	a.SetField("self", NewObject(a))
	if !alias.Equal(NewObject(a)) {
		t.Error("aliases of one instance must stay equal")
	}
}

func TestObjectEqualityDifferentClasses(t *testing.T) {
	a := NewInstance(&Class{Name: "Point"})
	b := NewInstance(&Class{Name: "Size"})

	if NewObject(a).Equal(NewObject(b)) {
		t.Error("instances of different classes should never be equal")
	}
}

func TestArrayEqualityIsStructural(t *testing.T) {
	a := NewArray([]Value{NewInt(1), NewStr("a")})
	b := NewArray([]Value{NewInt(1), NewStr("a")})
	c := NewArray([]Value{NewInt(1), NewStr("b")})

	if !a.Equal(b) {
		t.Error("arrays with equal capacity and elements should be equal")
	}
	if a.Equal(c) {
		t.Error("arrays with different elements should not be equal")
	}

	// Capacity is part of the structure.
	d := NewArrayWithCapacity(5)
	d.Array.Elements = append(d.Array.Elements, NewInt(1), NewStr("a"))
	if a.Equal(d) {
		t.Error("arrays with different capacities should not be equal")
	}

	// Mutation through one alias is observed by the comparison.
	alias := b
	alias.Set(0, NewInt(9))
	if a.Equal(b) {
		t.Error("mutating an alias should break structural equality with the original")
	}
}

func TestFunctionEqualityIsIdentity(t *testing.T) {
	decl := &Function{Name: "f", Params: []string{"a"}}
	same := NewFunction(decl)
	other := NewFunction(&Function{Name: "f", Params: []string{"a"}})

	if !NewFunction(decl).Equal(same) {
		t.Error("values sharing one function descriptor should be equal")
	}
	if NewFunction(decl).Equal(other) {
		t.Error("two separate definitions are never the same function")
	}
}

func TestMethodEquality(t *testing.T) {
	fn := &Function{Name: "m"}
	class := &Class{Name: "C"}
	a := NewInstance(class)
	b := NewInstance(class)

	if !NewMethod(fn, a).Equal(NewMethod(fn, a)) {
		t.Error("method bound to the same function and instance should be equal")
	}
	if NewMethod(fn, a).Equal(NewMethod(fn, b)) {
		t.Error("method bound to a different instance should not be equal")
	}
}

func TestTraitEqualityIsStructural(t *testing.T) {
	a := &Trait{Name: "Printable", Methods: []Signature{{Name: "show", Params: []string{"out"}}}}
	b := &Trait{Name: "Printable", Methods: []Signature{{Name: "show", Params: []string{"out"}}}}
	c := &Trait{Name: "Printable", Methods: []Signature{{Name: "show", Params: nil}}}

	if !NewTrait(a).Equal(NewTrait(b)) {
		t.Error("traits with the same name and signatures should be equal")
	}
	if NewTrait(a).Equal(NewTrait(c)) {
		t.Error("traits with different arities should not be equal")
	}
}
