package types

// Signature is a method signature a trait demands: a name and the
// parameter names that fix its arity
type Signature struct {
	Name   string
	Params []string
}

// Trait is the shared descriptor behind trait values: a name plus four
// signature lists that classes claiming the trait must satisfy. A trait
// never owns state, only signatures; conformance checking belongs to the
// class builder, not to this package.
type Trait struct {
	Name          string
	Methods       []Signature
	Getters       []Signature
	Setters       []Signature
	StaticMethods []Signature
}

// TraitValue wraps a shared trait descriptor
type TraitValue struct {
	Trait *Trait
}

// NewTrait wraps a trait descriptor in a value
func NewTrait(trait *Trait) TraitValue {
	return TraitValue{Trait: trait}
}

// Type returns the smoked type
func (t TraitValue) Type() TypeCode {
	return TYPE_TRAIT
}

// String returns the declared trait name
func (t TraitValue) String() string {
	return t.Trait.Name
}

// Equal compares structurally: same name and same signature lists
func (t TraitValue) Equal(other Value) bool {
	o, ok := other.(TraitValue)
	if !ok {
		return false
	}
	if t.Trait == o.Trait {
		return true
	}
	return t.Trait.Name == o.Trait.Name &&
		equalSignatures(t.Trait.Methods, o.Trait.Methods) &&
		equalSignatures(t.Trait.Getters, o.Trait.Getters) &&
		equalSignatures(t.Trait.Setters, o.Trait.Setters) &&
		equalSignatures(t.Trait.StaticMethods, o.Trait.StaticMethods)
}

// Truthy returns whether the value is truthy
// Traits are always truthy
func (t TraitValue) Truthy() bool {
	return true
}

// equalSignatures checks two signature lists elementwise
func equalSignatures(a, b []Signature) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || len(a[i].Params) != len(b[i].Params) {
			return false
		}
		for j := range a[i].Params {
			if a[i].Params[j] != b[i].Params[j] {
				return false
			}
		}
	}
	return true
}
