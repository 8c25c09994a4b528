package types

// NilValue represents the smoked nil value
type NilValue struct{}

// Nil is the shared nil value
var Nil Value = NilValue{}

// Type returns the type code for nil
func (n NilValue) Type() TypeCode {
	return TYPE_NIL
}

// String returns the display representation
func (n NilValue) String() string {
	return "Nil"
}

// Equal checks deep equality
func (n NilValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	_, ok := other.(NilValue)
	return ok
}

// Truthy returns the smoked truthiness
// nil is always falsy
func (n NilValue) Truthy() bool {
	return false
}
