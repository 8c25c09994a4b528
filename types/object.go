package types

// Object is the shared descriptor behind instance values: a link to the
// owning class plus mutable field storage. Every holder of the instance
// observes field mutation through the shared descriptor.
type Object struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates a fresh instance of a class with no fields set
func NewInstance(class *Class) *Object {
	return &Object{
		Class:  class,
		Fields: make(map[string]Value),
	}
}

// GetField returns a field value by name
func (o *Object) GetField(name string) (Value, bool) {
	v, ok := o.Fields[name]
	return v, ok
}

// SetField stores a field value, in place
func (o *Object) SetField(name string, value Value) {
	o.Fields[name] = value
}

// ObjectValue wraps a shared instance descriptor
type ObjectValue struct {
	Object *Object
}

// NewObject wraps an instance descriptor in a value
func NewObject(object *Object) ObjectValue {
	return ObjectValue{Object: object}
}

// Type returns the smoked type
func (o ObjectValue) Type() TypeCode {
	return TYPE_OBJ
}

// String renders as "<class name> instance"
func (o ObjectValue) String() string {
	return o.Object.Class.Name + " instance"
}

// Equal compares structurally: two instances are equal when they belong
// to the same class and their current field contents are deeply equal.
// Aliases of one instance are therefore always equal, and distinct
// instances become unequal the moment a field diverges.
func (o ObjectValue) Equal(other Value) bool {
	otherObj, ok := other.(ObjectValue)
	if !ok {
		return false
	}
	if o.Object == otherObj.Object {
		return true
	}
	if o.Object.Class.Name != otherObj.Object.Class.Name {
		return false
	}
	return equalFields(o.Object.Fields, otherObj.Object.Fields)
}

// Truthy returns whether the value is truthy
// Instances are always truthy
func (o ObjectValue) Truthy() bool {
	return true
}

// equalFields checks if two field maps are deeply equal
func equalFields(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for key, valA := range a {
		valB, ok := b[key]
		if !ok || !valA.Equal(valB) {
			return false
		}
	}
	return true
}
