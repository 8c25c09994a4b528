package types

// Class is the shared descriptor behind class values: a name and the
// method, static-method, getter and setter tables. The evaluator builds
// the tables when a class declaration runs; this package only wraps and
// shares the result.
type Class struct {
	Name          string
	Methods       map[string]*Function
	StaticMethods map[string]*Function
	Getters       map[string]*Function
	Setters       map[string]*Function
}

// ClassValue wraps a shared class descriptor
type ClassValue struct {
	Class *Class
}

// NewClass wraps a class descriptor in a value
func NewClass(class *Class) ClassValue {
	return ClassValue{Class: class}
}

// Type returns the smoked type
func (c ClassValue) Type() TypeCode {
	return TYPE_CLASS
}

// String returns the declared class name
func (c ClassValue) String() string {
	return c.Class.Name
}

// Equal compares by descriptor identity: a class equals only itself
func (c ClassValue) Equal(other Value) bool {
	if o, ok := other.(ClassValue); ok {
		return c.Class == o.Class
	}
	return false
}

// Truthy returns whether the value is truthy
// Classes are always truthy
func (c ClassValue) Truthy() bool {
	return true
}
