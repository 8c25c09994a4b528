package types

// ModuleValue is a by-name reference to a namespace. The module body
// itself lives in the evaluator's module table; this value only names it.
type ModuleValue struct {
	Name string
}

// NewModule creates a module reference
func NewModule(name string) ModuleValue {
	return ModuleValue{Name: name}
}

// Type returns the smoked type
func (m ModuleValue) Type() TypeCode {
	return TYPE_MODULE
}

// String renders the fixed placeholder; module contents are not visible
// to the value model
func (m ModuleValue) String() string {
	return "[Module]"
}

// Equal compares by referenced name
func (m ModuleValue) Equal(other Value) bool {
	if o, ok := other.(ModuleValue); ok {
		return m.Name == o.Name
	}
	return false
}

// Truthy returns whether the value is truthy
// Modules are always truthy
func (m ModuleValue) Truthy() bool {
	return true
}
