package types

// MethodValue is a function bound to the specific instance it was
// accessed through. Both sides are shared references: binding never
// clones the instance, and rebinding means constructing a new MethodValue.
type MethodValue struct {
	Fn       *Function
	Receiver *Object
}

// NewMethod binds a function to a receiver instance
func NewMethod(fn *Function, receiver *Object) MethodValue {
	return MethodValue{Fn: fn, Receiver: receiver}
}

// Type returns the smoked type
func (m MethodValue) Type() TypeCode {
	return TYPE_METHOD
}

// String identifies the function and the owning class
func (m MethodValue) String() string {
	return "Method <fn " + m.Fn.Name + "> of " + m.Receiver.Class.Name
}

// Equal compares by identity of both the function and the bound instance
func (m MethodValue) Equal(other Value) bool {
	if o, ok := other.(MethodValue); ok {
		return m.Fn == o.Fn && m.Receiver == o.Receiver
	}
	return false
}

// Truthy returns whether the value is truthy
// Methods are always truthy
func (m MethodValue) Truthy() bool {
	return true
}
