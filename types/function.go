package types

// Function is the shared descriptor behind function and method values:
// name, parameter list, body and the environment captured at declaration.
// Every binding, closure and class that references the function shares
// this one descriptor; it lives as long as its longest holder.
//
// Body is []parser.Stmt and Env is the evaluator's *Environment. Both are
// kept untyped here to avoid a circular dependency with the parser and
// eval packages, which import types.
type Function struct {
	Name          string
	Params        []string
	Body          interface{}
	Env           interface{}
	IsInitializer bool
}

// FunctionValue wraps a shared function descriptor
type FunctionValue struct {
	Fn *Function
}

// NewFunction wraps a function descriptor in a value
func NewFunction(fn *Function) FunctionValue {
	return FunctionValue{Fn: fn}
}

// Type returns the smoked type
func (f FunctionValue) Type() TypeCode {
	return TYPE_FUNC
}

// String returns the debug representation identifying the function
func (f FunctionValue) String() string {
	if f.Fn.Name == "" {
		return "<fn>"
	}
	return "<fn " + f.Fn.Name + ">"
}

// Equal compares by descriptor identity: two functions are equal only
// when they share the same definition
func (f FunctionValue) Equal(other Value) bool {
	if o, ok := other.(FunctionValue); ok {
		return f.Fn == o.Fn
	}
	return false
}

// Truthy returns whether the value is truthy
// Functions are always truthy
func (f FunctionValue) Truthy() bool {
	return true
}
