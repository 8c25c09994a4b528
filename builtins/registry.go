package builtins

import (
	"fmt"
	"sort"

	"github.com/AgustinCB/smoked/types"
)

// BuiltinFunc is a function type for builtin functions
// Takes the evaluated arguments, returns a Result
type BuiltinFunc func(args []types.Value) types.Result

// Registry holds all registered builtin functions
type Registry struct {
	funcs map[string]BuiltinFunc
}

// NewRegistry creates a new builtin function registry
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]BuiltinFunc),
	}

	// Register type conversion builtins
	r.Register("typeof", builtinTypeof)
	r.Register("tostr", builtinTostr)
	r.Register("toint", builtinToint)
	r.Register("tofloat", builtinTofloat)

	// Register string builtins
	r.Register("length", builtinLength)

	// Register array builtins
	r.Register("array", builtinArray)
	r.Register("push", builtinPush)
	r.Register("pop", builtinPop)
	r.Register("capacity", builtinCapacity)

	// Register system builtins
	r.Register("clock", builtinClock)

	return r
}

// Register adds a builtin function to the registry
func (r *Registry) Register(name string, fn BuiltinFunc) {
	r.funcs[name] = fn
}

// Get returns a builtin function by name
func (r *Registry) Get(name string) (BuiltinFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Has returns whether a builtin with the given name exists
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered builtin names in sorted order, for
// completion and diagnostics
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin errors are raised without a source location; the evaluator
// stamps the call site onto them.

// typeError wraps a coercion failure in an unpositioned error result
func typeError(verr types.ValueError) types.Result {
	return types.Err(verr.At(types.Location{}))
}

// runtimeError wraps a message in an unpositioned error result
func runtimeError(format string, args ...interface{}) types.Result {
	return types.Err(types.NewProgramError(types.Location{}, fmt.Sprintf(format, args...)))
}

// arityError reports a call with the wrong number of arguments
func arityError(name string, want, got int) types.Result {
	return runtimeError("Wrong number of arguments to %s: expected %d, got %d.", name, want, got)
}
