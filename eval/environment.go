package eval

import "github.com/AgustinCB/smoked/types"

// Environment manages variable bindings with lexical scoping
// Supports nested scopes (blocks, function bodies, module bodies)
type Environment struct {
	vars   map[string]types.Value
	parent *Environment
}

// NewEnvironment creates a new environment with no parent (global scope)
func NewEnvironment() *Environment {
	return &Environment{
		vars:   make(map[string]types.Value),
		parent: nil,
	}
}

// NewNestedEnvironment creates a new environment with a parent scope
func NewNestedEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]types.Value),
		parent: parent,
	}
}

// Get looks up a variable by name
// Searches current scope, then parent scopes
// Returns (value, true) if found, (nil, false) if not found
func (e *Environment) Get(name string) (types.Value, bool) {
	// Check current scope
	if val, ok := e.vars[name]; ok {
		return val, true
	}

	// Check parent scopes
	if e.parent != nil {
		return e.parent.Get(name)
	}

	// Not found
	return nil, false
}

// GetLocal looks up a variable in this scope only, skipping parents.
// Module member access uses this so outer bindings never leak through
// a module reference.
func (e *Environment) GetLocal(name string) (types.Value, bool) {
	val, ok := e.vars[name]
	return val, ok
}

// Define creates a variable in the current scope. Redeclaring a name
// replaces the existing binding in that scope.
func (e *Environment) Define(name string, value types.Value) {
	e.vars[name] = value
}

// Assign updates an existing variable, searching outward through
// enclosing scopes. Returns false if the name is not bound anywhere;
// assignment never creates a binding.
func (e *Environment) Assign(name string, value types.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = value
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return false
}
