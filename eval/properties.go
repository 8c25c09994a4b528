package eval

import (
	"github.com/AgustinCB/smoked/parser"
	"github.com/AgustinCB/smoked/types"
)

// evalProperty evaluates property access: expr.property
// Receivers are instances (field, then getter, then bound method),
// classes (static methods), and modules (members)
func (e *Evaluator) evalProperty(node *parser.PropertyExpr) types.Result {
	result := e.Eval(node.Expr)
	if !result.IsNormal() {
		return result
	}

	switch recv := result.Val.(type) {
	case types.ObjectValue:
		return e.objectProperty(recv, node)

	case types.ClassValue:
		if fn, ok := recv.Class.StaticMethods[node.Property]; ok {
			return types.Ok(types.NewFunction(fn))
		}
		return errAt(node.Pos, "Undefined property '%s'.", node.Property)

	case types.ModuleValue:
		return e.moduleMember(recv, node)

	default:
		return errAt(node.Pos, "Only instances, classes, and modules have properties.")
	}
}

// objectProperty resolves a property on an instance. Fields shadow
// getters and getters shadow methods; a getter runs immediately with
// the receiver bound, while a method access yields a bound method
// value without calling it.
func (e *Evaluator) objectProperty(recv types.ObjectValue, node *parser.PropertyExpr) types.Result {
	if val, ok := recv.Object.GetField(node.Property); ok {
		return types.Ok(val)
	}

	class := recv.Object.Class
	if getter, ok := class.Getters[node.Property]; ok {
		return e.invoke(getter, recv, nil, node.Pos)
	}
	if method, ok := class.Methods[node.Property]; ok {
		return types.Ok(types.NewMethod(method, recv.Object))
	}

	return errAt(node.Pos, "Undefined property '%s'.", node.Property)
}

// moduleMember resolves a member inside a module's own scope. The
// lookup never walks outward, so enclosing bindings stay invisible
// through a module reference.
func (e *Evaluator) moduleMember(recv types.ModuleValue, node *parser.PropertyExpr) types.Result {
	moduleEnv, ok := e.modules[recv.Name]
	if !ok {
		return errAt(node.Pos, "Unknown module '%s'.", recv.Name)
	}

	val, ok := moduleEnv.GetLocal(node.Property)
	if !ok {
		return errAt(node.Pos, "Module %s has no member '%s'.", recv.Name, node.Property)
	}
	return types.Ok(val)
}

// evalAssignProperty assigns through a property target. A matching
// setter runs with the receiver bound and the assigned value as its
// argument; otherwise instance assignment writes the field directly.
// Module members can be reassigned but never created this way.
func (e *Evaluator) evalAssignProperty(target *parser.PropertyExpr, value types.Value) types.Result {
	result := e.Eval(target.Expr)
	if !result.IsNormal() {
		return result
	}

	switch recv := result.Val.(type) {
	case types.ObjectValue:
		if setter, ok := recv.Object.Class.Setters[target.Property]; ok {
			res := e.invoke(setter, recv, []types.Value{value}, target.Pos)
			if !res.IsNormal() {
				return res
			}
			return types.Ok(value)
		}
		recv.Object.SetField(target.Property, value)
		return types.Ok(value)

	case types.ModuleValue:
		moduleEnv, ok := e.modules[recv.Name]
		if !ok {
			return errAt(target.Pos, "Unknown module '%s'.", recv.Name)
		}
		if _, ok := moduleEnv.GetLocal(target.Property); !ok {
			return errAt(target.Pos, "Module %s has no member '%s'.", recv.Name, target.Property)
		}
		moduleEnv.Define(target.Property, value)
		return types.Ok(value)

	default:
		return errAt(target.Pos, "Only instances and modules allow property assignment.")
	}
}
