package eval

import (
	"github.com/AgustinCB/smoked/parser"
	"github.com/AgustinCB/smoked/trace"
	"github.com/AgustinCB/smoked/types"
)

// evalFunctionStmt builds a function descriptor capturing the current
// environment and binds it under the declared name
func (e *Evaluator) evalFunctionStmt(stmt *parser.FunctionStmt) types.Result {
	fn := &types.Function{
		Name:   stmt.Name,
		Params: stmt.Params,
		Body:   stmt.Body,
		Env:    e.env,
	}
	e.env.Define(stmt.Name, types.NewFunction(fn))
	return types.Ok(types.Nil)
}

// evalCall evaluates a call expression: callee(args)
// Callable values are functions, bound methods, and classes. A bare
// name with no binding in scope may still be a builtin, so user
// definitions shadow builtins of the same name.
func (e *Evaluator) evalCall(node *parser.CallExpr) types.Result {
	if ident, ok := node.Callee.(*parser.IdentifierExpr); ok {
		if _, bound := e.env.Get(ident.Name); !bound {
			if fn, ok := e.builtins.Get(ident.Name); ok {
				args, res := e.evalArgs(node.Args)
				if !res.IsNormal() {
					return res
				}
				return at(node.Pos, fn(args))
			}
		}
	}

	// Evaluate the callee
	calleeResult := e.Eval(node.Callee)
	if !calleeResult.IsNormal() {
		return calleeResult
	}

	// Evaluate arguments
	args, res := e.evalArgs(node.Args)
	if !res.IsNormal() {
		return res
	}

	switch callee := calleeResult.Val.(type) {
	case types.FunctionValue:
		return e.invoke(callee.Fn, nil, args, node.Pos)
	case types.MethodValue:
		return e.invoke(callee.Fn, types.NewObject(callee.Receiver), args, node.Pos)
	case types.ClassValue:
		return e.instantiate(callee, args, node.Pos)
	default:
		return errAt(node.Pos, "Can only call functions and classes.")
	}
}

// evalArgs evaluates call arguments left to right. The second return
// propagates the first non-normal result.
func (e *Evaluator) evalArgs(exprs []parser.Expr) ([]types.Value, types.Result) {
	args := make([]types.Value, len(exprs))
	for i, argExpr := range exprs {
		result := e.Eval(argExpr)
		if !result.IsNormal() {
			return nil, result
		}
		args[i] = result.Val
	}
	return args, types.Ok(types.Nil)
}

// invoke runs a function body in a fresh scope over its closure.
// A non-nil this binds the receiver for method bodies. Initializers
// always evaluate to the receiver, even past an explicit return.
func (e *Evaluator) invoke(fn *types.Function, this types.Value, args []types.Value, pos parser.Position) types.Result {
	if len(args) != len(fn.Params) {
		return errAt(pos, "Expected %d arguments but got %d.", len(fn.Params), len(args))
	}
	if e.depth >= maxCallDepth {
		return errAt(pos, "Stack overflow.")
	}

	env := NewNestedEnvironment(fn.Env.(*Environment))
	if this != nil {
		env.Define("this", this)
	}
	for i, param := range fn.Params {
		env.Define(param, args[i])
	}

	trace.Call(fn.Name, args)

	// Set up the call frame: the body sees its own scope, and loop
	// depth resets so break cannot escape the call
	savedEnv, savedLoop := e.env, e.loopDepth
	e.env, e.loopDepth = env, 0
	e.depth++

	result := e.EvalStatements(fn.Body.([]parser.Stmt))

	e.depth--
	e.env, e.loopDepth = savedEnv, savedLoop

	switch {
	case result.IsError():
		trace.Error(fn.Name, result.Err)
		return result
	case fn.IsInitializer:
		trace.Return(fn.Name, this)
		return types.Ok(this)
	case result.IsReturn():
		trace.Return(fn.Name, result.Val)
		return types.Ok(result.Val)
	default:
		// Falling off the end of a function yields Nil
		trace.Return(fn.Name, types.Nil)
		return types.Ok(types.Nil)
	}
}

// instantiate creates an instance of a class. When the class declares
// an init method it runs with the call's arguments; otherwise the call
// must be empty.
func (e *Evaluator) instantiate(class types.ClassValue, args []types.Value, pos parser.Position) types.Result {
	instance := types.NewObject(types.NewInstance(class.Class))

	if init, ok := class.Class.Methods["init"]; ok {
		result := e.invoke(init, instance, args, pos)
		if !result.IsNormal() {
			return result
		}
		return types.Ok(instance)
	}

	if len(args) != 0 {
		return errAt(pos, "Expected 0 arguments but got %d.", len(args))
	}
	return types.Ok(instance)
}
