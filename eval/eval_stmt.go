package eval

import (
	"fmt"

	"github.com/AgustinCB/smoked/parser"
	"github.com/AgustinCB/smoked/trace"
	"github.com/AgustinCB/smoked/types"
)

// EvalStatements evaluates a sequence of statements in the current
// scope and returns the value of the last one (Nil for an empty
// sequence). Control flow and errors propagate immediately.
func (e *Evaluator) EvalStatements(stmts []parser.Stmt) types.Result {
	last := types.Ok(types.Nil)
	for _, stmt := range stmts {
		result := e.EvalStmt(stmt)
		// Propagate control flow (return, break, continue, error)
		if !result.IsNormal() {
			return result
		}
		last = result
	}
	return last
}

// evalScoped evaluates statements in a fresh child scope
func (e *Evaluator) evalScoped(stmts []parser.Stmt) types.Result {
	saved := e.env
	e.env = NewNestedEnvironment(saved)
	result := e.EvalStatements(stmts)
	e.env = saved
	return result
}

// EvalStmt evaluates a single statement
func (e *Evaluator) EvalStmt(stmt parser.Stmt) types.Result {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		return e.evalExprStmt(s)
	case *parser.PrintStmt:
		return e.evalPrintStmt(s)
	case *parser.VarStmt:
		return e.evalVarStmt(s)
	case *parser.BlockStmt:
		return e.evalScoped(s.Body)
	case *parser.IfStmt:
		return e.evalIfStmt(s)
	case *parser.WhileStmt:
		return e.evalWhileStmt(s)
	case *parser.ReturnStmt:
		return e.evalReturnStmt(s)
	case *parser.BreakStmt:
		return e.evalBreakStmt(s)
	case *parser.ContinueStmt:
		return e.evalContinueStmt(s)
	case *parser.FunctionStmt:
		return e.evalFunctionStmt(s)
	case *parser.ClassStmt:
		return e.evalClassStmt(s)
	case *parser.TraitStmt:
		return e.evalTraitStmt(s)
	case *parser.ModStmt:
		return e.evalModStmt(s)
	default:
		return errAt(stmt.Position(), "Cannot execute this statement.")
	}
}

// evalExprStmt evaluates an expression statement. The value carries
// through so a program's trailing expression is observable.
func (e *Evaluator) evalExprStmt(stmt *parser.ExprStmt) types.Result {
	return e.Eval(stmt.Expr)
}

// evalPrintStmt renders a value and writes it to the output writer
func (e *Evaluator) evalPrintStmt(stmt *parser.PrintStmt) types.Result {
	result := e.Eval(stmt.Expr)
	if !result.IsNormal() {
		return result
	}

	rendered := result.Val.String()
	trace.Print(rendered)
	fmt.Fprintln(e.out, rendered)
	return types.Ok(types.Nil)
}

// evalVarStmt declares a variable in the current scope. Without an
// initializer the binding holds Uninitialized, which is observable.
func (e *Evaluator) evalVarStmt(stmt *parser.VarStmt) types.Result {
	value := types.Uninitialized
	if stmt.Initializer != nil {
		result := e.Eval(stmt.Initializer)
		if !result.IsNormal() {
			return result
		}
		value = result.Val
	}

	e.env.Define(stmt.Name, value)
	return types.Ok(types.Nil)
}

// evalIfStmt evaluates if/else statements. An else-if chain arrives as
// an else body holding a single nested IfStmt.
func (e *Evaluator) evalIfStmt(stmt *parser.IfStmt) types.Result {
	condResult := e.Eval(stmt.Condition)
	if !condResult.IsNormal() {
		return condResult
	}

	if condResult.Val.Truthy() {
		return e.evalScoped(stmt.Body)
	}

	if stmt.Else != nil {
		return e.evalScoped(stmt.Else)
	}

	// Condition falsy, no else
	return types.Ok(types.Nil)
}

// evalWhileStmt evaluates while loops. Each iteration runs the body in
// a fresh scope; break exits with Nil, continue resumes the condition.
func (e *Evaluator) evalWhileStmt(stmt *parser.WhileStmt) types.Result {
	e.loopDepth++
	defer func() { e.loopDepth-- }()

	for {
		// Evaluate condition
		condResult := e.Eval(stmt.Condition)
		if !condResult.IsNormal() {
			return condResult
		}

		// Check if condition is falsy - exit loop
		if !condResult.Val.Truthy() {
			break
		}

		// Execute body
		bodyResult := e.evalScoped(stmt.Body)

		// Handle control flow
		switch bodyResult.Flow {
		case types.FlowReturn, types.FlowError:
			// Propagate return or error
			return bodyResult
		case types.FlowBreak:
			return types.Ok(types.Nil)
		case types.FlowContinue:
			continue
		}
	}

	return types.Ok(types.Nil)
}

// evalReturnStmt evaluates return statements
func (e *Evaluator) evalReturnStmt(stmt *parser.ReturnStmt) types.Result {
	var value types.Value = types.Nil

	if stmt.Value != nil {
		// Evaluate return expression
		result := e.Eval(stmt.Value)
		if !result.IsNormal() {
			return result
		}
		value = result.Val
	}

	return types.Return(value)
}

// evalBreakStmt evaluates break statements. Function bodies reset the
// loop depth, so a break can never escape its enclosing call.
func (e *Evaluator) evalBreakStmt(stmt *parser.BreakStmt) types.Result {
	if e.loopDepth == 0 {
		return errAt(stmt.Pos, "Break outside of a loop.")
	}
	return types.Break()
}

// evalContinueStmt evaluates continue statements
func (e *Evaluator) evalContinueStmt(stmt *parser.ContinueStmt) types.Result {
	if e.loopDepth == 0 {
		return errAt(stmt.Pos, "Continue outside of a loop.")
	}
	return types.Continue()
}

// EvalProgram is a convenience function to evaluate a program from
// source. It returns the value of the last statement; guest runtime
// errors come back as the error.
func (e *Evaluator) EvalProgram(source string) (types.Value, error) {
	p := parser.NewParser(source)
	stmts, err := p.ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	result := e.EvalStatements(stmts)

	if result.IsError() {
		return nil, result.Err
	}

	// A top-level return ends the program with its value
	return result.Val, nil
}
