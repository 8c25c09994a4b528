package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/AgustinCB/smoked/builtins"
	"github.com/AgustinCB/smoked/parser"
	"github.com/AgustinCB/smoked/types"
)

// maxCallDepth bounds guest recursion; exceeding it raises a
// recoverable "Stack overflow." error instead of crashing the host
const maxCallDepth = 256

// Evaluator walks the AST and evaluates expressions/statements
type Evaluator struct {
	env        *Environment
	builtins   *builtins.Registry
	modules    map[string]*Environment
	modulePath string
	out        io.Writer
	depth      int
	loopDepth  int
}

// NewEvaluator creates a new evaluator with a fresh global environment.
// Print statements write to out; nil means standard output.
func NewEvaluator(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{
		env:      NewEnvironment(),
		builtins: builtins.NewRegistry(),
		modules:  make(map[string]*Environment),
		out:      out,
	}
}

// NewEvaluatorWithEnv creates a new evaluator over a given environment
func NewEvaluatorWithEnv(out io.Writer, env *Environment) *Evaluator {
	e := NewEvaluator(out)
	e.env = env
	return e
}

// GetEnvironment returns the evaluator's current environment (for testing)
func (e *Evaluator) GetEnvironment() *Environment {
	return e.env
}

// Builtins returns the evaluator's builtin registry
func (e *Evaluator) Builtins() *builtins.Registry {
	return e.builtins
}

// locOf converts a parser position into a runtime error location
func locOf(pos parser.Position) types.Location {
	return types.Location{Line: pos.Line, Column: pos.Column}
}

// errAt raises a positioned runtime error
func errAt(pos parser.Position, format string, args ...interface{}) types.Result {
	return types.Err(types.NewProgramError(locOf(pos), fmt.Sprintf(format, args...)))
}

// at stamps a source position onto an error raised by a
// position-agnostic helper; errors already carrying a location keep it
func at(pos parser.Position, res types.Result) types.Result {
	if res.IsError() && res.Err.Loc == (types.Location{}) {
		res.Err.Loc = locOf(pos)
	}
	return res
}

// Eval evaluates an AST node and returns a Result
// All evaluation methods follow this pattern:
// - Return Result (not raw Value) to unify error handling and control flow
// - Guest failures are positioned ProgramErrors, never host panics
func (e *Evaluator) Eval(node parser.Node) types.Result {
	switch n := node.(type) {
	case *parser.LiteralExpr:
		return e.evalLiteral(n)
	case *parser.IdentifierExpr:
		return e.evalIdentifier(n)
	case *parser.ThisExpr:
		return e.evalThis(n)
	case *parser.UnaryExpr:
		return e.evalUnary(n)
	case *parser.BinaryExpr:
		return e.evalBinary(n)
	case *parser.ParenExpr:
		return e.Eval(n.Expr)
	case *parser.AssignExpr:
		return e.evalAssign(n)
	case *parser.CallExpr:
		return e.evalCall(n)
	case *parser.PropertyExpr:
		return e.evalProperty(n)
	case *parser.IndexExpr:
		return e.evalIndex(n)
	case *parser.ArrayExpr:
		return e.evalArray(n)
	case *parser.ArrayRepeatExpr:
		return e.evalArrayRepeat(n)
	default:
		// Unknown node type - this should never happen if parser is correct
		return errAt(node.Position(), "Cannot evaluate this expression.")
	}
}

// evalLiteral evaluates a literal expression
// Literal-to-value conversion is total, so this never fails
func (e *Evaluator) evalLiteral(node *parser.LiteralExpr) types.Result {
	return types.Ok(node.Literal.Value())
}

// evalIdentifier looks up a variable by name
func (e *Evaluator) evalIdentifier(node *parser.IdentifierExpr) types.Result {
	val, ok := e.env.Get(node.Name)
	if !ok {
		return errAt(node.Pos, "Undefined variable '%s'.", node.Name)
	}
	return types.Ok(val)
}

// evalThis resolves the bound receiver inside a method body
func (e *Evaluator) evalThis(node *parser.ThisExpr) types.Result {
	val, ok := e.env.Get("this")
	if !ok {
		return errAt(node.Pos, "Cannot use 'this' outside of a class.")
	}
	return types.Ok(val)
}

// evalUnary evaluates a unary expression
// Implements: - (negation), ! (logical not)
func (e *Evaluator) evalUnary(node *parser.UnaryExpr) types.Result {
	// Evaluate operand
	operandResult := e.Eval(node.Operand)
	if !operandResult.IsNormal() {
		return operandResult // Propagate error/control flow
	}

	operand := operandResult.Val

	switch node.Operator {
	case parser.TOKEN_MINUS:
		// Unary minus: -x
		return at(node.Pos, evalUnaryMinus(operand))

	case parser.TOKEN_NOT:
		// Logical not: !x
		return evalUnaryNot(operand)

	default:
		return errAt(node.Pos, "Unknown unary operator.")
	}
}

// evalBinary evaluates a binary expression
// Handles arithmetic, comparison, and logical operators
func (e *Evaluator) evalBinary(node *parser.BinaryExpr) types.Result {
	// Short-circuit evaluation for 'and' and 'or'
	if node.Operator == parser.TOKEN_AND || node.Operator == parser.TOKEN_OR {
		return e.evalLogical(node)
	}

	// Evaluate both operands
	leftResult := e.Eval(node.Left)
	if !leftResult.IsNormal() {
		return leftResult // Propagate error/control flow
	}

	rightResult := e.Eval(node.Right)
	if !rightResult.IsNormal() {
		return rightResult // Propagate error/control flow
	}

	left := leftResult.Val
	right := rightResult.Val

	// Dispatch to operator-specific handlers
	switch node.Operator {
	// Arithmetic
	case parser.TOKEN_PLUS:
		return at(node.Pos, evalAdd(left, right))
	case parser.TOKEN_MINUS:
		return at(node.Pos, evalSubtract(left, right))
	case parser.TOKEN_STAR:
		return at(node.Pos, evalMultiply(left, right))
	case parser.TOKEN_SLASH:
		return at(node.Pos, evalDivide(left, right))
	case parser.TOKEN_PERCENT:
		return at(node.Pos, evalModulo(left, right))

	// Comparison
	case parser.TOKEN_EQ:
		return evalEqual(left, right)
	case parser.TOKEN_NE:
		return evalNotEqual(left, right)
	case parser.TOKEN_LT:
		return at(node.Pos, evalLessThan(left, right))
	case parser.TOKEN_LE:
		return at(node.Pos, evalLessThanEqual(left, right))
	case parser.TOKEN_GT:
		return at(node.Pos, evalGreaterThan(left, right))
	case parser.TOKEN_GE:
		return at(node.Pos, evalGreaterThanEqual(left, right))

	default:
		return errAt(node.Pos, "Unknown binary operator.")
	}
}

// evalLogical evaluates 'and' and 'or' with short-circuit semantics.
// The result is one of the operand values, not a forced boolean.
func (e *Evaluator) evalLogical(node *parser.BinaryExpr) types.Result {
	// Evaluate left operand
	leftResult := e.Eval(node.Left)
	if !leftResult.IsNormal() {
		return leftResult // Propagate error/control flow
	}

	left := leftResult.Val

	switch node.Operator {
	case parser.TOKEN_AND:
		// Short-circuit: if left is falsy, return left without evaluating right
		if !left.Truthy() {
			return types.Ok(left)
		}
		// Left is truthy, evaluate and return right
		return e.Eval(node.Right)

	case parser.TOKEN_OR:
		// Short-circuit: if left is truthy, return left without evaluating right
		if left.Truthy() {
			return types.Ok(left)
		}
		// Left is falsy, evaluate and return right
		return e.Eval(node.Right)

	default:
		return errAt(node.Pos, "Unknown logical operator.")
	}
}

// evalAssign evaluates an assignment expression: target = value
// Supports variable, property, and index targets
func (e *Evaluator) evalAssign(node *parser.AssignExpr) types.Result {
	// Evaluate the value to assign
	valueResult := e.Eval(node.Value)
	if !valueResult.IsNormal() {
		return valueResult // Propagate error/control flow
	}

	value := valueResult.Val

	// Handle different assignment targets
	switch target := node.Target.(type) {
	case *parser.IdentifierExpr:
		// Variable assignment updates an existing binding
		if !e.env.Assign(target.Name, value) {
			return errAt(target.Pos, "Undefined variable '%s'.", target.Name)
		}
		return types.Ok(value)

	case *parser.PropertyExpr:
		// Property assignment: obj.property = value
		return e.evalAssignProperty(target, value)

	case *parser.IndexExpr:
		// Index assignment: array[i] = value
		return e.evalAssignIndex(target, value)

	default:
		// The parser only accepts the three targets above
		return errAt(node.Pos, "Invalid assignment target.")
	}
}
