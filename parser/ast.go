package parser

import "github.com/AgustinCB/smoked/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// LiteralExpr wraps a source literal. Conversion to a runtime value is
// the evaluator's job; the parser only classifies.
type LiteralExpr struct {
	Pos     Position
	Literal types.Literal
}

func (e *LiteralExpr) Position() Position { return e.Pos }
func (e *LiteralExpr) exprNode()          {}

// IdentifierExpr represents a variable reference
type IdentifierExpr struct {
	Pos  Position
	Name string
}

func (e *IdentifierExpr) Position() Position { return e.Pos }
func (e *IdentifierExpr) exprNode()          {}

// ThisExpr represents the bound receiver inside a method body
type ThisExpr struct {
	Pos Position
}

func (e *ThisExpr) Position() Position { return e.Pos }
func (e *ThisExpr) exprNode()          {}

// UnaryExpr represents a unary operation
type UnaryExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_MINUS or TOKEN_NOT
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr represents a binary operation. The logical operators
// TOKEN_AND and TOKEN_OR also land here; the evaluator gives them
// short-circuit treatment.
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Pos  Position
	Expr Expr
}

func (e *ParenExpr) Position() Position { return e.Pos }
func (e *ParenExpr) exprNode()          {}

// AssignExpr represents assignment: lvalue = expr
type AssignExpr struct {
	Pos    Position
	Target Expr // IdentifierExpr, PropertyExpr, or IndexExpr
	Value  Expr
}

func (e *AssignExpr) Position() Position { return e.Pos }
func (e *AssignExpr) exprNode()          {}

// CallExpr represents a call: callee(args)
type CallExpr struct {
	Pos    Position
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// PropertyExpr represents property access: expr.property
type PropertyExpr struct {
	Pos      Position
	Expr     Expr
	Property string
}

func (e *PropertyExpr) Position() Position { return e.Pos }
func (e *PropertyExpr) exprNode()          {}

// IndexExpr represents indexing: expr[index]
type IndexExpr struct {
	Pos   Position
	Expr  Expr
	Index Expr
}

func (e *IndexExpr) Position() Position { return e.Pos }
func (e *IndexExpr) exprNode()          {}

// ArrayExpr represents an array literal: [expr, expr, ...]
type ArrayExpr struct {
	Pos      Position
	Elements []Expr
}

func (e *ArrayExpr) Position() Position { return e.Pos }
func (e *ArrayExpr) exprNode()          {}

// ArrayRepeatExpr represents the repeat form [element; count]: count
// copies of a single evaluation of element
type ArrayRepeatExpr struct {
	Pos     Position
	Element Expr
	Count   Expr
}

func (e *ArrayRepeatExpr) Position() Position { return e.Pos }
func (e *ArrayRepeatExpr) exprNode()          {}

// Statement AST nodes

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}

// PrintStmt represents print expr;
type PrintStmt struct {
	Pos  Position
	Expr Expr
}

func (s *PrintStmt) Position() Position { return s.Pos }
func (s *PrintStmt) stmtNode()          {}

// VarStmt represents a variable declaration. A nil Initializer leaves
// the binding uninitialized, which is observable at runtime.
type VarStmt struct {
	Pos         Position
	Name        string
	Initializer Expr // Can be nil
}

func (s *VarStmt) Position() Position { return s.Pos }
func (s *VarStmt) stmtNode()          {}

// BlockStmt represents a braced statement block with its own scope
type BlockStmt struct {
	Pos  Position
	Body []Stmt
}

func (s *BlockStmt) Position() Position { return s.Pos }
func (s *BlockStmt) stmtNode()          {}

// IfStmt represents if/else. An else-if chain parses as an Else body
// holding a single nested IfStmt.
type IfStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
	Else      []Stmt // Can be nil
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}

// WhileStmt represents while loops
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}

// BreakStmt represents break statement
type BreakStmt struct {
	Pos Position
}

func (s *BreakStmt) Position() Position { return s.Pos }
func (s *BreakStmt) stmtNode()          {}

// ContinueStmt represents continue statement
type ContinueStmt struct {
	Pos Position
}

func (s *ContinueStmt) Position() Position { return s.Pos }
func (s *ContinueStmt) stmtNode()          {}

// ReturnStmt represents return statement
type ReturnStmt struct {
	Pos   Position
	Value Expr // Can be nil (returns Nil)
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// FunctionStmt represents a named function declaration. Class bodies
// reuse it for methods, getters (no parameter list), setters (exactly
// one parameter), and statics.
type FunctionStmt struct {
	Pos    Position
	Name   string
	Params []string
	Body   []Stmt
}

func (s *FunctionStmt) Position() Position { return s.Pos }
func (s *FunctionStmt) stmtNode()          {}

// ClassStmt represents a class declaration with optional traits
type ClassStmt struct {
	Pos           Position
	Name          string
	Traits        []string // Names listed after 'with'
	Methods       []*FunctionStmt
	StaticMethods []*FunctionStmt
	Getters       []*FunctionStmt
	Setters       []*FunctionStmt
}

func (s *ClassStmt) Position() Position { return s.Pos }
func (s *ClassStmt) stmtNode()          {}

// TraitStmt represents a trait declaration: pure signature lists
type TraitStmt struct {
	Pos           Position
	Name          string
	Methods       []types.Signature
	Getters       []types.Signature
	Setters       []types.Signature
	StaticMethods []types.Signature
}

func (s *TraitStmt) Position() Position { return s.Pos }
func (s *TraitStmt) stmtNode()          {}

// ModStmt represents a module declaration: a named namespace of
// declarations
type ModStmt struct {
	Pos  Position
	Name string
	Body []Stmt
}

func (s *ModStmt) Position() Position { return s.Pos }
func (s *ModStmt) stmtNode()          {}
