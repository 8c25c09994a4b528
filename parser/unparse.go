package parser

import (
	"strconv"
	"strings"

	"github.com/AgustinCB/smoked/types"
)

// UnparseProgram converts AST statements back to source code lines
func UnparseProgram(stmts []Stmt) []string {
	if len(stmts) == 0 {
		return []string{}
	}

	var lines []string
	for _, stmt := range stmts {
		lines = append(lines, unparseStmt(stmt, 0))
	}
	return lines
}

// unparseStmt converts a statement to source code
func unparseStmt(stmt Stmt, indent int) string {
	indentStr := strings.Repeat("  ", indent)

	switch s := stmt.(type) {
	case *ExprStmt:
		return indentStr + unparseExpr(s.Expr, PREC_LOWEST) + ";"

	case *PrintStmt:
		return indentStr + "print " + unparseExpr(s.Expr, PREC_LOWEST) + ";"

	case *VarStmt:
		if s.Initializer == nil {
			return indentStr + "var " + s.Name + ";"
		}
		return indentStr + "var " + s.Name + " = " + unparseExpr(s.Initializer, PREC_LOWEST) + ";"

	case *ReturnStmt:
		if s.Value == nil {
			return indentStr + "return;"
		}
		return indentStr + "return " + unparseExpr(s.Value, PREC_LOWEST) + ";"

	case *BreakStmt:
		return indentStr + "break;"

	case *ContinueStmt:
		return indentStr + "continue;"

	case *BlockStmt:
		return indentStr + unparseBody(s.Body, indent)

	case *IfStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "if (" + unparseExpr(s.Condition, PREC_LOWEST) + ") ")
		sb.WriteString(unparseBody(s.Body, indent))
		if len(s.Else) == 1 {
			if nested, ok := s.Else[0].(*IfStmt); ok {
				sb.WriteString(" else " + strings.TrimPrefix(unparseStmt(nested, indent), indentStr))
				return sb.String()
			}
		}
		if s.Else != nil {
			sb.WriteString(" else " + unparseBody(s.Else, indent))
		}
		return sb.String()

	case *WhileStmt:
		return indentStr + "while (" + unparseExpr(s.Condition, PREC_LOWEST) + ") " +
			unparseBody(s.Body, indent)

	case *FunctionStmt:
		return indentStr + "fun " + s.Name + "(" + strings.Join(s.Params, ", ") + ") " +
			unparseBody(s.Body, indent)

	case *ClassStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "class " + s.Name)
		if len(s.Traits) > 0 {
			sb.WriteString(" with " + strings.Join(s.Traits, ", "))
		}
		sb.WriteString(" {\n")
		inner := strings.Repeat("  ", indent+1)
		for _, m := range s.Methods {
			sb.WriteString(inner + m.Name + "(" + strings.Join(m.Params, ", ") + ") " +
				unparseBody(m.Body, indent+1) + "\n")
		}
		for _, g := range s.Getters {
			sb.WriteString(inner + "get " + g.Name + " " + unparseBody(g.Body, indent+1) + "\n")
		}
		for _, st := range s.Setters {
			sb.WriteString(inner + "set " + st.Name + "(" + strings.Join(st.Params, ", ") + ") " +
				unparseBody(st.Body, indent+1) + "\n")
		}
		for _, sm := range s.StaticMethods {
			sb.WriteString(inner + "static " + sm.Name + "(" + strings.Join(sm.Params, ", ") + ") " +
				unparseBody(sm.Body, indent+1) + "\n")
		}
		sb.WriteString(indentStr + "}")
		return sb.String()

	case *TraitStmt:
		var sb strings.Builder
		sb.WriteString(indentStr + "trait " + s.Name + " {\n")
		inner := strings.Repeat("  ", indent+1)
		for _, m := range s.Methods {
			sb.WriteString(inner + unparseSignature(m) + "\n")
		}
		for _, g := range s.Getters {
			sb.WriteString(inner + "get " + g.Name + ";\n")
		}
		for _, st := range s.Setters {
			sb.WriteString(inner + "set " + unparseSignature(st) + "\n")
		}
		for _, sm := range s.StaticMethods {
			sb.WriteString(inner + "static " + unparseSignature(sm) + "\n")
		}
		sb.WriteString(indentStr + "}")
		return sb.String()

	case *ModStmt:
		return indentStr + "mod " + s.Name + " " + unparseBody(s.Body, indent)

	default:
		return indentStr + "/* unknown statement */"
	}
}

// unparseBody renders a braced statement body
func unparseBody(body []Stmt, indent int) string {
	if len(body) == 0 {
		return "{ }"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range body {
		sb.WriteString(unparseStmt(stmt, indent+1) + "\n")
	}
	sb.WriteString(strings.Repeat("  ", indent) + "}")
	return sb.String()
}

// unparseSignature renders a trait signature line
func unparseSignature(sig types.Signature) string {
	return sig.Name + "(" + strings.Join(sig.Params, ", ") + ");"
}

// unparseExpr converts an expression to source code, parenthesizing
// when the parent context binds tighter
func unparseExpr(expr Expr, prec int) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return unparseLiteral(e.Literal)

	case *IdentifierExpr:
		return e.Name

	case *ThisExpr:
		return "this"

	case *UnaryExpr:
		return tokenText(e.Operator) + unparseExpr(e.Operand, PREC_UNARY)

	case *BinaryExpr:
		myPrec := precedences[e.Operator]
		s := unparseExpr(e.Left, myPrec) + " " + tokenText(e.Operator) + " " +
			unparseExpr(e.Right, myPrec+1)
		if myPrec < prec {
			return "(" + s + ")"
		}
		return s

	case *ParenExpr:
		return "(" + unparseExpr(e.Expr, PREC_LOWEST) + ")"

	case *AssignExpr:
		s := unparseExpr(e.Target, PREC_CALL) + " = " + unparseExpr(e.Value, PREC_ASSIGN)
		if PREC_ASSIGN < prec {
			return "(" + s + ")"
		}
		return s

	case *CallExpr:
		var args []string
		for _, arg := range e.Args {
			args = append(args, unparseExpr(arg, PREC_LOWEST))
		}
		return unparseExpr(e.Callee, PREC_CALL) + "(" + strings.Join(args, ", ") + ")"

	case *PropertyExpr:
		return unparseExpr(e.Expr, PREC_CALL) + "." + e.Property

	case *IndexExpr:
		return unparseExpr(e.Expr, PREC_CALL) + "[" + unparseExpr(e.Index, PREC_LOWEST) + "]"

	case *ArrayExpr:
		var elems []string
		for _, el := range e.Elements {
			elems = append(elems, unparseExpr(el, PREC_LOWEST))
		}
		return "[" + strings.Join(elems, ", ") + "]"

	case *ArrayRepeatExpr:
		return "[" + unparseExpr(e.Element, PREC_LOWEST) + "; " +
			unparseExpr(e.Count, PREC_LOWEST) + "]"

	default:
		return "/* unknown expression */"
	}
}

// unparseLiteral renders a literal in re-lexable form. Strings get
// their quotes back and floats keep a decimal point so they do not
// come back as integers.
func unparseLiteral(lit types.Literal) string {
	switch lit.Kind {
	case types.LiteralInteger:
		return strconv.FormatInt(lit.Int, 10)
	case types.LiteralFloat:
		s := strconv.FormatFloat(float64(lit.Float), 'g', -1, 32)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case types.LiteralQuotedString:
		return strconv.Quote(lit.Str)
	default:
		switch lit.Keyword {
		case types.KeywordTrue:
			return "true"
		case types.KeywordFalse:
			return "false"
		default:
			return "nil"
		}
	}
}

// tokenText returns the source spelling of an operator token
func tokenText(t TokenType) string {
	switch t {
	case TOKEN_PLUS:
		return "+"
	case TOKEN_MINUS:
		return "-"
	case TOKEN_STAR:
		return "*"
	case TOKEN_SLASH:
		return "/"
	case TOKEN_PERCENT:
		return "%"
	case TOKEN_EQ:
		return "=="
	case TOKEN_NE:
		return "!="
	case TOKEN_LT:
		return "<"
	case TOKEN_GT:
		return ">"
	case TOKEN_LE:
		return "<="
	case TOKEN_GE:
		return ">="
	case TOKEN_AND:
		return "and"
	case TOKEN_OR:
		return "or"
	case TOKEN_NOT:
		return "!"
	case TOKEN_ASSIGN:
		return "="
	default:
		return t.String()
	}
}
