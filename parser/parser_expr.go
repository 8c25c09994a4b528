package parser

// Operator precedence levels (higher = tighter binding)
const (
	PREC_LOWEST = iota
	PREC_ASSIGN     // =
	PREC_OR         // or
	PREC_AND        // and
	PREC_EQUALITY   // == !=
	PREC_COMPARISON // < <= > >=
	PREC_ADDITIVE   // + -
	PREC_MULTIPLY   // * / %
	PREC_UNARY      // - !
	PREC_CALL       // . () []
)

// precedences maps infix tokens to their binding power
var precedences = map[TokenType]int{
	TOKEN_ASSIGN:   PREC_ASSIGN,
	TOKEN_OR:       PREC_OR,
	TOKEN_AND:      PREC_AND,
	TOKEN_EQ:       PREC_EQUALITY,
	TOKEN_NE:       PREC_EQUALITY,
	TOKEN_LT:       PREC_COMPARISON,
	TOKEN_GT:       PREC_COMPARISON,
	TOKEN_LE:       PREC_COMPARISON,
	TOKEN_GE:       PREC_COMPARISON,
	TOKEN_PLUS:     PREC_ADDITIVE,
	TOKEN_MINUS:    PREC_ADDITIVE,
	TOKEN_STAR:     PREC_MULTIPLY,
	TOKEN_SLASH:    PREC_MULTIPLY,
	TOKEN_PERCENT:  PREC_MULTIPLY,
	TOKEN_DOT:      PREC_CALL,
	TOKEN_LPAREN:   PREC_CALL,
	TOKEN_LBRACKET: PREC_CALL,
}

// currentPrecedence returns the binding power of the token under the
// cursor, or PREC_LOWEST when it cannot start an infix position
func (p *Parser) currentPrecedence() int {
	if prec, ok := precedences[p.current.Type]; ok {
		return prec
	}
	return PREC_LOWEST
}

// ParseExpression parses an expression with the given minimum binding
// power. On return the cursor sits on the first token after the
// expression.
func (p *Parser) ParseExpression(precedence int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.currentPrecedence() {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrefix parses the expression forms that can start an expression
func (p *Parser) parsePrefix() (Expr, error) {
	pos := p.current.Position

	switch p.current.Type {
	case TOKEN_INT, TOKEN_FLOAT, TOKEN_STRING, TOKEN_TRUE, TOKEN_FALSE, TOKEN_NIL:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &LiteralExpr{Pos: pos, Literal: lit}, nil

	case TOKEN_IDENTIFIER:
		name := p.current.Value
		p.nextToken()
		return &IdentifierExpr{Pos: pos, Name: name}, nil

	case TOKEN_THIS:
		p.nextToken()
		return &ThisExpr{Pos: pos}, nil

	case TOKEN_MINUS, TOKEN_NOT:
		operator := p.current.Type
		p.nextToken()
		operand, err := p.ParseExpression(PREC_UNARY)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: pos, Operator: operator, Operand: operand}, nil

	case TOKEN_LPAREN:
		p.nextToken() // consume '('
		inner, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if p.current.Type != TOKEN_RPAREN {
			return nil, p.errf("expected ')' after expression")
		}
		p.nextToken() // consume ')'
		return &ParenExpr{Pos: pos, Expr: inner}, nil

	case TOKEN_LBRACKET:
		return p.parseArrayLiteral()

	default:
		return nil, p.errf("unexpected token %s in expression", p.current.Type)
	}
}

// parseInfix extends left with the infix construct under the cursor
func (p *Parser) parseInfix(left Expr) (Expr, error) {
	switch p.current.Type {
	case TOKEN_ASSIGN:
		return p.parseAssignment(left)
	case TOKEN_LPAREN:
		return p.parseCall(left)
	case TOKEN_DOT:
		return p.parseProperty(left)
	case TOKEN_LBRACKET:
		return p.parseIndex(left)
	default:
		return p.parseBinary(left)
	}
}

// parseBinary parses a left-associative binary operator
func (p *Parser) parseBinary(left Expr) (Expr, error) {
	pos := p.current.Position
	operator := p.current.Type
	precedence := p.currentPrecedence()
	p.nextToken() // consume operator

	right, err := p.ParseExpression(precedence)
	if err != nil {
		return nil, err
	}

	return &BinaryExpr{
		Pos:      pos,
		Left:     left,
		Operator: operator,
		Right:    right,
	}, nil
}

// parseAssignment parses a right-associative assignment. Only
// identifiers, property accesses, and index expressions are valid
// targets.
func (p *Parser) parseAssignment(left Expr) (Expr, error) {
	pos := p.current.Position

	switch left.(type) {
	case *IdentifierExpr, *PropertyExpr, *IndexExpr:
	default:
		return nil, p.errf("invalid assignment target")
	}

	p.nextToken() // consume '='
	value, err := p.ParseExpression(PREC_ASSIGN - 1)
	if err != nil {
		return nil, err
	}

	return &AssignExpr{Pos: pos, Target: left, Value: value}, nil
}

// parseCall parses a call argument list
func (p *Parser) parseCall(callee Expr) (Expr, error) {
	pos := p.current.Position
	p.nextToken() // consume '('

	var args []Expr
	for p.current.Type != TOKEN_RPAREN && p.current.Type != TOKEN_EOF {
		arg, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.current.Type == TOKEN_COMMA {
			p.nextToken() // consume ','
		} else if p.current.Type != TOKEN_RPAREN {
			return nil, p.errf("expected ',' or ')' in argument list")
		}
	}

	if p.current.Type != TOKEN_RPAREN {
		return nil, p.errf("expected ')' after arguments")
	}
	p.nextToken() // consume ')'

	return &CallExpr{Pos: pos, Callee: callee, Args: args}, nil
}

// parseProperty parses a property access
func (p *Parser) parseProperty(left Expr) (Expr, error) {
	pos := p.current.Position
	p.nextToken() // consume '.'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected property name after '.'")
	}
	property := p.current.Value
	p.nextToken()

	return &PropertyExpr{Pos: pos, Expr: left, Property: property}, nil
}

// parseIndex parses an index expression
func (p *Parser) parseIndex(left Expr) (Expr, error) {
	pos := p.current.Position
	p.nextToken() // consume '['

	index, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_RBRACKET {
		return nil, p.errf("expected ']' after index")
	}
	p.nextToken() // consume ']'

	return &IndexExpr{Pos: pos, Expr: left, Index: index}, nil
}
