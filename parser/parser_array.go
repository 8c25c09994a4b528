package parser

// parseArrayLiteral parses an array literal [expr, expr, ...] or the
// repeat form [expr; count]
func (p *Parser) parseArrayLiteral() (Expr, error) {
	pos := p.current.Position
	p.nextToken() // consume '['

	// Check for empty array
	if p.current.Type == TOKEN_RBRACKET {
		p.nextToken() // consume ']'
		return &ArrayExpr{Pos: pos}, nil
	}

	// Parse first element
	first, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	// Repeat form: [element; count]
	if p.current.Type == TOKEN_SEMICOLON {
		p.nextToken() // consume ';'

		count, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}

		if p.current.Type != TOKEN_RBRACKET {
			return nil, p.errf("expected ']' after repeat count")
		}
		p.nextToken() // consume ']'

		return &ArrayRepeatExpr{Pos: pos, Element: first, Count: count}, nil
	}

	elements := []Expr{first}

	// Parse remaining elements
	for p.current.Type == TOKEN_COMMA {
		p.nextToken() // consume ','

		// Check for trailing comma
		if p.current.Type == TOKEN_RBRACKET {
			break
		}

		elem, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}

	// Expect closing ']'
	if p.current.Type != TOKEN_RBRACKET {
		return nil, p.errf("expected ']', got %s", p.current.Type)
	}
	p.nextToken() // consume ']'

	return &ArrayExpr{Pos: pos, Elements: elements}, nil
}
