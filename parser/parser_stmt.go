package parser

// ParseProgram parses a complete smoked program (sequence of declarations)
func (p *Parser) ParseProgram() ([]Stmt, error) {
	var statements []Stmt

	for p.current.Type != TOKEN_EOF {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

// parseDeclaration parses a declaration or falls through to a statement
func (p *Parser) parseDeclaration() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_VAR:
		return p.parseVarStatement()
	case TOKEN_FUN:
		return p.parseFunctionStatement()
	case TOKEN_CLASS:
		return p.parseClassStatement()
	case TOKEN_TRAIT:
		return p.parseTraitStatement()
	case TOKEN_MOD:
		return p.parseModStatement()
	default:
		return p.parseStatement()
	}
}

// parseStatement parses a single statement
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_PRINT:
		return p.parsePrintStatement()
	case TOKEN_IF:
		return p.parseIfStatement()
	case TOKEN_WHILE:
		return p.parseWhileStatement()
	case TOKEN_RETURN:
		return p.parseReturnStatement()
	case TOKEN_BREAK:
		return p.parseBreakStatement()
	case TOKEN_CONTINUE:
		return p.parseContinueStatement()
	case TOKEN_LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVarStatement parses var name; or var name = expr;
func (p *Parser) parseVarStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'var'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected variable name after 'var'")
	}
	name := p.current.Value
	p.nextToken()

	var initializer Expr
	var err error
	if p.current.Type == TOKEN_ASSIGN {
		p.nextToken() // consume '='
		initializer, err = p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
	}

	if p.current.Type != TOKEN_SEMICOLON {
		return nil, p.errf("expected ';' after variable declaration")
	}
	p.nextToken() // consume ';'

	return &VarStmt{
		Pos:         pos,
		Name:        name,
		Initializer: initializer,
	}, nil
}

// parsePrintStatement parses print expr;
func (p *Parser) parsePrintStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'print'

	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_SEMICOLON {
		return nil, p.errf("expected ';' after print statement")
	}
	p.nextToken() // consume ';'

	return &PrintStmt{Pos: pos, Expr: expr}, nil
}

// parseIfStatement parses if (cond) { ... } with optional else / else if
func (p *Parser) parseIfStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'if'

	if p.current.Type != TOKEN_LPAREN {
		return nil, p.errf("expected '(' after 'if'")
	}
	p.nextToken() // consume '('

	condition, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_RPAREN {
		return nil, p.errf("expected ')' after if condition")
	}
	p.nextToken() // consume ')'

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBody []Stmt
	if p.current.Type == TOKEN_ELSE {
		p.nextToken() // consume 'else'

		if p.current.Type == TOKEN_IF {
			// else-if chain: nest the next if as the sole else statement
			nested, err := p.parseIfStatement()
			if err != nil {
				return nil, err
			}
			elseBody = []Stmt{nested}
		} else {
			elseBody, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	}

	return &IfStmt{
		Pos:       pos,
		Condition: condition,
		Body:      body,
		Else:      elseBody,
	}, nil
}

// parseWhileStatement parses while (cond) { ... }
func (p *Parser) parseWhileStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'while'

	if p.current.Type != TOKEN_LPAREN {
		return nil, p.errf("expected '(' after 'while'")
	}
	p.nextToken() // consume '('

	condition, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_RPAREN {
		return nil, p.errf("expected ')' after while condition")
	}
	p.nextToken() // consume ')'

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{
		Pos:       pos,
		Condition: condition,
		Body:      body,
	}, nil
}

// parseBreakStatement parses break;
func (p *Parser) parseBreakStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'break'

	if p.current.Type != TOKEN_SEMICOLON {
		return nil, p.errf("expected ';' after 'break'")
	}
	p.nextToken() // consume ';'

	return &BreakStmt{Pos: pos}, nil
}

// parseContinueStatement parses continue;
func (p *Parser) parseContinueStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'continue'

	if p.current.Type != TOKEN_SEMICOLON {
		return nil, p.errf("expected ';' after 'continue'")
	}
	p.nextToken() // consume ';'

	return &ContinueStmt{Pos: pos}, nil
}

// parseReturnStatement parses return; or return expr;
func (p *Parser) parseReturnStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'return'

	var value Expr
	var err error

	if p.current.Type != TOKEN_SEMICOLON && p.current.Type != TOKEN_EOF {
		value, err = p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
	}

	if p.current.Type != TOKEN_SEMICOLON {
		return nil, p.errf("expected ';' after return statement")
	}
	p.nextToken() // consume ';'

	return &ReturnStmt{
		Pos:   pos,
		Value: value,
	}, nil
}

// parseExpressionStatement parses an expression statement
func (p *Parser) parseExpressionStatement() (Stmt, error) {
	pos := p.current.Position

	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}

	if p.current.Type != TOKEN_SEMICOLON {
		return nil, p.errf("expected ';' after expression statement")
	}
	p.nextToken() // consume ';'

	return &ExprStmt{
		Pos:  pos,
		Expr: expr,
	}, nil
}

// parseBlockStatement parses a braced block as a statement
func (p *Parser) parseBlockStatement() (Stmt, error) {
	pos := p.current.Position
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &BlockStmt{Pos: pos, Body: body}, nil
}

// parseBlock parses { declarations } and returns the body
func (p *Parser) parseBlock() ([]Stmt, error) {
	if p.current.Type != TOKEN_LBRACE {
		return nil, p.errf("expected '{'")
	}
	p.nextToken() // consume '{'

	var body []Stmt
	for p.current.Type != TOKEN_RBRACE && p.current.Type != TOKEN_EOF {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	if p.current.Type != TOKEN_RBRACE {
		return nil, p.errf("expected '}' to close block")
	}
	p.nextToken() // consume '}'

	return body, nil
}

// parseFunctionStatement parses fun name(params) { ... }
func (p *Parser) parseFunctionStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'fun'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected function name after 'fun'")
	}
	name := p.current.Value
	p.nextToken()

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{
		Pos:    pos,
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}

// parseParams parses a parenthesized comma-separated parameter list
func (p *Parser) parseParams() ([]string, error) {
	if p.current.Type != TOKEN_LPAREN {
		return nil, p.errf("expected '(' before parameter list")
	}
	p.nextToken() // consume '('

	var params []string
	for p.current.Type != TOKEN_RPAREN && p.current.Type != TOKEN_EOF {
		if p.current.Type != TOKEN_IDENTIFIER {
			return nil, p.errf("expected parameter name")
		}
		params = append(params, p.current.Value)
		p.nextToken()

		if p.current.Type == TOKEN_COMMA {
			p.nextToken() // consume ','
		} else if p.current.Type != TOKEN_RPAREN {
			return nil, p.errf("expected ',' or ')' in parameter list")
		}
	}

	if p.current.Type != TOKEN_RPAREN {
		return nil, p.errf("expected ')' after parameters")
	}
	p.nextToken() // consume ')'

	return params, nil
}
