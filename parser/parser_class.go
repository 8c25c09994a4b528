package parser

import "github.com/AgustinCB/smoked/types"

// parseClassStatement parses a class declaration:
//
//	class Name with TraitA, TraitB {
//	    init(a) { ... }
//	    method(a, b) { ... }
//	    get prop { ... }
//	    set prop(v) { ... }
//	    static helper() { ... }
//	}
func (p *Parser) parseClassStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'class'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected class name after 'class'")
	}
	name := p.current.Value
	p.nextToken()

	// Optional trait list
	var traits []string
	if p.current.Type == TOKEN_WITH {
		p.nextToken() // consume 'with'
		for {
			if p.current.Type != TOKEN_IDENTIFIER {
				return nil, p.errf("expected trait name after 'with'")
			}
			traits = append(traits, p.current.Value)
			p.nextToken()

			if p.current.Type != TOKEN_COMMA {
				break
			}
			p.nextToken() // consume ','
		}
	}

	if p.current.Type != TOKEN_LBRACE {
		return nil, p.errf("expected '{' before class body")
	}
	p.nextToken() // consume '{'

	stmt := &ClassStmt{
		Pos:    pos,
		Name:   name,
		Traits: traits,
	}

	for p.current.Type != TOKEN_RBRACE && p.current.Type != TOKEN_EOF {
		switch p.current.Type {
		case TOKEN_STATIC:
			p.nextToken() // consume 'static'
			method, err := p.parseMethod()
			if err != nil {
				return nil, err
			}
			stmt.StaticMethods = append(stmt.StaticMethods, method)

		case TOKEN_GET:
			p.nextToken() // consume 'get'
			getter, err := p.parseGetter()
			if err != nil {
				return nil, err
			}
			stmt.Getters = append(stmt.Getters, getter)

		case TOKEN_SET:
			p.nextToken() // consume 'set'
			setter, err := p.parseSetter()
			if err != nil {
				return nil, err
			}
			stmt.Setters = append(stmt.Setters, setter)

		default:
			method, err := p.parseMethod()
			if err != nil {
				return nil, err
			}
			stmt.Methods = append(stmt.Methods, method)
		}
	}

	if p.current.Type != TOKEN_RBRACE {
		return nil, p.errf("expected '}' to close class body")
	}
	p.nextToken() // consume '}'

	return stmt, nil
}

// parseMethod parses name(params) { ... } inside a class body
func (p *Parser) parseMethod() (*FunctionStmt, error) {
	pos := p.current.Position

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected method name in class body")
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

// parseGetter parses name { ... }: a getter takes no parameter list
func (p *Parser) parseGetter() (*FunctionStmt, error) {
	pos := p.current.Position

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected getter name after 'get'")
	}
	name := p.current.Value
	p.nextToken()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{
		Pos:  pos,
		Name: name,
		Body: body,
	}, nil
}

// parseSetter parses name(v) { ... }: a setter takes exactly one parameter
func (p *Parser) parseSetter() (*FunctionStmt, error) {
	pos := p.current.Position

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected setter name after 'set'")
	}
	name := p.current.Value
	p.nextToken()

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if len(params) != 1 {
		return nil, p.errf("setter %s must take exactly one parameter", name)
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

// parseTraitStatement parses a trait declaration:
//
//	trait Name {
//	    method(a, b);
//	    get prop;
//	    set prop(v);
//	    static helper();
//	}
func (p *Parser) parseTraitStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'trait'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected trait name after 'trait'")
	}
	name := p.current.Value
	p.nextToken()

	if p.current.Type != TOKEN_LBRACE {
		return nil, p.errf("expected '{' before trait body")
	}
	p.nextToken() // consume '{'

	stmt := &TraitStmt{
		Pos:  pos,
		Name: name,
	}

	for p.current.Type != TOKEN_RBRACE && p.current.Type != TOKEN_EOF {
		switch p.current.Type {
		case TOKEN_STATIC:
			p.nextToken() // consume 'static'
			sig, err := p.parseSignature()
			if err != nil {
				return nil, err
			}
			stmt.StaticMethods = append(stmt.StaticMethods, sig)

		case TOKEN_GET:
			p.nextToken() // consume 'get'
			if p.current.Type != TOKEN_IDENTIFIER {
				return nil, p.errf("expected getter name after 'get'")
			}
			sig := types.Signature{Name: p.current.Value}
			p.nextToken()
			if p.current.Type != TOKEN_SEMICOLON {
				return nil, p.errf("expected ';' after getter signature")
			}
			p.nextToken() // consume ';'
			stmt.Getters = append(stmt.Getters, sig)

		case TOKEN_SET:
			p.nextToken() // consume 'set'
			sig, err := p.parseSignature()
			if err != nil {
				return nil, err
			}
			if len(sig.Params) != 1 {
				return nil, p.errf("setter %s must declare exactly one parameter", sig.Name)
			}
			stmt.Setters = append(stmt.Setters, sig)

		default:
			sig, err := p.parseSignature()
			if err != nil {
				return nil, err
			}
			stmt.Methods = append(stmt.Methods, sig)
		}
	}

	if p.current.Type != TOKEN_RBRACE {
		return nil, p.errf("expected '}' to close trait body")
	}
	p.nextToken() // consume '}'

	return stmt, nil
}

// parseSignature parses name(params); inside a trait body
func (p *Parser) parseSignature() (types.Signature, error) {
	if p.current.Type != TOKEN_IDENTIFIER {
		return types.Signature{}, p.errf("expected signature name in trait body")
	}
	name := p.current.Value
	p.nextToken()

	params, err := p.parseParams()
	if err != nil {
		return types.Signature{}, err
	}

	if p.current.Type != TOKEN_SEMICOLON {
		return types.Signature{}, p.errf("expected ';' after trait signature")
	}
	p.nextToken() // consume ';'

	return types.Signature{Name: name, Params: params}, nil
}

// parseModStatement parses mod name { declarations }
func (p *Parser) parseModStatement() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'mod'

	if p.current.Type != TOKEN_IDENTIFIER {
		return nil, p.errf("expected module name after 'mod'")
	}
	name := p.current.Value
	p.nextToken()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ModStmt{
		Pos:  pos,
		Name: name,
		Body: body,
	}, nil
}
