package parser

import (
	"fmt"
	"strconv"

	"github.com/AgustinCB/smoked/types"
)

// Parser parses smoked source code into an AST
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// errf builds a parse error carrying the current source position
func (p *Parser) errf(format string, args ...interface{}) error {
	pos := p.current.Position
	return fmt.Errorf("[line %d:%d] %s", pos.Line, pos.Column, fmt.Sprintf(format, args...))
}

// parseLiteral parses the literal under the cursor and advances past it
func (p *Parser) parseLiteral() (types.Literal, error) {
	switch p.current.Type {
	case TOKEN_INT:
		val, err := strconv.ParseInt(p.current.Value, 10, 64)
		if err != nil {
			return types.Literal{}, p.errf("failed to parse integer %q: %v", p.current.Value, err)
		}
		p.nextToken()
		return types.IntegerLiteral(val), nil
	case TOKEN_FLOAT:
		val, err := strconv.ParseFloat(p.current.Value, 32)
		if err != nil {
			return types.Literal{}, p.errf("failed to parse float %q: %v", p.current.Value, err)
		}
		p.nextToken()
		return types.FloatLiteral(float32(val)), nil
	case TOKEN_STRING:
		lit := types.StringLiteral(p.current.Literal)
		p.nextToken()
		return lit, nil
	case TOKEN_TRUE:
		p.nextToken()
		return types.KeywordLiteral(types.KeywordTrue), nil
	case TOKEN_FALSE:
		p.nextToken()
		return types.KeywordLiteral(types.KeywordFalse), nil
	case TOKEN_NIL:
		p.nextToken()
		return types.KeywordLiteral(types.KeywordNil), nil
	default:
		return types.Literal{}, p.errf("unexpected token %s, expected a literal", p.current.Type)
	}
}
