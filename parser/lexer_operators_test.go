package parser

import "testing"

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"+", TOKEN_PLUS},
		{"-", TOKEN_MINUS},
		{"*", TOKEN_STAR},
		{"/", TOKEN_SLASH},
		{"%", TOKEN_PERCENT},
		{"=", TOKEN_ASSIGN},
		{"==", TOKEN_EQ},
		{"!", TOKEN_NOT},
		{"!=", TOKEN_NE},
		{"<", TOKEN_LT},
		{"<=", TOKEN_LE},
		{">", TOKEN_GT},
		{">=", TOKEN_GE},
		{"(", TOKEN_LPAREN},
		{")", TOKEN_RPAREN},
		{"{", TOKEN_LBRACE},
		{"}", TOKEN_RBRACE},
		{"[", TOKEN_LBRACKET},
		{"]", TOKEN_RBRACKET},
		{",", TOKEN_COMMA},
		{";", TOKEN_SEMICOLON},
		{".", TOKEN_DOT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(tt.input)
			tok := l.NextToken()
			if tok.Type != tt.want {
				t.Errorf("Lexer(%s) = %s, want %s", tt.input, tok.Type, tt.want)
			}
			if next := l.NextToken(); next.Type != TOKEN_EOF {
				t.Errorf("Lexer(%s) produced a second token %s", tt.input, next.Type)
			}
		})
	}
}

func TestLexerTwoCharOperatorsRunTogether(t *testing.T) {
	// "a<=b" must not split <= into < and =
	l := NewLexer("a<=b")

	wants := []TokenType{TOKEN_IDENTIFIER, TOKEN_LE, TOKEN_IDENTIFIER, TOKEN_EOF}
	for i, want := range wants {
		tok := l.NextToken()
		if tok.Type != want {
			t.Errorf("token[%d] = %s, want %s", i, tok.Type, want)
		}
	}
}

func TestLexerEqualityVsAssignment(t *testing.T) {
	l := NewLexer("x == y = z")

	wants := []TokenType{
		TOKEN_IDENTIFIER, TOKEN_EQ, TOKEN_IDENTIFIER,
		TOKEN_ASSIGN, TOKEN_IDENTIFIER, TOKEN_EOF,
	}
	for i, want := range wants {
		tok := l.NextToken()
		if tok.Type != want {
			t.Errorf("token[%d] = %s, want %s", i, tok.Type, want)
		}
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	l := NewLexer("@")
	tok := l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Errorf("Lexer(@) = %s, want ILLEGAL", tok.Type)
	}
}
