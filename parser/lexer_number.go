package parser

// readNumber reads an integer or float literal. A '.' only turns the
// token into a float when a digit follows it, so "1.foo" lexes as the
// integer 1 followed by a dot.
func (l *Lexer) readNumber() Token {
	tok := Token{
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}

	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
		tok.Type = TOKEN_FLOAT
	} else {
		tok.Type = TOKEN_INT
	}

	tok.Value = l.input[start:l.position]
	return tok
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() Token {
	tok := Token{
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}

	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	tok.Value = l.input[start:l.position]
	tok.Type = LookupKeyword(tok.Value)
	return tok
}
