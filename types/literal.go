package types

// LiteralKind identifies which literal the lexer produced
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralFloat
	LiteralQuotedString
	LiteralKeyword
)

// DataKeyword is one of the three fixed literal keywords
type DataKeyword int

const (
	KeywordNil DataKeyword = iota
	KeywordTrue
	KeywordFalse
)

// Literal is the closed set of source literals the parser hands to the
// value model: a float, an integer, a quoted string, or one of the three
// keywords. Conversion to a Value is 1:1 and cannot fail.
type Literal struct {
	Kind    LiteralKind
	Int     int64
	Float   float32
	Str     string
	Keyword DataKeyword
}

// IntegerLiteral creates an integer literal
func IntegerLiteral(v int64) Literal {
	return Literal{Kind: LiteralInteger, Int: v}
}

// FloatLiteral creates a float literal
func FloatLiteral(v float32) Literal {
	return Literal{Kind: LiteralFloat, Float: v}
}

// StringLiteral creates a quoted-string literal
func StringLiteral(s string) Literal {
	return Literal{Kind: LiteralQuotedString, Str: s}
}

// KeywordLiteral creates a nil/true/false literal
func KeywordLiteral(k DataKeyword) Literal {
	return Literal{Kind: LiteralKeyword, Keyword: k}
}

// Value converts the literal into the corresponding runtime value
func (l Literal) Value() Value {
	switch l.Kind {
	case LiteralFloat:
		return NewFloat(l.Float)
	case LiteralQuotedString:
		return NewStr(l.Str)
	case LiteralKeyword:
		switch l.Keyword {
		case KeywordTrue:
			return NewBool(true)
		case KeywordFalse:
			return NewBool(false)
		default:
			return Nil
		}
	default:
		return NewInt(l.Int)
	}
}
