package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	// Literals
	TOKEN_INT    // 42
	TOKEN_FLOAT  // 3.14
	TOKEN_STRING // "hello"

	// Keywords
	TOKEN_AND
	TOKEN_OR
	TOKEN_IF
	TOKEN_ELSE
	TOKEN_WHILE
	TOKEN_RETURN
	TOKEN_BREAK
	TOKEN_CONTINUE
	TOKEN_VAR
	TOKEN_FUN
	TOKEN_CLASS
	TOKEN_TRAIT
	TOKEN_WITH
	TOKEN_STATIC
	TOKEN_GET
	TOKEN_SET
	TOKEN_MOD
	TOKEN_PRINT
	TOKEN_THIS
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NIL

	// Identifiers
	TOKEN_IDENTIFIER

	// Operators
	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_PERCENT // %

	TOKEN_EQ // ==
	TOKEN_NE // !=
	TOKEN_LT // <
	TOKEN_GT // >
	TOKEN_LE // <=
	TOKEN_GE // >=

	TOKEN_NOT    // !
	TOKEN_ASSIGN // =

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Literal  string // Decoded string value (for TOKEN_STRING)
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_INT:
		return "INT"
	case TOKEN_FLOAT:
		return "FLOAT"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_AND:
		return "AND"
	case TOKEN_OR:
		return "OR"
	case TOKEN_IF:
		return "IF"
	case TOKEN_ELSE:
		return "ELSE"
	case TOKEN_WHILE:
		return "WHILE"
	case TOKEN_RETURN:
		return "RETURN"
	case TOKEN_BREAK:
		return "BREAK"
	case TOKEN_CONTINUE:
		return "CONTINUE"
	case TOKEN_VAR:
		return "VAR"
	case TOKEN_FUN:
		return "FUN"
	case TOKEN_CLASS:
		return "CLASS"
	case TOKEN_TRAIT:
		return "TRAIT"
	case TOKEN_WITH:
		return "WITH"
	case TOKEN_STATIC:
		return "STATIC"
	case TOKEN_GET:
		return "GET"
	case TOKEN_SET:
		return "SET"
	case TOKEN_MOD:
		return "MOD"
	case TOKEN_PRINT:
		return "PRINT"
	case TOKEN_THIS:
		return "THIS"
	case TOKEN_TRUE:
		return "TRUE"
	case TOKEN_FALSE:
		return "FALSE"
	case TOKEN_NIL:
		return "NIL"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_SLASH:
		return "SLASH"
	case TOKEN_PERCENT:
		return "PERCENT"
	case TOKEN_EQ:
		return "EQ"
	case TOKEN_NE:
		return "NE"
	case TOKEN_LT:
		return "LT"
	case TOKEN_GT:
		return "GT"
	case TOKEN_LE:
		return "LE"
	case TOKEN_GE:
		return "GE"
	case TOKEN_NOT:
		return "NOT"
	case TOKEN_ASSIGN:
		return "ASSIGN"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_LBRACKET:
		return "LBRACKET"
	case TOKEN_RBRACKET:
		return "RBRACKET"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_SEMICOLON:
		return "SEMICOLON"
	case TOKEN_DOT:
		return "DOT"
	default:
		return "UNKNOWN"
	}
}

// Keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"and":      TOKEN_AND,
	"or":       TOKEN_OR,
	"if":       TOKEN_IF,
	"else":     TOKEN_ELSE,
	"while":    TOKEN_WHILE,
	"return":   TOKEN_RETURN,
	"break":    TOKEN_BREAK,
	"continue": TOKEN_CONTINUE,
	"var":      TOKEN_VAR,
	"fun":      TOKEN_FUN,
	"class":    TOKEN_CLASS,
	"trait":    TOKEN_TRAIT,
	"with":     TOKEN_WITH,
	"static":   TOKEN_STATIC,
	"get":      TOKEN_GET,
	"set":      TOKEN_SET,
	"mod":      TOKEN_MOD,
	"print":    TOKEN_PRINT,
	"this":     TOKEN_THIS,
	"true":     TOKEN_TRUE,
	"false":    TOKEN_FALSE,
	"nil":      TOKEN_NIL,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
