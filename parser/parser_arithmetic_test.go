package parser

import (
	"testing"
)

func TestParseAddition(t *testing.T) {
	tests := []string{
		"1 + 2",
		"x + y",
		"10 + 20",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			p := NewParser(input)
			expr, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}

			binary, ok := expr.(*BinaryExpr)
			if !ok {
				t.Fatalf("expected BinaryExpr, got %T", expr)
			}

			if binary.Operator != TOKEN_PLUS {
				t.Errorf("expected operator PLUS, got %s", binary.Operator)
			}
		})
	}
}

func TestParseSubtraction(t *testing.T) {
	tests := []string{
		"5 - 3",
		"x - y",
		"100 - 50",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			p := NewParser(input)
			expr, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}

			binary, ok := expr.(*BinaryExpr)
			if !ok {
				t.Fatalf("expected BinaryExpr, got %T", expr)
			}

			if binary.Operator != TOKEN_MINUS {
				t.Errorf("expected operator MINUS, got %s", binary.Operator)
			}
		})
	}
}

func TestParseMultiplication(t *testing.T) {
	tests := []string{
		"2 * 3",
		"x * y",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			p := NewParser(input)
			expr, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}

			binary, ok := expr.(*BinaryExpr)
			if !ok {
				t.Fatalf("expected BinaryExpr, got %T", expr)
			}

			if binary.Operator != TOKEN_STAR {
				t.Errorf("expected operator STAR, got %s", binary.Operator)
			}
		})
	}
}

func TestParseDivisionAndModulo(t *testing.T) {
	tests := []struct {
		input string
		op    TokenType
	}{
		{"10 / 2", TOKEN_SLASH},
		{"x / y", TOKEN_SLASH},
		{"10 % 3", TOKEN_PERCENT},
		{"x % y", TOKEN_PERCENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := NewParser(tt.input)
			expr, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}

			binary, ok := expr.(*BinaryExpr)
			if !ok {
				t.Fatalf("expected BinaryExpr, got %T", expr)
			}

			if binary.Operator != tt.op {
				t.Errorf("expected operator %s, got %s", tt.op, binary.Operator)
			}
		})
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	tests := []struct {
		input  string
		rootOp TokenType
		desc   string
	}{
		{"1 + 2 * 3", TOKEN_PLUS, "should parse as 1 + (2 * 3)"},
		{"1 * 2 + 3", TOKEN_PLUS, "should parse as (1 * 2) + 3"},
		{"1 - 2 / 3", TOKEN_MINUS, "should parse as 1 - (2 / 3)"},
		{"1 + 2 % 3", TOKEN_PLUS, "should parse as 1 + (2 % 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := NewParser(tt.input)
			expr, err := p.ParseExpression(PREC_LOWEST)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}

			binary, ok := expr.(*BinaryExpr)
			if !ok {
				t.Fatalf("expected BinaryExpr at root, got %T", expr)
			}

			if binary.Operator != tt.rootOp {
				t.Errorf("%s - expected root %s, got %s", tt.desc, tt.rootOp, binary.Operator)
			}
		})
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 should parse as (1 - 2) - 3
	p := NewParser("1 - 2 - 3")
	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	root, ok := expr.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr at root, got %T", expr)
	}
	if root.Operator != TOKEN_MINUS {
		t.Fatalf("expected MINUS at root, got %s", root.Operator)
	}

	left, ok := root.Left.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr on the left, got %T", root.Left)
	}
	if left.Operator != TOKEN_MINUS {
		t.Errorf("expected MINUS on the left, got %s", left.Operator)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	// (1 + 2) * 3 keeps the addition grouped
	p := NewParser("(1 + 2) * 3")
	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	root, ok := expr.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr at root, got %T", expr)
	}
	if root.Operator != TOKEN_STAR {
		t.Errorf("expected STAR at root, got %s", root.Operator)
	}

	paren, ok := root.Left.(*ParenExpr)
	if !ok {
		t.Fatalf("expected ParenExpr on the left, got %T", root.Left)
	}

	inner, ok := paren.Expr.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr inside parens, got %T", paren.Expr)
	}
	if inner.Operator != TOKEN_PLUS {
		t.Errorf("expected PLUS inside parens, got %s", inner.Operator)
	}
}
