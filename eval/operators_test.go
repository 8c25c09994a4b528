package eval

import (
	"testing"

	"github.com/AgustinCB/smoked/types"
)

func TestArithmeticOperators(t *testing.T) {
	tests := []struct {
		name  string
		op    func(left, right types.Value) types.Result
		left  types.Value
		right types.Value
		want  types.Value
	}{
		{"int add", evalAdd, types.NewInt(1), types.NewInt(2), types.NewInt(3)},
		{"float add", evalAdd, types.NewFloat(1.5), types.NewFloat(2), types.NewFloat(3.5)},
		{"mixed add widens", evalAdd, types.NewInt(1), types.NewFloat(0.5), types.NewFloat(1.5)},
		{"string concat", evalAdd, types.NewStr("foo"), types.NewStr("bar"), types.NewStr("foobar")},
		{"int subtract", evalSubtract, types.NewInt(5), types.NewInt(3), types.NewInt(2)},
		{"mixed subtract", evalSubtract, types.NewFloat(5), types.NewInt(3), types.NewFloat(2)},
		{"int multiply", evalMultiply, types.NewInt(4), types.NewInt(3), types.NewInt(12)},
		{"int divide truncates", evalDivide, types.NewInt(7), types.NewInt(2), types.NewInt(3)},
		{"negative divide truncates toward zero", evalDivide, types.NewInt(-7), types.NewInt(2), types.NewInt(-3)},
		{"float divide", evalDivide, types.NewFloat(1), types.NewInt(2), types.NewFloat(0.5)},
		{"int modulo", evalModulo, types.NewInt(7), types.NewInt(3), types.NewInt(1)},
		{"modulo keeps dividend sign", evalModulo, types.NewInt(-7), types.NewInt(3), types.NewInt(-1)},
		{"float modulo", evalModulo, types.NewFloat(7.5), types.NewInt(2), types.NewFloat(1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op(tt.left, tt.right)
			if !result.IsNormal() {
				t.Fatalf("operator failed: %v", result.Err)
			}
			if !result.Val.Equal(tt.want) {
				t.Errorf("got %v (%s), want %v (%s)",
					result.Val, result.Val.Type(), tt.want, tt.want.Type())
			}
		})
	}
}

func TestArithmeticTypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		op    func(left, right types.Value) types.Result
		left  types.Value
		right types.Value
		want  string
	}{
		{"add nil", evalAdd, types.NewInt(1), types.Nil, "Type error! Expecting a double!"},
		{"concat non-string", evalAdd, types.NewStr("a"), types.NewInt(1), "Type error! Expecting a string!"},
		{"multiply bool", evalMultiply, types.NewBool(true), types.NewInt(2), "Type error! Expecting a double!"},
		{"subtract string", evalSubtract, types.NewStr("a"), types.NewStr("b"), "Type error! Expecting a double!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op(tt.left, tt.right)
			if !result.IsError() {
				t.Fatalf("expected error, got %v", result.Val)
			}
			if result.Err.Message != tt.want {
				t.Errorf("message = %q, want %q", result.Err.Message, tt.want)
			}
		})
	}
}

func TestIntegerDivisionByZero(t *testing.T) {
	for name, op := range map[string]func(left, right types.Value) types.Result{
		"divide": evalDivide,
		"modulo": evalModulo,
	} {
		t.Run(name, func(t *testing.T) {
			result := op(types.NewInt(1), types.NewInt(0))
			if !result.IsError() {
				t.Fatalf("expected error, got %v", result.Val)
			}
			if result.Err.Message != "Division by zero." {
				t.Errorf("message = %q, want \"Division by zero.\"", result.Err.Message)
			}
		})
	}
}

func TestFloatDivisionByZeroIsInf(t *testing.T) {
	// IEEE semantics for floats: no error, the value is infinite
	result := evalDivide(types.NewFloat(1), types.NewFloat(0))
	if !result.IsNormal() {
		t.Fatalf("float division by zero errored: %v", result.Err)
	}
	if result.Val.String() != "Inf" {
		t.Errorf("1.0 / 0.0 = %s, want Inf", result.Val.String())
	}

	result = evalDivide(types.NewFloat(-1), types.NewFloat(0))
	if result.Val.String() != "-Inf" {
		t.Errorf("-1.0 / 0.0 = %s, want -Inf", result.Val.String())
	}
}

func TestComparisonOperators(t *testing.T) {
	tests := []struct {
		name  string
		op    func(left, right types.Value) types.Result
		left  types.Value
		right types.Value
		want  bool
	}{
		{"int less", evalLessThan, types.NewInt(1), types.NewInt(2), true},
		{"int not less", evalLessThan, types.NewInt(2), types.NewInt(2), false},
		{"less equal", evalLessThanEqual, types.NewInt(2), types.NewInt(2), true},
		{"greater", evalGreaterThan, types.NewInt(3), types.NewFloat(2.5), true},
		{"greater equal", evalGreaterThanEqual, types.NewFloat(2.5), types.NewFloat(2.5), true},
		{"mixed numeric", evalLessThan, types.NewInt(1), types.NewFloat(1.5), true},
		{"string less", evalLessThan, types.NewStr("apple"), types.NewStr("banana"), true},
		{"string order is lexicographic", evalLessThan, types.NewStr("b"), types.NewStr("apple"), false},
		{"string case sensitive", evalLessThan, types.NewStr("Z"), types.NewStr("a"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op(tt.left, tt.right)
			if !result.IsNormal() {
				t.Fatalf("comparison failed: %v", result.Err)
			}
			if !result.Val.Equal(types.NewBool(tt.want)) {
				t.Errorf("got %v, want %v", result.Val, tt.want)
			}
		})
	}
}

func TestComparisonTypeErrors(t *testing.T) {
	// String and number do not compare; the numeric path reports it
	result := evalLessThan(types.NewInt(1), types.NewStr("a"))
	if !result.IsError() {
		t.Fatal("expected error comparing int to string")
	}
	if result.Err.Message != "Type error! Expecting a double!" {
		t.Errorf("message = %q", result.Err.Message)
	}
}

func TestEqualityOperators(t *testing.T) {
	tests := []struct {
		name  string
		left  types.Value
		right types.Value
		equal bool
	}{
		{"same ints", types.NewInt(1), types.NewInt(1), true},
		{"different ints", types.NewInt(1), types.NewInt(2), false},
		{"int never equals float", types.NewInt(1), types.NewFloat(1), false},
		{"same strings", types.NewStr("a"), types.NewStr("a"), true},
		{"nil equals nil", types.Nil, types.Nil, true},
		{"nil is not uninitialized", types.Nil, types.Uninitialized, false},
		{"cross-type", types.NewInt(0), types.NewBool(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := evalEqual(tt.left, tt.right)
			if !eq.Val.Equal(types.NewBool(tt.equal)) {
				t.Errorf("== = %v, want %v", eq.Val, tt.equal)
			}
			ne := evalNotEqual(tt.left, tt.right)
			if !ne.Val.Equal(types.NewBool(!tt.equal)) {
				t.Errorf("!= = %v, want %v", ne.Val, !tt.equal)
			}
		})
	}
}

func TestUnaryOperators(t *testing.T) {
	negated := evalUnaryMinus(types.NewInt(5))
	if !negated.Val.Equal(types.NewInt(-5)) {
		t.Errorf("-5 = %v", negated.Val)
	}

	negated = evalUnaryMinus(types.NewFloat(2.5))
	if !negated.Val.Equal(types.NewFloat(-2.5)) {
		t.Errorf("-2.5 = %v", negated.Val)
	}

	bad := evalUnaryMinus(types.NewStr("x"))
	if !bad.IsError() || bad.Err.Message != "Type error! Expecting a number!" {
		t.Errorf("negating a string: %v", bad)
	}

	notted := evalUnaryNot(types.NewInt(0))
	if !notted.Val.Equal(types.NewBool(true)) {
		t.Errorf("!0 = %v, want true", notted.Val)
	}
	notted = evalUnaryNot(types.NewStr(""))
	if !notted.Val.Equal(types.NewBool(false)) {
		t.Errorf("!\"\" = %v, want false (empty string is truthy)", notted.Val)
	}
}
