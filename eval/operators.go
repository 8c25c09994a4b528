package eval

import (
	"math"
	"strings"

	"github.com/AgustinCB/smoked/types"
)

// Operator helpers raise errors without a source location; the
// evaluator stamps the expression position onto them afterwards.

// typeError wraps a coercion failure in an unpositioned error result
func typeError(verr types.ValueError) types.Result {
	return types.Err(verr.At(types.Location{}))
}

// runtimeError wraps a fixed message in an unpositioned error result
func runtimeError(message string) types.Result {
	return types.Err(types.NewProgramError(types.Location{}, message))
}

// ============================================================================
// UNARY OPERATORS
// ============================================================================

// evalUnaryMinus implements unary negation: -x
// Supports INT and FLOAT operands
func evalUnaryMinus(operand types.Value) types.Result {
	negated, verr := types.Negate(operand)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(negated)
}

// evalUnaryNot implements logical NOT: !x
// Negates the operand's truthiness; never fails
func evalUnaryNot(operand types.Value) types.Result {
	return types.Ok(types.Not(operand))
}

// ============================================================================
// ARITHMETIC OPERATORS
// ============================================================================

// evalAdd implements addition: left + right
// A string on the left concatenates (the right side must be a string);
// two INTs stay in integer arithmetic; any FLOAT widens both sides
func evalAdd(left, right types.Value) types.Result {
	// String concatenation
	if leftStr, ok := left.(types.StrValue); ok {
		rightStr, verr := types.AsString(right)
		if verr != types.NoError {
			return typeError(verr)
		}
		return types.Ok(types.NewStr(leftStr.Value() + rightStr))
	}

	// Both ints - stay in integer arithmetic
	if leftInt, ok := left.(types.IntValue); ok {
		if rightInt, ok := right.(types.IntValue); ok {
			return types.Ok(types.NewInt(leftInt.Val + rightInt.Val))
		}
	}

	// Mixed numerics widen to float
	leftFloat, verr := types.AsDouble(left)
	if verr != types.NoError {
		return typeError(verr)
	}
	rightFloat, verr := types.AsDouble(right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewFloat(leftFloat + rightFloat))
}

// evalSubtract implements subtraction: left - right
func evalSubtract(left, right types.Value) types.Result {
	if leftInt, ok := left.(types.IntValue); ok {
		if rightInt, ok := right.(types.IntValue); ok {
			return types.Ok(types.NewInt(leftInt.Val - rightInt.Val))
		}
	}

	leftFloat, verr := types.AsDouble(left)
	if verr != types.NoError {
		return typeError(verr)
	}
	rightFloat, verr := types.AsDouble(right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewFloat(leftFloat - rightFloat))
}

// evalMultiply implements multiplication: left * right
func evalMultiply(left, right types.Value) types.Result {
	if leftInt, ok := left.(types.IntValue); ok {
		if rightInt, ok := right.(types.IntValue); ok {
			return types.Ok(types.NewInt(leftInt.Val * rightInt.Val))
		}
	}

	leftFloat, verr := types.AsDouble(left)
	if verr != types.NoError {
		return typeError(verr)
	}
	rightFloat, verr := types.AsDouble(right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewFloat(leftFloat * rightFloat))
}

// evalDivide implements division: left / right
// Integer division truncates toward zero and rejects a zero divisor.
// Float division follows IEEE 754, so dividing by zero yields Inf or
// NaN rather than an error.
func evalDivide(left, right types.Value) types.Result {
	if leftInt, ok := left.(types.IntValue); ok {
		if rightInt, ok := right.(types.IntValue); ok {
			if rightInt.Val == 0 {
				return runtimeError("Division by zero.")
			}
			return types.Ok(types.NewInt(leftInt.Val / rightInt.Val))
		}
	}

	leftFloat, verr := types.AsDouble(left)
	if verr != types.NoError {
		return typeError(verr)
	}
	rightFloat, verr := types.AsDouble(right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewFloat(leftFloat / rightFloat))
}

// evalModulo implements remainder: left % right
// Integer remainder keeps the dividend's sign and rejects a zero
// divisor; float remainder goes through math.Mod.
func evalModulo(left, right types.Value) types.Result {
	if leftInt, ok := left.(types.IntValue); ok {
		if rightInt, ok := right.(types.IntValue); ok {
			if rightInt.Val == 0 {
				return runtimeError("Division by zero.")
			}
			return types.Ok(types.NewInt(leftInt.Val % rightInt.Val))
		}
	}

	leftFloat, verr := types.AsDouble(left)
	if verr != types.NoError {
		return typeError(verr)
	}
	rightFloat, verr := types.AsDouble(right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewFloat(float32(math.Mod(float64(leftFloat), float64(rightFloat)))))
}

// ============================================================================
// COMPARISON OPERATORS
// ============================================================================

// evalEqual implements equality: left == right
// Deep equality for all types; never fails
func evalEqual(left, right types.Value) types.Result {
	return types.Ok(types.NewBool(left.Equal(right)))
}

// evalNotEqual implements inequality: left != right
func evalNotEqual(left, right types.Value) types.Result {
	return types.Ok(types.NewBool(!left.Equal(right)))
}

// evalLessThan implements less than: left < right
func evalLessThan(left, right types.Value) types.Result {
	cmp, verr := compare(left, right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewBool(cmp < 0))
}

// evalLessThanEqual implements less than or equal: left <= right
func evalLessThanEqual(left, right types.Value) types.Result {
	cmp, verr := compare(left, right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewBool(cmp <= 0))
}

// evalGreaterThan implements greater than: left > right
func evalGreaterThan(left, right types.Value) types.Result {
	cmp, verr := compare(left, right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewBool(cmp > 0))
}

// evalGreaterThanEqual implements greater than or equal: left >= right
func evalGreaterThanEqual(left, right types.Value) types.Result {
	cmp, verr := compare(left, right)
	if verr != types.NoError {
		return typeError(verr)
	}
	return types.Ok(types.NewBool(cmp >= 0))
}

// compare orders two values: two strings compare lexicographically,
// anything else must be numeric. Two INTs compare exactly; otherwise
// both sides widen through AsDouble, so a non-numeric operand surfaces
// the coercion error. Returns <0, 0, or >0.
func compare(left, right types.Value) (int, types.ValueError) {
	if leftStr, ok := left.(types.StrValue); ok {
		if rightStr, ok := right.(types.StrValue); ok {
			return strings.Compare(leftStr.Value(), rightStr.Value()), types.NoError
		}
	}

	if leftInt, ok := left.(types.IntValue); ok {
		if rightInt, ok := right.(types.IntValue); ok {
			switch {
			case leftInt.Val < rightInt.Val:
				return -1, types.NoError
			case leftInt.Val > rightInt.Val:
				return 1, types.NoError
			}
			return 0, types.NoError
		}
	}

	leftFloat, verr := types.AsDouble(left)
	if verr != types.NoError {
		return 0, verr
	}
	rightFloat, verr := types.AsDouble(right)
	if verr != types.NoError {
		return 0, verr
	}
	switch {
	case leftFloat < rightFloat:
		return -1, types.NoError
	case leftFloat > rightFloat:
		return 1, types.NoError
	}
	return 0, types.NoError
}
