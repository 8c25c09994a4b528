package types

import "math"

// Coercions narrow a Value into a required host primitive. Each one is
// total over the value model: it either succeeds under the stated rule
// or reports the single error kind reserved for that target type.

// AsInteger narrows a value to a 64-bit integer.
// Integers convert as themselves; floats truncate toward zero. Every
// other variant fails with ExpectingInteger.
func AsInteger(v Value) (int64, ValueError) {
	switch n := v.(type) {
	case IntValue:
		return n.Val, NoError
	case FloatValue:
		return truncateToInt64(n.Val), NoError
	default:
		return 0, ExpectingInteger
	}
}

// AsDouble narrows a value to a 32-bit float.
// Floats convert as themselves; integers widen. Every other variant
// fails with ExpectingDouble.
func AsDouble(v Value) (float32, ValueError) {
	switch n := v.(type) {
	case FloatValue:
		return n.Val, NoError
	case IntValue:
		return float32(n.Val), NoError
	default:
		return 0, ExpectingDouble
	}
}

// AsString narrows a value to its owned text. Only strings convert;
// every other variant fails with ExpectingString.
func AsString(v Value) (string, ValueError) {
	if s, ok := v.(StrValue); ok {
		return s.Value(), NoError
	}
	return "", ExpectingString
}

// truncateToInt64 converts toward zero, saturating at the i64 range.
// NaN maps to 0 and the infinities clamp, so no input is undefined.
func truncateToInt64(f float32) int64 {
	f64 := float64(f)
	switch {
	case math.IsNaN(f64):
		return 0
	case f64 >= math.MaxInt64:
		return math.MaxInt64
	case f64 <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f64)
}
