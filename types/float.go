package types

import (
	"math"
	"strconv"
)

// FloatValue represents a smoked 32-bit floating point number.
// The width is part of the language contract: i64 and f32 are the only
// numeric kinds, and no operation widens beyond them.
type FloatValue struct {
	Val float32
}

// Type returns the type code for floats
func (f FloatValue) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the display representation
func (f FloatValue) String() string {
	f64 := float64(f.Val)
	if math.IsNaN(f64) {
		return "NaN"
	}
	if math.IsInf(f64, 1) {
		return "Inf"
	}
	if math.IsInf(f64, -1) {
		return "-Inf"
	}
	// Shortest text that round-trips at 32-bit precision (3.0 prints as "3")
	return strconv.FormatFloat(f64, 'g', -1, 32)
}

// Equal checks deep equality
// NaN never equals NaN (IEEE 754 semantics)
func (f FloatValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	otherFloat, ok := other.(FloatValue)
	if !ok {
		return false
	}
	if math.IsNaN(float64(f.Val)) || math.IsNaN(float64(otherFloat.Val)) {
		return false
	}
	return f.Val == otherFloat.Val
}

// Truthy returns the smoked truthiness
// 0.0 (including -0.0) is falsy, all other floats are truthy
func (f FloatValue) Truthy() bool {
	return f.Val != 0
}

// NewFloat creates a new FloatValue
func NewFloat(val float32) FloatValue {
	return FloatValue{Val: val}
}

// IsNaN returns true if the float is NaN
func (f FloatValue) IsNaN() bool {
	return math.IsNaN(float64(f.Val))
}
