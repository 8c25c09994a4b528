package types

// Negate flips the sign of a numeric value. Applying it to anything
// else is a guest-program type error reported as ExpectingNumber, never
// a host crash.
func Negate(v Value) (Value, ValueError) {
	switch n := v.(type) {
	case IntValue:
		return NewInt(-n.Val), NoError
	case FloatValue:
		return NewFloat(-n.Val), NoError
	default:
		return nil, ExpectingNumber
	}
}

// Not computes logical negation. Booleans flip directly; every other
// variant negates its truthiness. Not never fails.
func Not(v Value) Value {
	if b, ok := v.(BoolValue); ok {
		return NewBool(!b.Val)
	}
	return NewBool(!v.Truthy())
}
