package types

// StrValue represents a smoked string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the raw string content, without quoting.
// Display and error messages embed strings verbatim.
func (s StrValue) String() string {
	return s.val
}

// Type returns the smoked type
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Truthy returns whether the value is truthy.
// Every string is truthy, including the empty string: only nil,
// uninitialized, false and numeric zero are falsy.
func (s StrValue) Truthy() bool {
	return true
}

// Equal compares two values for equality (case-sensitive)
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
