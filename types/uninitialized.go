package types

// UninitializedValue marks a declared-but-not-yet-assigned binding.
// It is a distinguishable runtime state, not a nil: error reporting and
// truthiness treat it separately from NilValue.
type UninitializedValue struct{}

// Uninitialized is the shared marker value
var Uninitialized Value = UninitializedValue{}

func (u UninitializedValue) Type() TypeCode {
	return TYPE_UNINITIALIZED
}

func (u UninitializedValue) String() string {
	return "Uninitialized"
}

func (u UninitializedValue) Equal(other Value) bool {
	_, ok := other.(UninitializedValue)
	return ok
}

func (u UninitializedValue) Truthy() bool {
	return false
}
