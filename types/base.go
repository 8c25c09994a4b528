package types

// Value is the interface all smoked runtime values implement.
// Every expression the evaluator processes produces exactly one Value,
// and every variant lives in its own file in this package.
type Value interface {
	Type() TypeCode
	String() string   // display representation
	Equal(Value) bool // structural equality
	Truthy() bool     // smoked truthiness rules
}
