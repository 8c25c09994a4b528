package types

// TypeCode identifies the variant of a Value
type TypeCode int

const (
	TYPE_NIL TypeCode = iota
	TYPE_UNINITIALIZED
	TYPE_BOOL
	TYPE_INT
	TYPE_FLOAT
	TYPE_STR
	TYPE_FUNC
	TYPE_METHOD
	TYPE_CLASS
	TYPE_OBJ
	TYPE_TRAIT
	TYPE_ARRAY
	TYPE_MODULE
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_NIL:
		return "NIL"
	case TYPE_UNINITIALIZED:
		return "UNINITIALIZED"
	case TYPE_BOOL:
		return "BOOL"
	case TYPE_INT:
		return "INT"
	case TYPE_FLOAT:
		return "FLOAT"
	case TYPE_STR:
		return "STR"
	case TYPE_FUNC:
		return "FUNC"
	case TYPE_METHOD:
		return "METHOD"
	case TYPE_CLASS:
		return "CLASS"
	case TYPE_OBJ:
		return "OBJ"
	case TYPE_TRAIT:
		return "TRAIT"
	case TYPE_ARRAY:
		return "ARRAY"
	case TYPE_MODULE:
		return "MODULE"
	default:
		return "UNKNOWN"
	}
}
