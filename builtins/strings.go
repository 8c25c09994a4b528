package builtins

import (
	"unicode/utf8"

	"github.com/AgustinCB/smoked/types"
)

// builtinLength returns the element count of a string or array
// length(str) -> int (characters, not bytes)
// length(array) -> int (current elements, not capacity)
func builtinLength(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("length", 1, len(args))
	}

	switch v := args[0].(type) {
	case types.StrValue:
		return types.Ok(types.NewInt(int64(utf8.RuneCountInString(v.Value()))))
	case types.ArrayValue:
		return types.Ok(types.NewInt(int64(v.Len())))
	default:
		return runtimeError("length takes a string or an array.")
	}
}
