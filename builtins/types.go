package builtins

import (
	"strconv"
	"strings"

	"github.com/AgustinCB/smoked/types"
)

// builtinTypeof returns the type name of a value
// typeof(value) -> str ("INT", "FLOAT", "STR", ...)
func builtinTypeof(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("typeof", 1, len(args))
	}

	return types.Ok(types.NewStr(args[0].Type().String()))
}

// builtinTostr converts a value to its rendered representation
// tostr(value) -> str
// Rendering is total, so this never fails
func builtinTostr(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("tostr", 1, len(args))
	}

	return types.Ok(types.NewStr(args[0].String()))
}

// builtinToint converts a value to an integer
// toint(int) -> int (identity)
// toint(float) -> int (truncate toward zero)
// toint(str) -> int (parse decimal digits)
// toint(bool) -> int (1 or 0)
func builtinToint(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("toint", 1, len(args))
	}

	switch v := args[0].(type) {
	case types.StrValue:
		// Parse string as integer
		str := strings.TrimSpace(v.Value())
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return runtimeError("Cannot convert '%s' to an integer.", v.Value())
		}
		return types.Ok(types.NewInt(n))

	case types.BoolValue:
		if v.Val {
			return types.Ok(types.NewInt(1))
		}
		return types.Ok(types.NewInt(0))

	default:
		// Numerics go through the coercion layer; everything else
		// surfaces its integer type error
		n, verr := types.AsInteger(args[0])
		if verr != types.NoError {
			return typeError(verr)
		}
		return types.Ok(types.NewInt(n))
	}
}

// builtinTofloat converts a value to a float
// tofloat(float) -> float (identity)
// tofloat(int) -> float (widen)
// tofloat(str) -> float (parse at 32-bit precision)
// tofloat(bool) -> float (1 or 0)
func builtinTofloat(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("tofloat", 1, len(args))
	}

	switch v := args[0].(type) {
	case types.StrValue:
		// Parse string as float
		str := strings.TrimSpace(v.Value())
		f, err := strconv.ParseFloat(str, 32)
		if err != nil {
			return runtimeError("Cannot convert '%s' to a float.", v.Value())
		}
		return types.Ok(types.NewFloat(float32(f)))

	case types.BoolValue:
		if v.Val {
			return types.Ok(types.NewFloat(1))
		}
		return types.Ok(types.NewFloat(0))

	default:
		f, verr := types.AsDouble(args[0])
		if verr != types.NoError {
			return typeError(verr)
		}
		return types.Ok(types.NewFloat(f))
	}
}
