package builtins

import (
	"math"

	"github.com/AgustinCB/smoked/types"
)

// builtinArray creates an empty array with a fixed capacity
// array(capacity) -> array
func builtinArray(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("array", 1, len(args))
	}

	capacity, verr := types.AsInteger(args[0])
	if verr != types.NoError {
		return typeError(verr)
	}
	if capacity < 0 {
		return runtimeError("Array capacity cannot be negative.")
	}
	// Keep the failure recoverable instead of letting make() blow up
	if capacity > math.MaxInt32 {
		return runtimeError("Array capacity too large.")
	}

	return types.Ok(types.NewArrayWithCapacity(int(capacity)))
}

// builtinPush appends an element to an array, in place
// push(array, value) -> array
// The capacity declared at creation is a hard bound
func builtinPush(args []types.Value) types.Result {
	if len(args) != 2 {
		return arityError("push", 2, len(args))
	}

	arr, ok := args[0].(types.ArrayValue)
	if !ok {
		return runtimeError("push takes an array as its first argument.")
	}

	if arr.Len() >= arr.Array.Capacity {
		return runtimeError("Array is full.")
	}

	arr.Array.Elements = append(arr.Array.Elements, args[1])
	return types.Ok(arr)
}

// builtinPop removes and returns the last element of an array
// pop(array) -> value
func builtinPop(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("pop", 1, len(args))
	}

	arr, ok := args[0].(types.ArrayValue)
	if !ok {
		return runtimeError("pop takes an array.")
	}

	n := arr.Len()
	if n == 0 {
		return runtimeError("Pop from empty array.")
	}

	last := arr.Array.Elements[n-1]
	arr.Array.Elements = arr.Array.Elements[:n-1]
	return types.Ok(last)
}

// builtinCapacity returns the capacity an array was created with
// capacity(array) -> int
func builtinCapacity(args []types.Value) types.Result {
	if len(args) != 1 {
		return arityError("capacity", 1, len(args))
	}

	arr, ok := args[0].(types.ArrayValue)
	if !ok {
		return runtimeError("capacity takes an array.")
	}

	return types.Ok(types.NewInt(int64(arr.Array.Capacity)))
}
