package eval

import (
	"math"

	"github.com/AgustinCB/smoked/parser"
	"github.com/AgustinCB/smoked/types"
)

// evalArray evaluates an array literal, materializing the elements in
// source order. Capacity comes out equal to the element count.
func (e *Evaluator) evalArray(node *parser.ArrayExpr) types.Result {
	elements := make([]types.Value, len(node.Elements))
	for i, elemExpr := range node.Elements {
		result := e.Eval(elemExpr)
		if !result.IsNormal() {
			return result
		}
		elements[i] = result.Val
	}
	return types.Ok(types.NewArray(elements))
}

// evalArrayRepeat evaluates the repeat form [element; count]. The
// element evaluates once and every slot aliases that single value, so
// repeating an array gives count references to one shared array.
func (e *Evaluator) evalArrayRepeat(node *parser.ArrayRepeatExpr) types.Result {
	elemResult := e.Eval(node.Element)
	if !elemResult.IsNormal() {
		return elemResult
	}

	countResult := e.Eval(node.Count)
	if !countResult.IsNormal() {
		return countResult
	}
	count, verr := types.AsInteger(countResult.Val)
	if verr != types.NoError {
		return types.Err(verr.At(locOf(node.Pos)))
	}
	if count < 0 {
		return errAt(node.Pos, "Array size cannot be negative.")
	}
	// Keep the failure recoverable instead of letting make() blow up
	if count > math.MaxInt32 {
		return errAt(node.Pos, "Array size too large.")
	}

	elements := make([]types.Value, int(count))
	for i := range elements {
		elements[i] = elemResult.Val
	}
	return types.Ok(types.NewArray(elements))
}

// evalIndex evaluates indexing: expr[index]
// Arrays are the only indexable values; the index coerces through
// AsInteger and must fall inside the current element count.
func (e *Evaluator) evalIndex(node *parser.IndexExpr) types.Result {
	result := e.Eval(node.Expr)
	if !result.IsNormal() {
		return result
	}

	arr, ok := result.Val.(types.ArrayValue)
	if !ok {
		return errAt(node.Pos, "Only arrays can be indexed.")
	}

	index, res := e.evalIndexValue(node.Index)
	if !res.IsNormal() {
		return res
	}
	if index < 0 || index >= int64(arr.Len()) {
		return errAt(node.Pos, "Index out of bounds.")
	}
	return types.Ok(arr.Get(int(index)))
}

// evalIndexValue evaluates an index expression down to an int64
func (e *Evaluator) evalIndexValue(expr parser.Expr) (int64, types.Result) {
	result := e.Eval(expr)
	if !result.IsNormal() {
		return 0, result
	}
	index, verr := types.AsInteger(result.Val)
	if verr != types.NoError {
		return 0, types.Err(verr.At(locOf(expr.Position())))
	}
	return index, types.Ok(types.Nil)
}

// evalAssignIndex assigns through an index target, in place, so every
// alias of the array observes the write
func (e *Evaluator) evalAssignIndex(target *parser.IndexExpr, value types.Value) types.Result {
	result := e.Eval(target.Expr)
	if !result.IsNormal() {
		return result
	}

	arr, ok := result.Val.(types.ArrayValue)
	if !ok {
		return errAt(target.Pos, "Only arrays can be indexed.")
	}

	index, res := e.evalIndexValue(target.Index)
	if !res.IsNormal() {
		return res
	}
	if index < 0 || index >= int64(arr.Len()) {
		return errAt(target.Pos, "Index out of bounds.")
	}

	arr.Set(int(index), value)
	return types.Ok(value)
}
