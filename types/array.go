package types

import "strings"

// maxRenderDepth bounds recursive array rendering so a self-referential
// array prints a placeholder instead of overflowing the stack
const maxRenderDepth = 8

// Array is the shared descriptor behind array values: a fixed capacity
// declared at creation and the current elements. Capacity is a static
// bound distinct from the element count; keeping the count within it is
// the owner's contract, not this package's. Arrays are shared with
// interior mutability so that every binding aliasing one observes the
// same element writes.
type Array struct {
	Capacity int
	Elements []Value
}

// ArrayValue wraps a shared array descriptor
type ArrayValue struct {
	Array *Array
}

// NewArray creates an array holding the given elements, with capacity
// equal to the element count
func NewArray(elements []Value) ArrayValue {
	return ArrayValue{Array: &Array{
		Capacity: len(elements),
		Elements: elements,
	}}
}

// NewArrayWithCapacity creates an empty array with the given capacity
func NewArrayWithCapacity(capacity int) ArrayValue {
	return ArrayValue{Array: &Array{
		Capacity: capacity,
		Elements: make([]Value, 0, capacity),
	}}
}

// Type returns the smoked type
func (a ArrayValue) Type() TypeCode {
	return TYPE_ARRAY
}

// String renders the bracketed element list, recursively
func (a ArrayValue) String() string {
	return a.render(0)
}

func (a ArrayValue) render(depth int) string {
	if depth >= maxRenderDepth {
		return "[...]"
	}
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, e := range a.Array.Elements {
		if nested, ok := e.(ArrayValue); ok {
			sb.WriteString(nested.render(depth + 1))
		} else {
			sb.WriteString(e.String())
		}
		sb.WriteString(", ")
	}
	sb.WriteString("]")
	return sb.String()
}

// Equal compares structurally: same capacity and deeply equal elements.
// Aliases of one array are always equal
func (a ArrayValue) Equal(other Value) bool {
	otherArr, ok := other.(ArrayValue)
	if !ok {
		return false
	}
	if a.Array == otherArr.Array {
		return true
	}
	if a.Array.Capacity != otherArr.Array.Capacity {
		return false
	}
	if len(a.Array.Elements) != len(otherArr.Array.Elements) {
		return false
	}
	for i := range a.Array.Elements {
		if !a.Array.Elements[i].Equal(otherArr.Array.Elements[i]) {
			return false
		}
	}
	return true
}

// Truthy returns whether the value is truthy
// Arrays are always truthy, even when empty
func (a ArrayValue) Truthy() bool {
	return true
}

// Len returns the current element count
func (a ArrayValue) Len() int {
	return len(a.Array.Elements)
}

// Get returns the element at index (0-based)
func (a ArrayValue) Get(index int) Value {
	if index < 0 || index >= len(a.Array.Elements) {
		return nil
	}
	return a.Array.Elements[index]
}

// Set replaces the element at index, in place; all aliases observe it
func (a ArrayValue) Set(index int, v Value) bool {
	if index < 0 || index >= len(a.Array.Elements) {
		return false
	}
	a.Array.Elements[index] = v
	return true
}
