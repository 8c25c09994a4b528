package types

import "fmt"

// ValueError identifies a type mismatch raised by the value model.
// The set is closed: coercions and unary negation produce nothing else.
type ValueError int

const (
	NoError ValueError = iota
	ExpectingInteger
	ExpectingDouble
	ExpectingNumber
	ExpectingString
)

// Error returns the fixed human message for the mismatch
func (e ValueError) Error() string {
	switch e {
	case ExpectingInteger:
		return "Type error! Expecting an integer!"
	case ExpectingDouble:
		return "Type error! Expecting a double!"
	case ExpectingNumber:
		return "Type error! Expecting a number!"
	case ExpectingString:
		return "Type error! Expecting a string!"
	default:
		return "No error"
	}
}

// At pairs the mismatch with a source location supplied by the caller.
// The value model itself is location-agnostic; attaching the position is
// the evaluator's job.
func (e ValueError) At(loc Location) *ProgramError {
	return NewProgramError(loc, e.Error())
}

// Location identifies where in the source a runtime error was raised
type Location struct {
	Line   int
	Column int
}

// ProgramError is a positioned runtime diagnostic: a fixed message plus
// the source location the caller attached to it
type ProgramError struct {
	Loc     Location
	Message string
}

// NewProgramError creates a positioned runtime error
func NewProgramError(loc Location, message string) *ProgramError {
	return &ProgramError{Loc: loc, Message: message}
}

// Error renders the positioned diagnostic
func (e *ProgramError) Error() string {
	return fmt.Sprintf("[line %d:%d] %s", e.Loc.Line, e.Loc.Column, e.Message)
}
