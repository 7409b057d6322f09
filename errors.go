package rpn

import "strconv"

// WordError is an error indicating a word that is not a number, operator,
// parenthesis, or function name. It implements InputError.
type WordError struct {
	// Col is the index of the word.
	Col int
	// Word is the word that was not understood.
	Word string
}

func (err *WordError) Error() string {
	return errpos(err.Col, "unknown word "+strconv.Quote(err.Word))
}

func (err *WordError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis, or of the end of the
	// expression if an opening parenthesis is never closed.
	Col int
	// Open is whether the unmatched parenthesis is an opening one.
	Open bool
	// Func is the name of the function whose argument list was not closed,
	// if any.
	Func string
}

func (err *BracketError) Error() string {
	switch {
	case err.Func != "":
		return errpos(err.Col, "argument list of "+err.Func+" with no close bracket")
	case err.Open:
		return errpos(err.Col, "open bracket with no close bracket")
	default:
		return errpos(err.Col, "close bracket with no open bracket")
	}
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator without two operands, or
// an expression which leaves more than one value. It implements InputError.
type OperandError struct {
	// Col is the position of the operator, or 0 when too many values remain.
	Col int
	// Op is the operator, or the empty string when too many values remain.
	Op string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	if err.Op == "" {
		return "expression leaves " + strconv.Itoa(err.Have) + " values"
	}
	return errpos(err.Col, "operator "+err.Op+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call had.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// FuncError is an error indicating a call to a function which is recognized
// but has no implementation. It implements InputError.
type FuncError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "function "+err.Func+" is not implemented")
}

func (err *FuncError) Pos() int {
	return err.Col
}

// ArgError wraps an error from evaluating an argument of a function call.
// Its position is that of the call; the wrapped error's position is relative
// to the argument text.
type ArgError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
	// Arg is the 1-based index of the argument.
	Arg int
	// Err is the error from the argument.
	Err error
}

func (err *ArgError) Error() string {
	return errpos(err.Col, "argument "+strconv.Itoa(err.Arg)+" of "+err.Func+": "+err.Err.Error())
}

func (err *ArgError) Pos() int {
	return err.Col
}

func (err *ArgError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based index of the word
	// that caused it. Spaces are insignificant, and each operator and
	// parenthesis is its own word.
	Pos() int
}

var (
	_ InputError = (*WordError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*ArgError)(nil)
)
