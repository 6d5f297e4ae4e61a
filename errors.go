package rpncalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies every failure of the calculator. An ErrorKind is itself
// an error, so errors.Is(err, DivideByZero) reports whether evaluation failed
// for that reason.
type ErrorKind int8

const (
	// NoError is the kind of a nil error.
	NoError ErrorKind = iota

	// Tokenizing.
	UndefinedCharacter
	NumberTooLarge
	TooManyTokens

	// Validation.
	InvalidEquals
	TooManyOpenBrackets
	TooManyCloseBrackets
	EmptyExpression

	// Conversion to RPN.
	OutOfMemory
	StackFull
	UndefinedVariable
	MissingBracket
	UndefinedNode

	// Evaluation.
	NotEnoughArguments
	MissingOperator
	DivideByZero
	PowDomain
	PowRange
	UndefinedOperator
	UndefinedFunction
	FunctionDomain
	FunctionRange

	// Variable store.
	NotFound
	NoFreeSpace

	// Stack.
	StackEmpty
	UnknownType
	InvalidType
)

var kindnames = [...]string{
	NoError:              "NoError",
	UndefinedCharacter:   "UndefinedCharacter",
	NumberTooLarge:       "NumberTooLarge",
	TooManyTokens:        "TooManyTokens",
	InvalidEquals:        "InvalidEquals",
	TooManyOpenBrackets:  "TooManyOpenBrackets",
	TooManyCloseBrackets: "TooManyCloseBrackets",
	EmptyExpression:      "EmptyExpression",
	OutOfMemory:          "OutOfMemory",
	StackFull:            "StackFull",
	UndefinedVariable:    "UndefinedVariable",
	MissingBracket:       "MissingBracket",
	UndefinedNode:        "UndefinedNode",
	NotEnoughArguments:   "NotEnoughArguments",
	MissingOperator:      "MissingOperator",
	DivideByZero:         "DivideByZero",
	PowDomain:            "PowDomain",
	PowRange:             "PowRange",
	UndefinedOperator:    "UndefinedOperator",
	UndefinedFunction:    "UndefinedFunction",
	FunctionDomain:       "FunctionDomain",
	FunctionRange:        "FunctionRange",
	NotFound:             "NotFound",
	NoFreeSpace:          "NoFreeSpace",
	StackEmpty:           "StackEmpty",
	UnknownType:          "UnknownType",
	InvalidType:          "InvalidType",
}

var kindmsgs = [...]string{
	NoError:              "no error",
	UndefinedCharacter:   "undefined character",
	NumberTooLarge:       "number too large",
	TooManyTokens:        "too many tokens",
	InvalidEquals:        "invalid use of equals sign",
	TooManyOpenBrackets:  "too many opening brackets",
	TooManyCloseBrackets: "too many closing brackets",
	EmptyExpression:      "empty expression",
	OutOfMemory:          "out of memory",
	StackFull:            "stack full",
	UndefinedVariable:    "undefined variable",
	MissingBracket:       "missing bracket",
	UndefinedNode:        "undefined node",
	NotEnoughArguments:   "not enough arguments",
	MissingOperator:      "missing operator",
	DivideByZero:         "division by zero",
	PowDomain:            "power outside domain",
	PowRange:             "power out of range",
	UndefinedOperator:    "undefined operator",
	UndefinedFunction:    "undefined function",
	FunctionDomain:       "function argument outside domain",
	FunctionRange:        "function result out of range",
	NotFound:             "variable not found",
	NoFreeSpace:          "no free space for variable",
	StackEmpty:           "stack empty",
	UnknownType:          "unknown frame type",
	InvalidType:          "invalid frame type",
}

// String returns the name of the kind, e.g. "DivideByZero".
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Error returns a short lowercase description of the kind.
func (k ErrorKind) Error() string {
	if k < 0 || int(k) >= len(kindmsgs) {
		return "unknown error " + strconv.Itoa(int(k))
	}
	return kindmsgs[k]
}

// Invariant reports whether the kind indicates an internal inconsistency
// rather than bad input.
func (k ErrorKind) Invariant() bool {
	switch k {
	case UndefinedNode, UnknownType, InvalidType:
		return true
	}
	return false
}

// Error is an error with the position of the token that caused it. It
// implements InputError and unwraps to its Kind.
type Error struct {
	// Kind is the reason for the failure.
	Kind ErrorKind
	// Col is the 1-based column of the offending token in the input line, or
	// 0 if the error is not tied to a single token.
	Col int
	// Text is the offending token, if any.
	Text string
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col > 0 {
		return errpos(err.Col, msg)
	}
	return msg
}

func (err *Error) Unwrap() error {
	return err.Kind
}

func (err *Error) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error, or 0
	// if the error does not belong to a single token.
	Pos() int
}

var _ InputError = (*Error)(nil)

// KindOf returns the ErrorKind that err wraps. The result is NoError if err is
// nil and UndefinedNode if err carries no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return UndefinedNode
}

// fail is a shortcut to create an *Error for a token.
func fail(k ErrorKind, tok Token) error {
	return &Error{Kind: k, Col: tok.Pos, Text: tok.text()}
}
