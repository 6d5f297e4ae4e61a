package main

import "github.com/zephyrtronium/rpncalc"

// message returns the text shown to the user for an error kind.
func message(k rpncalc.ErrorKind) string {
	switch k {
	case rpncalc.UndefinedCharacter:
		return "Improper character found in input"
	case rpncalc.NumberTooLarge:
		return "Number in input is too big"
	case rpncalc.TooManyTokens:
		return "Expression is too long"
	case rpncalc.InvalidEquals:
		return "Invalid use of equals sign"
	case rpncalc.TooManyOpenBrackets:
		return "Too many opening brackets"
	case rpncalc.TooManyCloseBrackets:
		return "Too many closing brackets"
	case rpncalc.EmptyExpression:
		return "Missing expression"
	case rpncalc.OutOfMemory:
		return "Out of memory!"
	case rpncalc.UndefinedVariable, rpncalc.NotFound:
		return "Undefined variable found in input"
	case rpncalc.UndefinedNode, rpncalc.InvalidType, rpncalc.UnknownType:
		return "Invalid expression"
	case rpncalc.StackFull:
		return "Stack overflow"
	case rpncalc.MissingBracket:
		return "Missing brackets in expression"
	case rpncalc.PowDomain, rpncalc.FunctionDomain:
		return "Computation of function failed: incorrect domain"
	case rpncalc.PowRange, rpncalc.FunctionRange:
		return "Computation of function failed: out of range"
	case rpncalc.UndefinedFunction:
		return "Undefined function found in input"
	case rpncalc.NotEnoughArguments, rpncalc.StackEmpty:
		return "More operators than arguments in expression"
	case rpncalc.MissingOperator:
		return "More arguments than operators in expression"
	case rpncalc.DivideByZero:
		return "Attempted to divide by zero!"
	case rpncalc.UndefinedOperator:
		return "Undefined operation found in input"
	case rpncalc.NoFreeSpace:
		return "Maximum number of variables exceeded"
	default:
		return "Unknown error occurred! Please try again"
	}
}
