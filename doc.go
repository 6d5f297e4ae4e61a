// Package rpncalc implements a line-oriented calculator with variables.
//
// A line is either an expression like "2 + 3 * 4" or an assignment like
// "x = (2 + 3) * 4". Expressions use + - * / and ^ (also written **), where ^
// is right-associative, so "2 ^ 3 ^ 2" is 512. Functions take one bracketed
// argument: sqrt(x), log(x) and exp(x). log and exp accept a numeric base
// suffix, as in log10(1000) or exp3(2); the default base is 2, so exp(x) is
// 2^x.
//
// Evaluation goes through distinct stages, each usable on its own: Tokenize
// classifies the line, Validate and Normalize check and rewrite the infix
// tokens, ToRPN converts them to Reverse Polish Notation with the
// shunting-yard algorithm, and EvalRPN computes the result on a stack.
// Variables are substituted during conversion, so a compiled Program keeps
// the values they had when it was compiled.
//
// Every failure is an error wrapping an ErrorKind:
//
//	_, err := calc.Evaluate("1/0")
//	if errors.Is(err, rpncalc.DivideByZero) {
//		// ...
//	}
package rpncalc
