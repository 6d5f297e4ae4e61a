package rpncalc

// EvalRPN evaluates an RPN sequence and returns its value. stackCap is the
// capacity of the number stack; if it is not positive, DefaultStackSize is
// used. Exactly one value must remain once the sequence is consumed.
func EvalRPN(rpn []Token, stackCap int) (float64, error) {
	if stackCap <= 0 {
		stackCap = DefaultStackSize
	}
	stack, err := NewStack[Token](stackCap, Number)
	if err != nil {
		return 0, err
	}
	for _, t := range rpn {
		switch t.Kind {
		case Empty:
			return result(stack)
		case Number:
			if err := stack.Push(t); err != nil {
				return 0, fail(StackFull, t)
			}
		case Operator:
			a, err := stack.Pop(Number)
			if err != nil {
				return 0, fail(NotEnoughArguments, t)
			}
			b, err := stack.Pop(Number)
			if err != nil {
				return 0, fail(NotEnoughArguments, t)
			}
			r, k := apply(t.Op, b.Num, a.Num)
			if k != NoError {
				return 0, fail(k, t)
			}
			// Two pops just made room.
			stack.Push(Token{Kind: Number, Num: r, Pos: b.Pos})
		case Function:
			x, err := stack.Pop(Number)
			if err != nil {
				return 0, fail(NotEnoughArguments, t)
			}
			r, k := call(t.Name, x.Num)
			if k != NoError {
				return 0, fail(k, t)
			}
			stack.Push(Token{Kind: Number, Num: r, Pos: t.Pos})
		case Deleted:
			// skip
		default:
			return 0, fail(UndefinedNode, t)
		}
	}
	return result(stack)
}

// apply computes b op a.
func apply(op byte, b, a float64) (float64, ErrorKind) {
	switch op {
	case '+':
		return b + a, NoError
	case '-':
		return b - a, NoError
	case '*':
		return b * a, NoError
	case '/':
		if a == 0 {
			return 0, DivideByZero
		}
		return b / a, NoError
	case '^':
		return pow(b, a, PowDomain, PowRange)
	default:
		return 0, UndefinedOperator
	}
}

// result pops the single value left on the evaluator stack.
func result(stack *Stack[Token]) (float64, error) {
	switch stack.Len() {
	case 0:
		return 0, &Error{Kind: EmptyExpression}
	case 1:
		t, err := stack.Pop(Number)
		if err != nil {
			// Only numbers are accepted by the stack.
			return 0, &Error{Kind: UndefinedNode}
		}
		return t.Num, nil
	default:
		// Report the value just above the bottom one: it is the first value
		// no operator combined.
		var extra Token
		for stack.Len() > 1 {
			extra, _ = stack.PopAny()
		}
		return 0, &Error{Kind: MissingOperator, Col: extra.Pos, Text: extra.text()}
	}
}
