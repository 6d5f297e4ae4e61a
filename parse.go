package rpncalc

// Lookup resolves variable names during conversion to RPN.
type Lookup interface {
	// Get returns the value of a variable. The error's kind is NotFound if
	// there is no such variable.
	Get(name string) (float64, error)
}

// DefaultStackSize is the default capacity of the converter and evaluator
// stacks.
const DefaultStackSize = 1000

type operator struct {
	// prec is the precedence value. Higher is more binding. Open brackets on
	// the converter stack have precedence 0 so that no operator pops them.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binop gets the operator for an operator character. The result for any other
// character, including the open bracket, has precedence 0.
func binop(op byte) operator {
	switch op {
	case '+', '-':
		return operator{1, false}
	case '*', '/':
		return operator{2, false}
	case '^':
		return operator{3, true}
	default:
		return operator{}
	}
}

// yields reports whether an operator top already on the stack must be output
// before the operator p is pushed.
func (p operator) yields(top operator) bool {
	if p.right {
		return top.prec > p.prec
	}
	return top.prec >= p.prec
}

// ToRPN converts a normalized infix sequence to Reverse Polish Notation using
// the shunting-yard algorithm. Variables are resolved through vars as they
// are encountered and appear in the output as numbers, so later changes to a
// variable do not affect the result. stackCap is the capacity of the operator
// stack; if it is not positive, DefaultStackSize is used.
//
// The infix sequence must not contain an assignment prefix. The output is
// terminated by an Empty token.
func ToRPN(infix []Token, vars Lookup, stackCap int) ([]Token, error) {
	if stackCap <= 0 {
		stackCap = DefaultStackSize
	}
	stack, err := NewStack[Token](stackCap, Operator, Function)
	if err != nil {
		return nil, err
	}
	out := make([]Token, 0, len(infix))
	push := func(t Token) error {
		if err := stack.Push(t); err != nil {
			return &Error{Kind: StackFull, Col: t.Pos, Text: t.text()}
		}
		return nil
	}
	for _, t := range infix {
		switch t.Kind {
		case Empty:
			return drain(stack, out)
		case Number:
			out = append(out, t)
		case Variable:
			if vars == nil {
				return nil, fail(UndefinedVariable, t)
			}
			x, err := vars.Get(t.Name)
			if err != nil {
				return nil, fail(UndefinedVariable, t)
			}
			out = append(out, Token{Kind: Number, Num: x, Pos: t.Pos})
		case Function:
			if err := push(t); err != nil {
				return nil, err
			}
		case Operator:
			cur := binop(t.Op)
			for {
				top, ok := stack.Peek()
				if !ok || top.Kind != Operator || !cur.yields(binop(top.Op)) {
					break
				}
				stack.PopAny()
				out = append(out, top)
			}
			if err := push(t); err != nil {
				return nil, err
			}
		case BracketLeft:
			if err := push(Token{Kind: Operator, Op: '(', Pos: t.Pos}); err != nil {
				return nil, err
			}
		case BracketRight:
			for {
				top, err := stack.Pop(Operator)
				if err != nil {
					return nil, fail(MissingBracket, t)
				}
				if top.Op == '(' {
					break
				}
				out = append(out, top)
			}
			if fn, err := stack.Pop(Function); err == nil {
				out = append(out, fn)
			}
		case Deleted:
			// skip
		default:
			return nil, fail(UndefinedNode, t)
		}
	}
	// No sentinel. Treat the end of the slice the same way.
	return drain(stack, out)
}

// drain moves the frames left on the converter stack to the output and
// terminates it.
func drain(stack *Stack[Token], out []Token) ([]Token, error) {
	for {
		t, err := stack.PopAny()
		if err != nil {
			return append(out, Token{Kind: Empty}), nil
		}
		if t.Kind == Operator && t.Op == '(' {
			return nil, fail(MissingBracket, Token{Kind: BracketLeft, Pos: t.Pos})
		}
		out = append(out, t)
	}
}
