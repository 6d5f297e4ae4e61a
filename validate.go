package rpncalc

// Validate checks an infix sequence for misplaced equals signs and then for
// unbalanced brackets, returning the first failure.
func Validate(toks []Token) error {
	if err := CheckEquals(toks); err != nil {
		return err
	}
	return CheckBrackets(toks)
}

// CheckEquals checks that an equals sign appears at most once, and only as the
// second token following a variable name. The error kind is InvalidEquals.
func CheckEquals(toks []Token) error {
	if t := at(toks, 0); t.Kind == Equals {
		return fail(InvalidEquals, t)
	}
	if t := at(toks, 1); t.Kind == Equals && at(toks, 0).Kind != Variable {
		return fail(InvalidEquals, t)
	}
	for i := 2; i < len(toks) && toks[i].Kind != Empty; i++ {
		if toks[i].Kind == Equals {
			return fail(InvalidEquals, toks[i])
		}
	}
	return nil
}

// CheckBrackets checks that brackets are balanced. A close bracket without an
// open bracket fails immediately with TooManyCloseBrackets; open brackets left
// at the end fail with TooManyOpenBrackets, positioned at the last unmatched
// one.
func CheckBrackets(toks []Token) error {
	var open []int
	for _, t := range toks {
		switch t.Kind {
		case Empty:
			if len(open) != 0 {
				return &Error{Kind: TooManyOpenBrackets, Col: open[len(open)-1], Text: "("}
			}
			return nil
		case BracketLeft:
			open = append(open, t.Pos)
		case BracketRight:
			if len(open) == 0 {
				return fail(TooManyCloseBrackets, t)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &Error{Kind: TooManyOpenBrackets, Col: open[len(open)-1], Text: "("}
	}
	return nil
}

// Normalize rewrites syntactic sugar in a validated infix sequence in place:
//
//   - A - used as unary minus directly before a number is folded into the
//     number's sign. It is unary at the start of the sequence or after an
//     operator, open bracket, or equals sign.
//   - ** becomes ^.
//   - A variable followed by an open bracket becomes a function.
//
// Removed tokens are marked Deleted rather than compacted away.
func Normalize(toks []Token) {
	prev := Empty
	for i := 0; i < len(toks) && toks[i].Kind != Empty; i++ {
		t := &toks[i]
		switch {
		case t.Kind == Operator && t.Op == '-' && at(toks, i+1).Kind == Number && unaryAfter(prev):
			toks[i+1].Num = -toks[i+1].Num
			toks[i+1].Pos = t.Pos
			t.Kind = Deleted
		case t.Kind == Operator && t.Op == '*' && i > 0 && toks[i-1].Kind == Operator && toks[i-1].Op == '*':
			t.Op = '^'
			t.Pos = toks[i-1].Pos
			toks[i-1].Kind = Deleted
		case t.Kind == Variable && at(toks, i+1).Kind == BracketLeft:
			t.Kind = Function
		}
		if t.Kind != Deleted {
			prev = t.Kind
		}
	}
}

// unaryAfter reports whether a minus sign following a token of kind prev is a
// unary minus. Empty means the minus starts the sequence.
func unaryAfter(prev Kind) bool {
	switch prev {
	case Empty, Operator, BracketLeft, Equals:
		return true
	}
	return false
}
