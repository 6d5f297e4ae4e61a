package rpncalc

import (
	"strconv"
	"strings"
)

// Token is one classified unit of an expression. The same type is used for
// infix and RPN sequences. Which fields are meaningful depends on Kind:
// Number uses Num, Operator uses Op, and Function and Variable use Name.
type Token struct {
	Kind Kind
	Num  float64
	Op   byte
	Name string
	// Pos is the 1-based column of the token in the input line.
	Pos int
}

// Kind is the variant of a Token or stack frame.
type Kind int8

const (
	// Empty terminates every token sequence.
	Empty Kind = iota

	Number       // Num
	Operator     // Op is one of + - * / ^, or ( on the converter stack
	BracketLeft  // (
	BracketRight // )
	Function     // Name is the function name including any base suffix
	Variable     // Name is the variable name
	Equals       // =

	// Deleted marks a token removed during normalization. Every consumer
	// skips it.
	Deleted
)

var kindstrs = [...]string{
	Empty:        "Empty",
	Number:       "Number",
	Operator:     "Operator",
	BracketLeft:  "BracketLeft",
	BracketRight: "BracketRight",
	Function:     "Function",
	Variable:     "Variable",
	Equals:       "Equals",
	Deleted:      "Deleted",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindstrs) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindstrs[k]
}

// Variant returns the token's kind. It makes Token usable as a stack frame.
func (t Token) Variant() Kind {
	return t.Kind
}

// NumberToken creates a Number token.
func NumberToken(x float64) Token {
	return Token{Kind: Number, Num: x}
}

// OperatorToken creates an Operator token.
func OperatorToken(op byte) Token {
	return Token{Kind: Operator, Op: op}
}

// FunctionToken creates a Function token.
func FunctionToken(name string) Token {
	return Token{Kind: Function, Name: name}
}

// text is the source form of the token.
func (t Token) text() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case Operator:
		return string(t.Op)
	case BracketLeft:
		return "("
	case BracketRight:
		return ")"
	case Function, Variable:
		return t.Name
	case Equals:
		return "="
	default:
		return ""
	}
}

// String formats the token for debugging, e.g. Number:3@5.
func (t Token) String() string {
	return t.Kind.String() + ":" + t.text() + "@" + strconv.Itoa(t.Pos)
}

// FormatTokens writes a token sequence in source form separated by spaces,
// stopping at the Empty sentinel and skipping Deleted tokens. An RPN sequence
// formats as e.g. "2 3 4 * +".
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.Kind == Empty {
			break
		}
		if t.Kind == Deleted {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.text())
	}
	return b.String()
}

// at returns the token at i, or the Empty sentinel past the end of toks. It
// lets lookahead read beyond a sequence the way the sentinel allows.
func at(toks []Token, i int) Token {
	if i < 0 || i >= len(toks) {
		return Token{}
	}
	return toks[i]
}
