package rpncalc

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Tokenize(src, 0)
	if err != nil {
		t.Fatalf("tokenizing %q: %v", src, err)
	}
	return toks
}

func TestCheckEquals(t *testing.T) {
	cases := []struct {
		src  string
		kind ErrorKind
	}{
		{"", NoError},
		{"x", NoError},
		{"x=1", NoError},
		{"x = 1 + y", NoError},
		{"=1", InvalidEquals},
		{"=", InvalidEquals},
		{"1=2", InvalidEquals},
		{"(=2", InvalidEquals},
		{"x==1", InvalidEquals},
		{"x=y=1", InvalidEquals},
		{"2+x=1", InvalidEquals},
		{"1+2=", InvalidEquals},
	}
	for _, c := range cases {
		err := CheckEquals(mustTokenize(t, c.src))
		if k := KindOf(err); k != c.kind {
			t.Errorf("%q: want %v, got %v", c.src, c.kind, err)
		}
	}
}

func TestCheckBrackets(t *testing.T) {
	cases := []struct {
		src  string
		kind ErrorKind
		col  int
	}{
		{"", NoError, 0},
		{"()", NoError, 0},
		{"(1)", NoError, 0},
		{"((1)*(2))", NoError, 0},
		{"(((((x)))))", NoError, 0},
		{")", TooManyCloseBrackets, 1},
		{")(", TooManyCloseBrackets, 1},
		{"(1))", TooManyCloseBrackets, 4},
		{"(1))(", TooManyCloseBrackets, 4},
		{"(", TooManyOpenBrackets, 1},
		{"((1)", TooManyOpenBrackets, 1},
		{"(1)(", TooManyOpenBrackets, 4},
	}
	for _, c := range cases {
		err := CheckBrackets(mustTokenize(t, c.src))
		if k := KindOf(err); k != c.kind {
			t.Errorf("%q: want %v, got %v", c.src, c.kind, err)
			continue
		}
		if err != nil && err.(*Error).Col != c.col {
			t.Errorf("%q: want column %d, got %v", c.src, c.col, err)
		}
	}
}

// balanced generates a random well-nested bracket string with n pairs.
func balanced(rng *rand.Rand, n int) string {
	var b strings.Builder
	open, left := 0, n
	for left > 0 || open > 0 {
		if left > 0 && (open == 0 || rng.Intn(2) == 0) {
			b.WriteByte('(')
			open++
			left--
		} else {
			b.WriteByte(')')
			open--
		}
	}
	return b.String()
}

func TestCheckBracketsBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := balanced(rng, rng.Intn(30))
		if err := CheckBrackets(mustTokenize(t, s)); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if err := CheckBrackets(mustTokenize(t, s+")")); !errors.Is(err, TooManyCloseBrackets) {
			t.Fatalf("%q: want TooManyCloseBrackets, got %v", s+")", err)
		}
		if err := CheckBrackets(mustTokenize(t, "("+s)); !errors.Is(err, TooManyOpenBrackets) {
			t.Fatalf("%q: want TooManyOpenBrackets, got %v", "("+s, err)
		}
	}
}

func TestValidateOrder(t *testing.T) {
	// Equals are checked before brackets.
	err := Validate(mustTokenize(t, "=("))
	if !errors.Is(err, InvalidEquals) {
		t.Errorf("want InvalidEquals, got %v", err)
	}
	err = Validate(mustTokenize(t, "x=(1"))
	if !errors.Is(err, TooManyOpenBrackets) {
		t.Errorf("want TooManyOpenBrackets, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"neg-start", "-3", "-3"},
		{"sub", "2-3", "2 - 3"},
		{"sub-nospace", "2 -3", "2 - 3"},
		{"neg-after-op", "2*-3", "2 * -3"},
		{"neg-after-bracket", "(-3)", "( -3 )"},
		{"neg-after-equals", "x=-3", "x = -3"},
		{"sub-after-var", "x-3", "x - 3"},
		{"sub-after-bracket", "(1)-3", "( 1 ) - 3"},
		{"neg-neg", "--3", "- -3"},
		{"neg-var", "-x", "- x"},
		{"pow", "2**3", "2 ^ 3"},
		{"pow-neg", "2**-3", "2 ^ -3"},
		{"caret-neg", "2^-1", "2 ^ -1"},
		{"func", "sqrt(4)", "sqrt ( 4 )"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks := mustTokenize(t, c.src)
			Normalize(toks)
			if got := FormatTokens(toks); got != c.want {
				t.Errorf("%q normalized to %q, want %q", c.src, got, c.want)
			}
			if toks[len(toks)-1].Kind != Empty {
				t.Errorf("%q lost its sentinel", c.src)
			}
		})
	}
}

func TestNormalizeKinds(t *testing.T) {
	toks := mustTokenize(t, "-2 ** f(x) - y")
	Normalize(toks)
	want := []Kind{Deleted, Number, Deleted, Operator, Function, BracketLeft, Variable, BracketRight, Operator, Variable, Empty}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %v", len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: want %v, got %v", i, k, toks[i])
		}
	}
	if toks[1].Num != -2 {
		t.Errorf("unary minus not folded: %v", toks[1])
	}
	if toks[3].Op != '^' {
		t.Errorf("** not collapsed: %v", toks[3])
	}
}
