package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/zephyrtronium/rpncalc"
)

func testopts() options {
	o := options{verb: "%g", quiet: true, errfmt: color.New(color.FgRed)}
	o.errfmt.DisableColor()
	return o
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts func(*options)
		out  string
	}{
		{
			name: "session",
			in:   "2 + 3 * 4\nx = 5\nx\n\nvars\n1/0\ny\n()\nquit\n9\n",
			out: "14\n5\nx = 5\n" +
				"Attempted to divide by zero! at column 2 (Err=DivideByZero)\n" +
				"Undefined variable found in input at column 1 (Err=UndefinedVariable)\n" +
				"Missing expression (Err=EmptyExpression)\n",
		},
		{
			name: "verb",
			in:   "1/4\na = 1/3\nvars",
			opts: func(o *options) { o.verb = "%.2f" },
			out:  "0.25\na = 0.33\n",
		},
		{
			name: "echo",
			in:   "1+2\nx=3\n1 $",
			opts: func(o *options) { o.echo = true },
			out:  "1 2 + : 3\nx = 3 : \nImproper character found in input at column 3 (Err=UndefinedCharacter)\n",
		},
		{
			name: "prompt",
			in:   "1+2\n",
			opts: func(o *options) { o.quiet = false },
			out:  banner + "\n" + prompt + "3\n" + prompt + "\n",
		},
		{
			name: "history",
			in:   "1+1\nvars\nx = 2\n\n1/0\nhistory\n",
			out: "2\n" +
				"Attempted to divide by zero! at column 2 (Err=DivideByZero)\n" +
				"   1  1+1\n   2  x = 2\n   3  1/0\n",
		},
		{
			name: "help",
			in:   " help \n",
			out:  banner + "\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := testopts()
			if c.opts != nil {
				c.opts(&o)
			}
			var out strings.Builder
			if err := run(rpncalc.New(), strings.NewReader(c.in), &out, o); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != c.out {
				t.Errorf("wrong output:\nwant %q\ngot  %q", c.out, got)
			}
		})
	}
}

func TestHistoryLimit(t *testing.T) {
	h := newHistory()
	for i := 0; i < histSize+5; i++ {
		h.add("x")
	}
	if h.lines.Len() != histSize {
		t.Fatalf("want %d entries, got %d", histSize, h.lines.Len())
	}
	var out strings.Builder
	h.print(&out)
	if !strings.HasPrefix(out.String(), "   6  x\n") {
		t.Errorf("oldest entries not dropped:\n%s", out.String())
	}
	if h.lines.Len() != histSize {
		t.Errorf("print changed the history length to %d", h.lines.Len())
	}
}

func TestReport(t *testing.T) {
	cases := []struct {
		name string
		err  error
		out  string
	}{
		{"positioned", &rpncalc.Error{Kind: rpncalc.DivideByZero, Col: 4, Text: "/"}, "Attempted to divide by zero! at column 4 (Err=DivideByZero)\n"},
		{"unpositioned", &rpncalc.Error{Kind: rpncalc.EmptyExpression}, "Missing expression (Err=EmptyExpression)\n"},
		{"bare-kind", rpncalc.NoFreeSpace, "Maximum number of variables exceeded (Err=NoFreeSpace)\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out strings.Builder
			report(&out, testopts().errfmt, c.err)
			if got := out.String(); got != c.out {
				t.Errorf("want %q, got %q", c.out, got)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	unknown := message(rpncalc.NoError)
	for k := rpncalc.UndefinedCharacter; k <= rpncalc.InvalidType; k++ {
		if message(k) == unknown {
			t.Errorf("no message for %v", k)
		}
	}
}
