package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/zephyrtronium/rpncalc"
)

const usage = `usage: rpncalc [-eqCh] [-f fmt] [-i file] [-g name=value]... [expr...]

  -f fmt         result formatting verb (default %g)
  -i file        read lines from file instead of stdin ("-" for stdin)
  -g name=value  define a variable before reading input (any number of times)
  -e             print each line in RPN before its result
  -q             quiet: no banner or prompt
  -C             disable colored error messages
  -h             show this help

With expression arguments and no -i, evaluates the arguments and exits.`

const banner = `               rpncalc
<-- Type an expression to get its result      -->
<-- Functions: sqrt, logN, expN               -->
<--   where N is an optional base (default 2) -->
<-- Commands: vars, history, help, quit       -->`

const prompt = "$ "

type options struct {
	verb   string
	echo   bool
	quiet  bool
	errfmt *color.Color
}

func main() {
	log.SetFlags(0)
	var (
		inname string
		with   [][2]string
	)
	o := options{
		verb:   "%g",
		errfmt: color.New(color.FgRed, color.Bold, color.Underline),
	}
	opts, optind, err := getopt.Getopts(os.Args, "f:i:g:eqCh")
	if err != nil {
		log.Fatalln(err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'f':
			o.verb = opt.Value
		case 'i':
			inname = opt.Value
		case 'g':
			d := strings.SplitN(opt.Value, "=", 2)
			if len(d) != 2 {
				log.Fatalf(`variable definitions must be "name=value", not %q`, opt.Value)
			}
			with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		case 'e':
			o.echo = true
		case 'q':
			o.quiet = true
		case 'C':
			o.errfmt.DisableColor()
		case 'h':
			os.Stdout.WriteString(usage + "\n")
			return
		}
	}
	args := os.Args[optind:]

	calc := rpncalc.New()
	for _, d := range with {
		// Definitions are themselves expressions so they can refer to earlier
		// ones, e.g. -g r=2 -g d=2*r.
		if _, err := calc.Evaluate(d[0] + "=" + d[1]); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}

	if len(args) > 0 && inname == "" {
		o.quiet = true
		if err := run(calc, strings.NewReader(strings.Join(args, "\n")), os.Stdout, o); err != nil {
			log.Fatal(err)
		}
		return
	}
	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()
	if err := run(calc, in, os.Stdout, o); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string) (io.ReadCloser, error) {
	if inname == "" || inname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inname)
}

// run reads lines from in and evaluates each one until EOF or quit. Errors in
// lines are reported to out; the result is only non-nil if reading fails.
func run(calc *rpncalc.Calculator, in io.Reader, out io.Writer, o options) error {
	if !o.quiet {
		fmt.Fprintln(out, banner)
	}
	verb := o.verb + "\n"
	hist := newHistory()
	scan := bufio.NewScanner(in)
	scan.Buffer(nil, 1<<20)
	for {
		if !o.quiet {
			fmt.Fprint(out, prompt)
		}
		if !scan.Scan() {
			if !o.quiet {
				fmt.Fprintln(out)
			}
			return scan.Err()
		}
		line := scan.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "quit":
			return nil
		case "help":
			fmt.Fprintln(out, banner)
			continue
		case "vars":
			printVars(out, calc.Vars(), verb)
			continue
		case "history":
			hist.print(out)
			continue
		}
		hist.add(line)
		p, err := calc.Compile(line)
		if err != nil {
			report(out, o.errfmt, err)
			continue
		}
		if o.echo {
			fmt.Fprintf(out, "%v : ", p)
		}
		r, err := calc.Run(p)
		if err != nil {
			report(out, o.errfmt, err)
			continue
		}
		switch r.Kind {
		case rpncalc.Printed:
			fmt.Fprintf(out, verb, r.Value)
		case rpncalc.Assigned:
			if o.echo {
				fmt.Fprintln(out)
			}
		}
	}
}

func printVars(out io.Writer, vars *rpncalc.Store, verb string) {
	for _, name := range vars.Names() {
		v, err := vars.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "%s = "+verb, name, v)
	}
}

// report writes the message for an evaluation error.
func report(out io.Writer, errfmt *color.Color, err error) {
	k := rpncalc.KindOf(err)
	msg := message(k)
	var ie rpncalc.InputError
	if errors.As(err, &ie) && ie.Pos() > 0 {
		msg += " at column " + strconv.Itoa(ie.Pos())
	}
	errfmt.Fprintf(out, "%s (Err=%s)", msg, k.String())
	fmt.Fprintln(out)
}
