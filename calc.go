package rpncalc

// OutcomeKind tells how a successful line should be reported.
type OutcomeKind int8

const (
	// Printed is the outcome of an expression without assignment. The caller
	// displays the value.
	Printed OutcomeKind = iota
	// Assigned is the outcome of name = expr. The store already holds the
	// value.
	Assigned
)

func (k OutcomeKind) String() string {
	switch k {
	case Printed:
		return "Printed"
	case Assigned:
		return "Assigned"
	default:
		return "OutcomeKind(?)"
	}
}

// Outcome is the result of evaluating a line.
type Outcome struct {
	Kind  OutcomeKind
	Value float64
	// Name is the assigned variable if Kind is Assigned.
	Name string
}

// Calculator is an evaluation session. It owns the variable store and the
// limits used for every line. Evaluate may be called from multiple
// goroutines; each call runs synchronously to completion.
type Calculator struct {
	vars      *Store
	maxTokens int
	stackSize int
}

// New creates a calculator. Options are applied in order.
func New(opts ...Option) *Calculator {
	c := config{
		maxTokens: DefaultMaxTokens,
		stackSize: DefaultStackSize,
		maxVars:   DefaultMaxVars,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&c)
		}
	}
	calc := Calculator{
		vars:      NewStore(c.maxVars),
		maxTokens: c.maxTokens,
		stackSize: c.stackSize,
	}
	for _, v := range c.vars {
		// Predefinitions beyond the capacity are dropped, like any assignment
		// to a full store.
		calc.vars.Set(v.name, v.value)
	}
	return &calc
}

// Vars returns the calculator's variable store.
func (c *Calculator) Vars() *Store {
	return c.vars
}

// Program is a line converted to RPN and ready to evaluate.
type Program struct {
	rpn    []Token
	target string
}

// RPN returns a copy of the program's RPN sequence, terminated by Empty.
func (p *Program) RPN() []Token {
	return append([]Token(nil), p.rpn...)
}

// Target returns the variable the program assigns, or the empty string.
func (p *Program) Target() string {
	return p.target
}

// String formats the program in RPN, e.g. "x = 2 3 +".
func (p *Program) String() string {
	s := FormatTokens(p.rpn)
	if p.target != "" {
		return p.target + " = " + s
	}
	return s
}

// Compile tokenizes, validates, normalizes, and converts a line to RPN.
// Variables in the expression are resolved now, so the program keeps their
// current values.
func (c *Calculator) Compile(line string) (*Program, error) {
	toks, err := Tokenize(line, c.maxTokens)
	if err != nil {
		return nil, err
	}
	if toks[0].Kind == Empty {
		return nil, &Error{Kind: EmptyExpression}
	}
	if err := Validate(toks); err != nil {
		return nil, err
	}
	Normalize(toks)
	var p Program
	expr := toks
	if at(toks, 1).Kind == Equals {
		p.target = toks[0].Name
		expr = toks[2:]
		if expr[0].Kind == Empty {
			return nil, &Error{Kind: EmptyExpression, Col: toks[1].Pos, Text: "="}
		}
	}
	p.rpn, err = ToRPN(expr, c.vars, c.stackSize)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Run evaluates a compiled program and stores the result if it is an
// assignment.
func (c *Calculator) Run(p *Program) (Outcome, error) {
	r, err := EvalRPN(p.rpn, c.stackSize)
	if err != nil {
		return Outcome{}, err
	}
	if p.target == "" {
		return Outcome{Kind: Printed, Value: r}, nil
	}
	if err := c.vars.Set(p.target, r); err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: Assigned, Value: r, Name: p.target}, nil
}

// Evaluate evaluates one line: an expression, or name = expression. Any
// failure leaves the store unchanged; KindOf(err) classifies it.
func (c *Calculator) Evaluate(line string) (Outcome, error) {
	p, err := c.Compile(line)
	if err != nil {
		return Outcome{}, err
	}
	return c.Run(p)
}

// EvalString is a shortcut to evaluate an expression in a new calculator.
func EvalString(line string, opts ...Option) (float64, error) {
	o, err := New(opts...).Evaluate(line)
	return o.Value, err
}
