package rpncalc

// Option is an option used when creating a Calculator.
type Option interface {
	apply(*config)
}

// config holds the settings options modify.
type config struct {
	maxTokens int
	stackSize int
	maxVars   int
	vars      []varopt
}

type (
	tokensopt  int
	stackopt   int
	maxvarsopt int
	varopt     struct {
		name  string
		value float64
	}
	varsopt map[string]float64
)

// MaxTokens sets the maximum number of tokens in a line. Longer lines fail
// with TooManyTokens. Values below 1 restore the default.
func MaxTokens(n int) Option {
	return tokensopt(n)
}

func (o tokensopt) apply(c *config) {
	c.maxTokens = int(o)
	if c.maxTokens < 1 {
		c.maxTokens = DefaultMaxTokens
	}
}

// StackSize sets the capacity of the operator stack used in conversion and of
// the number stack used in evaluation. Expressions that need more fail with
// StackFull. Values below 1 restore the default.
func StackSize(n int) Option {
	return stackopt(n)
}

func (o stackopt) apply(c *config) {
	c.stackSize = int(o)
	if c.stackSize < 1 {
		c.stackSize = DefaultStackSize
	}
}

// MaxVars sets the capacity of the variable store. Values below 1 restore the
// default.
func MaxVars(n int) Option {
	return maxvarsopt(n)
}

func (o maxvarsopt) apply(c *config) {
	c.maxVars = int(o)
	if c.maxVars < 1 {
		c.maxVars = DefaultMaxVars
	}
}

// SetVar defines a variable in the new calculator's store. Definitions beyond
// the store's capacity (see MaxVars) are silently dropped; check Vars after New
// if that matters.
func SetVar(name string, value float64) Option {
	return varopt{name, value}
}

func (o varopt) apply(c *config) {
	c.vars = append(c.vars, o)
}

// SetVars defines any number of variables in the new calculator's store. They
// are added in sorted name order, and those that do not fit in the store are
// silently dropped, as with SetVar.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

func (o varsopt) apply(c *config) {
	names := make([]string, 0, len(o))
	for k := range o {
		names = append(names, k)
	}
	sortstrs(names)
	for _, k := range names {
		c.vars = append(c.vars, varopt{k, o[k]})
	}
}
