package rpncalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"unicode"

	"github.com/zephyrtronium/bigfloat"
)

// logPrec is the precision in bits at which logarithms are computed before
// rounding to float64. It is high enough that log8(512) comes out as exactly 3.
const logPrec = 128

// function is a builtin function of one argument. If based, the name may
// carry a numeric suffix giving a base, which otherwise defaults to base.
type function struct {
	f     func(x, base float64) (float64, ErrorKind)
	based bool
	base  float64
}

var globalfuncs = map[string]function{
	"sqrt": {f: sqrt},
	"log":  {f: logb, based: true, base: 2},
	"exp":  {f: expb, based: true, base: 2},
}

// Funcs returns the names of the builtin functions.
func Funcs() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// splitName splits a function name into its letter prefix and the rest.
func splitName(name string) (string, string) {
	for i, r := range name {
		if !unicode.IsLetter(r) {
			return name[:i], name[i:]
		}
	}
	return name, ""
}

// call evaluates the function with the given name, which may carry a base
// suffix like log10, on x.
func call(name string, x float64) (float64, ErrorKind) {
	prefix, suffix := splitName(name)
	fn, ok := globalfuncs[prefix]
	if !ok {
		return 0, UndefinedFunction
	}
	base := fn.base
	if suffix != "" {
		if !fn.based || !decimal(suffix) {
			return 0, UndefinedFunction
		}
		b, err := strconv.ParseFloat(suffix, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, UndefinedFunction
		}
		base = b
	}
	return fn.f(x, base)
}

// decimal reports whether s is decimal digits with an optional fraction.
func decimal(s string) bool {
	digits, dot := 0, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits++
		case c == '.' && !dot && digits > 0:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

func sqrt(x, _ float64) (float64, ErrorKind) {
	if x < 0 || math.IsNaN(x) {
		return 0, FunctionDomain
	}
	return math.Sqrt(x), NoError
}

// logb computes the logarithm of x in the given base as ln(x)/ln(base).
func logb(x, base float64) (r float64, k ErrorKind) {
	switch {
	case math.IsNaN(x), math.IsNaN(base), x < 0, base <= 0:
		return 0, FunctionDomain
	case x == 0, base == 1, math.IsInf(x, 1):
		return 0, FunctionRange
	case math.IsInf(base, 1):
		return 0, NoError
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, _ := p.(error)
		if err == nil || !errors.As(err, &big.ErrNaN{}) {
			panic(p)
		}
		r, k = 0, FunctionDomain
	}()
	var lx, lb big.Float
	lx.SetPrec(logPrec).SetFloat64(x)
	lb.SetPrec(logPrec).SetFloat64(base)
	bigfloat.Log(&lx, &lx)
	bigfloat.Log(&lb, &lb)
	lx.Quo(&lx, &lb)
	r, _ = lx.Float64()
	if math.IsInf(r, 0) {
		return 0, FunctionRange
	}
	return r, NoError
}

// expb computes base raised to x. Note that with the default base this is
// 2^x, not e^x.
func expb(x, base float64) (float64, ErrorKind) {
	return pow(base, x, FunctionDomain, FunctionRange)
}

// pow computes b^a, classifying a NaN result as dom and a result from finite
// arguments that overflows to infinity or underflows to zero as rng.
func pow(b, a float64, dom, rng ErrorKind) (float64, ErrorKind) {
	r := math.Pow(b, a)
	switch {
	case math.IsNaN(r):
		return 0, dom
	case math.IsInf(b, 0), math.IsInf(a, 0):
		return r, NoError
	case math.IsInf(r, 0), r == 0 && b != 0:
		return 0, rng
	}
	return r, NoError
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
