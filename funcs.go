package rpn

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// function is a function of one or two reals.
type function struct {
	// arity is the number of arguments the function takes.
	arity int
	// eval computes the function. y is 0 for functions of one argument. eval
	// is nil for functions without an implementation.
	eval func(c *Calculator, x, y float64) float64
}

var funcs = map[string]function{
	"sqrt": {1, monadic(math.Sqrt)},
	"sin":  {1, monadic(math.Sin)},
	"cos":  {1, monadic(math.Cos)},
	"log":  {2, (*Calculator).log},
	"rt":   {2, (*Calculator).root},

	// tangent and cotangent, not yet implemented
	"tg":  {1, nil},
	"ctg": {1, nil},
}

func monadic(f func(float64) float64) func(*Calculator, float64, float64) float64 {
	return func(_ *Calculator, x, _ float64) float64 {
		return f(x)
	}
}

// big converts x to a big.Float at the calculator's precision.
func (c *Calculator) big(x float64) *big.Float {
	return new(big.Float).SetPrec(c.prec).SetFloat64(x)
}

// pow computes x^y.
func (c *Calculator) pow(x, y float64) float64 {
	if c.prec == 0 || !powable(x, y) {
		return math.Pow(x, y)
	}
	r := new(big.Float).SetPrec(c.prec)
	bigfloat.Pow(r, c.big(x), c.big(y))
	f, _ := r.Float64()
	return f
}

// powable reports whether x^y should be computed in extended precision.
// Negative bases, non-finite arguments, and trivial cases are left to
// math.Pow, which is exact for them.
func powable(x, y float64) bool {
	if !(x > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(y) {
		return false
	}
	if x == 1 || y == 0 {
		return false
	}
	// Results far outside the float64 range overflow or underflow anyway.
	return math.Abs(y*math.Log2(x)) < 1100
}

// log computes the base-b logarithm of x.
func (c *Calculator) log(b, x float64) float64 {
	// There is no useful base 1, 0, or +Inf. Only log_b(1) is defined for
	// the latter two.
	if b == 1 || x != 1 && (b == 0 || math.IsInf(b, 1)) {
		return math.NaN()
	}
	if c.prec == 0 || !(b > 0 && x > 0) || math.IsInf(b, 0) || math.IsInf(x, 0) {
		return math.Log(x) / math.Log(b)
	}
	lx, lb := c.big(x), c.big(b)
	bigfloat.Log(lx, lx)
	bigfloat.Log(lb, lb)
	f, _ := lx.Quo(lx, lb).Float64()
	return f
}

// root computes the nth root of x as x^(1/n).
func (c *Calculator) root(n, x float64) float64 {
	if k, ok := introot(n, x); ok {
		return k
	}
	if c.prec == 0 || n == 0 || math.IsNaN(n) || !powable(x, 1/n) {
		return math.Pow(x, 1/n)
	}
	inv := c.big(1)
	inv.Quo(inv, c.big(n))
	r := new(big.Float).SetPrec(c.prec)
	bigfloat.Pow(r, c.big(x), inv)
	f, _ := r.Float64()
	return f
}

// introot checks whether the nth root of x is exactly an integer for integer
// n and returns the root if so.
func introot(n, x float64) (float64, bool) {
	if n < 1 || n != math.Trunc(n) || math.IsInf(n, 0) || math.IsInf(x, 0) {
		return 0, false
	}
	k := math.Round(math.Pow(x, 1/n))
	if math.IsNaN(k) || math.Pow(k, n) != x {
		return 0, false
	}
	return k, true
}
