package rpn

// Calculator evaluates expressions with a set of options. A Calculator is
// never modified after creation, so it is safe to use concurrently.
type Calculator struct {
	strict bool
	prec   uint
}

// lenient is the calculator used by the package-level functions.
var lenient = &Calculator{}

// Option is an option used when creating a calculator.
type Option interface {
	calcOption()
}

type (
	strictopt struct{}
	precopt   uint
)

func (strictopt) calcOption() {}
func (precopt) calcOption()   {}

// Strict causes the calculator to return errors for input that it would
// otherwise handle leniently: unknown words, unbalanced parentheses,
// operators missing operands, expressions leaving several values, calls with
// the wrong number of arguments, and functions without implementations.
func Strict() Option {
	return strictopt{}
}

// Prec sets the precision in bits used for exponentiation, logarithms, and
// roots. Results are computed at that precision and then rounded to the
// nearest float64. A precision of 0, the default, uses float64 throughout.
func Prec(bits uint) Option {
	return precopt(bits)
}

// New creates a calculator. Later options override earlier ones.
func New(opts ...Option) *Calculator {
	var c Calculator
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case strictopt:
			c.strict = true
		case precopt:
			c.prec = uint(opt)
		default:
			panic("rpn: unknown option type")
		}
	}
	return &c
}

// IsStrict returns whether the calculator reports errors for lenient input.
func (c *Calculator) IsStrict() bool {
	return c.strict
}

// Prec returns the precision used for exponentiation, logarithms, and roots,
// or 0 if they use float64.
func (c *Calculator) Prec() uint {
	return c.prec
}

// Tokenize splits an expression into tokens. The error is always nil unless
// the calculator is strict.
func (c *Calculator) Tokenize(src string) ([]Token, error) {
	return c.tokenize(src)
}

// ToPostfix reorders infix tokens into postfix order. The error is always nil
// unless the calculator is strict.
func (c *Calculator) ToPostfix(tokens []Token) ([]Token, error) {
	return c.toPostfix(tokens)
}

// Evaluate computes the value of a postfix token sequence. The error is
// always nil unless the calculator is strict.
func (c *Calculator) Evaluate(postfix []Token) (float64, error) {
	return c.evaluate(postfix)
}

// Compute tokenizes, converts, and evaluates an expression. The error is
// always nil unless the calculator is strict.
func (c *Calculator) Compute(src string) (float64, error) {
	tokens, err := c.tokenize(src)
	if err != nil {
		return 0, err
	}
	postfix, err := c.toPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return c.evaluate(postfix)
}

// Evaluate computes the value of a postfix token sequence. Operators missing
// operands use 0 in their place. The result is the last value computed, or 0
// if there is none.
func Evaluate(postfix []Token) float64 {
	r, _ := lenient.evaluate(postfix)
	return r
}

// Compute is a shortcut to tokenize, convert, and evaluate an expression.
func Compute(src string) float64 {
	r, _ := lenient.Compute(src)
	return r
}

func (c *Calculator) evaluate(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		switch tok.kind {
		case KindNum:
			stack = append(stack, tok.num)
		case KindFunc:
			r, err := c.call(tok)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)
		case KindOp:
			if c.strict && len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Op: string(tok.sym), Have: len(stack)}
			}
			var first, second float64
			if n := len(stack); n > 0 {
				second = stack[n-1]
				stack = stack[:n-1]
			}
			if n := len(stack); n > 0 {
				first = stack[n-1]
				stack = stack[:n-1]
			}
			stack = append(stack, c.apply(tok.sym, first, second))
		case KindParen:
			// Only unbalanced input leaves parentheses in postfix order.
			if c.strict {
				return 0, &BracketError{Col: tok.pos, Open: tok.open}
			}
		default:
			panic("rpn: invalid token " + tok.String())
		}
	}
	switch {
	case len(stack) == 0:
		return 0, nil
	case len(stack) > 1 && c.strict:
		return 0, &OperandError{Have: len(stack)}
	}
	return stack[len(stack)-1], nil
}

// apply computes the result of a binary operator.
func (c *Calculator) apply(sym byte, first, second float64) float64 {
	switch sym {
	case '+':
		return first + second
	case '-':
		return first - second
	case '*':
		return first * second
	case '/':
		return first / second
	case '^':
		return c.pow(first, second)
	default:
		panic("rpn: invalid operator " + string(rune(sym)))
	}
}

// call evaluates a function call token. Each argument is computed as an
// expression of its own.
func (c *Calculator) call(tok Token) (float64, error) {
	f, ok := funcs[tok.name]
	if !ok {
		// Only calls constructed outside the tokenizer can have other names.
		if c.strict {
			return 0, &FuncError{Col: tok.pos, Func: tok.name}
		}
		return 0, nil
	}
	if c.strict {
		n := 0
		switch {
		case tok.second != "":
			n = 2
		case tok.first != "":
			n = 1
		}
		if n != f.arity {
			return 0, &CallError{Col: tok.pos, Func: tok.name, Len: n}
		}
	}
	x, err := c.arg(tok, 1, tok.first)
	if err != nil {
		return 0, err
	}
	var y float64
	if tok.second != "" {
		y, err = c.arg(tok, 2, tok.second)
		if err != nil {
			return 0, err
		}
	}
	if f.eval == nil {
		if c.strict {
			return 0, &FuncError{Col: tok.pos, Func: tok.name}
		}
		return 0, nil
	}
	return f.eval(c, x, y), nil
}

func (c *Calculator) arg(tok Token, k int, src string) (float64, error) {
	r, err := c.Compute(src)
	if err != nil {
		return 0, &ArgError{Col: tok.pos, Func: tok.name, Arg: k, Err: err}
	}
	return r, nil
}
