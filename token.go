package rpn

import (
	"math"
	"strconv"
	"strings"
)

// Token is a single element of an expression. The Kind determines which of
// the accessor methods are meaningful; the others return zero values.
type Token struct {
	kind Kind
	num  float64
	// sym is the operator symbol for KindOp.
	sym byte
	// open is whether a KindParen is an opening parenthesis.
	open bool
	// name, first, and second describe a KindFunc call. The arguments are
	// unparsed expression text.
	name   string
	first  string
	second string
	// pos is the 1-based index of the word the token was scanned from, or 0
	// if the token was not produced by the tokenizer.
	pos int
}

// Kind is the kind of a token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNum is a number.
	KindNum
	// KindOp is a binary operator.
	KindOp
	// KindParen is an opening or closing parenthesis.
	KindParen
	// KindFunc is a function call with unparsed arguments.
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNum:
		return "Num"
	case KindOp:
		return "Op"
	case KindParen:
		return "Paren"
	case KindFunc:
		return "Func"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the symbols which are binary operators.
const Operators = "+-*/^"

// Num creates a number token.
func Num(v float64) Token {
	return Token{kind: KindNum, num: v}
}

// Op creates an operator token. Panics if sym is not one of Operators.
func Op(sym byte) Token {
	if strings.IndexByte(Operators, sym) < 0 {
		panic("rpn: invalid operator " + strconv.QuoteRune(rune(sym)))
	}
	return Token{kind: KindOp, sym: sym}
}

// Paren creates an opening or closing parenthesis token.
func Paren(open bool) Token {
	return Token{kind: KindParen, open: open}
}

// Call creates a function call token. second should be empty for functions
// of one argument.
func Call(name, first, second string) Token {
	return Token{kind: KindFunc, name: name, first: first, second: second}
}

// at returns a copy of t recording the word position it was scanned from.
func (t Token) at(pos int) Token {
	t.pos = pos
	return t
}

// Kind returns the token's kind.
func (t Token) Kind() Kind {
	return t.kind
}

// Value returns the value of a number token.
func (t Token) Value() float64 {
	return t.num
}

// Symbol returns the symbol of an operator token.
func (t Token) Symbol() byte {
	return t.sym
}

// Prec returns the precedence of an operator token. Higher binds tighter.
// The result for other kinds is 0.
func (t Token) Prec() int {
	if t.kind != KindOp {
		return 0
	}
	return precedence(t.sym)
}

// Opening returns whether a parenthesis token is an opening parenthesis.
func (t Token) Opening() bool {
	return t.open
}

// Name returns the function name of a call token.
func (t Token) Name() string {
	return t.name
}

// Args returns the unparsed argument text of a call token. second is empty
// unless the call had two arguments.
func (t Token) Args() (first, second string) {
	return t.first, t.second
}

// Pos returns the 1-based index of the word the token was scanned from among
// the words of its expression, or 0 if the token was constructed directly.
func (t Token) Pos() int {
	return t.pos
}

func (t Token) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t Token) fmt(b *strings.Builder) {
	switch t.kind {
	case KindNone:
		b.WriteByte('$')
	case KindNum:
		// Exponent signs and +Inf would scan as operators, so avoid them.
		if math.IsInf(t.num, 1) {
			b.WriteString("Inf")
		} else {
			b.WriteString(strconv.FormatFloat(t.num, 'f', -1, 64))
		}
	case KindOp:
		b.WriteByte(t.sym)
	case KindParen:
		if t.open {
			b.WriteByte('(')
		} else {
			b.WriteByte(')')
		}
	case KindFunc:
		b.WriteString(t.name)
		b.WriteByte('(')
		b.WriteString(t.first)
		if t.second != "" {
			b.WriteString(", ")
			b.WriteString(t.second)
		}
		b.WriteByte(')')
	default:
		panic("rpn: invalid token kind " + t.kind.String() + " after writing " + b.String())
	}
}

// Format renders a token sequence as text with one space between tokens.
// Adjacent operands would run together when tokenized again, so a number
// followed by a number or call is separated by an argument separator, which
// the tokenizer skips outside of calls. Formatting the result of Tokenize
// gives an expression that tokenizes to the same tokens, apart from the
// positions of words the tokenizer skipped.
func Format(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			if tokens[i-1].kind == KindNum && (t.kind == KindNum || t.kind == KindFunc) {
				b.WriteString(" " + argsep + " ")
			} else {
				b.WriteByte(' ')
			}
		}
		t.fmt(&b)
	}
	return b.String()
}
