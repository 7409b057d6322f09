package rpn

import (
	"errors"
	"strconv"
	"strings"
)

// argsep replaces the ", " separating the arguments of two-argument
// functions so that it survives the removal of spaces.
const argsep = "|"

// separators contains the words which are split from their neighbors
// regardless of spacing.
const separators = Operators + "()" + argsep

func isFunc(word string) bool {
	_, ok := funcs[word]
	return ok
}

// normalize splits an expression into words. Spaces are insignificant except
// in the argument separator ", ", and each separator is its own word. Other
// whitespace is not a separator; it stays inside its word.
func normalize(src string) []string {
	src = strings.ReplaceAll(src, ", ", argsep)
	src = strings.ReplaceAll(src, " ", "")
	var b strings.Builder
	b.Grow(len(src) * 2)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if strings.IndexByte(separators, c) >= 0 {
			b.WriteByte(' ')
			b.WriteByte(c)
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
	}
	// Empty fields between adjacent separators are dropped.
	return strings.FieldsFunc(b.String(), func(r rune) bool { return r == ' ' })
}

// call accumulates the arguments of a function call while the tokenizer is
// inside one.
type call struct {
	name     string
	pos      int
	second   bool
	args     [2]strings.Builder
	open     int
	close    int
	scanning bool
}

func (c *call) start(name string, pos int) {
	*c = call{name: name, pos: pos, scanning: true}
}

func (c *call) token() Token {
	return Call(c.name, c.args[0].String(), c.args[1].String()).at(c.pos)
}

// scan consumes one word of the call. It reports whether the word closed the
// call.
func (c *call) scan(word string) bool {
	switch word {
	case "(":
		c.open++
	case ")":
		c.close++
	}
	if c.open == c.close {
		return true
	}
	if word == argsep && c.open-c.close == 1 {
		c.second = true
		return false
	}
	if !c.second && word == "(" && c.open == 1 {
		// The call's own opening parenthesis.
		return false
	}
	if c.second {
		c.args[1].WriteString(word)
	} else {
		c.args[0].WriteString(word)
	}
	return false
}

// Tokenize splits an expression into tokens. Words which are not numbers,
// operators, parentheses, or function calls are skipped, as are function
// calls whose parentheses are never closed.
func Tokenize(src string) []Token {
	tokens, _ := lenient.tokenize(src)
	return tokens
}

func (c *Calculator) tokenize(src string) ([]Token, error) {
	words := normalize(src)
	tokens := make([]Token, 0, len(words))
	var fn call
	for i, word := range words {
		pos := i + 1
		if fn.scanning {
			if fn.scan(word) {
				tokens = append(tokens, fn.token())
				fn = call{}
			}
			continue
		}
		if isFunc(word) {
			fn.start(word, pos)
			continue
		}
		switch word {
		case "(":
			tokens = append(tokens, Paren(true).at(pos))
		case ")":
			tokens = append(tokens, Paren(false).at(pos))
		case "+", "-", "*", "/", "^":
			tokens = append(tokens, Op(word[0]).at(pos))
		default:
			v, ok := parseNum(word)
			if ok {
				tokens = append(tokens, Num(v).at(pos))
				continue
			}
			if c.strict {
				return nil, &WordError{Col: pos, Word: word}
			}
		}
	}
	if fn.scanning && c.strict {
		return nil, &BracketError{Col: len(words), Open: true, Func: fn.name}
	}
	return tokens, nil
}

// parseNum parses a floating-point literal. Surrounding whitespace is
// ignored, but whitespace within the literal makes it invalid. Literals too
// large to represent are infinities.
func parseNum(word string) (float64, bool) {
	word = strings.Trim(word, "\t\n\v\f\r ")
	v, err := strconv.ParseFloat(word, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
