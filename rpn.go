package rpn

// precedence gets the precedence of an operator symbol. Higher is more
// binding. All operators are left-associative, including ^.
func precedence(sym byte) int {
	switch sym {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	default:
		panic("rpn: no precedence for " + string(rune(sym)))
	}
}

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Parentheses are not validated: a closing
// parenthesis with no match is dropped, and unclosed ones are left at the
// end of the result, where Evaluate ignores them.
func ToPostfix(tokens []Token) []Token {
	out, _ := lenient.toPostfix(tokens)
	return out
}

func (c *Calculator) toPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.kind {
		case KindNum, KindFunc:
			out = append(out, tok)
		case KindParen:
			if tok.open {
				stack = append(stack, tok)
				continue
			}
			for len(stack) > 0 && stack[len(stack)-1].kind == KindOp {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				if c.strict {
					return nil, &BracketError{Col: tok.pos}
				}
				continue
			}
			// Discard the matching open parenthesis.
			stack = stack[:len(stack)-1]
		case KindOp:
			p := precedence(tok.sym)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != KindOp || precedence(top.sym) < p {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("rpn: invalid token " + tok.String())
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if c.strict && stack[i].kind == KindParen {
			return nil, &BracketError{Col: stack[i].pos, Open: true}
		}
		out = append(out, stack[i])
	}
	return out, nil
}
