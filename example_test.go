package rpn_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/rpn"
)

func ExampleCompute() {
	fmt.Println(rpn.Compute("2+3*4"))
	fmt.Println(rpn.Compute("2^3^2"))
	fmt.Println(rpn.Compute("log(2, 8) + rt(3, 8)"))
	fmt.Println(rpn.Compute("tg(1)"))

	// Output:
	// 14
	// 64
	// 5
	// 0
}

func ExampleToPostfix() {
	tokens := rpn.Tokenize("(1 + 2) * sqrt(16) - 2^3")
	fmt.Println(rpn.Format(tokens))
	postfix := rpn.ToPostfix(tokens)
	fmt.Println(rpn.Format(postfix))
	fmt.Println(rpn.Evaluate(postfix))

	// Output:
	// ( 1 + 2 ) * sqrt(16) - 2 ^ 3
	// 1 | 2 + sqrt(16) * 2 | 3 ^ -
	// 4
}

func ExampleStrict() {
	c := rpn.New(rpn.Strict())
	_, err := c.Compute("sqrt(2 + x)")
	fmt.Println(err)
	var w *rpn.WordError
	if errors.As(err, &w) {
		fmt.Printf("%q\n", w.Word)
	}

	// Output:
	// 1: argument 1 of sqrt: 3: unknown word "x"
	// "x"
}
