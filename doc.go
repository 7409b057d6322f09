// Package rpn implements a floating-point calculator for arithmetic written
// as text.
//
// Expressions are evaluated in three stages. Tokenize splits the text into
// numbers, operators, parentheses, and function calls. ToPostfix reorders
// the tokens into Reverse Polish notation with the shunting-yard algorithm.
// Evaluate runs the postfix sequence on an operand stack. Function arguments
// are kept as text until the function is evaluated, at which point each
// argument goes through all three stages again.
//
// The operators are + - * / ^ with the usual precedence, except that ^ is
// left-associative like the others: "2^3^2" is "(2^3)^2". The functions
// are sqrt(x), sin(x), cos(x), log(b, x) for the base-b logarithm of x, and
// rt(n, x) for the nth root of x. The arguments of log and rt are separated
// by a comma followed by a space. The names tg and ctg are recognized but
// have no implementation yet; they evaluate to 0.
//
// By default the calculator is lenient. Words it does not understand are
// skipped, missing operands are read as 0, and unbalanced parentheses are
// handled as well as possible. A Calculator created with Strict reports
// each of those situations as an error instead. Division by zero and
// arguments outside a function's domain are never errors; they produce
// infinities and NaNs as IEEE 754 prescribes.
//
// Nesting depth is limited only by the goroutine stack.
//
package rpn
