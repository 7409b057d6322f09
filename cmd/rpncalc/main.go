package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		strict, echo bool
		prec         uint
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&strict, "strict", false, "report errors instead of skipping unknown input")
	flag.UintVar(&prec, "p", 0, "precision in bits of powers, logarithms, and roots (0 for float64)")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.Parse()

	opts := []rpn.Option{rpn.Prec(prec)}
	if strict {
		opts = append(opts, rpn.Strict())
	}
	calc := rpn.New(opts...)

	var exprs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		lines, err := readLines(f)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, lines...)
	}
	exprs = append(exprs, flag.Args()...)

	verb += "\n"
	for _, src := range exprs {
		if echo {
			tokens, err := calc.Tokenize(src)
			if err == nil {
				tokens, err = calc.ToPostfix(tokens)
			}
			if err == nil {
				fmt.Printf("%s : ", rpn.Format(tokens))
			}
		}
		r, err := calc.Compute(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if line := scan.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, scan.Err()
}
