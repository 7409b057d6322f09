package rpn

import (
	"math"
	"testing"
)

func TestFuncsTable(t *testing.T) {
	for _, name := range []string{"log", "sqrt", "rt", "sin", "cos", "tg", "ctg"} {
		f, ok := funcs[name]
		if !ok {
			t.Errorf("no entry for %s", name)
			continue
		}
		want := 1
		if name == "log" || name == "rt" {
			want = 2
		}
		if f.arity != want {
			t.Errorf("%s has arity %d, want %d", name, f.arity, want)
		}
	}
	for name := range funcs {
		if !isFunc(name) {
			t.Errorf("tokenizer does not recognize %s", name)
		}
	}
	for _, name := range []string{"tg", "ctg"} {
		if funcs[name].eval != nil {
			t.Errorf("%s has an implementation", name)
		}
	}
}

func TestIntRoot(t *testing.T) {
	cases := []struct {
		n, x float64
		k    float64
		ok   bool
	}{
		{3, 8, 2, true},
		{3, 27, 3, true},
		{2, 2, 0, false},
		{5, 32, 2, true},
		{1, 7, 7, true},
		{0.5, 4, 0, false},
		{0, 4, 0, false},
		{3, -8, 0, false},
		{3, math.Inf(1), 0, false},
	}
	for _, c := range cases {
		k, ok := introot(c.n, c.x)
		if ok != c.ok || ok && k != c.k {
			t.Errorf("introot(%g, %g): want %g, %t; got %g, %t", c.n, c.x, c.k, c.ok, k, ok)
		}
	}
}

func TestPowable(t *testing.T) {
	cases := []struct {
		x, y float64
		ok   bool
	}{
		{2, 0.5, true},
		{10, 1.5, true},
		{0, 2, false},
		{-2, 2, false},
		{1, 5, false},
		{5, 0, false},
		{math.Inf(1), 2, false},
		{2, math.Inf(-1), false},
		{2, math.NaN(), false},
		{10, 400, false},
		{10, -400, false},
	}
	for _, c := range cases {
		if ok := powable(c.x, c.y); ok != c.ok {
			t.Errorf("powable(%g, %g): want %t, got %t", c.x, c.y, c.ok, ok)
		}
	}
}
