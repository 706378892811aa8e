package scicalc_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/scicalc"
)

// same reports whether a and b are the same float64, treating all NaNs as
// equal to each other.
func same(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

func TestSolve(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"real", "3.5", 3.5},
		{"neg", "-2", -2},
		{"spaces", "  1 +\t2\n", 3},
		{"pi", "pi", math.Pi},
		{"pi-alt", "π", math.Pi},
		{"e", "e", math.E},
		{"inf", "inf", math.Inf(1)},
		{"inf-alt", "∞", math.Inf(1)},
		{"ninf", "ninf", math.Inf(-1)},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"sub-assoc", "8-3-2", 3},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"mod", "10%3", 1},
		{"mod-neg", "-7%3", -1},
		{"mod-real", "7.5 mod 2", 1.5},
		{"pow", "2^10", 1024},
		{"pow-assoc", "2^3^2", 64},
		{"pow-neg-exp", "2^-1", 0.5},
		{"prec", "2+3*4", 14},
		{"prec-parens", "2+(3*4)", 14},
		{"parens", "(2+3)*4", 20},
		{"prec-pow", "2*3^2", 18},
		{"prec-all", "1+2*3^2-4/2", 1 + 2*9 - 4.0/2},
		{"nested", "((((1))))", 1},
		{"nested-ops", "((1+2)*(3+4))^2", 441},
		{"word-add", "2 add 3", 5},
		{"word-minus", "5 minus 2", 3},
		{"word-times", "2 times 3", 6},
		{"word-x", "2x3", 6},
		{"word-divide", "6 divide 4", 1.5},
		{"word-mod", "7 mod 4", 3},
		{"word-pow", "2 pow 10", 1024},
		{"times-alt", "6×7", 42},
		{"divide-alt", "8÷2", 4},
		{"sub-after-close", "(1+2)-3", 0},
		{"sub-after-const", "pi-pi", 0},
		{"sign-after-op", "2*-3", -6},
		{"sign-after-sub", "2 - -3", 5},
		{"sign-packed", "2--3", 5},
		{"sqrt", "sqrt(16)", 4},
		{"abs", "abs(-5)", 5},
		{"chain-parens", "sqrt(abs(-16))", 4},
		{"chain-bare", "sqrt abs -16", 4},
		{"func-binds-term", "sqrt 16 + 9", 13},
		{"func-group", "sqrt(16 + 9)", 5},
		{"func-after-op", "1 + sqrt 4", 3},
		{"func-sign", "abs -3 * 2", 6},
		{"log", "log 1000", math.Log10(1000)},
		{"ln", "ln e", math.Log(math.E)},
		{"sin", "sin 0", 0},
		{"cos", "cos 0", 1},
		{"tan", "tan(pi/4)", math.Tan(math.Pi / 4)},
		{"asin", "asin 1", math.Asin(1)},
		{"arcsin", "arcsin 1", math.Asin(1)},
		{"acos", "arccos 0", math.Acos(0)},
		{"atan", "arctan 1", math.Atan(1)},
		{"sinh", "sinh 1", math.Sinh(1)},
		{"cosh", "cosh 1", math.Cosh(1)},
		{"tanh", "tanh 1", math.Tanh(1)},
		{"asinh", "asinh 1", math.Asinh(1)},
		{"acosh", "acosh 2", math.Acosh(2)},
		{"atanh", "atanh 0.5", math.Atanh(0.5)},
		{"sinh-not-sin", "sinh(0)+1", 1},
		{"sqrt-neg", "sqrt(-4)", math.NaN()},
		{"div-zero", "1/0", math.Inf(1)},
		{"div-zero-neg", "-1/0", math.Inf(-1)},
		{"div-zero-zero", "0/0", math.NaN()},
		{"mod-zero", "1%0", math.NaN()},
		{"inf-arith", "inf - inf", math.NaN()},
		{"overflow", "1" + strings.Repeat("0", 400), math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := scicalc.Solve(c.src)
			if err != nil {
				t.Fatalf("%q failed: %v", c.src, err)
			}
			if !same(r, c.r) {
				t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestSolveErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		pos  int
	}{
		{"open", "(1+2", scicalc.ErrUnbalancedParentheses, 1},
		{"open-inner", "(1+(2)", scicalc.ErrUnbalancedParentheses, 1},
		{"open-innermost", "((1)+(2", scicalc.ErrUnbalancedParentheses, 6},
		{"close", "1+2)", scicalc.ErrUnbalancedParentheses, 4},
		{"close-first", ")(", scicalc.ErrUnbalancedParentheses, 1},
		{"ops", "1+*2", scicalc.ErrMismatchedOperandCount, 3},
		{"no-op", "1 2", scicalc.ErrMismatchedOperandCount, 3},
		{"group-no-op", "2(3)", scicalc.ErrMismatchedOperandCount, 2},
		{"trailing-op", "1 +", scicalc.ErrMismatchedOperandCount, 3},
		{"leading-op", "* 1", scicalc.ErrMismatchedOperandCount, 1},
		{"empty", "", scicalc.ErrMismatchedOperandCount, 1},
		{"blank", "   ", scicalc.ErrMismatchedOperandCount, 1},
		{"empty-group", "1 + ()", scicalc.ErrMismatchedOperandCount, 5},
		{"neg-const", "-pi", scicalc.ErrMismatchedOperandCount, 1},
		{"dangling", "sqrt", scicalc.ErrDanglingUnaryOperator, 1},
		{"dangling-end", "2+sqrt", scicalc.ErrDanglingUnaryOperator, 3},
		{"dangling-run", "sqrt abs", scicalc.ErrDanglingUnaryOperator, 1},
		{"dangling-op", "sqrt + 1", scicalc.ErrDanglingUnaryOperator, 1},
		{"dangling-after-group", "sqrt(1)sqrt", scicalc.ErrDanglingUnaryOperator, 8},
		{"dangling-in-group", "1 + (ln)", scicalc.ErrDanglingUnaryOperator, 6},
		{"symbol", "1 $ 2", scicalc.ErrMalformedToken, 3},
		{"word", "foo", scicalc.ErrMalformedToken, 1},
		{"dot", "1.2.3", scicalc.ErrMalformedToken, 4},
		{"trailing-dot", "1.", scicalc.ErrMalformedToken, 2},
		{"leading-dot", ".5", scicalc.ErrMalformedToken, 1},
		{"case", "PI", scicalc.ErrMalformedToken, 1},
		{"unicode-col", "π + ?", scicalc.ErrMalformedToken, 5},
		{"deep", strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300), scicalc.ErrNestingTooDeep, 257},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := scicalc.Solve(c.src)
			if err == nil {
				t.Fatalf("%q gave no error and result %g", c.src, r)
			}
			if !errors.Is(err, c.err) {
				t.Errorf("%q gave wrong error: want %v, got %v", c.src, c.err, err)
			}
			var ie scicalc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q reported wrong position: want %d, got %d (%v)", c.src, c.pos, ie.Pos(), err)
			}
		})
	}
}

func TestSolveMaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
	if r, err := scicalc.Solve(deep, scicalc.MaxDepth(0)); err != nil || r != 1 {
		t.Errorf("unlimited depth: want 1, <nil>; got %g, %v", r, err)
	}
	if r, err := scicalc.Solve("((1))", scicalc.MaxDepth(2)); err != nil || r != 1 {
		t.Errorf("depth 2 at limit: want 1, <nil>; got %g, %v", r, err)
	}
	_, err := scicalc.Solve("(((1)))", scicalc.MaxDepth(2))
	var de *scicalc.DepthError
	if !errors.As(err, &de) {
		t.Fatalf("depth 3 over limit 2: want *DepthError, got %#v", err)
	}
	if de.Max != 2 || de.Col != 3 {
		t.Errorf("wrong DepthError: %+v", de)
	}
}

func TestSolveErrorMessages(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{"1 $ 2", []string{"3:", `"$"`}},
		{"(1", []string{"1:", "open", "("}},
		{"1)", []string{"2:", "close", ")"}},
		{"1 2", []string{"3:", "2 operands", "0 operators"}},
		{"", []string{"no expression"}},
		{"2 + ln", []string{"5:", `"ln"`}},
	}
	for _, c := range cases {
		_, err := scicalc.Solve(c.src)
		if err == nil {
			t.Errorf("%q gave no error", c.src)
			continue
		}
		msg := err.Error()
		for _, w := range c.want {
			if !strings.Contains(msg, w) {
				t.Errorf("error for %q doesn't mention %q: %s", c.src, w, msg)
			}
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	srcs := []string{"2+3*4", "sqrt abs -16", "1/0", "0/0", "sin pi", "1 2"}
	for _, src := range srcs {
		a, aerr := scicalc.Solve(src)
		b, berr := scicalc.Solve(src)
		if !same(a, b) || fmt.Sprint(aerr) != fmt.Sprint(berr) {
			t.Errorf("%q gave different results: %g, %v then %g, %v", src, a, aerr, b, berr)
		}
	}
}

func TestSolveConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := fmt.Sprintf("(%d + 1) * 2 - sqrt 16", i)
			r, err := scicalc.Solve(src)
			if err != nil {
				errs <- err
				return
			}
			if want := float64((i+1)*2 - 4); r != want {
				errs <- fmt.Errorf("%q: want %g, got %g", src, want, r)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestExprReuse(t *testing.T) {
	a, err := scicalc.Parse("(1 + 2) * sqrt(16)")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		r, err := a.Eval()
		if err != nil {
			t.Fatal(err)
		}
		if r != 12 {
			t.Errorf("evaluation %d: want 12, got %g", i, r)
		}
	}
	if s := a.String(); s != "(1 + 2) * sqrt (16)" {
		t.Errorf("wrong string: %q", s)
	}
}

func BenchmarkSolve(b *testing.B) {
	b.Run("flat", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			scicalc.Solve("2+3*4-5/6^7")
		}
	})
	b.Run("nested", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			scicalc.Solve("sqrt((1+(2*(3+(4*(5+6))))))")
		}
	})
	b.Run("eval", func(b *testing.B) {
		b.ReportAllocs()
		a, err := scicalc.Parse("sqrt((1+(2*(3+(4*(5+6))))))")
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			a.Eval()
		}
	})
}

func Example() {
	for _, src := range []string{"2 + 3 * 4", "(2 + 3) * 4", "8 - 3 - 2", "sqrt abs -16", "2 pow 10", "1 / 0"} {
		r, err := scicalc.Solve(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%-14s = %g\n", src, r)
	}
	_, err := scicalc.Solve("(1 + 2")
	fmt.Println(err)

	// Output:
	// 2 + 3 * 4      = 14
	// (2 + 3) * 4    = 20
	// 8 - 3 - 2      = 3
	// sqrt abs -16   = 4
	// 2 pow 10       = 1024
	// 1 / 0          = +Inf
	// 1: open bracket ( with no close bracket
}
