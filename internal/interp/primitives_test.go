package interp

import (
	"io"
	"os"
	"testing"
)

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	saved := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = saved }()

	f()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestDisplayAndDisplayln(t *testing.T) {
	out := captureStdout(t, func() {
		testRun(t, `(display "hi") (displayln "there")`)
	})
	if out != "hithere\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestPrintfDirectives(t *testing.T) {
	out := captureStdout(t, func() {
		testRun(t, `(printf "~d and ~x and ~s\n" 10 255 "str")`)
	})
	if out != "10 and ff and str\n" {
		t.Errorf("unexpected printf output: %q", out)
	}
}

func TestPrintfBooleanSymbolCharDirectives(t *testing.T) {
	out := captureStdout(t, func() {
		testRun(t, `(printf "~g ~y ~c" #t 'sym #\z)`)
	})
	if out != "#t sym z" {
		t.Errorf("unexpected printf output: %q", out)
	}
}

func TestPrintfDirectiveTypeChecking(t *testing.T) {
	testRunError(t, `(printf "~g" 5)`)
	testRunError(t, `(printf "~y" "oops")`)
	testRunError(t, `(printf "~c" "oops")`)
}

func TestStringPrimitives(t *testing.T) {
	testRunString(t, `(string-append "foo" "bar")`, "foobar")
	testRunString(t, `(string-length "hello")`, "5")
	testRunString(t, `(string<? "a" "b")`, "#t")
	testRunString(t, `(substring "hello world" 0 5)`, "hello")
}

func TestCharPrimitives(t *testing.T) {
	testRunString(t, `(char<? #\a #\b)`, "#t")
	testRunString(t, `(char=? #\a #\a)`, "#t")
}

func TestPredicates(t *testing.T) {
	testRunString(t, `(number? 5)`, "#t")
	testRunString(t, `(number? "5")`, "#f")
	testRunString(t, `(string? "5")`, "#t")
	testRunString(t, `(procedure? car)`, "#t")
	testRunString(t, `(pair? (cons 1 2))`, "#t")
	testRunString(t, `(null? '())`, "#t")
	testRunString(t, `(list? '(1 2 3))`, "#t")
	testRunString(t, `(list? (cons 1 2))`, "#f")
}

func TestConversions(t *testing.T) {
	testRunString(t, `(number->string 255 16)`, "ff")
	testRunString(t, `(string->number "42")`, "42")
	testRunString(t, `(string->number "not-a-number")`, "#f")
	testRunString(t, `(list->string (string->list "abc"))`, "abc")
}

func TestComplexParts(t *testing.T) {
	testRunString(t, `(real-part 5)`, "5")
	testRunString(t, `(imag-part 5)`, "0")
}

func TestRandomWithinBounds(t *testing.T) {
	ev := NewEvaluator()
	if _, err := RunSource(ev, `(random-set-seed! 1)`); err != nil {
		t.Fatal(err)
	}
	v, err := RunSource(ev, `(random-integer 1 10)`)
	if err != nil {
		t.Fatal(err)
	}
	n := v.Data.Num.Int64()
	if n < 1 || n > 10 {
		t.Errorf("random-integer out of bounds: %d", n)
	}
}

func TestRandomSetSeedDeterministic(t *testing.T) {
	run := func() string {
		ev := NewEvaluator()
		if _, err := RunSource(ev, `(random-set-seed! 42)`); err != nil {
			t.Fatal(err)
		}
		v, err := RunSource(ev, `(random 1000)`)
		if err != nil {
			t.Fatal(err)
		}
		return v.String()
	}
	if run() != run() {
		t.Error("identical seeds should produce identical draws")
	}
}

func TestArityAndTypeErrors(t *testing.T) {
	testRunError(t, `(car 5)`)
	testRunError(t, `(+ 1 "two")`)
	testRunError(t, `(vector-ref (vector 1 2) 5)`)
	testRunError(t, `(/ 1 0)`)
}
