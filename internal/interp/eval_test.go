package interp

import "testing"

func testRun(t *testing.T, src string) Value {
	t.Helper()
	ev := NewEvaluator()
	v, err := RunSource(ev, src)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func testRunString(t *testing.T, src, expected string) {
	t.Helper()
	v := testRun(t, src)
	if v.String() != expected {
		t.Fatalf("eval %q: expected %q, got %q", src, expected, v.String())
	}
}

func testRunError(t *testing.T, src string) {
	t.Helper()
	ev := NewEvaluator()
	if _, err := RunSource(ev, src); err == nil {
		t.Fatalf("expected error for %q", src)
	}
}

// --- End-to-end scenarios from the driver's reference behavior ---

func TestEvalFactorial(t *testing.T) {
	testRunString(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 3)`, "6")
	testRunString(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 6)`, "720")
}

func TestEvalDoLoop(t *testing.T) {
	testRunString(t, `
		(do ((i 0 (+ i 1)) (acc 1 (* acc (+ i 1))))
		    ((= i 5) acc))`, "120")
}

func TestEvalVectorAndDisplayList(t *testing.T) {
	testRunString(t, `(list 1 99 3)`, "(1 99 3)")
	testRunString(t, `(vector-length (vector 1 2 3))`, "3")
}

func TestEvalMapLikeDoAccumulation(t *testing.T) {
	testRunString(t, `
		(let* ((v (vector 1 2 3))
		       (out (vector 0 0 0)))
		  (do ((i 0 (+ i 1)))
		      ((= i 3) out)
		    (vector-set! out i (* (vector-ref v i) (vector-ref v i)))))`, "#(1 4 9)")
}

// --- Literals and truthiness ---

func TestEvalLiterals(t *testing.T) {
	testRunString(t, "42", "42")
	testRunString(t, "3.5", "3.5")
	testRunString(t, "#t", "#t")
	testRunString(t, "#f", "#f")
	testRunString(t, `"hello"`, "hello")
}

func TestEvalTruthiness(t *testing.T) {
	testRunString(t, `(if 0 "yes" "no")`, "yes")
	testRunString(t, `(if "" "yes" "no")`, "yes")
	testRunString(t, `(if (list) "yes" "no")`, "yes")
	testRunString(t, `(if #f "yes" "no")`, "no")
}

// --- let / let* / letrec ---

func TestEvalLet(t *testing.T) {
	testRunString(t, `(let ((x 1) (y 2)) (+ x y))`, "3")
}

func TestEvalLetStarSequential(t *testing.T) {
	testRunString(t, `(let* ((x 1) (y (+ x 1))) y)`, "2")
}

func TestEvalLetrecMutualRecursion(t *testing.T) {
	testRunString(t, `
		(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
		         (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
		  (even? 10))`, "#t")
}

// --- set! family ---

func TestEvalSet(t *testing.T) {
	testRunString(t, `(let ((x 1)) (set! x 2) x)`, "2")
}

func TestEvalSetUnbound(t *testing.T) {
	testRunError(t, `(set! nope 1)`)
}

func TestEvalSetCarCdr(t *testing.T) {
	testRunString(t, `(let ((p (cons 1 2))) (set-car! p 9) (car p))`, "9")
	testRunString(t, `(let ((p (cons 1 2))) (set-cdr! p 9) (cdr p))`, "9")
}

// --- apply / eval ---

func TestEvalApply(t *testing.T) {
	testRunString(t, `(apply + (list 1 2 3))`, "6")
}

func TestEvalEvalReentry(t *testing.T) {
	testRunString(t, `(eval '(+ 1 2))`, "3")
}

// --- and / or short circuit ---

func TestEvalAndOr(t *testing.T) {
	testRunString(t, `(and 1 2 3)`, "3")
	testRunString(t, `(and 1 #f 3)`, "#f")
	testRunString(t, `(or #f #f 5)`, "5")
	testRunString(t, `(or #f #f)`, "#f")
}

// --- quote ---

func TestEvalQuoteData(t *testing.T) {
	testRunString(t, `'(1 2 3)`, "(1 2 3)")
	testRunString(t, `(car '(a b c))`, "a")
	testRunString(t, `''a`, "(quote a)")
}

// --- primitive rebinding ---

func TestDefineRebindsPrimitive(t *testing.T) {
	testRunString(t, `(define f +) (f 1 2 3)`, "6")
}

func TestUnboundIdentifierError(t *testing.T) {
	testRunError(t, `(frobnicate 1 2)`)
}

func TestApplyNonProcedureError(t *testing.T) {
	testRunError(t, `(1 2 3)`)
}
