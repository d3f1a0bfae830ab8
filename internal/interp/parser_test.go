package interp

import "testing"

func parseOneOrFail(t *testing.T, src string) *Node {
	t.Helper()
	n, err := ParseOne(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n
}

func TestParseLiterals(t *testing.T) {
	if n := parseOneOrFail(t, "42"); n.Kind != NKNumber {
		t.Errorf("expected number, got %s", n.Kind)
	}
	if n := parseOneOrFail(t, `"hi"`); n.Kind != NKString || n.Str != "hi" {
		t.Errorf("expected string %q, got %v", "hi", n)
	}
	if n := parseOneOrFail(t, "#t"); n.Kind != NKBoolean || !n.Bool {
		t.Errorf("expected #t")
	}
	if n := parseOneOrFail(t, `#\a`); n.Kind != NKCharacter || n.Ch != 'a' {
		t.Errorf("expected char a")
	}
}

func TestParseVariableVsSymbol(t *testing.T) {
	code := parseOneOrFail(t, "x")
	if code.Kind != NKVariable {
		t.Errorf("bare identifier in code position should be NKVariable, got %s", code.Kind)
	}
	data := parseOneOrFail(t, "'x")
	if data.Kind != NKSymbol {
		t.Errorf("quoted identifier should be NKSymbol, got %s", data.Kind)
	}
}

func TestParseApplication(t *testing.T) {
	n := parseOneOrFail(t, "(+ 1 2)")
	if n.Kind != NKApplication || len(n.Children) != 3 {
		t.Fatalf("unexpected shape: %+v", n)
	}
}

func TestParseDottedPair(t *testing.T) {
	n := parseOneOrFail(t, "'(1 . 2)")
	if n.Kind != NKList {
		t.Fatalf("expected list, got %s", n.Kind)
	}
	if IsProper(n) {
		t.Errorf("(1 . 2) should be improper")
	}
	if Car(n).Num.Int64() != 1 || Cdr(n).Num.Int64() != 2 {
		t.Errorf("unexpected car/cdr: %v %v", Car(n), Cdr(n))
	}
}

func TestParseVector(t *testing.T) {
	n := parseOneOrFail(t, "#(1 2 3)")
	if n.Kind != NKVector || len(n.Children) != 3 {
		t.Fatalf("unexpected vector shape: %+v", n)
	}
}

func TestParseDoLayout(t *testing.T) {
	n := parseOneOrFail(t, "(do ((i 0 (+ i 1))) ((= i 3) i) (display i))")
	if n.Kind != NKDo {
		t.Fatalf("expected NKDo, got %s", n.Kind)
	}
	if n.DoDeclCount != 1 || n.DoTrueCount != 1 {
		t.Errorf("unexpected do counts: decl=%d true=%d", n.DoDeclCount, n.DoTrueCount)
	}
	// decl, step, test, trueExpr, body == 5 children
	if len(n.Children) != 5 {
		t.Errorf("expected 5 flattened children, got %d", len(n.Children))
	}
}

func TestParseIfBecomesCond(t *testing.T) {
	n := parseOneOrFail(t, "(if #t 1 2)")
	if n.Kind != NKCond || len(n.Children) != 3 {
		t.Fatalf("unexpected if shape: %+v", n)
	}
}

func TestParseDefineSugar(t *testing.T) {
	n := parseOneOrFail(t, "(define (f x y) (+ x y))")
	if n.Kind != NKDeclaration || n.Str != "f" {
		t.Fatalf("unexpected define shape: %+v", n)
	}
	lambda := n.Children[0]
	if lambda.Kind != NKLambda || len(lambda.Params) != 2 {
		t.Fatalf("unexpected lambda shape: %+v", lambda)
	}
}

func TestParseCommentsIgnored(t *testing.T) {
	n := parseOneOrFail(t, "; a comment\n42 ; trailing")
	if n.Kind != NKNumber {
		t.Fatalf("expected number, got %s", n.Kind)
	}
}

func TestParseUnclosedIsIncomplete(t *testing.T) {
	_, err := Parse("(+ 1 2")
	if err == nil {
		t.Fatal("expected parse error for unclosed form")
	}
	if !IsIncompleteParse(err) {
		t.Errorf("expected incomplete parse error, got %v", err)
	}
}

func TestParseNestedQuotePreserved(t *testing.T) {
	n := parseOneOrFail(t, "'('a)")
	// the inner 'a is nested inside already-quoted data, so it must stay a
	// literal (quote a) two-element list rather than collapse to the symbol a.
	inner := Car(n)
	if inner.Kind != NKList || IsEmptyList(inner) {
		t.Fatalf("expected nested quote list, got %+v", inner)
	}
	if Car(inner).Str != "quote" {
		t.Errorf("expected leading quote symbol, got %+v", Car(inner))
	}
}
