package interp

import (
	"testing"

	"github.com/JoshuaCrotts/MicroScheme/internal/number"
)

func TestEmptyListSingleton(t *testing.T) {
	if !IsEmptyList(EmptyList()) {
		t.Fatal("EmptyList() should report as empty")
	}
	if Car(EmptyList()) != EmptyList() {
		t.Error("car of empty list should fall back to the empty list")
	}
}

func TestConsAndMutation(t *testing.T) {
	pair := Cons(NewNumber(number.FromInt64(1)), NewNumber(number.FromInt64(2)))
	if Car(pair).Num.Int64() != 1 || Cdr(pair).Num.Int64() != 2 {
		t.Fatalf("unexpected cons shape: %v", pair)
	}
	SetCar(pair, NewNumber(number.FromInt64(9)))
	if Car(pair).Num.Int64() != 9 {
		t.Error("set-car! should mutate in place")
	}
}

func TestAliasingThroughSetCar(t *testing.T) {
	shared := Cons(NewNumber(number.FromInt64(1)), EmptyList())
	alias := shared
	SetCar(shared, NewNumber(number.FromInt64(42)))
	if Car(alias).Num.Int64() != 42 {
		t.Error("mutation through one alias should be visible through another")
	}
}

func TestListToSliceAndBack(t *testing.T) {
	elems := []*Node{NewNumber(number.FromInt64(1)), NewNumber(number.FromInt64(2)), NewNumber(number.FromInt64(3))}
	lst := SliceToList(elems)
	back, proper := ListToSlice(lst)
	if !proper || len(back) != 3 {
		t.Fatalf("round trip failed: proper=%v len=%d", proper, len(back))
	}
	for i, n := range back {
		if n.Num.Int64() != int64(i+1) {
			t.Errorf("element %d = %v", i, n)
		}
	}
}

func TestStringifyProperAndImproperLists(t *testing.T) {
	proper := SliceToList([]*Node{NewNumber(number.FromInt64(1)), NewNumber(number.FromInt64(2))})
	if got := DataValue(proper).String(); got != "(1 2)" {
		t.Errorf("proper list printed as %q", got)
	}
	improper := Cons(NewNumber(number.FromInt64(1)), NewNumber(number.FromInt64(2)))
	if got := DataValue(improper).String(); got != "(1 . 2)" {
		t.Errorf("improper list printed as %q", got)
	}
}

func TestTruthinessOnlyFalseIsFalsey(t *testing.T) {
	falsey := DataValue(NewBool(false))
	if falsey.Truthy() {
		t.Error("#f should be falsey")
	}
	for _, v := range []Value{
		DataValue(NewBool(true)),
		DataValue(NewNumber(number.FromInt64(0))),
		DataValue(NewString("")),
		DataValue(EmptyList()),
	} {
		if !v.Truthy() {
			t.Errorf("%v should be truthy", v)
		}
	}
}

func TestEqVsEqualOnLists(t *testing.T) {
	a := SliceToList([]*Node{NewNumber(number.FromInt64(1)), NewNumber(number.FromInt64(2))})
	b := SliceToList([]*Node{NewNumber(number.FromInt64(1)), NewNumber(number.FromInt64(2))})
	va, vb := DataValue(a), DataValue(b)
	if Equal(va, vb) {
		t.Error("distinct cons cells with equal contents should not be eq?")
	}
	if !EqualStructural(va, vb, make(map[*Node]*Node)) {
		t.Error("structurally identical lists should be equal?")
	}
	if !Equal(va, va) {
		t.Error("a list should be eq? to itself")
	}
}

func TestCyclicListPrintingTerminates(t *testing.T) {
	cell := Cons(NewNumber(number.FromInt64(1)), EmptyList())
	SetCdr(cell, cell) // cell now points to itself
	if got := DataValue(cell).String(); got == "" {
		t.Error("expected non-empty cycle-guarded string")
	}
}
