package interp

import (
	"fmt"

	"github.com/JoshuaCrotts/MicroScheme/internal/number"
)

// StandardPrimitives builds the initial primitive registry. Primitives are
// plain Go closures rather than AST nodes; a VARIABLE that resolves to a
// primitive name produces a VKPrimitive Value so that rebinding one (e.g.
// `(define f +)`) and later calling it through the new name works exactly
// like calling it under the original name.
func StandardPrimitives() map[string]Primitive {
	p := map[string]Primitive{}
	registerIO(p)
	registerArithmetic(p)
	registerTranscendental(p)
	registerComparison(p)
	registerComplex(p)
	registerLogic(p)
	registerPairsAndLists(p)
	registerVectors(p)
	registerPredicates(p)
	registerStrings(p)
	registerChars(p)
	registerConversions(p)
	registerRandom(p)
	return p
}

func wantNumber(callee string, pos int, v Value) (*number.Number, error) {
	if v.Kind != VKData || v.Data.Kind != NKNumber {
		return nil, &TypeMismatch{Callee: callee, Position: pos, Expected: "number", Actual: v.KindName()}
	}
	return v.Data.Num, nil
}

func wantReal(callee string, pos int, v Value) (*number.Number, error) {
	n, err := wantNumber(callee, pos, v)
	if err != nil {
		return nil, err
	}
	if !n.IsReal() {
		return nil, &DomainError{Callee: callee, Message: "argument must be real"}
	}
	return n, nil
}

func wantString(callee string, pos int, v Value) (string, error) {
	if v.Kind != VKData || v.Data.Kind != NKString {
		return "", &TypeMismatch{Callee: callee, Position: pos, Expected: "string", Actual: v.KindName()}
	}
	return v.Data.Str, nil
}

func wantChar(callee string, pos int, v Value) (rune, error) {
	if v.Kind != VKData || v.Data.Kind != NKCharacter {
		return 0, &TypeMismatch{Callee: callee, Position: pos, Expected: "char", Actual: v.KindName()}
	}
	return v.Data.Ch, nil
}

func wantBool(callee string, pos int, v Value) (bool, error) {
	if v.Kind != VKData || v.Data.Kind != NKBoolean {
		return false, &TypeMismatch{Callee: callee, Position: pos, Expected: "boolean", Actual: v.KindName()}
	}
	return v.Data.Bool, nil
}

func wantSymbol(callee string, pos int, v Value) (string, error) {
	if v.Kind != VKData || v.Data.Kind != NKSymbol {
		return "", &TypeMismatch{Callee: callee, Position: pos, Expected: "symbol", Actual: v.KindName()}
	}
	return v.Data.Str, nil
}

func checkArity(callee string, args []Value, n int) error {
	if len(args) != n {
		return &ArityMismatch{Callee: callee, Expected: fmt.Sprint(n), Got: len(args)}
	}
	return nil
}

func checkArityAtLeast(callee string, args []Value, n int) error {
	if len(args) < n {
		return &ArityMismatch{Callee: callee, Expected: fmt.Sprintf("at least %d", n), Got: len(args)}
	}
	return nil
}

func numberValue(n *number.Number) Value { return DataValue(NewNumber(n)) }
func boolValue(b bool) Value             { return DataValue(NewBool(b)) }
func intNum(n int) *number.Number        { return number.FromInt64(int64(n)) }
func numberFromFloat(f float64) *number.Number { return number.FromFloat64(f) }
