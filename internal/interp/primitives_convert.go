package interp

import "github.com/JoshuaCrotts/MicroScheme/internal/number"

// registerConversions wires number<->string and list<->string bridges.
// string->number attempts a real parse and returns #f on failure, resolving
// the ambiguity the original left as a bug that returned the input string
// unchanged.
func registerConversions(p map[string]Primitive) {
	p["number->string"] = func(args []Value) (Value, error) {
		if err := checkArityAtLeast("number->string", args, 1); err != nil {
			return Value{}, err
		}
		n, err := wantNumber("number->string", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		if len(args) >= 2 {
			base, err := wantReal("number->string", 2, args[1])
			if err != nil {
				return Value{}, err
			}
			return DataValue(NewString(n.RadixString(int(base.Int64())))), nil
		}
		return DataValue(NewString(n.String())), nil
	}
	p["string->number"] = func(args []Value) (Value, error) {
		if err := checkArity("string->number", args, 1); err != nil {
			return Value{}, err
		}
		s, err := wantString("string->number", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		n, ok := number.Parse(s)
		if !ok {
			return boolValue(false), nil
		}
		return numberValue(n), nil
	}
	p["list->string"] = func(args []Value) (Value, error) {
		if err := checkArity("list->string", args, 1); err != nil {
			return Value{}, err
		}
		lst, err := wantProperList("list->string", args[0])
		if err != nil {
			return Value{}, err
		}
		runes := make([]rune, len(lst))
		for i, n := range lst {
			if n.Kind != NKCharacter {
				return Value{}, &TypeMismatch{Callee: "list->string", Position: 1, Expected: "list of chars", Actual: n.Kind.String()}
			}
			runes[i] = n.Ch
		}
		return DataValue(NewString(string(runes))), nil
	}
	p["string->list"] = func(args []Value) (Value, error) {
		if err := checkArity("string->list", args, 1); err != nil {
			return Value{}, err
		}
		s, err := wantString("string->list", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		runes := []rune(s)
		elems := make([]*Node, len(runes))
		for i, r := range runes {
			elems[i] = NewChar(r)
		}
		return DataValue(SliceToList(elems)), nil
	}
}

func wantProperList(callee string, v Value) ([]*Node, error) {
	if v.Kind != VKData || v.Data.Kind != NKList {
		return nil, &TypeMismatch{Callee: callee, Position: 1, Expected: "list", Actual: v.KindName()}
	}
	elems, proper := ListToSlice(v.Data)
	if !proper {
		return nil, &TypeMismatch{Callee: callee, Position: 1, Expected: "proper list", Actual: "improper list"}
	}
	return elems, nil
}
