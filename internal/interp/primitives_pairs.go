package interp

func registerPairsAndLists(p map[string]Primitive) {
	p["cons"] = func(args []Value) (Value, error) {
		if err := checkArity("cons", args, 2); err != nil {
			return Value{}, err
		}
		return DataValue(Cons(args[0].Data, args[1].Data)), nil
	}
	p["list"] = func(args []Value) (Value, error) {
		elems := make([]*Node, len(args))
		for i, a := range args {
			elems[i] = a.Data
		}
		return DataValue(SliceToList(elems)), nil
	}
	p["car"] = func(args []Value) (Value, error) {
		if err := checkArity("car", args, 1); err != nil {
			return Value{}, err
		}
		pair, err := wantPair("car", args[0])
		if err != nil {
			return Value{}, err
		}
		return DataValue(Car(pair)), nil
	}
	p["cdr"] = func(args []Value) (Value, error) {
		if err := checkArity("cdr", args, 1); err != nil {
			return Value{}, err
		}
		pair, err := wantPair("cdr", args[0])
		if err != nil {
			return Value{}, err
		}
		return DataValue(Cdr(pair)), nil
	}
	p["null?"] = func(args []Value) (Value, error) {
		if err := checkArity("null?", args, 1); err != nil {
			return Value{}, err
		}
		return boolValue(args[0].Kind == VKData && args[0].Data.Kind == NKList && IsEmptyList(args[0].Data)), nil
	}
	p["pair?"] = func(args []Value) (Value, error) {
		if err := checkArity("pair?", args, 1); err != nil {
			return Value{}, err
		}
		return boolValue(args[0].Kind == VKData && args[0].Data.Kind == NKList && !IsEmptyList(args[0].Data)), nil
	}
	p["list?"] = func(args []Value) (Value, error) {
		if err := checkArity("list?", args, 1); err != nil {
			return Value{}, err
		}
		if args[0].Kind != VKData || args[0].Data.Kind != NKList {
			return boolValue(false), nil
		}
		return boolValue(IsProper(args[0].Data)), nil
	}
}

func wantPair(callee string, v Value) (*Node, error) {
	if v.Kind != VKData || v.Data.Kind != NKList {
		return nil, &TypeMismatch{Callee: callee, Position: 1, Expected: "pair", Actual: v.KindName()}
	}
	if IsEmptyList(v.Data) {
		return nil, &DomainError{Callee: callee, Message: "argument must be a non-empty list"}
	}
	return v.Data, nil
}
