package interp

func registerVectors(p map[string]Primitive) {
	p["vector"] = func(args []Value) (Value, error) {
		elems := make([]*Node, len(args))
		for i, a := range args {
			elems[i] = a.Data
		}
		return DataValue(NewVector(elems)), nil
	}
	p["vector-ref"] = func(args []Value) (Value, error) {
		if err := checkArity("vector-ref", args, 2); err != nil {
			return Value{}, err
		}
		vec, err := wantVector("vector-ref", args[0])
		if err != nil {
			return Value{}, err
		}
		idx, err := wantReal("vector-ref", 2, args[1])
		if err != nil {
			return Value{}, err
		}
		if !idx.IsInteger() {
			return Value{}, &TypeMismatch{Callee: "vector-ref", Position: 2, Expected: "integer", Actual: "non-integer real"}
		}
		i := int(idx.Int64())
		if i < 0 || i >= len(vec.Children) {
			return Value{}, &DomainError{Callee: "vector-ref", Message: "index out of range"}
		}
		return DataValue(vec.Children[i]), nil
	}
	p["vector-length"] = func(args []Value) (Value, error) {
		if err := checkArity("vector-length", args, 1); err != nil {
			return Value{}, err
		}
		vec, err := wantVector("vector-length", args[0])
		if err != nil {
			return Value{}, err
		}
		return numberValue(intNum(len(vec.Children))), nil
	}
	p["vector?"] = func(args []Value) (Value, error) {
		if err := checkArity("vector?", args, 1); err != nil {
			return Value{}, err
		}
		return boolValue(args[0].Kind == VKData && args[0].Data.Kind == NKVector), nil
	}
}

func wantVector(callee string, v Value) (*Node, error) {
	if v.Kind != VKData || v.Data.Kind != NKVector {
		return nil, &TypeMismatch{Callee: callee, Position: 1, Expected: "vector", Actual: v.KindName()}
	}
	return v.Data, nil
}
