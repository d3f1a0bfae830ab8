package interp

func registerComparison(p map[string]Primitive) {
	chain := func(name string, ok func(cmp int) bool) Primitive {
		return func(args []Value) (Value, error) {
			if err := checkArityAtLeast(name, args, 1); err != nil {
				return Value{}, err
			}
			prev, err := wantReal(name, 1, args[0])
			if err != nil {
				return Value{}, err
			}
			for i, a := range args[1:] {
				cur, err := wantReal(name, i+2, a)
				if err != nil {
					return Value{}, err
				}
				if !ok(prev.Cmp(cur)) {
					return boolValue(false), nil
				}
				prev = cur
			}
			return boolValue(true), nil
		}
	}
	p["<"] = chain("<", func(c int) bool { return c < 0 })
	p["<="] = chain("<=", func(c int) bool { return c <= 0 })
	p[">"] = chain(">", func(c int) bool { return c > 0 })
	p[">="] = chain(">=", func(c int) bool { return c >= 0 })
	p["="] = func(args []Value) (Value, error) {
		if err := checkArityAtLeast("=", args, 1); err != nil {
			return Value{}, err
		}
		first, err := wantNumber("=", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		for i, a := range args[1:] {
			n, err := wantNumber("=", i+2, a)
			if err != nil {
				return Value{}, err
			}
			if !first.Equal(n) {
				return boolValue(false), nil
			}
		}
		return boolValue(true), nil
	}
}
