package interp

func registerChars(p map[string]Primitive) {
	charChain := func(name string, ok func(a, b rune) bool) {
		p[name] = func(args []Value) (Value, error) {
			if err := checkArityAtLeast(name, args, 1); err != nil {
				return Value{}, err
			}
			prev, err := wantChar(name, 1, args[0])
			if err != nil {
				return Value{}, err
			}
			for i, a := range args[1:] {
				cur, err := wantChar(name, i+2, a)
				if err != nil {
					return Value{}, err
				}
				if !ok(prev, cur) {
					return boolValue(false), nil
				}
				prev = cur
			}
			return boolValue(true), nil
		}
	}
	charChain("char<?", func(a, b rune) bool { return a < b })
	charChain("char<=?", func(a, b rune) bool { return a <= b })
	charChain("char>?", func(a, b rune) bool { return a > b })
	charChain("char>=?", func(a, b rune) bool { return a >= b })
	charChain("char=?", func(a, b rune) bool { return a == b })
}
