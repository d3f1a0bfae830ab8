package interp

func registerPredicates(p map[string]Primitive) {
	kindPredicate := func(name string, match func(v Value) bool) {
		p[name] = func(args []Value) (Value, error) {
			if err := checkArity(name, args, 1); err != nil {
				return Value{}, err
			}
			return boolValue(match(args[0])), nil
		}
	}
	kindPredicate("number?", func(v Value) bool { return v.Kind == VKData && v.Data.Kind == NKNumber })
	kindPredicate("real?", func(v Value) bool {
		return v.Kind == VKData && v.Data.Kind == NKNumber && v.Data.Num.IsReal()
	})
	kindPredicate("char?", func(v Value) bool { return v.Kind == VKData && v.Data.Kind == NKCharacter })
	kindPredicate("string?", func(v Value) bool { return v.Kind == VKData && v.Data.Kind == NKString })
	kindPredicate("symbol?", func(v Value) bool {
		return v.Kind == VKData && (v.Data.Kind == NKSymbol || v.Data.Kind == NKQuasisymbol)
	})
	kindPredicate("procedure?", func(v Value) bool { return v.IsProcedure() })
}
