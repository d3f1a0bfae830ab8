package interp

import "strings"

func registerStrings(p map[string]Primitive) {
	p["string-append"] = func(args []Value) (Value, error) {
		var sb strings.Builder
		for i, a := range args {
			s, err := wantString("string-append", i+1, a)
			if err != nil {
				return Value{}, err
			}
			sb.WriteString(s)
		}
		return DataValue(NewString(sb.String())), nil
	}
	p["string-length"] = func(args []Value) (Value, error) {
		if err := checkArity("string-length", args, 1); err != nil {
			return Value{}, err
		}
		s, err := wantString("string-length", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		return numberValue(intNum(len([]rune(s)))), nil
	}
	stringChain := func(name string, ok func(a, b string) bool) {
		p[name] = func(args []Value) (Value, error) {
			if err := checkArityAtLeast(name, args, 1); err != nil {
				return Value{}, err
			}
			prev, err := wantString(name, 1, args[0])
			if err != nil {
				return Value{}, err
			}
			for i, a := range args[1:] {
				cur, err := wantString(name, i+2, a)
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
	stringChain("string<?", func(a, b string) bool { return a < b })
	stringChain("string<=?", func(a, b string) bool { return a <= b })
	stringChain("string>?", func(a, b string) bool { return a > b })
	stringChain("string>=?", func(a, b string) bool { return a >= b })
	stringChain("string=?", func(a, b string) bool { return a == b })

	p["substring"] = func(args []Value) (Value, error) {
		if err := checkArityAtLeast("substring", args, 2); err != nil {
			return Value{}, err
		}
		s, err := wantString("substring", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		runes := []rune(s)
		start, err := wantReal("substring", 2, args[1])
		if err != nil {
			return Value{}, err
		}
		startIdx := int(start.Int64())
		endIdx := len(runes)
		if len(args) >= 3 {
			end, err := wantReal("substring", 3, args[2])
			if err != nil {
				return Value{}, err
			}
			endIdx = int(end.Int64())
		}
		if startIdx < 0 || endIdx > len(runes) || startIdx > endIdx {
			return Value{}, &DomainError{Callee: "substring", Message: "index out of range"}
		}
		return DataValue(NewString(string(runes[startIdx:endIdx]))), nil
	}
}
