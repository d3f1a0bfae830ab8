package interp

import "github.com/JoshuaCrotts/MicroScheme/internal/number"

func registerArithmetic(p map[string]Primitive) {
	p["+"] = func(args []Value) (Value, error) {
		acc := number.FromInt64(0)
		for i, a := range args {
			n, err := wantNumber("+", i+1, a)
			if err != nil {
				return Value{}, err
			}
			acc = acc.Add(n)
		}
		return numberValue(acc), nil
	}
	p["*"] = func(args []Value) (Value, error) {
		acc := number.FromInt64(1)
		for i, a := range args {
			n, err := wantNumber("*", i+1, a)
			if err != nil {
				return Value{}, err
			}
			acc = acc.Mul(n)
		}
		return numberValue(acc), nil
	}
	p["-"] = func(args []Value) (Value, error) {
		if err := checkArityAtLeast("-", args, 1); err != nil {
			return Value{}, err
		}
		first, err := wantNumber("-", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		if len(args) == 1 {
			return numberValue(first.Neg()), nil
		}
		acc := first
		for i, a := range args[1:] {
			n, err := wantNumber("-", i+2, a)
			if err != nil {
				return Value{}, err
			}
			acc = acc.Sub(n)
		}
		return numberValue(acc), nil
	}
	p["/"] = func(args []Value) (Value, error) {
		if err := checkArityAtLeast("/", args, 1); err != nil {
			return Value{}, err
		}
		first, err := wantNumber("/", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		if len(args) == 1 {
			result, err := number.FromInt64(1).Div(first)
			if err != nil {
				return Value{}, &DomainError{Callee: "/", Message: err.Error()}
			}
			return numberValue(result), nil
		}
		acc := first
		for i, a := range args[1:] {
			n, err := wantNumber("/", i+2, a)
			if err != nil {
				return Value{}, err
			}
			acc, err = acc.Div(n)
			if err != nil {
				return Value{}, &DomainError{Callee: "/", Message: err.Error()}
			}
		}
		return numberValue(acc), nil
	}
	p["**"] = func(args []Value) (Value, error) {
		if err := checkArity("**", args, 2); err != nil {
			return Value{}, err
		}
		base, err := wantNumber("**", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		exp, err := wantNumber("**", 2, args[1])
		if err != nil {
			return Value{}, err
		}
		return numberValue(base.Pow(exp)), nil
	}
	p["log"] = unaryReal("log", func(n *number.Number) *number.Number { return n.Log() })
	p["floor"] = unaryReal("floor", func(n *number.Number) *number.Number { return n.Floor() })
	p["ceiling"] = unaryReal("ceiling", func(n *number.Number) *number.Number { return n.Ceiling() })
	p["round"] = unaryReal("round", func(n *number.Number) *number.Number { return n.Round() })
	p["truncate"] = unaryReal("truncate", func(n *number.Number) *number.Number { return n.Truncate() })
	p["modulo"] = func(args []Value) (Value, error) {
		if err := checkArity("modulo", args, 2); err != nil {
			return Value{}, err
		}
		a, err := wantReal("modulo", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := wantReal("modulo", 2, args[1])
		if err != nil {
			return Value{}, err
		}
		r, err := a.Modulo(b)
		if err != nil {
			return Value{}, &DomainError{Callee: "modulo", Message: err.Error()}
		}
		return numberValue(r), nil
	}
	p["remainder"] = func(args []Value) (Value, error) {
		if err := checkArity("remainder", args, 2); err != nil {
			return Value{}, err
		}
		a, err := wantReal("remainder", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := wantReal("remainder", 2, args[1])
		if err != nil {
			return Value{}, err
		}
		r, err := a.Remainder(b)
		if err != nil {
			return Value{}, &DomainError{Callee: "remainder", Message: err.Error()}
		}
		return numberValue(r), nil
	}
}

func unaryReal(name string, f func(*number.Number) *number.Number) Primitive {
	return func(args []Value) (Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return Value{}, err
		}
		n, err := wantReal(name, 1, args[0])
		if err != nil {
			return Value{}, err
		}
		return numberValue(f(n)), nil
	}
}
