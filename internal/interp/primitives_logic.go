package interp

// registerLogic wires not, equal? and eq?. not uses the interpreter's full
// truthiness rule (any value but #f is true) rather than requiring a literal
// boolean argument, resolving the ambiguity the original left as a raw
// boolean cast.
func registerLogic(p map[string]Primitive) {
	p["not"] = func(args []Value) (Value, error) {
		if err := checkArity("not", args, 1); err != nil {
			return Value{}, err
		}
		return boolValue(!args[0].Truthy()), nil
	}
	p["equal?"] = func(args []Value) (Value, error) {
		if err := checkArity("equal?", args, 2); err != nil {
			return Value{}, err
		}
		return boolValue(EqualStructural(args[0], args[1], make(map[*Node]*Node))), nil
	}
	p["eq?"] = func(args []Value) (Value, error) {
		if err := checkArity("eq?", args, 2); err != nil {
			return Value{}, err
		}
		return boolValue(Equal(args[0], args[1])), nil
	}
}
