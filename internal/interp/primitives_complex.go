package interp

func registerComplex(p map[string]Primitive) {
	p["real-part"] = func(args []Value) (Value, error) {
		if err := checkArity("real-part", args, 1); err != nil {
			return Value{}, err
		}
		n, err := wantNumber("real-part", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		return numberValue(n.Real()), nil
	}
	p["imag-part"] = func(args []Value) (Value, error) {
		if err := checkArity("imag-part", args, 1); err != nil {
			return Value{}, err
		}
		n, err := wantNumber("imag-part", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		return numberValue(n.Imag()), nil
	}
}
