package interp

import "github.com/JoshuaCrotts/MicroScheme/internal/number"

// registerTranscendental wires sin/cos/tan and their hyperbolic and inverse
// forms. sin/cos/tan/sinh/cosh/tanh accept complex arguments; the inverse
// hyperbolic forms require a real argument (see the number package's doc
// comment on precision tradeoffs).
func registerTranscendental(p map[string]Primitive) {
	complexUnary := func(name string, f func(*number.Number) *number.Number) Primitive {
		return func(args []Value) (Value, error) {
			if err := checkArity(name, args, 1); err != nil {
				return Value{}, err
			}
			n, err := wantNumber(name, 1, args[0])
			if err != nil {
				return Value{}, err
			}
			return numberValue(f(n)), nil
		}
	}
	p["sin"] = complexUnary("sin", (*number.Number).Sin)
	p["cos"] = complexUnary("cos", (*number.Number).Cos)
	p["tan"] = complexUnary("tan", (*number.Number).Tan)
	p["asin"] = complexUnary("asin", (*number.Number).Asin)
	p["acos"] = complexUnary("acos", (*number.Number).Acos)
	p["atan"] = complexUnary("atan", (*number.Number).Atan)
	p["sinh"] = complexUnary("sinh", (*number.Number).Sinh)
	p["cosh"] = complexUnary("cosh", (*number.Number).Cosh)
	p["tanh"] = complexUnary("tanh", (*number.Number).Tanh)

	p["asinh"] = unaryReal("asinh", (*number.Number).Asinh)
	p["acosh"] = unaryReal("acosh", (*number.Number).Acosh)
	p["atanh"] = unaryReal("atanh", (*number.Number).Atanh)
}
