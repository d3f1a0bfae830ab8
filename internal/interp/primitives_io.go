package interp

import (
	"fmt"
	"os"
	"strings"
)

// registerIO wires display, displayln and printf's directive-driven
// formatter. All three write to stdout, matching the single-threaded,
// no-persisted-state driver contract.
func registerIO(p map[string]Primitive) {
	p["display"] = func(args []Value) (Value, error) {
		if err := checkArity("display", args, 1); err != nil {
			return Value{}, err
		}
		fmt.Fprint(os.Stdout, args[0].String())
		return Unspecified, nil
	}
	p["displayln"] = func(args []Value) (Value, error) {
		if err := checkArity("displayln", args, 1); err != nil {
			return Value{}, err
		}
		fmt.Fprintln(os.Stdout, args[0].String())
		return Unspecified, nil
	}
	p["printf"] = func(args []Value) (Value, error) {
		if err := checkArityAtLeast("printf", args, 1); err != nil {
			return Value{}, err
		}
		format, err := wantString("printf", 1, args[0])
		if err != nil {
			return Value{}, err
		}
		out, err := renderPrintf(format, args[1:])
		if err != nil {
			return Value{}, err
		}
		fmt.Fprint(os.Stdout, out)
		return Unspecified, nil
	}
}

// renderPrintf implements the fixed ~s ~d ~l ~x ~o ~b ~g ~c ~y directive set:
// ~s, ~d and ~l all print the argument's display form (any kind), ~x/~o/~b
// the real part's integer value in radix 16/8/2, ~g boolean, ~c character,
// ~y symbol, ~~ a literal tilde.
func renderPrintf(format string, args []Value) (string, error) {
	var sb strings.Builder
	argi := 0
	next := func() (Value, error) {
		if argi >= len(args) {
			return Value{}, &ArityMismatch{Callee: "printf", Expected: "more", Got: len(args)}
		}
		v := args[argi]
		argi++
		return v, nil
	}
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '~' || i+1 >= len(runes) {
			sb.WriteRune(ch)
			continue
		}
		i++
		switch runes[i] {
		case '~':
			sb.WriteRune('~')
		case 's', 'S', 'l', 'L', 'd', 'D':
			v, err := next()
			if err != nil {
				return "", err
			}
			sb.WriteString(v.String())
		case 'g', 'G':
			v, err := next()
			if err != nil {
				return "", err
			}
			b, err := wantBool("printf", argi, v)
			if err != nil {
				return "", err
			}
			sb.WriteString(boolValue(b).String())
		case 'c', 'C':
			v, err := next()
			if err != nil {
				return "", err
			}
			ch, err := wantChar("printf", argi, v)
			if err != nil {
				return "", err
			}
			sb.WriteRune(ch)
		case 'y', 'Y':
			v, err := next()
			if err != nil {
				return "", err
			}
			sym, err := wantSymbol("printf", argi, v)
			if err != nil {
				return "", err
			}
			sb.WriteString(sym)
		case 'x', 'X':
			v, err := next()
			if err != nil {
				return "", err
			}
			n, err := wantReal("printf", argi, v)
			if err != nil {
				return "", err
			}
			sb.WriteString(n.RadixString(16))
		case 'o', 'O':
			v, err := next()
			if err != nil {
				return "", err
			}
			n, err := wantReal("printf", argi, v)
			if err != nil {
				return "", err
			}
			sb.WriteString(n.RadixString(8))
		case 'b', 'B':
			v, err := next()
			if err != nil {
				return "", err
			}
			n, err := wantReal("printf", argi, v)
			if err != nil {
				return "", err
			}
			sb.WriteString(n.RadixString(2))
		default:
			return "", &DomainError{Callee: "printf", Message: fmt.Sprintf("unknown directive ~%c", runes[i])}
		}
	}
	return sb.String(), nil
}
