package interp

import "strings"

// IsIncompleteParse reports whether err is a parse failure caused only by
// running out of input before a form closed — the signal a REPL uses to
// keep prompting for more lines instead of reporting a real syntax error.
func IsIncompleteParse(err error) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}
	return strings.Contains(pe.Message, "unexpected end of input") ||
		strings.Contains(pe.Message, "unclosed") ||
		strings.Contains(pe.Message, "unterminated")
}

// RunSource parses text as a sequence of top-level forms and evaluates each
// one in order against ev's global environment. Per the error propagation
// policy, a failing form aborts only itself: evaluation resumes with the
// next top-level form, and the first error encountered (if any) is returned
// to the caller once every form has been attempted.
func RunSource(ev *Evaluator, text string) (Value, error) {
	root, err := Parse(text)
	if err != nil {
		return Value{}, err
	}
	var last Value
	var firstErr error
	for _, form := range root.Children {
		v, err := ev.Eval(form, ev.Global)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		last = v
	}
	return last, firstErr
}
