package interp

// Environment is a lexical frame: a local binding map plus a link to its
// parent. The root environment has a nil Parent.
type Environment struct {
	bindings map[string]Value
	Parent   *Environment
}

// NewEnvironment creates a fresh, parentless environment (used once, for the
// global scope).
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Value)}
}

// NewChild creates a child frame of e.
func (e *Environment) NewChild() *Environment {
	return &Environment{bindings: make(map[string]Value), Parent: e}
}

// Lookup walks the parent chain for id.
func (e *Environment) Lookup(id string) (Value, bool) {
	for f := e; f != nil; f = f.Parent {
		if v, ok := f.bindings[id]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Bind writes to the local frame unconditionally, shadowing any outer
// binding of the same name.
func (e *Environment) Bind(id string, v Value) {
	e.bindings[id] = v
}

// Assign mutates the nearest enclosing frame that already defines id. It
// reports whether such a frame was found.
func (e *Environment) Assign(id string, v Value) bool {
	for f := e; f != nil; f = f.Parent {
		if _, ok := f.bindings[id]; ok {
			f.bindings[id] = v
			return true
		}
	}
	return false
}

// Extend returns a child frame binding each formal positionally to the
// corresponding argument. Arity mismatch is a caller-level error, not an
// environment error, so this only ever binds min(len(formals), len(args))
// pairs; the caller is expected to have already validated the lengths match.
func (e *Environment) Extend(formals []string, args []Value) *Environment {
	child := e.NewChild()
	for i, name := range formals {
		if i >= len(args) {
			break
		}
		child.Bind(name, args[i])
	}
	return child
}
