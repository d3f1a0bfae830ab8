package interp

import "fmt"

// Evaluator dispatches on node kind and implements every special form. The
// primitive registry is consulted as a fallback for unbound identifiers, so
// that `(define f +)` rebinds a primitive to a name and `(f 1 2)` still
// works uniformly (see design notes on primitive dispatch).
type Evaluator struct {
	Global     *Environment
	Primitives map[string]Primitive
}

// Primitive is a built-in procedure, called with eagerly evaluated arguments.
type Primitive func(args []Value) (Value, error)

// NewEvaluator wires a fresh global environment against the standard
// primitive library.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Global:     NewEnvironment(),
		Primitives: StandardPrimitives(),
	}
}

// Eval evaluates node in env, dispatching on its kind.
func (ev *Evaluator) Eval(node *Node, env *Environment) (Value, error) {
	switch node.Kind {
	case NKNumber, NKString, NKBoolean, NKCharacter:
		return DataValue(node), nil
	case NKList:
		return DataValue(node), nil
	case NKVector:
		return DataValue(node), nil
	case NKSymbol, NKQuasisymbol:
		return DataValue(node), nil
	case NKVariable:
		return ev.resolve(node.Str, env)
	case NKDeclaration:
		val, err := ev.Eval(node.Children[0], env)
		if err != nil {
			return Value{}, err
		}
		env.Bind(node.Str, val)
		return Unspecified, nil
	case NKSequence:
		return ev.evalSequence(node.Children, env)
	case NKCond:
		return ev.evalCond(node, env)
	case NKAnd:
		return ev.evalAnd(node, env)
	case NKOr:
		return ev.evalOr(node, env)
	case NKLambda:
		return ClosureValue(&Closure{Lambda: node, Env: env}), nil
	case NKLetrec:
		return ev.evalLetrec(node, env)
	case NKSet:
		return ev.evalSet(node, env)
	case NKSetCar:
		return ev.evalSetCar(node, env)
	case NKSetCdr:
		return ev.evalSetCdr(node, env)
	case NKSetVector:
		return ev.evalSetVector(node, env)
	case NKDo:
		return ev.evalDo(node, env)
	case NKApplication:
		return ev.evalApplicationNode(node, env)
	case NKApply:
		return ev.evalApply(node, env)
	case NKEval:
		return ev.evalEval(node, env)
	default:
		return Value{}, fmt.Errorf("unevaluable node kind: %s", node.Kind)
	}
}

func (ev *Evaluator) resolve(name string, env *Environment) (Value, error) {
	if v, ok := env.Lookup(name); ok {
		return v, nil
	}
	if _, ok := ev.Primitives[name]; ok {
		return PrimitiveValue(name), nil
	}
	return Value{}, &UnboundIdentifier{Name: name}
}

func (ev *Evaluator) evalSequence(forms []*Node, env *Environment) (Value, error) {
	if len(forms) == 0 {
		return Unspecified, nil
	}
	var result Value
	var err error
	for _, f := range forms {
		result, err = ev.Eval(f, env)
		if err != nil {
			return Value{}, err
		}
	}
	return result, nil
}

func (ev *Evaluator) evalCond(node *Node, env *Environment) (Value, error) {
	args := node.Children
	for i := 0; i+1 < len(args); i += 2 {
		test, err := ev.Eval(args[i], env)
		if err != nil {
			return Value{}, err
		}
		if test.Truthy() {
			return ev.Eval(args[i+1], env)
		}
	}
	if len(args)%2 == 1 {
		return ev.Eval(args[len(args)-1], env)
	}
	return Unspecified, nil
}

func (ev *Evaluator) evalAnd(node *Node, env *Environment) (Value, error) {
	result := Value{Kind: VKData, Data: NewBool(true)}
	for _, f := range node.Children {
		v, err := ev.Eval(f, env)
		if err != nil {
			return Value{}, err
		}
		if !v.Truthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func (ev *Evaluator) evalOr(node *Node, env *Environment) (Value, error) {
	for _, f := range node.Children {
		v, err := ev.Eval(f, env)
		if err != nil {
			return Value{}, err
		}
		if v.Truthy() {
			return v, nil
		}
	}
	return Value{Kind: VKData, Data: NewBool(false)}, nil
}

func (ev *Evaluator) evalLetrec(node *Node, env *Environment) (Value, error) {
	decls := node.Children[:len(node.Children)-1]
	body := node.Children[len(node.Children)-1]

	child := env.NewChild()
	for _, d := range decls {
		child.Bind(d.Str, Unspecified)
	}
	for _, d := range decls {
		val, err := ev.Eval(d.Children[0], child)
		if err != nil {
			return Value{}, err
		}
		child.Bind(d.Str, val)
	}
	return ev.Eval(body, child)
}

func (ev *Evaluator) evalSet(node *Node, env *Environment) (Value, error) {
	val, err := ev.Eval(node.Children[0], env)
	if err != nil {
		return Value{}, err
	}
	if !env.Assign(node.Str, val) {
		return Value{}, &SemanticError{Message: fmt.Sprintf("set!: unbound identifier: %s", node.Str)}
	}
	return Unspecified, nil
}

func (ev *Evaluator) evalSetCar(node *Node, env *Environment) (Value, error) {
	target, err := ev.Eval(node.Children[0], env)
	if err != nil {
		return Value{}, err
	}
	if target.Kind != VKData || target.Data.Kind != NKList || IsEmptyList(target.Data) {
		return Value{}, &TypeMismatch{Callee: "set-car!", Position: 1, Expected: "non-empty list", Actual: target.KindName()}
	}
	val, err := ev.Eval(node.Children[1], env)
	if err != nil {
		return Value{}, err
	}
	SetCar(target.Data, val.Data)
	return Unspecified, nil
}

func (ev *Evaluator) evalSetCdr(node *Node, env *Environment) (Value, error) {
	target, err := ev.Eval(node.Children[0], env)
	if err != nil {
		return Value{}, err
	}
	if target.Kind != VKData || target.Data.Kind != NKList || IsEmptyList(target.Data) {
		return Value{}, &TypeMismatch{Callee: "set-cdr!", Position: 1, Expected: "non-empty list", Actual: target.KindName()}
	}
	val, err := ev.Eval(node.Children[1], env)
	if err != nil {
		return Value{}, err
	}
	SetCdr(target.Data, val.Data)
	return Unspecified, nil
}

func (ev *Evaluator) evalSetVector(node *Node, env *Environment) (Value, error) {
	target, err := ev.Eval(node.Children[0], env)
	if err != nil {
		return Value{}, err
	}
	if target.Kind != VKData || target.Data.Kind != NKVector {
		return Value{}, &TypeMismatch{Callee: "vector-set!", Position: 1, Expected: "vector", Actual: target.KindName()}
	}
	idxVal, err := ev.Eval(node.Children[1], env)
	if err != nil {
		return Value{}, err
	}
	if idxVal.Kind != VKData || idxVal.Data.Kind != NKNumber || !idxVal.Data.Num.IsInteger() {
		return Value{}, &TypeMismatch{Callee: "vector-set!", Position: 2, Expected: "integer", Actual: idxVal.KindName()}
	}
	idx := int(idxVal.Data.Num.Int64())
	vec := target.Data
	if idx < 0 || idx >= len(vec.Children) {
		return Value{}, &DomainError{Callee: "vector-set!", Message: "index out of range"}
	}
	val, err := ev.Eval(node.Children[2], env)
	if err != nil {
		return Value{}, err
	}
	vec.Children[idx] = val.Data
	return Unspecified, nil
}

// evalDo implements the iterative loop form with an explicit Go for-loop so
// it never grows the host stack proportional to iteration count. Step
// expressions see the pre-step bindings: each round stages the new values
// before committing any of them (simultaneous assignment).
func (ev *Evaluator) evalDo(node *Node, env *Environment) (Value, error) {
	n := node.DoDeclCount
	decls := node.Children[:n]
	steps := node.Children[n : 2*n]
	test := node.Children[2*n]
	trueExprs := node.Children[2*n+1 : 2*n+1+node.DoTrueCount]
	body := node.Children[len(node.Children)-1]

	loopEnv := env.NewChild()
	for _, d := range decls {
		init, err := ev.Eval(d.Children[0], env)
		if err != nil {
			return Value{}, err
		}
		loopEnv.Bind(d.Str, init)
	}

	for {
		t, err := ev.Eval(test, loopEnv)
		if err != nil {
			return Value{}, err
		}
		if t.Truthy() {
			return ev.evalSequence(trueExprs, loopEnv)
		}
		if _, err := ev.Eval(body, loopEnv); err != nil {
			return Value{}, err
		}
		staged := make([]Value, n)
		for i, step := range steps {
			v, err := ev.Eval(step, loopEnv)
			if err != nil {
				return Value{}, err
			}
			staged[i] = v
		}
		for i, d := range decls {
			loopEnv.Bind(d.Str, staged[i])
		}
	}
}

func (ev *Evaluator) evalOperands(forms []*Node, env *Environment) ([]Value, error) {
	args := make([]Value, len(forms))
	for i, f := range forms {
		v, err := ev.Eval(f, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (ev *Evaluator) evalApplicationNode(node *Node, env *Environment) (Value, error) {
	opVal, err := ev.Eval(node.Children[0], env)
	if err != nil {
		return Value{}, err
	}
	args, err := ev.evalOperands(node.Children[1:], env)
	if err != nil {
		return Value{}, err
	}
	return ev.apply(opVal, args)
}

// evalDatumAsCode re-interprets a piece of quoted data as code: a symbol
// becomes a variable reference, a non-empty list becomes an application of
// its first element to the rest (each re-interpreted the same way), and
// every other data kind is self-evaluating. This is the re-entry semantics
// `eval` needs and is otherwise unreachable from ordinary evaluation, since
// the parser never produces a LIST node in operator position — applications
// always parse to NKApplication.
func (ev *Evaluator) evalDatumAsCode(n *Node, env *Environment) (Value, error) {
	switch n.Kind {
	case NKSymbol, NKQuasisymbol:
		return ev.resolve(n.Str, env)
	case NKList:
		if IsEmptyList(n) {
			return DataValue(n), nil
		}
		elems, proper := ListToSlice(n)
		if !proper {
			return Value{}, &SemanticError{Message: "eval: cannot apply an improper list"}
		}
		opVal, err := ev.evalDatumAsCode(elems[0], env)
		if err != nil {
			return Value{}, err
		}
		args := make([]Value, len(elems)-1)
		for i, a := range elems[1:] {
			v, err := ev.evalDatumAsCode(a, env)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return ev.apply(opVal, args)
	default:
		return DataValue(n), nil
	}
}

func (ev *Evaluator) apply(opVal Value, args []Value) (Value, error) {
	switch opVal.Kind {
	case VKPrimitive:
		fn, ok := ev.Primitives[opVal.Primitive]
		if !ok {
			return Value{}, &UnboundIdentifier{Name: opVal.Primitive}
		}
		return fn(args)
	case VKClosure:
		return ev.applyClosure(opVal.Closure, args)
	default:
		return Value{}, &SemanticError{Message: fmt.Sprintf("not applicable: %s", opVal.String())}
	}
}

// applyClosure performs ordinary (non-tail) application by recursing into
// Eval; general tail calls are allowed to grow the host stack per the
// specification — only `do` is required to loop without doing so.
func (ev *Evaluator) applyClosure(c *Closure, args []Value) (Value, error) {
	params := c.Lambda.Params
	if len(args) != len(params) {
		return Value{}, &ArityMismatch{Callee: "#<procedure>", Expected: fmt.Sprint(len(params)), Got: len(args)}
	}
	callEnv := c.Env.Extend(params, args)
	return ev.Eval(c.Lambda.Children[0], callEnv)
}

func (ev *Evaluator) evalApply(node *Node, env *Environment) (Value, error) {
	fnVal, err := ev.Eval(node.Children[0], env)
	if err != nil {
		return Value{}, err
	}
	if !fnVal.IsProcedure() {
		return Value{}, &SemanticError{Message: "apply: first argument must be a procedure"}
	}
	listVal, err := ev.Eval(node.Children[1], env)
	if err != nil {
		return Value{}, err
	}
	if listVal.Kind != VKData || listVal.Data.Kind != NKList {
		return Value{}, &SemanticError{Message: "apply: second argument must be a list"}
	}
	elems, proper := ListToSlice(listVal.Data)
	if !proper {
		return Value{}, &SemanticError{Message: "apply: second argument must be a proper list"}
	}
	args := make([]Value, len(elems))
	for i, e := range elems {
		args[i] = DataValue(e)
	}
	return ev.apply(fnVal, args)
}

// evalEval requires the argument to evaluate to a quoted datum, then
// re-enters the evaluator on that datum in the global environment.
func (ev *Evaluator) evalEval(node *Node, env *Environment) (Value, error) {
	datum, err := ev.Eval(node.Children[0], env)
	if err != nil {
		return Value{}, err
	}
	if datum.Kind != VKData {
		return Value{}, &SemanticError{Message: "eval: argument must evaluate to a quoted datum"}
	}
	return ev.evalDatumAsCode(datum.Data, ev.Global)
}

// EvalTopLevel iterates a ROOT node's children against the global
// environment. Each form's error is reported by the caller's choice; this
// returns the first error immediately so the caller can decide whether to
// continue with subsequent forms (driver policy).
func (ev *Evaluator) EvalTopLevel(root *Node) (Value, error) {
	return ev.evalSequence(root.Children, ev.Global)
}
