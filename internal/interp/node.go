package interp

import (
	"fmt"
	"strings"

	"github.com/JoshuaCrotts/MicroScheme/internal/number"
)

// NodeKind tags every syntax/value node in the interpreter. Syntax and data
// share one representation: evaluating a self-evaluating node yields the
// node itself, wrapped in a Value.
type NodeKind int

const (
	NKRoot NodeKind = iota
	NKSequence
	NKNumber
	NKString
	NKBoolean
	NKCharacter
	NKSymbol
	NKQuasisymbol // reserved: produced only by a quasiquote reader the grammar does not expose
	NKAnd
	NKOr
	NKList
	NKVector
	NKVariable
	NKCond
	NKLambda
	NKLetrec
	NKSet
	NKSetCar
	NKSetCdr
	NKSetVector
	NKDo
	NKDeclaration
	NKApplication
	NKApply
	NKEval
)

func (k NodeKind) String() string {
	switch k {
	case NKRoot:
		return "root"
	case NKSequence:
		return "sequence"
	case NKNumber:
		return "number"
	case NKString:
		return "string"
	case NKBoolean:
		return "boolean"
	case NKCharacter:
		return "char"
	case NKSymbol:
		return "symbol"
	case NKQuasisymbol:
		return "quasisymbol"
	case NKAnd:
		return "and"
	case NKOr:
		return "or"
	case NKList:
		return "list"
	case NKVector:
		return "vector"
	case NKVariable:
		return "variable"
	case NKCond:
		return "cond"
	case NKLambda:
		return "lambda"
	case NKLetrec:
		return "letrec"
	case NKSet:
		return "set!"
	case NKSetCar:
		return "set-car!"
	case NKSetCdr:
		return "set-cdr!"
	case NKSetVector:
		return "vector-set!"
	case NKDo:
		return "do"
	case NKDeclaration:
		return "declaration"
	case NKApplication:
		return "application"
	case NKApply:
		return "apply"
	case NKEval:
		return "eval"
	default:
		return "unknown"
	}
}

// Node is the single tagged variant for both AST and quoted data. Payload
// fields are kind-specific; Children holds ordered subnodes.
type Node struct {
	Kind     NodeKind
	Children []*Node

	Num   *number.Number // NKNumber
	Str   string         // NKString, NKSymbol, NKVariable, NKSet (target identifier), NKDeclaration (target identifier)
	Bool  bool           // NKBoolean
	Ch    rune           // NKCharacter

	// NKLambda: formal parameter names, positional.
	Params []string

	// NKDo bookkeeping: how many of the flattened children belong to the
	// declarations/step-expression groups (always equal in count) and to
	// the true-branch expressions; the test and body occupy the remaining
	// fixed slots. Layout: decls..., steps..., test, trueExprs..., body.
	DoDeclCount int
	DoTrueCount int
}

// emptyList is the one canonical empty-list value, shared by every use.
var emptyList = &Node{Kind: NKList}

// EmptyList returns the canonical empty list singleton.
func EmptyList() *Node { return emptyList }

// IsEmptyList reports whether n is the empty list.
func IsEmptyList(n *Node) bool {
	return n.Kind == NKList && len(n.Children) == 0
}

// Cons builds a two-slot list cell.
func Cons(car, cdr *Node) *Node {
	return &Node{Kind: NKList, Children: []*Node{car, cdr}}
}

// Car returns the car slot, or the empty list if absent.
func Car(n *Node) *Node {
	if len(n.Children) >= 1 {
		return n.Children[0]
	}
	return emptyList
}

// Cdr returns the cdr slot, or the empty list if absent.
func Cdr(n *Node) *Node {
	if len(n.Children) >= 2 {
		return n.Children[1]
	}
	return emptyList
}

// SetCar mutates the car slot in place, visible through every alias of n.
func SetCar(n *Node, v *Node) {
	if len(n.Children) >= 1 {
		n.Children[0] = v
	} else {
		n.Children = []*Node{v}
	}
}

// SetCdr mutates the cdr slot in place.
func SetCdr(n *Node, v *Node) {
	for len(n.Children) < 1 {
		n.Children = append(n.Children, emptyList)
	}
	if len(n.Children) >= 2 {
		n.Children[1] = v
	} else {
		n.Children = append(n.Children, v)
	}
}

// IsProper reports whether n's cdr chain terminates in the empty list. A
// cyclic list is treated as improper: a slow and a fast pointer walk the
// chain, and the walk stops when they meet instead of looping forever.
func IsProper(n *Node) bool {
	slow, fast := n, n
	for {
		if IsEmptyList(fast) {
			return true
		}
		if fast.Kind != NKList || len(fast.Children) == 0 {
			return false
		}
		if len(fast.Children) == 1 {
			return true
		}
		fast = Cdr(fast)
		if IsEmptyList(fast) {
			return true
		}
		if fast.Kind != NKList || len(fast.Children) == 0 {
			return false
		}
		if len(fast.Children) == 1 {
			return true
		}
		fast = Cdr(fast)
		slow = Cdr(slow)
		if fast == slow {
			return false // cycle
		}
	}
}

// ListToSlice walks a proper list into a Go slice of its elements.
func ListToSlice(n *Node) ([]*Node, bool) {
	var out []*Node
	for !IsEmptyList(n) {
		if n.Kind != NKList || len(n.Children) == 0 {
			return nil, false
		}
		out = append(out, Car(n))
		n = Cdr(n)
	}
	return out, true
}

// SliceToList builds a proper list from a Go slice, right to left.
func SliceToList(elems []*Node) *Node {
	result := emptyList
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// NewVector builds a VECTOR node from elements.
func NewVector(elems []*Node) *Node {
	return &Node{Kind: NKVector, Children: elems}
}

// NewNumber, NewString, NewBool and NewChar build self-evaluating literal nodes.
func NewNumber(n *number.Number) *Node { return &Node{Kind: NKNumber, Num: n} }
func NewString(s string) *Node         { return &Node{Kind: NKString, Str: s} }
func NewBool(b bool) *Node             { return &Node{Kind: NKBoolean, Bool: b} }
func NewChar(c rune) *Node             { return &Node{Kind: NKCharacter, Ch: c} }
func NewSymbol(s string) *Node         { return &Node{Kind: NKSymbol, Str: s} }

// Closure pairs a lambda node with the environment visible at its evaluation
// time (lexical capture).
type Closure struct {
	Lambda *Node
	Env    *Environment
}

// ValueKind distinguishes the three shapes a runtime Value can take.
type ValueKind int

const (
	VKData ValueKind = iota
	VKClosure
	VKPrimitive
)

// Value is what evaluation produces: quoted/self-evaluating data (a Node), a
// closure, or a reference to a named primitive procedure.
type Value struct {
	Kind      ValueKind
	Data      *Node
	Closure   *Closure
	Primitive string
}

func DataValue(n *Node) Value          { return Value{Kind: VKData, Data: n} }
func ClosureValue(c *Closure) Value    { return Value{Kind: VKClosure, Closure: c} }
func PrimitiveValue(name string) Value { return Value{Kind: VKPrimitive, Primitive: name} }

// Unspecified is returned by forms whose result is not observable
// (definitions, set!, empty sequences). It prints as nothing meaningful and
// is truthy like any other non-#f value.
var Unspecified = DataValue(EmptyList())

// Truthy implements MicroScheme's single falsey value: #f.
func (v Value) Truthy() bool {
	return !(v.Kind == VKData && v.Data.Kind == NKBoolean && !v.Data.Bool)
}

// IsProcedure reports whether v can be applied.
func (v Value) IsProcedure() bool {
	return v.Kind == VKClosure || v.Kind == VKPrimitive
}

// KindName names v's runtime type for error messages.
func (v Value) KindName() string {
	switch v.Kind {
	case VKClosure:
		return "procedure"
	case VKPrimitive:
		return "procedure"
	}
	switch v.Data.Kind {
	case NKNumber:
		return "number"
	case NKString:
		return "string"
	case NKBoolean:
		return "boolean"
	case NKCharacter:
		return "char"
	case NKSymbol, NKQuasisymbol:
		return "symbol"
	case NKList:
		return "pair"
	case NKVector:
		return "vector"
	default:
		return "value"
	}
}

// String renders v per the interpreter's output rules (§6): numbers trim
// trailing zeros, booleans print #t/#f, characters print raw, strings print
// without quotes, symbols print their identifier text, proper lists print
// space-joined, improper lists use dotted notation, vectors use #(...), and
// procedures print as an opaque marker.
func (v Value) String() string {
	switch v.Kind {
	case VKClosure:
		return "#<procedure>"
	case VKPrimitive:
		return fmt.Sprintf("#<procedure:%s>", v.Primitive)
	}
	return stringifyNode(v.Data, make(map[*Node]bool))
}

func stringifyNode(n *Node, seen map[*Node]bool) string {
	switch n.Kind {
	case NKNumber:
		return n.Num.String()
	case NKString:
		return n.Str
	case NKBoolean:
		if n.Bool {
			return "#t"
		}
		return "#f"
	case NKCharacter:
		return string(n.Ch)
	case NKSymbol, NKQuasisymbol, NKVariable:
		return n.Str
	case NKVector:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = stringifyNode(c, seen)
		}
		return "#(" + strings.Join(parts, " ") + ")"
	case NKList:
		if IsEmptyList(n) {
			return "()"
		}
		if seen[n] {
			return "..." // cycle guard; see open question on cyclic printing
		}
		seen[n] = true
		spine := []*Node{n}
		defer func() {
			for _, c := range spine {
				delete(seen, c)
			}
		}()

		var sb strings.Builder
		sb.WriteByte('(')
		cur := n
		first := true
		for {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			sb.WriteString(stringifyNode(Car(cur), seen))
			next := Cdr(cur)
			if IsEmptyList(next) {
				break
			}
			if next.Kind != NKList || len(next.Children) == 0 {
				sb.WriteString(" . ")
				sb.WriteString(stringifyNode(next, seen))
				break
			}
			if seen[next] {
				sb.WriteString(" . ...")
				break
			}
			seen[next] = true
			spine = append(spine, next)
			cur = next
		}
		sb.WriteByte(')')
		return sb.String()
	default:
		return "#<unknown>"
	}
}

// Equal implements eq?: identity for compound cells/vectors/closures,
// structural equality for atoms.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == VKClosure {
		return a.Closure == b.Closure
	}
	if a.Kind == VKPrimitive {
		return a.Primitive == b.Primitive
	}
	an, bn := a.Data, b.Data
	if an.Kind != bn.Kind {
		return false
	}
	switch an.Kind {
	case NKList, NKVector:
		if IsEmptyList(an) && IsEmptyList(bn) {
			return true
		}
		return an == bn
	default:
		return EqualStructural(a, b, make(map[*Node]*Node))
	}
}

// EqualStructural implements equal?: recursive structural comparison over
// lists and vectors, value comparison over atoms. Cyclic structures are
// guarded by a visited-pair map rather than looping forever (open question,
// see design notes on cycle handling).
func EqualStructural(a, b Value, visiting map[*Node]*Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == VKClosure {
		return a.Closure == b.Closure
	}
	if a.Kind == VKPrimitive {
		return a.Primitive == b.Primitive
	}
	return equalNodes(a.Data, b.Data, visiting)
}

func equalNodes(a, b *Node, visiting map[*Node]*Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NKNumber:
		return a.Num.Equal(b.Num)
	case NKString:
		return a.Str == b.Str
	case NKBoolean:
		return a.Bool == b.Bool
	case NKCharacter:
		return a.Ch == b.Ch
	case NKSymbol, NKQuasisymbol:
		return a.Str == b.Str
	case NKList:
		if IsEmptyList(a) != IsEmptyList(b) {
			return false
		}
		if IsEmptyList(a) {
			return true
		}
		if prior, ok := visiting[a]; ok {
			return prior == b
		}
		visiting[a] = b
		defer delete(visiting, a)
		return equalNodes(Car(a), Car(b), visiting) && equalNodes(Cdr(a), Cdr(b), visiting)
	case NKVector:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !equalNodes(a.Children[i], b.Children[i], visiting) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
