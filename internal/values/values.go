// Package values implements the runtime value domain of spec.md §3/§4.4:
// one struct per value constructor behind a common Value interface,
// following CWBudde-go-dws's internal/interp.Value struct-per-kind pattern,
// with the constructor set and Equal/Cast semantics grounded on
// original_source/src/values.rs.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sty00a4/funx-go/internal/ast"
	"github.com/sty00a4/funx-go/internal/token"
	"github.com/sty00a4/funx-go/internal/types"
)

// Value is implemented by every runtime value constructor.
type Value interface {
	Type() types.Type
	String() string
}

// Flow is the control-flow tag threaded alongside every evaluated value
// (spec.md §4.3).
type Flow int

const (
	FlowNone Flow = iota
	FlowReturn
	FlowBreak
	FlowContinue
)

// Interp is the subset of evaluator capability a NativeFunc needs: it lets
// built-ins re-enter evaluation (for, e.g., `if`/`while` invoking a
// Closure argument) and manipulate scope, without values importing context
// or evaluator and creating an import cycle.
type Interp interface {
	EvalNode(node ast.Node) (Value, Flow, error)
	// Call dispatches head as a callable exactly as the Eval node's head
	// dispatch would (spec.md §4.3's table), letting built-ins like
	// `if`/`while` invoke a Closure or Function argument they were
	// handed as a plain value.
	Call(head Value, args []Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (Value, Flow, error)
	PushScope()
	PopScope()
	SetArgs(args []Value)
	Def(name string, v Value) error
	Var(name string, v Value) error
	Set(name string, v Value) error
	Get(name string) Value
	Path() string
	SwapPath(path string) string
	Trace(pos token.Position)
}

// NativeFunc is the Go function backing a NativeFunction value. args and
// argTypes are parallel slices already padded with Null up to the
// callable's declared pattern length (spec.md §4.3's dispatch table);
// argPos holds positions only for the arguments actually written, so it
// can be shorter than args.
type NativeFunc func(ip Interp, args []Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (Value, Flow, error)

// ---- Null ----

type Null struct{}

func (Null) Type() types.Type { return types.Scalar(types.Undefined) }
func (Null) String() string   { return "null" }

// ---- Wildcard ----

type Wildcard struct{}

func (Wildcard) Type() types.Type { return types.Scalar(types.Any) }
func (Wildcard) String() string   { return "_" }

// ---- Int ----

type Int struct{ Value int64 }

func (Int) Type() types.Type { return types.Scalar(types.Int) }
func (v Int) String() string { return strconv.FormatInt(v.Value, 10) }

// ---- Float ----

type Float struct{ Value float64 }

func (Float) Type() types.Type { return types.Scalar(types.Float) }
func (v Float) String() string { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// ---- Bool ----

type Bool struct{ Value bool }

func (Bool) Type() types.Type { return types.Scalar(types.Bool) }
func (v Bool) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// ---- String ----

type String struct{ Value string }

func (String) Type() types.Type { return types.Scalar(types.String) }
func (v String) String() string { return v.Value }

// ---- Vector ----

// Vector holds its declared element type alongside its elements (spec.md
// §4.3's Vector evaluation rule: Any if empty, the shared type if uniform,
// else a Union of the distinct element types).
type Vector struct {
	Elements []Value
	Elem     types.Type
}

func (v Vector) Type() types.Type { return types.VectorOf(v.Elem) }
func (v Vector) String() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ElemTypeOf computes a Vector's declared element type from its evaluated
// elements per spec.md §4.3.
func ElemTypeOf(elems []Value) types.Type {
	if len(elems) == 0 {
		return types.Scalar(types.Any)
	}
	first := elems[0].Type()
	uniform := true
	seen := []types.Type{first}
	for _, e := range elems[1:] {
		t := e.Type()
		if !types.Equal(t, first) {
			uniform = false
		}
		dup := false
		for _, s := range seen {
			if types.Equal(s, t) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, t)
		}
	}
	if uniform {
		return first
	}
	return types.UnionOf(seen...)
}

// ---- Addr ----

// Addr is a quoted identifier: the syntactic name, unresolved (spec.md §3).
type Addr struct{ Name string }

func (Addr) Type() types.Type { return types.Scalar(types.Addr) }
func (v Addr) String() string { return "@" + v.Name }

// ---- Closure ----

// Closure captures only syntax and the defining file path; it is not a
// lexical closure over environment (spec.md's Design Note §9).
type Closure struct {
	Body ast.Node
	Path string
}

func (Closure) Type() types.Type { return types.Scalar(types.Closure) }
func (v Closure) String() string { return "#" + v.Body.String() }

// ---- Pattern ----

type Pattern struct{ Types []types.Type }

func (Pattern) Type() types.Type { return types.Scalar(types.Pattern) }
func (v Pattern) String() string {
	parts := make([]string, len(v.Types))
	for i, t := range v.Types {
		parts[i] = t.String()
	}
	return "<" + strings.Join(parts, " ") + ">"
}

// ---- NativeFunction ----

// NativeFunction carries an optional declared Pattern (Params == nil means
// variadic and unchecked, per spec.md §4.3) plus the Go function invoked on
// call.
type NativeFunction struct {
	Name   string
	Params *Pattern
	Fn     NativeFunc
}

func (NativeFunction) Type() types.Type { return types.Scalar(types.NativeFunction) }
func (v NativeFunction) String() string { return fmt.Sprintf("nativ-function:%s", v.Name) }

// ---- Function ----

// Function pairs a declared Pattern with a body value, itself re-dispatched
// on call — enabling curry-like chaining (spec.md §4.3, §9).
type Function struct {
	Params Pattern
	Body   Value
}

func (Function) Type() types.Type { return types.Scalar(types.Function) }
func (v Function) String() string { return fmt.Sprintf("function:%s", v.Params.String()) }

// ---- Type ----

type Type struct{ Value types.Type }

func (Type) Type() types.Type  { return types.Scalar(types.TypeType) }
func (v Type) String() string { return v.Value.String() }

// TypeOf reports a value's runtime Type, the generalisation of
// original_source/src/values.rs's V::typ().
func TypeOf(v Value) types.Type { return v.Type() }

// Equal implements spec.md §4.4's value equality: Wildcard equals anything,
// numeric equality crosses Int/Float, Type values compare with the
// types.Matches predicate (so union order is irrelevant and an Exclusion
// equals any type it does not list), NativeFunctions compare by identity
// of their Go function pointer (documented in spec.md §9 as not meaningful
// across rebuilds), Closures and Functions never compare equal, and
// everything else compares by constructor.
func Equal(a, b Value) bool {
	if _, ok := a.(Wildcard); ok {
		return true
	}
	if _, ok := b.(Wildcard); ok {
		return true
	}
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Int:
		switch y := b.(type) {
		case Int:
			return x.Value == y.Value
		case Float:
			return float64(x.Value) == y.Value
		}
		return false
	case Float:
		switch y := b.(type) {
		case Int:
			return x.Value == float64(y.Value)
		case Float:
			return x.Value == y.Value
		}
		return false
	case Bool:
		y, ok := b.(Bool)
		return ok && x.Value == y.Value
	case String:
		y, ok := b.(String)
		return ok && x.Value == y.Value
	case Addr:
		y, ok := b.(Addr)
		return ok && x.Name == y.Name
	case Type:
		y, ok := b.(Type)
		return ok && types.Matches(x.Value, y.Value)
	case Pattern:
		y, ok := b.(Pattern)
		if !ok || len(x.Types) != len(y.Types) {
			return false
		}
		for i := range x.Types {
			if !types.Equal(x.Types[i], y.Types[i]) {
				return false
			}
		}
		return true
	case Vector:
		y, ok := b.(Vector)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case NativeFunction:
		y, ok := b.(NativeFunction)
		if !ok {
			return false
		}
		return fmt.Sprintf("%p", x.Fn) == fmt.Sprintf("%p", y.Fn)
	default:
		return false
	}
}

// Truthy implements the "zero / empty is false" coercion rule used by
// Cast(Bool, ...) and by control-flow built-ins that accept a raw value
// where a Bool is expected.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Null:
		return false
	case Bool:
		return x.Value
	case Int:
		return x.Value != 0
	case Float:
		return x.Value != 0
	case String:
		return x.Value != ""
	case Vector:
		return len(x.Elements) != 0
	default:
		return true
	}
}
