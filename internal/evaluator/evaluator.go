// Package evaluator implements the tree-walking evaluator of spec.md §4.3:
// evalNode's dispatch on node shape, and the head-value dispatch table for
// Eval nodes (NativeFunction, Closure, Bool-as-ternary, Type-as-cast,
// Function re-dispatch). Grounded on original_source/src/evaluator.rs's
// get(node, path, context) shape, generalized to the full dispatch table
// the draft left unimplemented, and on CWBudde-go-dws's tree-walking
// interpreter structure for the surrounding Go idiom (package boundary,
// error wrapping via the errors package equivalent).
package evaluator

import (
	"github.com/sty00a4/funx-go/internal/ast"
	"github.com/sty00a4/funx-go/internal/context"
	"github.com/sty00a4/funx-go/internal/ferrors"
	"github.com/sty00a4/funx-go/internal/token"
	"github.com/sty00a4/funx-go/internal/types"
	"github.com/sty00a4/funx-go/internal/values"
)

// Evaluator threads a Context through repeated evalNode calls and
// implements values.Interp so built-ins can re-enter evaluation.
type Evaluator struct {
	ctx *context.Context
}

// New creates an Evaluator rooted at path with the built-in prelude
// registered in its global scope (spec.md §4.5).
func New(path string) *Evaluator {
	e := &Evaluator{ctx: context.New(path)}
	registerBuiltins(e)
	return e
}

func (e *Evaluator) PushScope()            { e.ctx.PushScope() }
func (e *Evaluator) PopScope()             { e.ctx.PopScope() }
func (e *Evaluator) SetArgs(a []values.Value) { e.ctx.SetArgs(a) }
func (e *Evaluator) Def(name string, v values.Value) error { return e.ctx.Def(name, v) }
func (e *Evaluator) Var(name string, v values.Value) error { return e.ctx.Var(name, v) }
func (e *Evaluator) Set(name string, v values.Value) error { return e.ctx.Set(name, v) }
func (e *Evaluator) Get(name string) values.Value          { return e.ctx.Get(name) }
func (e *Evaluator) Path() string                          { return e.ctx.Path() }
func (e *Evaluator) SwapPath(path string) string           { return e.ctx.SwapPath(path) }
func (e *Evaluator) Trace(pos token.Position)              { e.ctx.Trace(pos) }

// Frames exposes the accumulated trace for the CLI's error rendering.
func (e *Evaluator) Frames() []ferrors.Frame { return e.ctx.Frames }

// EvalNode dispatches on node shape (spec.md §4.3).
func (e *Evaluator) EvalNode(node ast.Node) (values.Value, values.Flow, error) {
	switch n := node.(type) {
	case *ast.Null:
		return values.Null{}, values.FlowNone, nil
	case *ast.Wildcard:
		return values.Wildcard{}, values.FlowNone, nil
	case *ast.Int:
		return values.Int{Value: n.Value}, values.FlowNone, nil
	case *ast.Float:
		return values.Float{Value: n.Value}, values.FlowNone, nil
	case *ast.Bool:
		return values.Bool{Value: n.Value}, values.FlowNone, nil
	case *ast.String:
		return values.String{Value: n.Value}, values.FlowNone, nil
	case *ast.TypeLit:
		return values.Type{Value: n.Value}, values.FlowNone, nil
	case *ast.Word:
		return e.ctx.Get(n.Value), values.FlowNone, nil
	case *ast.Addr:
		return e.evalAddr(n)
	case *ast.Arg:
		return e.evalArg(n)
	case *ast.Closure:
		return values.Closure{Body: n.Child, Path: e.ctx.Path()}, values.FlowNone, nil
	case *ast.Pattern:
		return e.evalPattern(n)
	case *ast.Vector:
		return e.evalVector(n)
	case *ast.Body:
		return e.evalBody(n)
	case *ast.Eval:
		return e.evalEval(n)
	default:
		return values.Null{}, values.FlowNone, nil
	}
}

func (e *Evaluator) evalAddr(n *ast.Addr) (values.Value, values.Flow, error) {
	if w, ok := n.Child.(*ast.Word); ok {
		return values.Addr{Name: w.Value}, values.FlowNone, nil
	}
	v, _, err := e.EvalNode(n.Child)
	if err != nil {
		return nil, values.FlowNone, err
	}
	s, ok := v.(values.String)
	if !ok {
		e.ctx.Trace(n.Pos)
		return nil, values.FlowNone, ferrors.NewExpectedType(types.Scalar(types.String), v.Type())
	}
	return values.Addr{Name: s.Value}, values.FlowNone, nil
}

func (e *Evaluator) evalArg(n *ast.Arg) (values.Value, values.Flow, error) {
	v, _, err := e.EvalNode(n.Child)
	if err != nil {
		return nil, values.FlowNone, err
	}
	i, ok := v.(values.Int)
	if !ok {
		e.ctx.Trace(n.Pos)
		return nil, values.FlowNone, ferrors.NewExpectedType(types.Scalar(types.Int), v.Type())
	}
	return e.ctx.Arg(i.Value), values.FlowNone, nil
}

func (e *Evaluator) evalPattern(n *ast.Pattern) (values.Value, values.Flow, error) {
	ts := make([]types.Type, len(n.Children))
	for i, c := range n.Children {
		v, _, err := e.EvalNode(c)
		if err != nil {
			return nil, values.FlowNone, err
		}
		t, ok := v.(values.Type)
		if !ok {
			e.ctx.Trace(c.Position())
			return nil, values.FlowNone, ferrors.NewExpectedType(types.Scalar(types.TypeType), v.Type())
		}
		ts[i] = t.Value
	}
	return values.Pattern{Types: ts}, values.FlowNone, nil
}

func (e *Evaluator) evalVector(n *ast.Vector) (values.Value, values.Flow, error) {
	elems := make([]values.Value, len(n.Children))
	for i, c := range n.Children {
		v, _, err := e.EvalNode(c)
		if err != nil {
			return nil, values.FlowNone, err
		}
		elems[i] = v
	}
	return values.Vector{Elements: elems, Elem: values.ElemTypeOf(elems)}, values.FlowNone, nil
}

func (e *Evaluator) evalBody(n *ast.Body) (values.Value, values.Flow, error) {
	for _, stmt := range n.Statements {
		v, flow, err := e.EvalNode(stmt)
		if err != nil {
			return nil, values.FlowNone, err
		}
		if flow != values.FlowNone {
			return v, flow, nil
		}
	}
	return values.Null{}, values.FlowNone, nil
}

func (e *Evaluator) evalEval(n *ast.Eval) (values.Value, values.Flow, error) {
	if len(n.Children) == 0 {
		return values.Null{}, values.FlowNone, nil
	}
	headNode := n.Children[0]
	argNodes := n.Children[1:]

	args := make([]values.Value, len(argNodes))
	argTypes := make([]types.Type, len(argNodes))
	argPos := make([]token.Position, len(argNodes))
	for i, a := range argNodes {
		v, _, err := e.EvalNode(a)
		if err != nil {
			return nil, values.FlowNone, err
		}
		args[i] = v
		argTypes[i] = v.Type()
		argPos[i] = a.Position()
	}

	head, _, err := e.EvalNode(headNode)
	if err != nil {
		return nil, values.FlowNone, err
	}
	return e.Call(head, args, argTypes, argPos, n.Pos)
}

// Call implements the head-value dispatch table of spec.md §4.3.
func (e *Evaluator) Call(head values.Value, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	switch h := head.(type) {
	case values.NativeFunction:
		if h.Params != nil {
			var err error
			args, argTypes, err = e.checkPattern(*h.Params, args, argTypes, argPos, headPos)
			if err != nil {
				return nil, values.FlowNone, err
			}
		}
		return h.Fn(e, args, argTypes, argPos, headPos)

	case values.Closure:
		oldPath := e.ctx.SwapPath(h.Path)
		e.ctx.PushScope()
		e.ctx.SetArgs(args)
		v, flow, err := e.EvalNode(h.Body)
		e.ctx.PopScope()
		e.ctx.SwapPath(oldPath)
		return v, flow, err

	case values.Bool:
		if h.Value {
			if len(args) >= 1 {
				return args[0], values.FlowNone, nil
			}
			return h, values.FlowNone, nil
		}
		if len(args) >= 2 {
			return args[1], values.FlowNone, nil
		}
		return h, values.FlowNone, nil

	case values.Type:
		if len(args) == 0 {
			return h, values.FlowNone, nil
		}
		if h.Value.Kind == types.Function {
			pat, ok := args[0].(values.Pattern)
			if !ok {
				e.ctx.Trace(argPos[0])
				return nil, values.FlowNone, ferrors.NewExpectedType(types.Scalar(types.Pattern), argTypes[0])
			}
			var body values.Value = values.Null{}
			if len(args) > 1 {
				body = args[1]
			}
			return values.Function{Params: pat, Body: body}, values.FlowNone, nil
		}
		return values.Cast(h.Value, args[0]), values.FlowNone, nil

	case values.Function:
		checked, checkedTypes, err := e.checkPattern(h.Params, args, argTypes, argPos, headPos)
		if err != nil {
			return nil, values.FlowNone, err
		}
		return e.Call(h.Body, checked, checkedTypes, argPos, headPos)

	default:
		e.ctx.Trace(headPos)
		return nil, values.FlowNone, ferrors.NewHeadOperation(head.String(), head.Type())
	}
}

// checkPattern validates args against a declared Pattern, padding missing
// trailing arguments with Null up to the pattern's length (spec.md §4.3's
// "padding missing arguments" note, §9).
func (e *Evaluator) checkPattern(pat values.Pattern, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) ([]values.Value, []types.Type, error) {
	for len(args) < len(pat.Types) {
		args = append(args, values.Null{})
		argTypes = append(argTypes, types.Scalar(types.Undefined))
	}
	for i, declared := range pat.Types {
		if !types.Matches(declared, argTypes[i]) {
			pos := headPos
			if i < len(argPos) {
				pos = argPos[i]
			}
			e.ctx.Trace(pos)
			return nil, nil, ferrors.NewExpectedType(declared, argTypes[i])
		}
	}
	return args, argTypes, nil
}
