package evaluator

import (
	"fmt"
	"os"
	"strings"

	"github.com/sty00a4/funx-go/internal/ferrors"
	"github.com/sty00a4/funx-go/internal/lexer"
	"github.com/sty00a4/funx-go/internal/parser"
	"github.com/sty00a4/funx-go/internal/token"
	"github.com/sty00a4/funx-go/internal/types"
	"github.com/sty00a4/funx-go/internal/values"
)

func scalar(k types.Kind) types.Type { return types.Scalar(k) }

func pattern(ts ...types.Type) *values.Pattern { p := values.Pattern{Types: ts}; return &p }

// someType is Exclusion[Undefined], the "some" alias of spec.md §4.5's
// `if` pattern: any value that is not the untyped Null.
func someType() types.Type {
	return types.ExclusionOf(scalar(types.Undefined))
}

func def(name string, params *values.Pattern, fn values.NativeFunc) values.NativeFunction {
	return values.NativeFunction{Name: name, Params: params, Fn: fn}
}

// registerBuiltins installs the global prelude of spec.md §4.5 directly
// into the Evaluator's Context, the way original_source pre-seeds its
// global Scope before running a file.
func registerBuiltins(e *Evaluator) {
	addrAny := pattern(scalar(types.Addr), scalar(types.Any))
	reg := func(nf values.NativeFunction) {
		_ = e.ctx.Def(nf.Name, nf)
	}

	reg(def("def", addrAny, biDef))
	reg(def("var", addrAny, biVar))
	reg(def("set", addrAny, biSet))
	reg(def("get", pattern(scalar(types.Addr)), biGet))
	reg(def("if", pattern(scalar(types.Bool), someType(), scalar(types.Any)), biIf))
	reg(def("while", pattern(types.UnionOf(scalar(types.Bool), scalar(types.Closure)), scalar(types.Closure)), biWhile))
	reg(def("+", nil, biAdd))
	reg(def("-", nil, biSub))
	reg(def("*", nil, biMul))
	reg(def("/", nil, biDiv))
	reg(def("=", nil, biEq))
	reg(def("lt", pattern(values.NumberType(), values.NumberType()), biLt))
	reg(def("gt", pattern(values.NumberType(), values.NumberType()), biGt))
	reg(def("union", nil, biUnion))
	reg(def("exclude", nil, biExclude))
	reg(def("print", nil, biPrint))
	reg(def("load", nil, biLoad))
	reg(def("assert", nil, biAssert))
}

func biDef(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	addr := args[0].(values.Addr)
	if err := ip.Def(addr.Name, args[1]); err != nil {
		ip.Trace(argPos[0])
		return nil, values.FlowNone, err
	}
	return values.Null{}, values.FlowNone, nil
}

func biVar(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	addr := args[0].(values.Addr)
	if err := ip.Var(addr.Name, args[1]); err != nil {
		ip.Trace(argPos[0])
		return nil, values.FlowNone, err
	}
	return values.Null{}, values.FlowNone, nil
}

func biSet(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	addr := args[0].(values.Addr)
	if err := ip.Set(addr.Name, args[1]); err != nil {
		ip.Trace(argPos[0])
		return nil, values.FlowNone, err
	}
	return values.Null{}, values.FlowNone, nil
}

func biGet(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	addr := args[0].(values.Addr)
	return ip.Get(addr.Name), values.FlowNone, nil
}

func biIf(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	cond := args[0].(values.Bool)
	branch := args[1]
	if !cond.Value {
		if len(args) > 2 {
			if _, isNull := args[2].(values.Null); !isNull {
				branch = args[2]
			} else {
				return values.Null{}, values.FlowNone, nil
			}
		} else {
			return values.Null{}, values.FlowNone, nil
		}
	}
	if cl, ok := branch.(values.Closure); ok {
		return ip.Call(cl, nil, nil, nil, headPos)
	}
	return branch, values.FlowNone, nil
}

func biWhile(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	cond := args[0]
	body := args[1]
	var last values.Value = values.Null{}
	for {
		var condVal values.Value = cond
		if cl, ok := cond.(values.Closure); ok {
			v, _, err := ip.Call(cl, nil, nil, nil, headPos)
			if err != nil {
				return nil, values.FlowNone, err
			}
			condVal = v
		}
		if !values.Truthy(condVal) {
			break
		}
		v, flow, err := ip.Call(body, nil, nil, nil, headPos)
		if err != nil {
			return nil, values.FlowNone, err
		}
		last = v
		switch flow {
		case values.FlowReturn:
			return v, values.FlowReturn, nil
		case values.FlowBreak:
			return v, values.FlowNone, nil
		}
	}
	return last, values.FlowNone, nil
}

func biAdd(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	if len(args) == 0 {
		return values.Null{}, values.FlowNone, nil
	}
	acc := args[0]
	for i, a := range args[1:] {
		sum, ok := values.Add(acc, a)
		if !ok {
			ip.Trace(argPos[i+1])
			return nil, values.FlowNone, ferrors.NewBinaryOperation(acc.Type(), a.Type())
		}
		acc = sum
	}
	return acc, values.FlowNone, nil
}

func biSub(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	if len(args) == 0 {
		return values.Null{}, values.FlowNone, nil
	}
	if len(args) == 1 {
		neg, ok := values.Neg(args[0])
		if !ok {
			ip.Trace(argPos[0])
			return nil, values.FlowNone, ferrors.NewUnaryOperation(args[0].Type())
		}
		return neg, values.FlowNone, nil
	}
	acc := args[0]
	for i, a := range args[1:] {
		d, ok := values.Sub(acc, a)
		if !ok {
			ip.Trace(argPos[i+1])
			return nil, values.FlowNone, ferrors.NewBinaryOperation(acc.Type(), a.Type())
		}
		acc = d
	}
	return acc, values.FlowNone, nil
}

func biMul(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	if len(args) == 0 {
		return values.Null{}, values.FlowNone, nil
	}
	acc := args[0]
	for i, a := range args[1:] {
		m, ok := values.Mul(acc, a)
		if !ok {
			ip.Trace(argPos[i+1])
			return nil, values.FlowNone, ferrors.NewBinaryOperation(acc.Type(), a.Type())
		}
		acc = m
	}
	return acc, values.FlowNone, nil
}

func biDiv(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	if len(args) == 0 {
		return values.Null{}, values.FlowNone, nil
	}
	acc := args[0]
	for i, a := range args[1:] {
		q, ok := values.Div(acc, a)
		if !ok {
			ip.Trace(argPos[i+1])
			return nil, values.FlowNone, ferrors.NewBinaryOperation(acc.Type(), a.Type())
		}
		acc = q
	}
	return acc, values.FlowNone, nil
}

func biEq(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	if len(args) <= 1 {
		return values.Bool{Value: false}, values.FlowNone, nil
	}
	for _, a := range args[1:] {
		if !values.Equal(args[0], a) {
			return values.Bool{Value: false}, values.FlowNone, nil
		}
	}
	return values.Bool{Value: true}, values.FlowNone, nil
}

func biLt(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	for i := 0; i+1 < len(args); i++ {
		ok, valid := values.Less(args[i], args[i+1])
		if !valid {
			ip.Trace(argPos[i])
			return nil, values.FlowNone, ferrors.NewBinaryOperation(args[i].Type(), args[i+1].Type())
		}
		if !ok {
			return values.Bool{Value: false}, values.FlowNone, nil
		}
	}
	return values.Bool{Value: true}, values.FlowNone, nil
}

func biGt(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	for i := 0; i+1 < len(args); i++ {
		ok, valid := values.Greater(args[i], args[i+1])
		if !valid {
			ip.Trace(argPos[i])
			return nil, values.FlowNone, ferrors.NewBinaryOperation(args[i].Type(), args[i+1].Type())
		}
		if !ok {
			return values.Bool{Value: false}, values.FlowNone, nil
		}
	}
	return values.Bool{Value: true}, values.FlowNone, nil
}

func biUnion(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	ts, err := typeArgs(ip, args, argPos)
	if err != nil {
		return nil, values.FlowNone, err
	}
	if len(ts) == 0 {
		return values.Type{Value: types.UnionOf(scalar(types.Any))}, values.FlowNone, nil
	}
	return values.Type{Value: types.UnionOf(ts...)}, values.FlowNone, nil
}

func biExclude(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	ts, err := typeArgs(ip, args, argPos)
	if err != nil {
		return nil, values.FlowNone, err
	}
	return values.Type{Value: types.ExclusionOf(ts...)}, values.FlowNone, nil
}

func typeArgs(ip values.Interp, args []values.Value, argPos []token.Position) ([]types.Type, error) {
	ts := make([]types.Type, len(args))
	for i, a := range args {
		t, ok := a.(values.Type)
		if !ok {
			ip.Trace(argPos[i])
			return nil, ferrors.NewExpectedType(scalar(types.TypeType), a.Type())
		}
		ts[i] = t.Value
	}
	return ts, nil
}

func biPrint(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Println(strings.Join(parts, " "))
	return values.Null{}, values.FlowNone, nil
}

func biLoad(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	if len(args) == 0 {
		ip.Trace(headPos)
		return nil, values.FlowNone, ferrors.NewExpectedType(scalar(types.String), scalar(types.Undefined))
	}
	path, ok := args[0].(values.String)
	if !ok {
		ip.Trace(argPos[0])
		return nil, values.FlowNone, ferrors.NewExpectedType(scalar(types.String), args[0].Type())
	}

	oldPath := ip.SwapPath(path.Value)
	v, err := evalFile(ip, path.Value)
	ip.SwapPath(oldPath)
	if err != nil {
		return nil, values.FlowNone, err
	}
	return v, values.FlowNone, nil
}

// evalFile reads, lexes, parses and evaluates the file at path against the
// interpreter's existing scope stack and global scope — `load`'s
// re-entry into the pipeline (spec.md §4.5).
func evalFile(ip values.Interp, path string) (values.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.NewFileNotFound(path)
	}
	tokens, err := lexer.Tokenize(string(data))
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	v, _, err := ip.EvalNode(root)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func biAssert(ip values.Interp, args []values.Value, argTypes []types.Type, argPos []token.Position, headPos token.Position) (values.Value, values.Flow, error) {
	if len(args) == 0 {
		return values.Null{}, values.FlowNone, nil
	}
	if b, ok := args[0].(values.Bool); ok && !b.Value {
		ip.Trace(argPos[0])
		return nil, values.FlowNone, ferrors.NewAssertError()
	}
	return values.Null{}, values.FlowNone, nil
}
