package values

import "github.com/sty00a4/funx-go/internal/types"

// Add implements spec.md §4.4's `+`: Int+Int -> Int, any Int/Float mix ->
// Float, String+String -> concatenation. ok is false for any other pair,
// leaving the caller (the `+` built-in) to raise BinaryOperation.
func Add(a, b Value) (Value, bool) {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return Int{x.Value + y.Value}, true
		case Float:
			return Float{float64(x.Value) + y.Value}, true
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return Float{x.Value + float64(y.Value)}, true
		case Float:
			return Float{x.Value + y.Value}, true
		}
	case String:
		if y, ok := b.(String); ok {
			return String{x.Value + y.Value}, true
		}
	}
	return nil, false
}

// Sub implements `-` on numeric pairs only.
func Sub(a, b Value) (Value, bool) {
	return numericOp(a, b, func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y })
}

// Mul implements `*` on numeric pairs only.
func Mul(a, b Value) (Value, bool) {
	return numericOp(a, b, func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y })
}

func numericOp(a, b Value, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) (Value, bool) {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return Int{intOp(x.Value, y.Value)}, true
		case Float:
			return Float{floatOp(float64(x.Value), y.Value)}, true
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return Float{floatOp(x.Value, float64(y.Value))}, true
		case Float:
			return Float{floatOp(x.Value, y.Value)}, true
		}
	}
	return nil, false
}

// Div implements `/`, which always yields a Float (spec.md §4.4).
func Div(a, b Value) (Value, bool) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return nil, false
	}
	return Float{af / bf}, true
}

// Neg implements unary `-`.
func Neg(a Value) (Value, bool) {
	switch x := a.(type) {
	case Int:
		return Int{-x.Value}, true
	case Float:
		return Float{-x.Value}, true
	}
	return nil, false
}

func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Int:
		return float64(x.Value), true
	case Float:
		return x.Value, true
	}
	return 0, false
}

// NumberType is the `number` pattern alias used by `lt`/`gt` (spec.md
// §4.5): Union[Int,Float].
func NumberType() types.Type {
	return types.UnionOf(types.Scalar(types.Int), types.Scalar(types.Float))
}

// Less implements the `<` relation on a numeric pair.
func Less(a, b Value) (bool, bool) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return false, false
	}
	return af < bf, true
}

// Greater implements the `>` relation on a numeric pair.
func Greater(a, b Value) (bool, bool) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return false, false
	}
	return af > bf, true
}
