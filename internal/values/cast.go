package values

import (
	"github.com/sty00a4/funx-go/internal/types"
)

// Cast implements Type.cast(value) of spec.md §4.4.
func Cast(target types.Type, v Value) Value {
	switch target.Kind {
	case types.Any:
		return v
	case types.Undefined:
		return Null{}
	case types.Int:
		switch x := v.(type) {
		case Null:
			return Int{0}
		case Int:
			return x
		case Float:
			return Int{int64(x.Value)}
		case Bool:
			if x.Value {
				return Int{1}
			}
			return Int{0}
		}
		return Null{}
	case types.Float:
		switch x := v.(type) {
		case Null:
			return Float{0}
		case Int:
			return Float{float64(x.Value)}
		case Float:
			return x
		case Bool:
			if x.Value {
				return Float{1}
			}
			return Float{0}
		}
		return Null{}
	case types.Bool:
		return Bool{Truthy(v)}
	case types.String:
		return String{v.String()}
	case types.Addr:
		return Addr{v.String()}
	case types.TypeType:
		return Type{v.Type()}
	default:
		return Null{}
	}
}
