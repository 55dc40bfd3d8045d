package values

import (
	"testing"

	"github.com/sty00a4/funx-go/internal/types"
)

func TestCast(t *testing.T) {
	tests := []struct {
		name   string
		target types.Type
		v      Value
		want   Value
	}{
		{"any identity", types.Scalar(types.Any), String{"x"}, String{"x"}},
		{"undefined to null", types.Scalar(types.Undefined), Int{5}, Null{}},
		{"null to int", types.Scalar(types.Int), Null{}, Int{0}},
		{"float to int truncates", types.Scalar(types.Int), Float{3.9}, Int{3}},
		{"bool true to int", types.Scalar(types.Int), Bool{true}, Int{1}},
		{"bool false to int", types.Scalar(types.Int), Bool{false}, Int{0}},
		{"int to float", types.Scalar(types.Float), Int{2}, Float{2}},
		{"bool true to float", types.Scalar(types.Float), Bool{true}, Float{1}},
		{"zero int to bool", types.Scalar(types.Bool), Int{0}, Bool{false}},
		{"nonzero int to bool", types.Scalar(types.Bool), Int{1}, Bool{true}},
		{"int to string", types.Scalar(types.String), Int{42}, String{"42"}},
		{"string to addr", types.Scalar(types.Addr), String{"x"}, Addr{"x"}},
		{"value to type", types.Scalar(types.TypeType), Int{1}, Type{types.Scalar(types.Int)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cast(tt.target, tt.v)
			if !Equal(got, tt.want) {
				t.Errorf("Cast(%v, %v) = %v, want %v", tt.target, tt.v, got, tt.want)
			}
		})
	}
}
