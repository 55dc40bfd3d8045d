package types

import "testing"

func TestScalarString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Undefined, "undefined"},
		{Any, "any"},
		{Int, "int"},
		{Float, "float"},
		{Bool, "bool"},
		{String, "str"},
		{Addr, "addr"},
		{Closure, "closure"},
		{Pattern, "pattern"},
		{NativeFunction, "nativ-function"},
		{Function, "function"},
		{TypeType, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Scalar(tt.kind).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVectorOfString(t *testing.T) {
	got := VectorOf(Scalar(Int)).String()
	want := "vector<int>"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same scalar", Scalar(Int), Scalar(Int), true},
		{"different scalar", Scalar(Int), Scalar(Float), false},
		{"same vector", VectorOf(Scalar(Int)), VectorOf(Scalar(Int)), true},
		{"different vector elem", VectorOf(Scalar(Int)), VectorOf(Scalar(Float)), false},
		{"union order independent", UnionOf(Scalar(Int), Scalar(Bool)), UnionOf(Scalar(Bool), Scalar(Int)), true},
		{"union different length", UnionOf(Scalar(Int)), UnionOf(Scalar(Int), Scalar(Bool)), false},
		{"any is not equal to int", Scalar(Any), Scalar(Int), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"any matches anything", Scalar(Any), Scalar(Int), true},
		{"anything matches any", Scalar(Int), Scalar(Any), true},
		{"same scalar matches", Scalar(Int), Scalar(Int), true},
		{"different scalar doesn't match", Scalar(Int), Scalar(Float), false},
		{"union matches member", UnionOf(Scalar(Int), Scalar(Float)), Scalar(Int), true},
		{"member matches union", Scalar(Float), UnionOf(Scalar(Int), Scalar(Float)), true},
		{"union doesn't match non-member", UnionOf(Scalar(Int), Scalar(Float)), Scalar(Bool), false},
		{"exclusion matches non-member", ExclusionOf(Scalar(Undefined)), Scalar(Int), true},
		{"exclusion doesn't match member", ExclusionOf(Scalar(Undefined)), Scalar(Undefined), false},
		{"two exclusions always match", ExclusionOf(Scalar(Int)), ExclusionOf(Scalar(Bool)), true},
		{"vector matches by element", VectorOf(Scalar(Int)), VectorOf(Scalar(Int)), true},
		{"vector mismatched element", VectorOf(Scalar(Int)), VectorOf(Scalar(Bool)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.a, tt.b); got != tt.want {
				t.Errorf("Matches(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
