// Package types implements the Funx type universe: a closed algebraic sum
// with structural set types (Union, Exclusion) that participate in a
// Matches relation instead of plain equality (spec.md §3).
package types

import "strings"

// Kind identifies the type constructor.
type Kind int

const (
	Undefined Kind = iota
	Any
	Int
	Float
	Bool
	String
	Vector
	Addr
	Closure
	Pattern
	NativeFunction
	Function
	TypeType // the type of a Type value itself ("type")
	Union
	Exclusion
)

var scalarNames = map[Kind]string{
	Undefined:      "undefined",
	Any:            "any",
	Int:            "int",
	Float:          "float",
	Bool:           "bool",
	String:         "str",
	Addr:           "addr",
	Closure:        "closure",
	Pattern:        "pattern",
	NativeFunction: "nativ-function",
	Function:       "function",
	TypeType:       "type",
}

// Type is the runtime representation of a Funx type, itself a first-class
// value (spec.md §3). Vector carries one Elem; Union/Exclusion carry a list
// of member types.
type Type struct {
	Kind    Kind
	Elem    *Type  // Vector element type
	Members []Type // Union / Exclusion members
}

func Scalar(k Kind) Type { return Type{Kind: k} }

func VectorOf(elem Type) Type { return Type{Kind: Vector, Elem: &elem} }

func UnionOf(members ...Type) Type { return Type{Kind: Union, Members: members} }

func ExclusionOf(members ...Type) Type { return Type{Kind: Exclusion, Members: members} }

// String renders the type the way the source spells it, used both for
// display and for error messages (spec.md §7's ExpectedType rendering).
func (t Type) String() string {
	switch t.Kind {
	case Vector:
		return "vector<" + t.Elem.String() + ">"
	case Union:
		return joinMembers(t.Members, "|")
	case Exclusion:
		return "!" + joinMembers(t.Members, "|")
	default:
		if n, ok := scalarNames[t.Kind]; ok {
			return n
		}
		return "?"
	}
}

func joinMembers(members []Type, sep string) string {
	var sb strings.Builder
	for i, m := range members {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Equal is plain structural equality, distinct from the asymmetric Matches
// predicate below. It is what tests should use when they mean "the same
// type", per the Open Question in spec.md §9 ("type equality is a match
// predicate... expose it as a named predicate and provide real structural
// equality separately").
func Equal(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Vector:
		return Equal(*a.Elem, *b.Elem)
	case Union, Exclusion:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for _, m := range a.Members {
			if !containsEqual(b.Members, m) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func containsEqual(members []Type, t Type) bool {
	for _, m := range members {
		if Equal(m, t) {
			return true
		}
	}
	return false
}

func containsMatch(members []Type, t Type) bool {
	for _, m := range members {
		if Matches(m, t) {
			return true
		}
	}
	return false
}

// Matches implements the asymmetric "type equality" relation of spec.md §3:
// Any matches everything; Union matches by set membership (two unions match
// iff each element of one is present in the other); Exclusion matches
// anything not a member. It is not transitive in the presence of Any and is
// deliberately not named Equal (see the Open Question above).
func Matches(a, b Type) bool {
	if a.Kind == Any || b.Kind == Any {
		return true
	}
	if a.Kind == Union {
		if b.Kind == Union {
			return unionsMatch(a.Members, b.Members)
		}
		return containsMatch(a.Members, b)
	}
	if b.Kind == Union {
		return containsMatch(b.Members, a)
	}
	if a.Kind == Exclusion {
		if b.Kind == Exclusion {
			return true
		}
		return !containsMatch(a.Members, b)
	}
	if b.Kind == Exclusion {
		return !containsMatch(b.Members, a)
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == Vector {
		return Matches(*a.Elem, *b.Elem)
	}
	return true
}

func unionsMatch(xs, ys []Type) bool {
	for _, x := range xs {
		if !containsMatch(ys, x) {
			return false
		}
	}
	for _, y := range ys {
		if !containsMatch(xs, y) {
			return false
		}
	}
	return true
}
