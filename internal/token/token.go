// Package token defines the lexical tokens produced by the lexer and the
// source positions used by every diagnostic in the interpreter.
package token

import (
	"fmt"

	"github.com/sty00a4/funx-go/internal/types"
)

// Position is a half-open span in a source file, given as separate line and
// column ranges. Lines and columns are stored 0-based; String renders them
// 1-based to match the convention of compiler diagnostics.
type Position struct {
	StartLine, EndLine int
	StartCol, EndCol   int
}

// At returns a zero-width position at the given 0-based line/column.
func At(line, col int) Position {
	return Position{StartLine: line, EndLine: line, StartCol: col, EndCol: col}
}

// Span combines two positions into one covering both, taking the earlier
// start and the later end.
func Span(a, b Position) Position {
	p := a
	if b.EndLine > p.EndLine || (b.EndLine == p.EndLine && b.EndCol > p.EndCol) {
		p.EndLine, p.EndCol = b.EndLine, b.EndCol
	}
	if b.StartLine < p.StartLine || (b.StartLine == p.StartLine && b.StartCol < p.StartCol) {
		p.StartLine, p.StartCol = b.StartLine, b.StartCol
	}
	return p
}

// String renders "startLine:startCol - endLine:endCol" 1-based.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d - %d:%d", p.StartLine+1, p.StartCol+1, p.EndLine+1, p.EndCol+1)
}

// Kind identifies the lexical class of a token.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	EvalIn  // (
	EvalOut // )
	BodyIn  // {
	BodyOut // }
	PattIn  // <
	PattOut // >
	VecIn   // [
	VecOut  // ]

	Addr    // @
	Arg     // %
	Closure // #
	End     // ;

	Null
	Wildcard // _
	Bool
	Int
	Float
	String
	Word
	Type
)

var names = map[Kind]string{
	ILLEGAL:  "illegal token",
	EOF:      "end of file",
	EvalIn:   "'('",
	EvalOut:  "')'",
	BodyIn:   "'{'",
	BodyOut:  "'}'",
	PattIn:   "'<'",
	PattOut:  "'>'",
	VecIn:    "'['",
	VecOut:   "']'",
	Addr:     "'@'",
	Arg:      "'%'",
	Closure:  "'#'",
	End:      "';'",
	Null:     "'null'",
	Wildcard: "'_'",
	Bool:     "boolean",
	Int:      "int",
	Float:    "float",
	String:   "string",
	Word:     "word",
	Type:     "type",
}

// Name returns the human-readable name of a token kind, used when rendering
// UnexpectedToken errors.
func (k Kind) Name() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "?"
}

// Token is a single lexical unit: its kind, source span, and (for literal
// kinds) its decoded value.
type Token struct {
	Kind  Kind
	Pos   Position
	Str      string     // Word, String, Type (reserved keyword spelling)
	Int      int64      // Int
	Float    float64    // Float
	Bool     bool       // Bool
	TypeKind types.Kind // Type
}

// Name renders the token for error messages, matching the Kind.Name table
// except for literal/identifier kinds, which include their text.
func (t Token) Name() string {
	switch t.Kind {
	case Word, Type:
		return fmt.Sprintf("%s %q", t.Kind.Name(), t.Str)
	default:
		return t.Kind.Name()
	}
}

func (t Token) String() string {
	return t.Name()
}

// ReservedWords maps the reserved non-type word spellings to their token
// kind; "true" and "false" both map to Bool. Type keywords are listed in
// ReservedTypes instead.
var ReservedWords = map[string]Kind{
	"null":  Null,
	"_":     Wildcard,
	"true":  Bool,
	"false": Bool,
}

// ReservedTypes is the set of reserved type-keyword spellings (spec.md §6).
var ReservedTypes = map[string]bool{
	"undefined":      true,
	"any":            true,
	"int":            true,
	"float":          true,
	"bool":           true,
	"str":            true,
	"nativ-function": true,
	"function":       true,
	"addr":           true,
	"closure":        true,
	"pattern":        true,
	"type":           true,
}
