// Package ferrors implements the Funx error-kind table and the trace
// rendering of spec.md §7, grounded on CWBudde-go-dws's
// internal/errors.CompilerError (message + source excerpt + position) and
// internal/errors.StackTrace (ordered frames), generalized to spec.md's
// Context-carried trace of (Position, path) pairs.
package ferrors

import (
	"fmt"
	"strings"

	"github.com/sty00a4/funx-go/internal/token"
	"github.com/sty00a4/funx-go/internal/types"
)

// Kind enumerates the error variants of spec.md §7.
type Kind int

const (
	TargetNotFound Kind = iota
	FileNotFound
	Char
	UnexpectedToken
	HeadOperation
	ExpectedType
	NotDefined
	AlreadyDefined
	Immutable
	BinaryOperation
	UnaryOperation
	PatternMismatch
	ExpectedLen
	AssertError
)

// Frame is one entry of the Context trace: the span of the node being
// evaluated when the error propagated through it, and the file it belongs
// to (a Closure's defining path may differ from the caller's).
type Frame struct {
	Pos  token.Position
	Path string
}

// Error is the single error sum of spec.md §7. Only the fields relevant to
// Kind are populated; callers build one with the New* constructors below.
// Pos is the error's own origin position — known even to the lexer and
// parser, which run before any Context exists. Evaluator-raised errors
// additionally accumulate a path-qualified Frame trace in the Context as
// they unwind (see internal/context.Context.Trace); the CLI renders that
// trace when present and falls back to Pos otherwise.
type Error struct {
	Kind Kind
	Pos  token.Position

	Str       string // TargetNotFound/FileNotFound path, Char/UnexpectedToken token text, NotDefined/AlreadyDefined/Immutable name
	Type1     types.Type
	Type2     types.Type
	HeadValue string // display form of the offending head value

	ExpectedLen int
	ReceivedLen int
}

// New creates an Error of the given kind at the given origin position; the
// caller typically chains a With* method.
func New(kind Kind, pos token.Position) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func (e *Error) WithStr(s string) *Error {
	e.Str = s
	return e
}

func NewExpectedType(expected, received types.Type) *Error {
	return &Error{Kind: ExpectedType, Type1: expected, Type2: received}
}

func NewBinaryOperation(t1, t2 types.Type) *Error {
	return &Error{Kind: BinaryOperation, Type1: t1, Type2: t2}
}

func NewUnaryOperation(t types.Type) *Error {
	return &Error{Kind: UnaryOperation, Type1: t}
}

func NewHeadOperation(display string, t types.Type) *Error {
	return &Error{Kind: HeadOperation, HeadValue: display, Type1: t}
}

func NewExpectedLen(expected, received int) *Error {
	return &Error{Kind: ExpectedLen, ExpectedLen: expected, ReceivedLen: received}
}

func NewNotDefined(name string) *Error    { return &Error{Kind: NotDefined, Str: name} }
func NewAlreadyDefined(name string) *Error { return &Error{Kind: AlreadyDefined, Str: name} }
func NewImmutable(name string) *Error      { return &Error{Kind: Immutable, Str: name} }
func NewAssertError() *Error               { return &Error{Kind: AssertError} }
func NewFileNotFound(path string) *Error   { return &Error{Kind: FileNotFound, Str: path} }
func NewTargetNotFound(path string) *Error { return &Error{Kind: TargetNotFound, Str: path} }
func NewUnexpectedToken(tok token.Token) *Error {
	return &Error{Kind: UnexpectedToken, Str: tok.Name(), Pos: tok.Pos}
}
func NewChar(s string) *Error { return &Error{Kind: Char, Str: s} }

// message renders the error's own line, matching spec.md §7's kind table
// (and the wording of original_source/src/error.rs's Display impl).
func (e *Error) message() string {
	switch e.Kind {
	case TargetNotFound:
		return fmt.Sprintf("ERROR: target file %q could not be found", e.Str)
	case FileNotFound:
		return fmt.Sprintf("ERROR: file %q could not be found", e.Str)
	case Char:
		return fmt.Sprintf("ERROR: bad character %q", e.Str)
	case UnexpectedToken:
		return fmt.Sprintf("ERROR: unexpected %s", e.Str)
	case HeadOperation:
		return fmt.Sprintf("ERROR: unexpected %s as head operation", e.Type1)
	case ExpectedType:
		return fmt.Sprintf("ERROR: expected type %s but got type %s", e.Type1, e.Type2)
	case NotDefined:
		return fmt.Sprintf("ERROR: word %s is not defined", e.Str)
	case AlreadyDefined:
		return fmt.Sprintf("ERROR: word %s is already defined", e.Str)
	case Immutable:
		return fmt.Sprintf("ERROR: word %s is immutable", e.Str)
	case BinaryOperation:
		return fmt.Sprintf("ERROR: illegal operation between type %s and type %s", e.Type1, e.Type2)
	case UnaryOperation:
		return fmt.Sprintf("ERROR: illegal operation on type %s", e.Type1)
	case PatternMismatch:
		return "ERROR: pattern does not match"
	case ExpectedLen:
		return fmt.Sprintf("ERROR: expected pattern to be at least of length %d not %d", e.ExpectedLen, e.ReceivedLen)
	case AssertError:
		return "ERROR: assertion is false"
	default:
		return "ERROR: unknown error"
	}
}

func (e *Error) Error() string { return e.message() }

// SourceLookup resolves a file path to its full text for excerpt
// rendering; the CLI wires this to os.ReadFile, tests wire it to an
// in-memory map.
type SourceLookup func(path string) (string, bool)

// Format renders the error exactly as spec.md §7 specifies: the error's own
// line, then for each trace frame "<path>:<startLine>:<startCol> -
// <endLine>:<endCol>" followed by the source excerpt spanning the frame.
// When color is true, the message and the source excerpts are ANSI-highlighted, the way
// CWBudde-go-dws's CompilerError.Format(color bool) does. frames is the
// Context-accumulated trace; when empty (lexer/parser errors, which run
// before any Context exists), path stands in for the single frame at e.Pos.
func (e *Error) Format(color bool, frames []Frame, path string, lookup SourceLookup) string {
	var sb strings.Builder
	writeColored(&sb, color, "1;31", e.message())
	sb.WriteByte('\n')

	if len(frames) == 0 {
		frames = []Frame{{Pos: e.Pos, Path: path}}
	}

	for _, frame := range frames {
		sb.WriteString(fmt.Sprintf("%s:%s\n", frame.Path, frame.Pos))
		if lookup == nil {
			continue
		}
		text, ok := lookup(frame.Path)
		if !ok || text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		start, end := frame.Pos.StartLine, frame.Pos.EndLine
		if start < 0 {
			start = 0
		}
		if end >= len(lines) {
			end = len(lines) - 1
		}
		if start > end || start >= len(lines) {
			continue
		}
		writeColored(&sb, color, "2", strings.Join(lines[start:end+1], "\n"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeColored(sb *strings.Builder, color bool, code, text string) {
	if color {
		sb.WriteString("\033[" + code + "m")
	}
	sb.WriteString(text)
	if color {
		sb.WriteString("\033[0m")
	}
}
