package evaluator

import (
	"testing"

	"github.com/sty00a4/funx-go/internal/lexer"
	"github.com/sty00a4/funx-go/internal/parser"
	"github.com/sty00a4/funx-go/internal/values"
)

// run lexes, parses and evaluates src against a fresh Evaluator rooted at a
// synthetic path, returning the final value.
func run(t *testing.T, src string) values.Value {
	t.Helper()
	v, _, err := runFull(t, src)
	if err != nil {
		t.Fatalf("eval(%q) error = %v", src, err)
	}
	return v
}

func runFull(t *testing.T, src string) (values.Value, values.Flow, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	node, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	e := New("<test>")
	return e.EvalNode(node)
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	_, _, err := runFull(t, src)
	return err
}
