package context

import (
	"testing"

	"github.com/sty00a4/funx-go/internal/values"
)

func TestDefAndGet(t *testing.T) {
	c := New("test.funx")
	if err := c.Def("x", values.Int{1}); err != nil {
		t.Fatalf("Def() error = %v", err)
	}
	if got := c.Get("x"); !values.Equal(got, values.Int{1}) {
		t.Errorf("Get(x) = %v, want Int{1}", got)
	}
}

func TestDefTwiceFails(t *testing.T) {
	c := New("test.funx")
	_ = c.Def("x", values.Int{1})
	if err := c.Def("x", values.Int{2}); err == nil {
		t.Fatal("Def() second call error = nil, want AlreadyDefined")
	}
}

func TestVarShadowingGlobalNameSucceeds(t *testing.T) {
	c := New("test.funx")
	_ = c.Def("x", values.Int{1})
	c.PushScope()
	defer c.PopScope()
	// Var is allowed to shadow a global binding (only lexical shadowing is
	// disallowed); this should succeed.
	if err := c.Var("x", values.Int{2}); err != nil {
		t.Fatalf("Var() shadowing global error = %v, want nil", err)
	}
	if got := c.Get("x"); !values.Equal(got, values.Int{2}) {
		t.Errorf("Get(x) = %v, want Int{2} (innermost wins)", got)
	}
}

func TestVarRedeclarationInSameScopeFails(t *testing.T) {
	c := New("test.funx")
	c.PushScope()
	defer c.PopScope()
	_ = c.Var("x", values.Int{1})
	if err := c.Var("x", values.Int{2}); err == nil {
		t.Fatal("Var() redeclaration error = nil, want AlreadyDefined")
	}
}

func TestSetMutatesNearestLexicalBinding(t *testing.T) {
	c := New("test.funx")
	c.PushScope()
	defer c.PopScope()
	_ = c.Var("x", values.Int{1})
	if err := c.Set("x", values.Int{2}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := c.Get("x"); !values.Equal(got, values.Int{2}) {
		t.Errorf("Get(x) = %v, want Int{2}", got)
	}
}

func TestSetGlobalIsImmutable(t *testing.T) {
	c := New("test.funx")
	_ = c.Def("x", values.Int{1})
	if err := c.Set("x", values.Int{2}); err == nil {
		t.Fatal("Set() on global error = nil, want Immutable")
	}
}

func TestSetUndefinedFails(t *testing.T) {
	c := New("test.funx")
	if err := c.Set("nope", values.Int{1}); err == nil {
		t.Fatal("Set() on undefined name error = nil, want NotDefined")
	}
}

func TestGetUndefinedReturnsNull(t *testing.T) {
	c := New("test.funx")
	got := c.Get("nope")
	if _, ok := got.(values.Null); !ok {
		t.Errorf("Get(undefined) = %v, want Null", got)
	}
}

func TestScopeStackPopRestoresOuterBinding(t *testing.T) {
	c := New("test.funx")
	_ = c.Def("x", values.Int{1})
	c.PushScope()
	_ = c.Var("x", values.Int{2})
	c.PopScope()
	if got := c.Get("x"); !values.Equal(got, values.Int{1}) {
		t.Errorf("Get(x) after PopScope = %v, want Int{1}", got)
	}
}

func TestPopScopeWithNoneIsNoop(t *testing.T) {
	c := New("test.funx")
	c.PopScope() // must not panic
}

func TestArgsOutOfRangeReturnsNull(t *testing.T) {
	c := New("test.funx")
	c.SetArgs([]values.Value{values.Int{1}})
	if got := c.Arg(5); !values.Equal(got, values.Null{}) {
		t.Errorf("Arg(5) = %v, want Null", got)
	}
	if got := c.Arg(0); !values.Equal(got, values.Int{1}) {
		t.Errorf("Arg(0) = %v, want Int{1}", got)
	}
}

func TestSwapPath(t *testing.T) {
	c := New("a.funx")
	old := c.SwapPath("b.funx")
	if old != "a.funx" {
		t.Errorf("SwapPath() returned %q, want %q", old, "a.funx")
	}
	if c.Path() != "b.funx" {
		t.Errorf("Path() = %q, want %q", c.Path(), "b.funx")
	}
}
