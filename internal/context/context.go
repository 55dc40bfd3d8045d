// Package context implements the scope stack, global scope and call trace
// of spec.md §3/§4.4, grounded on original_source/src/context.rs's
// Scope/Context pair and generalized with the named scope operations
// (def/var/set/get) of spec.md §4.4. Unlike CWBudde-go-dws's
// internal/interp.Environment, scopes here carry no sync.RWMutex: spec.md
// §5 rules out concurrency, so the mutex would guard nothing.
package context

import (
	"github.com/sty00a4/funx-go/internal/ferrors"
	"github.com/sty00a4/funx-go/internal/token"
	"github.com/sty00a4/funx-go/internal/values"
)

// scope is one lexical level: named bindings plus the positional argument
// vector the level was entered with.
type scope struct {
	vars map[string]values.Value
	args []values.Value
}

func newScope() *scope {
	return &scope{vars: map[string]values.Value{}}
}

// Context owns the current file path, the lexical scope stack, the
// distinguished global scope, and the trace of frames an error accumulates
// as it unwinds (spec.md §3).
type Context struct {
	scopes []*scope
	global *scope
	path   string
	Frames []ferrors.Frame
}

// New creates a Context rooted at path with only the global scope active.
func New(path string) *Context {
	return &Context{global: newScope(), path: path}
}

// PushScope enters a new lexical level, e.g. on a Closure call.
func (c *Context) PushScope() { c.scopes = append(c.scopes, newScope()) }

// PopScope leaves the innermost lexical level. It is a no-op if called
// with no scope pushed, so defer PopScope() is always safe after a
// corresponding PushScope() even on an error return path.
func (c *Context) PopScope() {
	if len(c.scopes) == 0 {
		return
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// SetArgs installs the positional argument vector of the innermost scope.
func (c *Context) SetArgs(args []values.Value) {
	if len(c.scopes) == 0 {
		c.global.args = args
		return
	}
	c.scopes[len(c.scopes)-1].args = args
}

// Arg reads positional argument i from the innermost scope; out-of-range
// returns Null (spec.md §4.3's Arg node rule).
func (c *Context) Arg(i int64) values.Value {
	var args []values.Value
	if len(c.scopes) == 0 {
		args = c.global.args
	} else {
		args = c.scopes[len(c.scopes)-1].args
	}
	if i < 0 || int(i) >= len(args) {
		return values.Null{}
	}
	return args[i]
}

// Def binds name in the global scope. Fails AlreadyDefined if present.
func (c *Context) Def(name string, v values.Value) error {
	if _, ok := c.global.vars[name]; ok {
		return ferrors.NewAlreadyDefined(name)
	}
	c.global.vars[name] = v
	return nil
}

// visibleLexically reports whether name is bound in any lexical (non-
// global) scope.
func (c *Context) visibleLexically(name string) bool {
	for _, s := range c.scopes {
		if _, ok := s.vars[name]; ok {
			return true
		}
	}
	return false
}

// Var binds name in the innermost scope. Fails AlreadyDefined if the name
// is already visible in any lexical scope — shadowing is disallowed at
// declaration (spec.md §4.4, testable property 2).
func (c *Context) Var(name string, v values.Value) error {
	if c.visibleLexically(name) {
		return ferrors.NewAlreadyDefined(name)
	}
	if len(c.scopes) == 0 {
		// No lexical scope active: behaves like def (used for top-level
		// var statements outside any closure).
		return c.Def(name, v)
	}
	c.scopes[len(c.scopes)-1].vars[name] = v
	return nil
}

// Set mutates the nearest lexical binding. Fails NotDefined if no lexical
// or global binding exists; fails Immutable if the name resolves to the
// global scope (spec.md §4.4, testable property 3).
func (c *Context) Set(name string, v values.Value) error {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if _, ok := c.scopes[i].vars[name]; ok {
			c.scopes[i].vars[name] = v
			return nil
		}
	}
	if _, ok := c.global.vars[name]; ok {
		return ferrors.NewImmutable(name)
	}
	return ferrors.NewNotDefined(name)
}

// Get resolves name: innermost lexical hit wins, falling back to global,
// falling back to Null (spec.md §4.4).
func (c *Context) Get(name string) values.Value {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i].vars[name]; ok {
			return v
		}
	}
	if v, ok := c.global.vars[name]; ok {
		return v
	}
	return values.Null{}
}

// Path returns the file path currently being evaluated.
func (c *Context) Path() string { return c.path }

// SwapPath installs a new current path (used by `load` and by Closure
// calls restoring the defining path) and returns the previous one so the
// caller can restore it.
func (c *Context) SwapPath(path string) string {
	old := c.path
	c.path = path
	return old
}

// Trace appends a (position, path) frame as an error unwinds through the
// current call.
func (c *Context) Trace(pos token.Position) {
	c.Frames = append(c.Frames, ferrors.Frame{Pos: pos, Path: c.path})
}
