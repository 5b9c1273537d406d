package interp

import (
	"io"

	"github.com/lumen-lang/lumen/internal/interp/builtins"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// Context is the linkage the interpreter threads through evaluation to
// build runtime tracebacks: a display name, a symbol table, and a
// non-owning pointer to the parent Context plus the position of the
// call that entered this one. Contexts form a chain but are never
// observed by user code, per spec.md §9's guidance — a plain parent
// pointer is enough, with no lifetime management beyond normal Go GC.
type Context struct {
	DisplayName   string
	Parent        *Context
	ParentCallPos lexer.Position
	Symbols       *SymbolTable
}

// NewGlobalContext builds the core's single top-level context,
// "<module>", with its symbol table populated by the built-in names.
// out is where print/打印 writes.
func NewGlobalContext(out io.Writer) *Context {
	ctx := &Context{DisplayName: "<module>", Symbols: NewSymbolTable(nil)}
	builtins.Populate(ctx.Symbols.Set, out)
	return ctx
}

// NewChildContext builds a context enclosed by parent's symbol table,
// entered at callPos. The core has no user-defined functions to call
// into, so nothing in the repository calls this, tests included; it is
// kept because Frame-chain construction
// (internal/errors.Frame) expects a real chain to walk when the
// language grows call frames.
func NewChildContext(displayName string, parent *Context, callPos lexer.Position) *Context {
	return &Context{
		DisplayName:   displayName,
		Parent:        parent,
		ParentCallPos: callPos,
		Symbols:       NewSymbolTable(parent.Symbols),
	}
}
