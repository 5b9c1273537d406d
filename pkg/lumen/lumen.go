// Package lumen is the core's public entry point: a single Evaluate
// function (plus an Engine for callers who want to reuse one global
// context across several calls, e.g. a REPL) wrapping the lex/parse/
// interpret pipeline the internal packages implement.
package lumen

import (
	"io"
	"os"

	"github.com/lumen-lang/lumen/internal/errors"
	"github.com/lumen-lang/lumen/internal/interp"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/value"
)

// Option configures an Engine.
type Option func(*Engine)

// WithOutput redirects print/打印 output; the default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// Engine holds the pieces of state a caller may want to reuse across
// several Evaluate calls: where print() writes, and (optionally) a global
// Context that persists bindings between calls, the way a REPL needs to.
// A zero-value Engine is not usable; build one with New.
type Engine struct {
	out  io.Writer
	ctx  *interp.Context
	eval *interp.Interpreter
}

// New builds an Engine. Each call to Run rebuilds the global context from
// scratch, matching the core's "no shared mutable state across
// evaluations in principle" rule; call Persistent to opt into reuse.
func New(opts ...Option) *Engine {
	e := &Engine{out: os.Stdout, eval: interp.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Persistent switches e to reuse a single global Context across calls to
// Run, for callers (a REPL) that want assignments from one call visible
// to the next. Without it, every Run starts from a freshly built global
// context.
func (e *Engine) Persistent() *Engine {
	e.ctx = interp.NewGlobalContext(e.out)
	return e
}

// Run lexes, parses, and evaluates source, returning the value of the
// program's last top-level expression (Null if source has no statements,
// or its last statement is not an expression).
func (e *Engine) Run(fileName, source string) (value.Value, error) {
	results, err := e.evalProgram(fileName, source)
	if err != nil {
		return nil, err
	}
	if len(results.Items) == 0 {
		return value.Nil, nil
	}
	return results.Items[len(results.Items)-1], nil
}

// RunAll is like Run but returns every top-level statement's result, the
// raw "evaluated statement sequence" the core API describes, rather than
// just its last element.
func (e *Engine) RunAll(fileName, source string) (*value.List, error) {
	return e.evalProgram(fileName, source)
}

func (e *Engine) evalProgram(fileName, source string) (*value.List, error) {
	tokens, err := lexer.Tokenize(fileName, source)
	if err != nil {
		if lexErr, ok := err.(*lexer.LexError); ok {
			return nil, errors.FromLexError(lexErr)
		}
		return nil, err
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		if parseErr, ok := err.(*parser.ParserError); ok {
			return nil, errors.FromParserError(parseErr)
		}
		return nil, err
	}

	ctx := e.ctx
	if ctx == nil {
		ctx = interp.NewGlobalContext(e.out)
	}

	result, err := e.eval.Eval(prog, ctx)
	if err != nil {
		return nil, err
	}
	return result.(*value.List), nil
}

// Evaluate is the core API's free-function form: `evaluate(file_name,
// source_text) -> Value`. It builds a fresh, non-persistent Engine
// writing to os.Stdout on every call.
func Evaluate(fileName, source string) (value.Value, error) {
	return New().Run(fileName, source)
}
