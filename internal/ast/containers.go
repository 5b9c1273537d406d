package ast

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// Tuple is an ordered, immutable sequence literal: `()`, `(1,)`, `(1, 2)`.
type Tuple struct {
	span
	Items []Expression
}

func (t *Tuple) expressionNode()      {}
func (t *Tuple) TokenLiteral() string { return "(" }
func (t *Tuple) String() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func NewTuple(start, end lexer.Position, items []Expression) *Tuple {
	return &Tuple{span: span{Start: start, End: end}, Items: items}
}

// List is an ordered, mutable sequence literal: `[1, 2, 3]`.
type List struct {
	span
	Items []Expression
}

func (l *List) expressionNode()      {}
func (l *List) TokenLiteral() string { return "[" }
func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func NewList(start, end lexer.Position, items []Expression) *List {
	return &List{span: span{Start: start, End: end}, Items: items}
}

// DictEntry is one key/value pair of a Dict literal, in source order.
type DictEntry struct {
	Key   Expression
	Value Expression
}

// Dict is an insertion-ordered mapping literal: `{k: v, ...}`.
type Dict struct {
	span
	Entries []DictEntry
}

func (d *Dict) expressionNode()      {}
func (d *Dict) TokenLiteral() string { return "{" }
func (d *Dict) String() string {
	parts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func NewDict(start, end lexer.Position, entries []DictEntry) *Dict {
	return &Dict{span: span{Start: start, End: end}, Entries: entries}
}

// Slice represents `start?:stop?:step?` inside a subscript; any part may
// be nil, in which case the evaluator leaves that part of the runtime
// value.Slice unset and value.Slice.Resolve applies its default.
type Slice struct {
	span
	Start Expression
	Stop  Expression
	Step  Expression
}

func (s *Slice) expressionNode()      {}
func (s *Slice) TokenLiteral() string { return ":" }
func (s *Slice) String() string {
	str := func(e Expression) string {
		if e == nil {
			return ""
		}
		return e.String()
	}
	return str(s.Start) + ":" + str(s.Stop) + ":" + str(s.Step)
}

func NewSlice(start, end lexer.Position, startExpr, stop, step Expression) *Slice {
	return &Slice{span: span{Start: start, End: end}, Start: startExpr, Stop: stop, Step: step}
}
