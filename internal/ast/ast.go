// Package ast defines the abstract syntax tree node types the parser
// produces and the interpreter walks.
package ast

import (
	"bytes"
	"strings"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// Node is the base interface every AST node satisfies. Every node carries
// the span of source it was parsed from, in addition to a token literal
// and a debug string representation.
type Node interface {
	TokenLiteral() string
	String() string
	PosStart() lexer.Position
	PosEnd() lexer.Position
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action; most statements in this
// language are themselves expressions (an ExpressionStatement wraps one),
// but VarDelete and the statement-form If are not.
type Statement interface {
	Node
	statementNode()
}

// span is embedded in every node to supply PosStart/PosEnd without
// repeating the two fields and their accessors on each type.
type span struct {
	Start lexer.Position
	End   lexer.Position
}

func (s span) PosStart() lexer.Position { return s.Start }
func (s span) PosEnd() lexer.Position   { return s.End }

// Program is the root node: the top-level sequence of statements.
type Program struct {
	span
	Statements []Statement
}

func (p *Program) statementNode()  {}
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) String() string {
	var out bytes.Buffer
	parts := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.String())
	}
	out.WriteString(strings.Join(parts, "\n"))
	return out.String()
}

// NewProgram builds a Program node spanning from the first to the last
// statement (or a zero span if empty).
func NewProgram(stmts []Statement) *Program {
	p := &Program{Statements: stmts}
	if len(stmts) > 0 {
		p.span = span{Start: stmts[0].PosStart(), End: stmts[len(stmts)-1].PosEnd()}
	}
	return p
}

// ExpressionStatement wraps an Expression so it can appear in a Statement
// slice; it is how the top-level program records the result of every
// bare expression it evaluates.
type ExpressionStatement struct {
	span
	Expr Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Expr.TokenLiteral() }
func (es *ExpressionStatement) String() string       { return es.Expr.String() }

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{span: span{Start: expr.PosStart(), End: expr.PosEnd()}, Expr: expr}
}
