package ast

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// IfCase is one `condition: body` arm of an If node — the `if` arm itself
// or one of its `elif` arms.
type IfCase struct {
	Condition Expression
	Body      []Statement
}

// If represents both the conditional expression form (`X if C else Y`,
// `C ? X : Y`) and the statement form (`if C: ... elif C: ... else: ...`).
// IsExpression distinguishes them: an expression-form If always has
// exactly one case and a non-nil Else, and evaluates to the taken
// branch's value; a statement-form If evaluates to Null.
type If struct {
	span
	Token        lexer.Token
	IsExpression bool
	Cases        []IfCase
	Else         []Statement
}

func (i *If) expressionNode()      {}
func (i *If) statementNode()       {}
func (i *If) TokenLiteral() string { return i.Token.String() }
func (i *If) String() string {
	blockString := func(stmts []Statement) string {
		parts := make([]string, len(stmts))
		for j, s := range stmts {
			parts[j] = s.String()
		}
		return strings.Join(parts, "; ")
	}

	if i.IsExpression {
		c := i.Cases[0]
		return c.Body[0].String() + " if " + c.Condition.String() + " else " + blockString(i.Else)
	}

	var out strings.Builder
	for idx, c := range i.Cases {
		if idx == 0 {
			out.WriteString("if ")
		} else {
			out.WriteString("elif ")
		}
		out.WriteString(c.Condition.String())
		out.WriteString(": ")
		out.WriteString(blockString(c.Body))
		out.WriteString(" ")
	}
	if i.Else != nil {
		out.WriteString("else: ")
		out.WriteString(blockString(i.Else))
	}
	return strings.TrimSpace(out.String())
}

func NewIf(tok lexer.Token, isExpr bool, cases []IfCase, elseBody []Statement, end lexer.Position) *If {
	return &If{
		span:         span{Start: tok.PosStart, End: end},
		Token:        tok,
		IsExpression: isExpr,
		Cases:        cases,
		Else:         elseBody,
	}
}
