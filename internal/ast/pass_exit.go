package ast

import "github.com/lumen-lang/lumen/internal/lexer"

// Pass is a no-op statement: `pass`. Evaluates to Null and has no other
// effect, mirroring the Python original's `pass`.
type Pass struct {
	span
	Token lexer.Token
}

func (p *Pass) statementNode()       {}
func (p *Pass) TokenLiteral() string { return p.Token.String() }
func (p *Pass) String() string       { return "pass" }

func NewPass(tok lexer.Token) *Pass {
	return &Pass{span: span{Start: tok.PosStart, End: tok.PosEnd}, Token: tok}
}

// Exit halts evaluation of the remaining top-level statements: `exit`.
// There is no function/loop scope to exit in this language (see the
// Non-goals), so exit's only meaningful reach is to the top-level
// statement sequence itself.
type Exit struct {
	span
	Token lexer.Token
}

func (e *Exit) statementNode()       {}
func (e *Exit) TokenLiteral() string { return e.Token.String() }
func (e *Exit) String() string       { return "exit" }

func NewExit(tok lexer.Token) *Exit {
	return &Exit{span: span{Start: tok.PosStart, End: tok.PosEnd}, Token: tok}
}
