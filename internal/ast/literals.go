package ast

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// Number represents an integer, float, or boolean literal token. Bool is
// carried as a NUMBER at the lexer/parser boundary (see lexer.lookupIdentifier)
// so Number.Value here is int64, float64, or bool.
type Number struct {
	span
	Token lexer.Token
	Value any
}

func (n *Number) expressionNode()      {}
func (n *Number) TokenLiteral() string { return n.Token.String() }
func (n *Number) String() string       { return fmt.Sprintf("%v", n.Value) }

func NewNumber(tok lexer.Token) *Number {
	return &Number{span: span{Start: tok.PosStart, End: tok.PosEnd}, Token: tok, Value: tok.Value}
}

// String represents a string literal.
type String struct {
	span
	Token lexer.Token
	Value string
}

func (s *String) expressionNode()      {}
func (s *String) TokenLiteral() string { return s.Token.String() }
func (s *String) String() string       { return fmt.Sprintf("%q", s.Value) }

func NewString(tok lexer.Token) *String {
	return &String{span: span{Start: tok.PosStart, End: tok.PosEnd}, Token: tok, Value: tok.Value.(string)}
}
