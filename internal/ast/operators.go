package ast

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// UnaryOp represents a prefix operator applied to a single operand:
// `-x`, `+x`, `~x`, `!x`/`not x`/`非x`.
type UnaryOp struct {
	span
	OpKind  lexer.Kind
	OpToken lexer.Token
	Operand Expression
}

func (u *UnaryOp) expressionNode()      {}
func (u *UnaryOp) TokenLiteral() string { return u.OpToken.String() }
func (u *UnaryOp) String() string       { return fmt.Sprintf("(%s%s)", u.OpToken.String(), u.Operand.String()) }

func NewUnaryOp(opTok lexer.Token, operand Expression) *UnaryOp {
	return &UnaryOp{
		span:    span{Start: opTok.PosStart, End: operand.PosEnd()},
		OpKind:  opTok.Kind,
		OpToken: opTok,
		Operand: operand,
	}
}

// BinaryOp represents an infix operator applied to two operands.
type BinaryOp struct {
	span
	Left    Expression
	OpKind  lexer.Kind
	OpToken lexer.Token
	Right   Expression
}

func (b *BinaryOp) expressionNode()      {}
func (b *BinaryOp) TokenLiteral() string { return b.OpToken.String() }
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.OpToken.String(), b.Right.String())
}

func NewBinaryOp(left Expression, opTok lexer.Token, right Expression) *BinaryOp {
	return &BinaryOp{
		span:    span{Start: left.PosStart(), End: right.PosEnd()},
		Left:    left,
		OpKind:  opTok.Kind,
		OpToken: opTok,
		Right:   right,
	}
}
