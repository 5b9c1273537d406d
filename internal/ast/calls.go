package ast

import "github.com/lumen-lang/lumen/internal/lexer"

// Call applies Callee to a positional Args tuple and a keyword Kwargs
// dict, in source order. Once a keyword argument appears, the parser
// rejects any further positional argument as a SyntaxError, so by the
// time a Call node exists its Args/Kwargs split is already final.
type Call struct {
	span
	Callee Expression
	Args   *Tuple
	Kwargs *Dict
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return "(" }
func (c *Call) String() string {
	out := c.Callee.String() + "("
	for i, a := range c.Args.Items {
		if i > 0 {
			out += ", "
		}
		out += a.String()
	}
	for i, e := range c.Kwargs.Entries {
		if i > 0 || len(c.Args.Items) > 0 {
			out += ", "
		}
		out += e.Key.String() + "=" + e.Value.String()
	}
	return out + ")"
}

func NewCall(callee Expression, args *Tuple, kwargs *Dict, end lexer.Position) *Call {
	return &Call{span: span{Start: callee.PosStart(), End: end}, Callee: callee, Args: args, Kwargs: kwargs}
}
