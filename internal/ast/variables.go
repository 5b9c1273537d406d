package ast

import "github.com/lumen-lang/lumen/internal/lexer"

// VarAccess reads a name from the current symbol table chain.
type VarAccess struct {
	span
	Name string
}

func (v *VarAccess) expressionNode()      {}
func (v *VarAccess) TokenLiteral() string { return v.Name }
func (v *VarAccess) String() string       { return v.Name }

func NewVarAccess(nameTok lexer.Token) *VarAccess {
	return &VarAccess{span: span{Start: nameTok.PosStart, End: nameTok.PosEnd}, Name: nameTok.Value.(string)}
}

// VarAssign binds Name to Value's evaluated result in the current context.
// It is itself an expression: it evaluates to the assigned value, which is
// what makes chained assignment (`a = b = expr`) and compound-assignment
// rewriting (`x += 1` -> `x = x + 1`) well formed.
type VarAssign struct {
	span
	Name  string
	Value Expression
}

func (v *VarAssign) expressionNode()      {}
func (v *VarAssign) TokenLiteral() string { return v.Name }
func (v *VarAssign) String() string       { return v.Name + " = " + v.Value.String() }

func NewVarAssign(nameTok lexer.Token, value Expression) *VarAssign {
	return &VarAssign{
		span:  span{Start: nameTok.PosStart, End: value.PosEnd()},
		Name:  nameTok.Value.(string),
		Value: value,
	}
}

// NewVarAssignFromAccess rewrites an already-parsed VarAccess (the LHS of
// `name = value`) into a VarAssign, as the parser's assignment rule
// requires.
func NewVarAssignFromAccess(access *VarAccess, value Expression) *VarAssign {
	return &VarAssign{
		span:  span{Start: access.PosStart(), End: value.PosEnd()},
		Name:  access.Name,
		Value: value,
	}
}

// VarDelete removes one or more names from the current context's table,
// backing the `del a, b, c` statement.
type VarDelete struct {
	span
	Names []string
}

func (v *VarDelete) statementNode()       {}
func (v *VarDelete) TokenLiteral() string { return "del" }
func (v *VarDelete) String() string {
	out := "del "
	for i, n := range v.Names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func NewVarDelete(start, end lexer.Position, names []string) *VarDelete {
	return &VarDelete{span: span{Start: start, End: end}, Names: names}
}
