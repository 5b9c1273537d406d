package ast

import "github.com/lumen-lang/lumen/internal/lexer"

// GetItem reads Object[Key]; the parser emits this for any `[...]`
// postfix that is not itself being assigned to.
type GetItem struct {
	span
	Object Expression
	Key    Expression
}

func (g *GetItem) expressionNode()      {}
func (g *GetItem) TokenLiteral() string { return "[" }
func (g *GetItem) String() string       { return g.Object.String() + "[" + g.Key.String() + "]" }

func NewGetItem(object, key Expression, end lexer.Position) *GetItem {
	return &GetItem{span: span{Start: object.PosStart(), End: end}, Object: object, Key: key}
}

// SetItem writes Value into Object[Key]. The parser rewrites a GetItem on
// the left of `=` into this node.
type SetItem struct {
	span
	Object Expression
	Key    Expression
	Value  Expression
}

func (s *SetItem) expressionNode()      {}
func (s *SetItem) TokenLiteral() string { return "[" }
func (s *SetItem) String() string {
	return s.Object.String() + "[" + s.Key.String() + "] = " + s.Value.String()
}

func NewSetItem(get *GetItem, value Expression) *SetItem {
	return &SetItem{
		span:   span{Start: get.PosStart(), End: value.PosEnd()},
		Object: get.Object,
		Key:    get.Key,
		Value:  value,
	}
}

// GetAttr reads Object.Name.
type GetAttr struct {
	span
	Object Expression
	Name   string
}

func (g *GetAttr) expressionNode()      {}
func (g *GetAttr) TokenLiteral() string { return "." }
func (g *GetAttr) String() string       { return g.Object.String() + "." + g.Name }

func NewGetAttr(object Expression, nameTok lexer.Token) *GetAttr {
	return &GetAttr{
		span:   span{Start: object.PosStart(), End: nameTok.PosEnd},
		Object: object,
		Name:   nameTok.Value.(string),
	}
}

// SetAttr writes Value into Object.Name. The parser rewrites a GetAttr on
// the left of `=` into this node.
type SetAttr struct {
	span
	Object Expression
	Name   string
	Value  Expression
}

func (s *SetAttr) expressionNode()      {}
func (s *SetAttr) TokenLiteral() string { return "." }
func (s *SetAttr) String() string {
	return s.Object.String() + "." + s.Name + " = " + s.Value.String()
}

func NewSetAttr(get *GetAttr, value Expression) *SetAttr {
	return &SetAttr{
		span:   span{Start: get.PosStart(), End: value.PosEnd()},
		Object: get.Object,
		Name:   get.Name,
		Value:  value,
	}
}
