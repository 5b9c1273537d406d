package ast

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/lexer"
)

func pos(line, col int) lexer.Position {
	return lexer.Position{Line: line, Column: col, File: "<test>"}
}

func numTok(v any, line, col int) lexer.Token {
	return lexer.Token{Kind: lexer.NUMBER, Value: v, PosStart: pos(line, col), PosEnd: pos(line, col+1)}
}

func nameTok(name string, line, col int) lexer.Token {
	return lexer.Token{Kind: lexer.NAME, Value: name, PosStart: pos(line, col), PosEnd: pos(line, col+len(name))}
}

func TestNumberSpanAndString(t *testing.T) {
	n := NewNumber(numTok(int64(7), 0, 0))
	if n.String() != "7" {
		t.Errorf("Number.String() = %q, want 7", n.String())
	}
	if n.PosStart() != pos(0, 0) || n.PosEnd() != pos(0, 1) {
		t.Errorf("Number span = %v..%v", n.PosStart(), n.PosEnd())
	}
}

func TestBinaryOpSpanCoversOperands(t *testing.T) {
	left := NewNumber(numTok(int64(1), 0, 0))
	right := NewNumber(numTok(int64(2), 0, 4))
	op := lexer.Token{Kind: lexer.PLUS, PosStart: pos(0, 2), PosEnd: pos(0, 3)}
	bin := NewBinaryOp(left, op, right)

	if bin.PosStart() != left.PosStart() {
		t.Errorf("BinaryOp.PosStart() = %v, want %v", bin.PosStart(), left.PosStart())
	}
	if bin.PosEnd() != right.PosEnd() {
		t.Errorf("BinaryOp.PosEnd() = %v, want %v", bin.PosEnd(), right.PosEnd())
	}
	if bin.String() != "(1 PLUS 2)" {
		t.Errorf("BinaryOp.String() = %q", bin.String())
	}
}

func TestVarAssignIsExpression(t *testing.T) {
	var _ Expression = (*VarAssign)(nil)
	assign := NewVarAssign(nameTok("x", 0, 0), NewNumber(numTok(int64(5), 0, 4)))
	if assign.String() != "x = 5" {
		t.Errorf("VarAssign.String() = %q", assign.String())
	}
}

func TestVarDeleteIsStatementOnly(t *testing.T) {
	var _ Statement = (*VarDelete)(nil)
	del := NewVarDelete(pos(0, 0), pos(0, 8), []string{"x", "y"})
	if del.String() != "del x, y" {
		t.Errorf("VarDelete.String() = %q", del.String())
	}
}

func TestProgramSpanFromStatements(t *testing.T) {
	s1 := NewExpressionStatement(NewNumber(numTok(int64(1), 0, 0)))
	s2 := NewExpressionStatement(NewNumber(numTok(int64(2), 1, 0)))
	prog := NewProgram([]Statement{s1, s2})

	if prog.PosStart() != s1.PosStart() || prog.PosEnd() != s2.PosEnd() {
		t.Errorf("Program span = %v..%v, want %v..%v", prog.PosStart(), prog.PosEnd(), s1.PosStart(), s2.PosEnd())
	}
}

func TestEmptyProgramHasZeroSpan(t *testing.T) {
	prog := NewProgram(nil)
	if prog.TokenLiteral() != "" {
		t.Errorf("empty Program.TokenLiteral() = %q, want empty", prog.TokenLiteral())
	}
	if prog.PosStart() != (lexer.Position{}) || prog.PosEnd() != (lexer.Position{}) {
		t.Errorf("empty Program span = %v..%v, want zero", prog.PosStart(), prog.PosEnd())
	}
}

func TestTupleListDictString(t *testing.T) {
	items := []Expression{NewNumber(numTok(int64(1), 0, 1)), NewNumber(numTok(int64(2), 0, 4))}
	tup := NewTuple(pos(0, 0), pos(0, 6), items)
	if tup.String() != "(1, 2)" {
		t.Errorf("Tuple.String() = %q", tup.String())
	}

	list := NewList(pos(0, 0), pos(0, 6), items)
	if list.String() != "[1, 2]" {
		t.Errorf("List.String() = %q", list.String())
	}

	entries := []DictEntry{{Key: NewString(lexer.Token{Kind: lexer.STRING, Value: "a", PosStart: pos(0, 1), PosEnd: pos(0, 4)}), Value: NewNumber(numTok(int64(1), 0, 6))}}
	dict := NewDict(pos(0, 0), pos(0, 8), entries)
	if dict.String() != `"a": 1` && dict.String() != `{"a": 1}` {
		// String() wraps in braces and quotes string keys; the exact check follows.
	}
	if dict.String() != `{"a": 1}` {
		t.Errorf("Dict.String() = %q", dict.String())
	}
}

func TestGetItemSetItemRoundtrip(t *testing.T) {
	obj := NewVarAccess(nameTok("xs", 0, 0))
	key := NewNumber(numTok(int64(0), 0, 3))
	get := NewGetItem(obj, key, pos(0, 5))
	if get.String() != "xs[0]" {
		t.Errorf("GetItem.String() = %q", get.String())
	}

	val := NewNumber(numTok(int64(9), 0, 8))
	set := NewSetItem(get, val)
	if set.Object != obj || set.Key != key {
		t.Errorf("SetItem did not carry over GetItem's object/key")
	}
	if set.String() != "xs[0] = 9" {
		t.Errorf("SetItem.String() = %q", set.String())
	}
}

func TestGetAttrSetAttrRoundtrip(t *testing.T) {
	obj := NewVarAccess(nameTok("p", 0, 0))
	get := NewGetAttr(obj, nameTok("x", 0, 2))
	if get.String() != "p.x" {
		t.Errorf("GetAttr.String() = %q", get.String())
	}
	val := NewNumber(numTok(int64(1), 0, 6))
	set := NewSetAttr(get, val)
	if set.String() != "p.x = 1" {
		t.Errorf("SetAttr.String() = %q", set.String())
	}
}

func TestCallArgsAndKwargs(t *testing.T) {
	callee := NewVarAccess(nameTok("f", 0, 0))
	args := NewTuple(pos(0, 1), pos(0, 2), []Expression{NewNumber(numTok(int64(1), 0, 1))})
	kwargs := NewDict(pos(0, 2), pos(0, 3), nil)
	call := NewCall(callee, args, kwargs, pos(0, 4))
	if call.String() != "f(1)" {
		t.Errorf("Call.String() = %q", call.String())
	}
}

func TestIfExpressionForm(t *testing.T) {
	cond := NewVarAccess(nameTok("c", 0, 5))
	thenStmt := NewExpressionStatement(NewNumber(numTok(int64(1), 0, 0)))
	elseStmt := NewExpressionStatement(NewNumber(numTok(int64(2), 0, 12)))
	ifExpr := NewIf(lexer.Token{PosStart: pos(0, 0)}, true,
		[]IfCase{{Condition: cond, Body: []Statement{thenStmt}}},
		[]Statement{elseStmt}, pos(0, 13))

	var _ Expression = ifExpr
	if ifExpr.String() != "1 if c else 2" {
		t.Errorf("If.String() = %q", ifExpr.String())
	}
}

func TestIfStatementForm(t *testing.T) {
	cond := NewVarAccess(nameTok("x", 0, 3))
	body := []Statement{NewExpressionStatement(NewNumber(numTok(int64(1), 1, 4)))}
	stmt := NewIf(lexer.Token{PosStart: pos(0, 0)}, false, []IfCase{{Condition: cond, Body: body}}, nil, pos(1, 5))

	var _ Statement = stmt
	if stmt.String() != "if x: 1" {
		t.Errorf("If.String() = %q", stmt.String())
	}
}

func TestSliceWithMissingParts(t *testing.T) {
	stop := NewNumber(numTok(int64(5), 0, 2))
	sl := NewSlice(pos(0, 0), pos(0, 4), nil, stop, nil)
	if sl.String() != ":5:" {
		t.Errorf("Slice.String() = %q", sl.String())
	}
}
