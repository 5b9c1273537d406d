package parser

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.Tokenize("<test>", src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	prog, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func parseSourceExpectError(t *testing.T, src string) error {
	t.Helper()
	toks, err := lexer.Tokenize("<test>", src)
	if err != nil {
		return err
	}
	_, err = Parse(toks)
	if err == nil {
		t.Fatalf("Parse(%q): expected error, got none", src)
	}
	return err
}

func TestParseArithmeticPrecedence(t *testing.T) {
	prog := parseSource(t, "1 + 2 * 3\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	es, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", prog.Statements[0])
	}
	bin, ok := es.Expr.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expr is %T, want *ast.BinaryOp", es.Expr)
	}
	if bin.OpKind != lexer.PLUS {
		t.Fatalf("top operator = %s, want PLUS", bin.OpKind)
	}
	right, ok := bin.Right.(*ast.BinaryOp)
	if !ok || right.OpKind != lexer.STAR {
		t.Fatalf("right operand = %#v, want a STAR BinaryOp", bin.Right)
	}
}

func TestParsePowerRightAssociative(t *testing.T) {
	prog := parseSource(t, "2 ** 3 ** 2\n")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	bin := es.Expr.(*ast.BinaryOp)
	if bin.OpKind != lexer.DSTAR {
		t.Fatalf("top operator = %s, want DSTAR", bin.OpKind)
	}
	if _, ok := bin.Left.(*ast.Number); !ok {
		t.Fatalf("left = %#v, want Number (2)", bin.Left)
	}
	right, ok := bin.Right.(*ast.BinaryOp)
	if !ok || right.OpKind != lexer.DSTAR {
		t.Fatalf("right = %#v, want nested DSTAR BinaryOp (right-associative)", bin.Right)
	}
}

func TestParseUnaryBindsLooserThanPower(t *testing.T) {
	prog := parseSource(t, "-2 ** 2\n")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	unary, ok := es.Expr.(*ast.UnaryOp)
	if !ok {
		t.Fatalf("expr = %#v, want UnaryOp wrapping the power", es.Expr)
	}
	if unary.OpKind != lexer.MINUS {
		t.Fatalf("unary op = %s, want MINUS", unary.OpKind)
	}
	if _, ok := unary.Operand.(*ast.BinaryOp); !ok {
		t.Fatalf("operand = %#v, want BinaryOp (2 ** 2)", unary.Operand)
	}
}

func TestParseAssignment(t *testing.T) {
	prog := parseSource(t, "x = 1\n")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	assign, ok := es.Expr.(*ast.VarAssign)
	if !ok {
		t.Fatalf("expr = %#v, want VarAssign", es.Expr)
	}
	if assign.Name != "x" {
		t.Errorf("assign.Name = %q, want x", assign.Name)
	}
}

func TestParseChainedAssignment(t *testing.T) {
	prog := parseSource(t, "a = b = 1\n")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	outer, ok := es.Expr.(*ast.VarAssign)
	if !ok || outer.Name != "a" {
		t.Fatalf("outer = %#v, want VarAssign(a)", es.Expr)
	}
	inner, ok := outer.Value.(*ast.VarAssign)
	if !ok || inner.Name != "b" {
		t.Fatalf("inner = %#v, want VarAssign(b)", outer.Value)
	}
}

func TestParseCompoundAssignment(t *testing.T) {
	prog := parseSource(t, "x += 1\n")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	assign, ok := es.Expr.(*ast.VarAssign)
	if !ok {
		t.Fatalf("expr = %#v, want VarAssign", es.Expr)
	}
	bin, ok := assign.Value.(*ast.BinaryOp)
	if !ok || bin.OpKind != lexer.PLUS {
		t.Fatalf("assign.Value = %#v, want a PLUS BinaryOp", assign.Value)
	}
}

func TestParseDelStatement(t *testing.T) {
	prog := parseSource(t, "del x, y\n")
	del, ok := prog.Statements[0].(*ast.VarDelete)
	if !ok {
		t.Fatalf("statement = %#v, want VarDelete", prog.Statements[0])
	}
	if len(del.Names) != 2 || del.Names[0] != "x" || del.Names[1] != "y" {
		t.Errorf("del.Names = %v, want [x y]", del.Names)
	}
}

func TestParseTupleForms(t *testing.T) {
	cases := []struct {
		src      string
		wantType string
	}{
		{"()\n", "tuple0"},
		{"(1)\n", "number"},
		{"(1,)\n", "tuple1"},
		{"(1, 2)\n", "tuple2"},
	}
	for _, c := range cases {
		prog := parseSource(t, c.src)
		es := prog.Statements[0].(*ast.ExpressionStatement)
		switch c.wantType {
		case "tuple0":
			tup, ok := es.Expr.(*ast.Tuple)
			if !ok || len(tup.Items) != 0 {
				t.Errorf("%q: expr = %#v, want empty Tuple", c.src, es.Expr)
			}
		case "number":
			if _, ok := es.Expr.(*ast.Number); !ok {
				t.Errorf("%q: expr = %#v, want Number", c.src, es.Expr)
			}
		case "tuple1":
			tup, ok := es.Expr.(*ast.Tuple)
			if !ok || len(tup.Items) != 1 {
				t.Errorf("%q: expr = %#v, want 1-Tuple", c.src, es.Expr)
			}
		case "tuple2":
			tup, ok := es.Expr.(*ast.Tuple)
			if !ok || len(tup.Items) != 2 {
				t.Errorf("%q: expr = %#v, want 2-Tuple", c.src, es.Expr)
			}
		}
	}
}

func TestParseListAndDictLiterals(t *testing.T) {
	prog := parseSource(t, `[1, 2, 3]`+"\n")
	list, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.List)
	if !ok || len(list.Items) != 3 {
		t.Fatalf("expr = %#v, want a 3-item List", prog.Statements[0])
	}

	prog = parseSource(t, `{1: "a", 2: "b"}`+"\n")
	dict, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.Dict)
	if !ok || len(dict.Entries) != 2 {
		t.Fatalf("expr = %#v, want a 2-entry Dict", prog.Statements[0])
	}
}

func TestParseSubscriptAndSlice(t *testing.T) {
	prog := parseSource(t, "xs[1]\n")
	get, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.GetItem)
	if !ok {
		t.Fatalf("expr = %#v, want GetItem", prog.Statements[0])
	}
	if _, ok := get.Key.(*ast.Number); !ok {
		t.Errorf("key = %#v, want Number", get.Key)
	}

	prog = parseSource(t, "xs[1:5]\n")
	get2 := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.GetItem)
	sl, ok := get2.Key.(*ast.Slice)
	if !ok {
		t.Fatalf("key = %#v, want Slice", get2.Key)
	}
	if sl.Step != nil {
		t.Errorf("sl.Step = %#v, want nil", sl.Step)
	}
}

func TestParseGetAttrAndSetAttr(t *testing.T) {
	prog := parseSource(t, "p.x = 1\n")
	set, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.SetAttr)
	if !ok {
		t.Fatalf("expr = %#v, want SetAttr", prog.Statements[0])
	}
	if set.Name != "x" {
		t.Errorf("set.Name = %q, want x", set.Name)
	}
}

func TestParseCallPositionalAndKeyword(t *testing.T) {
	prog := parseSource(t, `f(1, 2, x=3)`+"\n")
	call, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.Call)
	if !ok {
		t.Fatalf("expr = %#v, want Call", prog.Statements[0])
	}
	if len(call.Args.Items) != 2 {
		t.Errorf("len(Args.Items) = %d, want 2", len(call.Args.Items))
	}
	if len(call.Kwargs.Entries) != 1 {
		t.Errorf("len(Kwargs.Entries) = %d, want 1", len(call.Kwargs.Entries))
	}
}

func TestParsePositionalAfterKeywordIsError(t *testing.T) {
	parseSourceExpectError(t, "f(x=1, 2)\n")
}

func TestParseIfElifElse(t *testing.T) {
	src := "x = 0\nif x == 0:\n  x = 1\nelif x == 1:\n  x = 2\nelse:\n  x = 3\nx\n"
	prog := parseSource(t, src)
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3 (assign, if, expr)", len(prog.Statements))
	}
	ifStmt, ok := prog.Statements[1].(*ast.If)
	if !ok {
		t.Fatalf("statement[1] = %#v, want *ast.If", prog.Statements[1])
	}
	if ifStmt.IsExpression {
		t.Errorf("IsExpression = true, want false (statement form)")
	}
	if len(ifStmt.Cases) != 2 {
		t.Errorf("len(Cases) = %d, want 2 (if + elif)", len(ifStmt.Cases))
	}
	if ifStmt.Else == nil {
		t.Errorf("Else = nil, want the else block")
	}
}

func TestParseIfSingleLineBlock(t *testing.T) {
	prog := parseSource(t, "if x: y = 1\n")
	ifStmt := prog.Statements[0].(*ast.If)
	if len(ifStmt.Cases[0].Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(ifStmt.Cases[0].Body))
	}
}

func TestParseTernaryIfElseForm(t *testing.T) {
	prog := parseSource(t, "1 if c else 2\n")
	ternary, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.If)
	if !ok || !ternary.IsExpression {
		t.Fatalf("expr = %#v, want expression-form If", prog.Statements[0])
	}
}

func TestParseTernaryQuestionColonForm(t *testing.T) {
	prog := parseSource(t, "c ? 1 : 2\n")
	ternary, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.If)
	if !ok || !ternary.IsExpression {
		t.Fatalf("expr = %#v, want expression-form If", prog.Statements[0])
	}
}

func TestParseMissingIndentedBlockIsIndentationError(t *testing.T) {
	err := parseSourceExpectError(t, "if x:\npass\n")
	pe, ok := err.(*ParserError)
	if !ok || pe.ErrKind != "IndentationError" {
		t.Fatalf("err = %v, want IndentationError", err)
	}
}

func TestParseCJKIfStatement(t *testing.T) {
	prog := parseSource(t, "若 真：\n    打印（“你好”）\n")
	ifStmt, ok := prog.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("statement = %#v, want *ast.If", prog.Statements[0])
	}
	if len(ifStmt.Cases) != 1 {
		t.Fatalf("len(Cases) = %d, want 1", len(ifStmt.Cases))
	}
}
