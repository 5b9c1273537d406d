package errors

import (
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/lexer"
)

func TestDisplayWidthCJKAndCombining(t *testing.T) {
	if DisplayWidth('a') != 1 {
		t.Errorf("DisplayWidth('a') != 1")
	}
	if DisplayWidth('你') != 2 {
		t.Errorf("DisplayWidth('你') != 2")
	}
	if DisplayWidth('́') != 0 { // combining acute accent
		t.Errorf("DisplayWidth(combining mark) != 0")
	}
}

func TestRenderLexParseErrorFormat(t *testing.T) {
	src := "1 / 0\n"
	pos := lexer.Position{Index: 2, Line: 0, Column: 2, File: "<t>", Source: src}
	posEnd := lexer.Position{Index: 3, Line: 0, Column: 3, File: "<t>", Source: src}
	err := NewLexParse(SyntaxError, "unexpected token", pos, posEnd)

	out := err.Error()
	if !strings.Contains(out, `File "<t>", line 1`) {
		t.Errorf("missing file/line header: %q", out)
	}
	if !strings.Contains(out, "1 / 0") {
		t.Errorf("missing source line: %q", out)
	}
	if !strings.Contains(out, "SyntaxError: unexpected token") {
		t.Errorf("missing error line: %q", out)
	}
	lines := strings.Split(out, "\n")
	caretLine := lines[2]
	if strings.Index(caretLine, "^") != strings.Index("    1 / 0", "/") {
		t.Errorf("caret not aligned under '/': %q", out)
	}
}

func TestRenderRuntimeErrorHasTraceback(t *testing.T) {
	e := New(OperationError, "division by zero", lexer.Position{File: "<t>", Line: 0}, lexer.Position{File: "<t>", Line: 0})
	e = e.WithFrame(Frame{DisplayName: "<module>", Pos: lexer.Position{File: "<t>", Line: 0}})

	out := e.Error()
	if !strings.HasPrefix(out, "Traceback (most recent call last):") {
		t.Errorf("runtime error does not start with traceback header: %q", out)
	}
	if !strings.Contains(out, "OperationError: division by zero") {
		t.Errorf("missing final error line: %q", out)
	}
}
