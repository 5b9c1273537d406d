package lexer

import (
	"strings"
	"testing"
)

func kinds(t *testing.T, toks []Token) []Kind {
	t.Helper()
	ks := make([]Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func assertKinds(t *testing.T, src string, want []Kind) []Token {
	t.Helper()
	toks, err := Tokenize("<test>", src)
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected error: %v", src, err)
	}
	got := kinds(t, toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q): got %d tokens %v, want %d %v", src, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q): token %d = %s, want %s\nfull: %v", src, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestTokenizeSimpleExpression(t *testing.T) {
	assertKinds(t, "1 + 2\n", []Kind{NUMBER, PLUS, NUMBER, NEWLINE, ENDMARKER})
}

func TestTokenizeAssignment(t *testing.T) {
	toks := assertKinds(t, "x = 3\n", []Kind{NAME, EQUAL, NUMBER, NEWLINE, ENDMARKER})
	if toks[0].Value != "x" {
		t.Errorf("NAME value = %v, want x", toks[0].Value)
	}
	if toks[2].Value != int64(3) {
		t.Errorf("NUMBER value = %v (%T), want int64(3)", toks[2].Value, toks[2].Value)
	}
}

func TestTokenizeNoTrailingNewline(t *testing.T) {
	assertKinds(t, "x = 1", []Kind{NAME, EQUAL, NUMBER, NEWLINE, ENDMARKER})
}

func TestTokenizeCompoundAssign(t *testing.T) {
	assertKinds(t, "x **= 2\n", []Kind{NAME, DSTAREQ, NUMBER, NEWLINE, ENDMARKER})
}

func TestTokenizeIndentDedent(t *testing.T) {
	src := "if x:\n    y = 1\n    z = 2\nw = 3\n"
	assertKinds(t, src, []Kind{
		NAME, NAME, COLON, NEWLINE,
		INDENT,
		NAME, EQUAL, NUMBER, NEWLINE,
		NAME, EQUAL, NUMBER,
		DEDENT, NEWLINE,
		NAME, EQUAL, NUMBER, NEWLINE,
		ENDMARKER,
	})
}

func TestTokenizeNestedIndent(t *testing.T) {
	src := "if a:\n    if b:\n        c = 1\n    d = 2\n"
	toks := assertKinds(t, src, []Kind{
		NAME, NAME, COLON, NEWLINE,
		INDENT,
		NAME, NAME, COLON, NEWLINE,
		INDENT,
		NAME, EQUAL, NUMBER,
		DEDENT, NEWLINE,
		NAME, EQUAL, NUMBER,
		DEDENT, NEWLINE,
		ENDMARKER,
	})
	_ = toks
}

func TestTokenizeBlankAndCommentLinesIgnored(t *testing.T) {
	src := "x = 1\n\n# a comment\n\ny = 2\n"
	assertKinds(t, src, []Kind{
		NAME, EQUAL, NUMBER, NEWLINE,
		NAME, EQUAL, NUMBER, NEWLINE,
		ENDMARKER,
	})
}

func TestTokenizeBracketsSuppressNewline(t *testing.T) {
	src := "x = (1,\n2,\n3)\n"
	assertKinds(t, src, []Kind{
		NAME, EQUAL, LPAR, NUMBER, COMMA, NL,
		NUMBER, COMMA, NL,
		NUMBER, RPAR, NEWLINE, ENDMARKER,
	})
}

func TestTokenizeBackslashContinuation(t *testing.T) {
	src := "x = 1 + \\\n    2\n"
	assertKinds(t, src, []Kind{NAME, EQUAL, NUMBER, PLUS, NL, NUMBER, NEWLINE, ENDMARKER})
}

func TestTokenizeTabSpaceMixError(t *testing.T) {
	src := "if x:\n \tx = 1\n"
	_, err := Tokenize("<test>", src)
	if err == nil {
		t.Fatal("expected TabError, got nil")
	}
	lexErr, ok := err.(*LexError)
	if !ok || lexErr.ErrKind != "TabError" {
		t.Fatalf("got %v, want TabError", err)
	}
}

func TestTokenizeUnindentMismatch(t *testing.T) {
	src := "if a:\n    if b:\n        x = 1\n      y = 2\n"
	_, err := Tokenize("<test>", src)
	if err == nil {
		t.Fatal("expected IndentationError, got nil")
	}
	lexErr, ok := err.(*LexError)
	if !ok || lexErr.ErrKind != "IndentationError" {
		t.Fatalf("got %v, want IndentationError", err)
	}
}

func TestTokenizeCJKKeywordsAndOperators(t *testing.T) {
	src := "若 x 大于 0：\n    y = 真\n"
	assertKinds(t, src, []Kind{
		NAME, NAME, GREATER, NUMBER, COLON, NEWLINE,
		INDENT,
		NAME, EQUAL, NUMBER,
		DEDENT, NEWLINE,
		ENDMARKER,
	})
}

func TestTokenizeCJKLogicalWords(t *testing.T) {
	toks := assertKinds(t, "a 与 b\n", []Kind{NAME, ANDAND, NAME, NEWLINE, ENDMARKER})
	_ = toks
}

func TestTokenizeNumberForms(t *testing.T) {
	toks := assertKinds(t, "0b1010 0x1F 1_000 3.14\n", []Kind{NUMBER, NUMBER, NUMBER, NUMBER, NEWLINE, ENDMARKER})
	want := []any{int64(10), int64(31), int64(1000), float64(3.14)}
	for i, w := range want {
		if toks[i].Value != w {
			t.Errorf("token %d = %v (%T), want %v (%T)", i, toks[i].Value, toks[i].Value, w, w)
		}
	}
}

func TestTokenizeMalformedNumber(t *testing.T) {
	_, err := Tokenize("<test>", "1.2.3\n")
	if err == nil {
		t.Fatal("expected SyntaxError, got nil")
	}
}

func TestTokenizeStringForms(t *testing.T) {
	src := "\"a\" 'b' `c\\n` “d”\n"
	toks := assertKinds(t, src, []Kind{STRING, STRING, STRING, STRING, NEWLINE, ENDMARKER})
	if toks[0].Value != "a" || toks[1].Value != "b" {
		t.Errorf("unexpected plain string values: %v %v", toks[0].Value, toks[1].Value)
	}
	if toks[2].Value != "c\\n" {
		t.Errorf("backtick string should be raw, got %q", toks[2].Value)
	}
	if toks[3].Value != "d" {
		t.Errorf("CJK-quoted string value = %q, want d", toks[3].Value)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := assertKinds(t, `"a\nb\t\\c"`+"\n", []Kind{STRING, NEWLINE, ENDMARKER})
	want := "a\nb\t\\c"
	if toks[0].Value != want {
		t.Errorf("escaped string = %q, want %q", toks[0].Value, want)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize("<test>", "\"abc\n")
	if err == nil {
		t.Fatal("expected SyntaxError, got nil")
	}
	if !strings.Contains(err.Error(), "unterminated") {
		t.Fatalf("error = %v, want mention of unterminated string", err)
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	// A bare backslash not immediately followed by a newline isn't a
	// continuation and isn't in the operator table: illegal.
	_, err := Tokenize("<test>", "x = \\ 2\n")
	if err == nil {
		t.Fatal("expected SyntaxError for illegal character, got nil")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{File: "f.lm", Line: 2, Column: 4}
	if got, want := p.String(), "f.lm:3:5"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}
