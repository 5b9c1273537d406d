package interp

import "github.com/lumen-lang/lumen/internal/lexer"

// operatorSymbols renders a lexer.Kind back to the punctuation spelling a
// TypeError message should name, since lexer.Kind.String() returns the
// kind's Go identifier ("MINUS") rather than its spelling ("-").
var operatorSymbols = map[lexer.Kind]string{
	lexer.PLUS:      "+",
	lexer.MINUS:     "-",
	lexer.STAR:      "*",
	lexer.SLASH:     "/",
	lexer.DSLASH:    "//",
	lexer.PERCENT:   "%",
	lexer.DSTAR:     "**",
	lexer.AMP:       "&",
	lexer.PIPE:      "|",
	lexer.CARET:     "^",
	lexer.LSHIFT:    "<<",
	lexer.RSHIFT:    ">>",
	lexer.TILDE:     "~",
	lexer.BANG:      "!",
	lexer.ANDAND:    "&&",
	lexer.OROR:      "||",
	lexer.EQEQ:      "==",
	lexer.NOTEQ:     "!=",
	lexer.LESS:      "<",
	lexer.LESSEQ:    "<=",
	lexer.GREATER:   ">",
	lexer.GREATEREQ: ">=",
}

func operatorSymbol(k lexer.Kind) string {
	if s, ok := operatorSymbols[k]; ok {
		return s
	}
	return k.String()
}
