package errors

import (
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
)

// FromLexError converts a lexer.LexError into the core's single error
// type, so callers outside the lexer package only ever handle *Error.
func FromLexError(e *lexer.LexError) *Error {
	return &Error{Kind: Kind(e.ErrKind), Message: e.Message, Pos: e.Pos, PosEnd: e.PosEnd}
}

// FromParserError converts a parser.ParserError into the core's single
// error type.
func FromParserError(e *parser.ParserError) *Error {
	return &Error{Kind: Kind(e.ErrKind), Message: e.Message, Pos: e.Pos, PosEnd: e.PosEnd}
}
