package parser

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// ParserError is a structured parse-time error, carrying a full span
// (unlike the teacher's single Pos+Length) so the caret renderer in
// internal/errors can underline multi-token spans precisely.
type ParserError struct {
	ErrKind string // "SyntaxError" or "IndentationError"
	Message string
	Pos     lexer.Position
	PosEnd  lexer.Position
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.ErrKind, e.Message, e.Pos.String())
}

func newSyntaxError(msg string, start, end lexer.Position) *ParserError {
	return &ParserError{ErrKind: "SyntaxError", Message: msg, Pos: start, PosEnd: end}
}

func newIndentationError(msg string, start, end lexer.Position) *ParserError {
	return &ParserError{ErrKind: "IndentationError", Message: msg, Pos: start, PosEnd: end}
}
