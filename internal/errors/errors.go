// Package errors defines Lumen's single polymorphic error type and its
// two rendering formats: a caret-annotated source excerpt for lex/parse
// failures, and an oldest-frame-first traceback for runtime failures.
package errors

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/internal/lexer"
)

// Kind names one of the closed set of error variants the core raises.
type Kind string

const (
	SyntaxError      Kind = "SyntaxError"
	IndentationError Kind = "IndentationError"
	TabError         Kind = "TabError"
	InvalidAtom      Kind = "InvalidAtom"
	NameError        Kind = "NameError"
	TypeError        Kind = "TypeError"
	AttributeError   Kind = "AttributeError"
	IndexError       Kind = "IndexError"
	KeyError         Kind = "KeyError"
	OperationError   Kind = "OperationError"
	RuntimeError     Kind = "RuntimeError"
)

// lexParseKinds is the subset of Kind that can only arise before
// execution starts and renders without a traceback.
var lexParseKinds = map[Kind]bool{
	SyntaxError:      true,
	IndentationError: true,
	TabError:         true,
	InvalidAtom:      true,
}

// Frame is one entry of a runtime traceback: the display name of the
// Context active when the error was raised or propagated through, and
// the position of the call that entered it. The core only ever builds
// a single-frame traceback today (no user-defined functions), but the
// shape supports the chained-context design the interpreter's Context
// type uses.
type Frame struct {
	DisplayName string
	Pos         lexer.Position
}

// Error is Lumen's single error type, covering every variant in the
// spec's error table. Lex/parse variants carry Pos/PosEnd only; runtime
// variants additionally carry Frames, oldest call first.
type Error struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	PosEnd  lexer.Position
	Frames  []Frame
}

// New builds a runtime Error (any Kind not in the lex/parse subset).
func New(kind Kind, message string, pos, posEnd lexer.Position) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos, PosEnd: posEnd}
}

// NewLexParse builds a lex/parse-stage Error.
func NewLexParse(kind Kind, message string, pos, posEnd lexer.Position) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos, PosEnd: posEnd}
}

// WithFrame returns a copy of e with frame appended to its traceback,
// used as the interpreter unwinds out of nested Context evaluation.
func (e *Error) WithFrame(frame Frame) *Error {
	frames := make([]Frame, 0, len(e.Frames)+1)
	frames = append(frames, e.Frames...)
	frames = append(frames, frame)
	return &Error{Kind: e.Kind, Message: e.Message, Pos: e.Pos, PosEnd: e.PosEnd, Frames: frames}
}

// Error implements the error interface by rendering the full multi-line
// presentation the spec requires.
func (e *Error) Error() string {
	if lexParseKinds[e.Kind] {
		return e.renderLexParse()
	}
	return e.renderRuntime()
}

func (e *Error) renderLexParse() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  File %q, line %d\n", e.Pos.File, e.Pos.Line+1)

	line := sourceLine(e.Pos.Source, e.Pos.Line)
	runes := []rune(line)
	sb.WriteString("    ")
	sb.WriteString(line)
	sb.WriteString("\n")

	startCol := DisplayWidthUpTo(runes, e.Pos.Column)
	span := caretSpan(runes, e.Pos, e.PosEnd)
	sb.WriteString("    ")
	sb.WriteString(strings.Repeat(" ", startCol))
	sb.WriteString(strings.Repeat("^", span))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s: %s", e.Kind, e.Message)
	return sb.String()
}

func (e *Error) renderRuntime() string {
	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last):\n")
	for _, f := range e.Frames {
		fmt.Fprintf(&sb, "  File %q, line %d, in %s\n", f.Pos.File, f.Pos.Line+1, f.DisplayName)
	}
	fmt.Fprintf(&sb, "%s: %s", e.Kind, e.Message)
	return sb.String()
}

// sourceLine extracts the (0-based) line'th line from source, or "" if
// out of range.
func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}

// caretSpan computes how many caret columns to draw: at least 1, and
// the full display-width of the span when start and end share a line.
func caretSpan(lineRunes []rune, start, end lexer.Position) int {
	if end.Line != start.Line || end.Column <= start.Column {
		return 1
	}
	width := 0
	for i := start.Column; i < end.Column && i < len(lineRunes); i++ {
		width += DisplayWidth(lineRunes[i])
	}
	if width == 0 {
		return 1
	}
	return width
}
