// Package parser turns a lexer.Token stream into an ast.Program, by
// recursive descent with a precedence ladder for expressions and bounded,
// one-point backtracking to disambiguate an assignment statement from a
// bare expression statement.
package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// Parser holds the single piece of mutable state parsing needs: the
// cursor over the token slice. The parser never attempts error recovery
// past the first failure (see spec's propagation rule), so there is no
// accumulated error list to manage.
type Parser struct {
	c *cursor
}

// New creates a Parser over an already-tokenized stream. tokens must end
// with exactly one ENDMARKER, as lexer.Tokenize guarantees. NL tokens
// (newlines inside brackets or after a backslash continuation) are dropped
// here: the grammar never looks at them.
func New(tokens []lexer.Token) *Parser {
	significant := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != lexer.NL {
			significant = append(significant, tok)
		}
	}
	return &Parser{c: newCursor(significant)}
}

// Parse tokenizes are assumed already done; Parse builds the Program AST,
// stopping at the first syntax or indentation error.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// ParseProgram implements `program := NEWLINE* statements? ENDMARKER`.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	p.skipNewlines()

	var stmts []ast.Statement
	for !p.c.is(lexer.ENDMARKER) {
		one, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, one...)
		p.skipNewlines()
	}

	return ast.NewProgram(stmts), nil
}

func (p *Parser) skipNewlines() {
	for p.c.is(lexer.NEWLINE) {
		p.c.advance()
	}
}

// expect advances past an expected token kind, or raises a SyntaxError
// naming what was expected.
func (p *Parser) expect(k lexer.Kind, what string) error {
	if !p.c.is(k) {
		tok := p.c.current()
		return newSyntaxError("expected "+what+", found "+tok.Kind.String(), tok.PosStart, tok.PosEnd)
	}
	p.c.advance()
	return nil
}
