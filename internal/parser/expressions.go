package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// parseExpression implements the full 14-level precedence cascade,
// topped by the two ternary forms. Both ternary spellings reduce to the
// same ast.If(is_expression=true) node.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.c.isName("if", "若", "如果") {
		ifTok := p.c.current()
		p.c.advance()
		cond, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.c.isName("else", "否则", "不然") {
			tok := p.c.current()
			return nil, newSyntaxError("expected 'else' in conditional expression", tok.PosStart, tok.PosEnd)
		}
		p.c.advance()
		elseVal, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewIf(ifTok, true,
			[]ast.IfCase{{Condition: cond, Body: []ast.Statement{ast.NewExpressionStatement(left)}}},
			[]ast.Statement{ast.NewExpressionStatement(elseVal)},
			elseVal.PosEnd()), nil
	}

	if p.c.is(lexer.QUESTION) {
		qTok := p.c.current()
		p.c.advance()
		thenVal, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		elseVal, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewIf(qTok, true,
			[]ast.IfCase{{Condition: left, Body: []ast.Statement{ast.NewExpressionStatement(thenVal)}}},
			[]ast.Statement{ast.NewExpressionStatement(elseVal)},
			elseVal.PosEnd()), nil
	}

	return left, nil
}

// binaryLadder is the repeated shape of every non-unary precedence
// level: parse one operand at the next-higher level, then fold in any
// number of same-precedence operators left-associatively.
func (p *Parser) binaryLadder(next func() (ast.Expression, error), kinds ...lexer.Kind) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for matchesAny(p.c.current().Kind, kinds) {
		opTok := p.c.current()
		p.c.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(left, opTok, right)
	}
	return left, nil
}

func matchesAny(k lexer.Kind, kinds []lexer.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (p *Parser) parseOr() (ast.Expression, error) {
	return p.binaryLadder(p.parseAnd, lexer.OROR)
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	return p.binaryLadder(p.parseNot, lexer.ANDAND)
}

// parseNot is right-recursive: `!!x` parses as `!(!x)`.
func (p *Parser) parseNot() (ast.Expression, error) {
	if p.c.is(lexer.BANG) {
		opTok := p.c.current()
		p.c.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(opTok, operand), nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.binaryLadder(p.parseBitOr, lexer.EQEQ, lexer.NOTEQ, lexer.LESS, lexer.GREATER, lexer.LESSEQ, lexer.GREATEREQ)
}

func (p *Parser) parseBitOr() (ast.Expression, error) {
	return p.binaryLadder(p.parseBitXor, lexer.PIPE)
}

func (p *Parser) parseBitXor() (ast.Expression, error) {
	return p.binaryLadder(p.parseBitAnd, lexer.CARET)
}

func (p *Parser) parseBitAnd() (ast.Expression, error) {
	return p.binaryLadder(p.parseShift, lexer.AMP)
}

func (p *Parser) parseShift() (ast.Expression, error) {
	return p.binaryLadder(p.parseAdditive, lexer.LSHIFT, lexer.RSHIFT)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.binaryLadder(p.parseMultiplicative, lexer.PLUS, lexer.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.binaryLadder(p.parseUnary, lexer.STAR, lexer.SLASH, lexer.DSLASH, lexer.PERCENT, lexer.AT)
}

// parseUnary handles prefix +/-/~. ** (parsePower) binds tighter than
// unary, so `-2 ** 2` is `-(2 ** 2)`, matching the language's Python-like
// semantics: unary recurses into itself (not power) so a chain of unary
// operators parses before power is reached.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.c.is(lexer.PLUS) || p.c.is(lexer.MINUS) || p.c.is(lexer.TILDE) {
		opTok := p.c.current()
		p.c.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(opTok, operand), nil
	}
	return p.parsePower()
}

// parsePower is right-associative: its right operand recurses into
// parseUnary (not parsePower) so `2 ** -3 ** 2` behaves the way Python's
// `power: atom_trailer ['**' factor]` grammar does.
func (p *Parser) parsePower() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.c.is(lexer.DSTAR) {
		opTok := p.c.current()
		p.c.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOp(left, opTok, right), nil
	}
	return left, nil
}

// parsePrimary parses an atom followed by a left-associative chain of
// `.NAME`, `(args)`, `[slices]` postfixes.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.c.is(lexer.DOT):
			p.c.advance()
			if !p.c.is(lexer.NAME) {
				tok := p.c.current()
				return nil, newSyntaxError("expected attribute name after '.'", tok.PosStart, tok.PosEnd)
			}
			nameTok := p.c.current()
			p.c.advance()
			atom = ast.NewGetAttr(atom, nameTok)

		case p.c.is(lexer.LPAR):
			args, kwargs, end, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			atom = ast.NewCall(atom, args, kwargs, end)

		case p.c.is(lexer.LSQB):
			key, end, err := p.parseSubscript()
			if err != nil {
				return nil, err
			}
			atom = ast.NewGetItem(atom, key, end)

		default:
			return atom, nil
		}
	}
}

// parseCallArgs parses `(args)`: positionals, then `name=value` keyword
// arguments. A positional argument appearing after any keyword argument
// is a SyntaxError.
func (p *Parser) parseCallArgs() (*ast.Tuple, *ast.Dict, lexer.Position, error) {
	start := p.c.current().PosStart
	p.c.advance() // '('

	var args []ast.Expression
	var kwargs []ast.DictEntry
	seenKeyword := false

	for !p.c.is(lexer.RPAR) {
		if p.c.is(lexer.NAME) && p.peekIsKwargEquals() {
			nameTok := p.c.current()
			p.c.advance() // name
			p.c.advance() // '='
			val, err := p.parseExpression()
			if err != nil {
				return nil, nil, lexer.Position{}, err
			}
			kwargs = append(kwargs, ast.DictEntry{Key: ast.NewString(stringTokFromName(nameTok)), Value: val})
			seenKeyword = true
		} else {
			if seenKeyword {
				tok := p.c.current()
				return nil, nil, lexer.Position{}, newSyntaxError("positional argument follows keyword argument", tok.PosStart, tok.PosEnd)
			}
			val, err := p.parseExpression()
			if err != nil {
				return nil, nil, lexer.Position{}, err
			}
			args = append(args, val)
		}

		if p.c.is(lexer.COMMA) {
			p.c.advance()
			continue
		}
		break
	}

	end := p.c.current().PosEnd
	if err := p.expect(lexer.RPAR, "')'"); err != nil {
		return nil, nil, lexer.Position{}, err
	}

	return ast.NewTuple(start, end, args), ast.NewDict(start, end, kwargs), end, nil
}

func (p *Parser) peekIsKwargEquals() bool {
	return p.c.peek(1).Kind == lexer.EQUAL
}

// stringTokFromName turns a keyword-argument NAME token into a synthetic
// STRING token so its text can be carried as a Dict key via ast.NewString.
func stringTokFromName(nameTok lexer.Token) lexer.Token {
	return lexer.Token{Kind: lexer.STRING, Value: nameTok.Value.(string), PosStart: nameTok.PosStart, PosEnd: nameTok.PosEnd}
}

// parseSubscript parses `[key]` or `[start?:stop?:step?]`.
func (p *Parser) parseSubscript() (ast.Expression, lexer.Position, error) {
	start := p.c.current().PosStart
	p.c.advance() // '['

	var startExpr, stop, step ast.Expression
	var err error
	isSlice := false

	if !p.c.is(lexer.COLON) && !p.c.is(lexer.RSQB) {
		startExpr, err = p.parseExpression()
		if err != nil {
			return nil, lexer.Position{}, err
		}
	}

	if p.c.is(lexer.COLON) {
		isSlice = true
		p.c.advance()
		if !p.c.is(lexer.COLON) && !p.c.is(lexer.RSQB) {
			stop, err = p.parseExpression()
			if err != nil {
				return nil, lexer.Position{}, err
			}
		}
		if p.c.is(lexer.COLON) {
			p.c.advance()
			if !p.c.is(lexer.RSQB) {
				step, err = p.parseExpression()
				if err != nil {
					return nil, lexer.Position{}, err
				}
			}
		}
	}

	end := p.c.current().PosEnd
	if err := p.expect(lexer.RSQB, "']'"); err != nil {
		return nil, lexer.Position{}, err
	}

	if isSlice {
		return ast.NewSlice(start, end, startExpr, stop, step), end, nil
	}
	return startExpr, end, nil
}

// parseAtom parses NUMBER, STRING, NAME, parenthesised tuple/expression,
// list literal, and dict literal.
func (p *Parser) parseAtom() (ast.Expression, error) {
	tok := p.c.current()

	switch tok.Kind {
	case lexer.NUMBER:
		p.c.advance()
		return ast.NewNumber(tok), nil

	case lexer.STRING:
		p.c.advance()
		return ast.NewString(tok), nil

	case lexer.NAME:
		if lexer.IsStatementKeyword(tok.Value.(string)) {
			return nil, newSyntaxError("unexpected keyword '"+tok.Value.(string)+"'", tok.PosStart, tok.PosEnd)
		}
		p.c.advance()
		return ast.NewVarAccess(tok), nil

	case lexer.LPAR:
		return p.parseParenOrTuple()

	case lexer.LSQB:
		return p.parseListLiteral()

	case lexer.LBRACE:
		return p.parseDictLiteral()
	}

	return nil, newSyntaxError("expected an expression, found "+tok.Kind.String(), tok.PosStart, tok.PosEnd)
}

// parseParenOrTuple handles the three atom-level parenthesis forms:
// `()` (0-tuple), `(expr)` (grouped expression), and `(expr,)`/`(a, b)`
// (tuple, with or without a single-element trailing comma).
func (p *Parser) parseParenOrTuple() (ast.Expression, error) {
	start := p.c.current().PosStart
	p.c.advance() // '('

	if p.c.is(lexer.RPAR) {
		end := p.c.current().PosEnd
		p.c.advance()
		return ast.NewTuple(start, end, nil), nil
	}

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.c.is(lexer.RPAR) {
		p.c.advance()
		return first, nil
	}

	items := []ast.Expression{first}
	for p.c.is(lexer.COMMA) {
		p.c.advance()
		if p.c.is(lexer.RPAR) {
			break
		}
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	end := p.c.current().PosEnd
	if err := p.expect(lexer.RPAR, "')'"); err != nil {
		return nil, err
	}
	return ast.NewTuple(start, end, items), nil
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	start := p.c.current().PosStart
	p.c.advance() // '['

	var items []ast.Expression
	for !p.c.is(lexer.RSQB) {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.c.is(lexer.COMMA) {
			p.c.advance()
			continue
		}
		break
	}

	end := p.c.current().PosEnd
	if err := p.expect(lexer.RSQB, "']'"); err != nil {
		return nil, err
	}
	return ast.NewList(start, end, items), nil
}

func (p *Parser) parseDictLiteral() (ast.Expression, error) {
	start := p.c.current().PosStart
	p.c.advance() // '{'

	var entries []ast.DictEntry
	for !p.c.is(lexer.RBRACE) {
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.DictEntry{Key: key, Value: val})
		if p.c.is(lexer.COMMA) {
			p.c.advance()
			continue
		}
		break
	}

	end := p.c.current().PosEnd
	if err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return ast.NewDict(start, end, entries), nil
}
