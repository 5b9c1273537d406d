package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
)

// parseStatement implements `statement := compound_stmt | simple_stmts`,
// returning every ast.Statement it produced (simple_stmts may yield more
// than one, separated by ';').
func (p *Parser) parseStatement() ([]ast.Statement, error) {
	if p.c.isName("if", "若", "如果") {
		stmt, err := p.parseIfStatement()
		if err != nil {
			return nil, err
		}
		return []ast.Statement{stmt}, nil
	}
	return p.parseSimpleStmts()
}

// parseSimpleStmts implements `simple_stmts := simple_stmt (';' simple_stmt)*`.
func (p *Parser) parseSimpleStmts() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		stmt, err := p.parseSimpleStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		if p.c.is(lexer.SEMI) {
			p.c.advance()
			if p.c.is(lexer.NEWLINE) || p.c.is(lexer.ENDMARKER) || p.c.is(lexer.DEDENT) {
				break
			}
			continue
		}
		break
	}
	return stmts, nil
}

// parseSimpleStmt implements `simple_stmt := assignment | del_stmt | star_expressions`,
// plus the by-value keywords `pass`/`exit`.
func (p *Parser) parseSimpleStmt() (ast.Statement, error) {
	if p.c.isName("del", "删除") {
		return p.parseDelStmt()
	}
	if p.c.isName("pass") {
		tok := p.c.current()
		p.c.advance()
		return ast.NewPass(tok), nil
	}
	if p.c.isName("exit") {
		tok := p.c.current()
		p.c.advance()
		return ast.NewExit(tok), nil
	}
	return p.parseAssignmentOrExpr()
}

func (p *Parser) parseDelStmt() (ast.Statement, error) {
	start := p.c.current().PosStart
	p.c.advance() // 'del'/'删除'

	var names []string
	var end lexer.Position
	for {
		if !p.c.is(lexer.NAME) || lexer.IsStatementKeyword(p.c.current().Value.(string)) {
			tok := p.c.current()
			return nil, newSyntaxError("expected a name after 'del'", tok.PosStart, tok.PosEnd)
		}
		nameTok := p.c.current()
		names = append(names, nameTok.Value.(string))
		end = nameTok.PosEnd
		p.c.advance()

		if p.c.is(lexer.COMMA) {
			p.c.advance()
			continue
		}
		break
	}
	return ast.NewVarDelete(start, end, names), nil
}

// parseAssignmentOrExpr implements the spec's bounded one-point
// backtracking rule: try a primary, commit to an assignment if it is
// followed by an assignment operator, otherwise rewind and parse a plain
// expression statement.
func (p *Parser) parseAssignmentOrExpr() (ast.Statement, error) {
	m := p.c.mark()
	prim, err := p.parsePrimary()
	if err == nil && (p.c.is(lexer.EQUAL) || lexer.IsCompoundAssign(p.c.current().Kind)) {
		assigned, aerr := p.buildAssignment(prim)
		if aerr != nil {
			return nil, aerr
		}
		return ast.NewExpressionStatement(assigned), nil
	}

	p.c.resetTo(m)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

// buildAssignment parses the right-hand side of an assignment already
// known to start at the cursor (current token is '=' or an `OP=` kind)
// and rewrites prim (and, for chained '=', every earlier target) into the
// corresponding Set*/VarAssign node.
func (p *Parser) buildAssignment(prim ast.Expression) (ast.Expression, error) {
	if lexer.IsCompoundAssign(p.c.current().Kind) {
		opTok := p.c.current()
		p.c.advance()
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		syntheticOp := lexer.Token{Kind: lexer.BinaryOpFor(opTok.Kind), PosStart: opTok.PosStart, PosEnd: opTok.PosEnd}
		combined := ast.NewBinaryOp(prim, syntheticOp, rhs)
		return p.rewriteLHS(prim, combined)
	}

	targets := []ast.Expression{prim}
	for p.c.is(lexer.EQUAL) {
		p.c.advance()
		m2 := p.c.mark()
		cand, err := p.parsePrimary()
		if err == nil && p.c.is(lexer.EQUAL) {
			targets = append(targets, cand)
			continue
		}
		p.c.resetTo(m2)

		rhs, rerr := p.parseExpression()
		if rerr != nil {
			return nil, rerr
		}
		result := rhs
		for i := len(targets) - 1; i >= 0; i-- {
			result, rerr = p.rewriteLHS(targets[i], result)
			if rerr != nil {
				return nil, rerr
			}
		}
		return result, nil
	}

	tok := p.c.current()
	return nil, newSyntaxError("expected an expression after '='", tok.PosStart, tok.PosEnd)
}

// rewriteLHS turns an already-parsed primary expression into the
// assignment node its kind determines: VarAccess -> VarAssign, GetAttr ->
// SetAttr, GetItem -> SetItem. Any other expression kind cannot be
// assigned to.
func (p *Parser) rewriteLHS(target ast.Expression, value ast.Expression) (ast.Expression, error) {
	switch t := target.(type) {
	case *ast.VarAccess:
		return ast.NewVarAssignFromAccess(t, value), nil
	case *ast.GetAttr:
		return ast.NewSetAttr(t, value), nil
	case *ast.GetItem:
		return ast.NewSetItem(t, value), nil
	default:
		return nil, newSyntaxError("cannot assign to this expression", target.PosStart(), target.PosEnd())
	}
}

// parseIfStatement implements:
//
//	if_stmt := 'if' expr ':' block ('elif' expr ':' block)* ('else' ':' block)?
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	ifTok := p.c.current()
	p.c.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	cases := []ast.IfCase{{Condition: cond, Body: body}}
	end := lastStatementEnd(body, ifTok.PosEnd)

	// The lexer emits a block's DEDENTs before the NEWLINE that ends it, so
	// an elif/else clause sits behind that NEWLINE: look past it, and
	// rewind if no clause follows.
	atClause := func(names ...string) bool {
		m := p.c.mark()
		p.skipNewlines()
		if p.c.isName(names...) {
			return true
		}
		p.c.resetTo(m)
		return false
	}

	for atClause("elif", "又若", "又如") {
		p.c.advance()
		c2, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		b2, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.IfCase{Condition: c2, Body: b2})
		end = lastStatementEnd(b2, end)
	}

	var elseBody []ast.Statement
	if atClause("else", "否则", "不然") {
		p.c.advance()
		if err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		elseBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		end = lastStatementEnd(elseBody, end)
	}

	return ast.NewIf(ifTok, false, cases, elseBody, end), nil
}

// parseBlock implements:
//
//	block := simple_stmts | NEWLINE INDENT statements DEDENT
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if p.c.is(lexer.NEWLINE) {
		p.c.advance()
		if !p.c.is(lexer.INDENT) {
			tok := p.c.current()
			return nil, newIndentationError("expected an indented block", tok.PosStart, tok.PosEnd)
		}
		p.c.advance()

		var stmts []ast.Statement
		for !p.c.is(lexer.DEDENT) && !p.c.is(lexer.ENDMARKER) {
			p.skipNewlines()
			if p.c.is(lexer.DEDENT) || p.c.is(lexer.ENDMARKER) {
				break
			}
			one, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, one...)
		}

		if !p.c.is(lexer.DEDENT) {
			tok := p.c.current()
			return nil, newIndentationError("expected a dedent to end the block", tok.PosStart, tok.PosEnd)
		}
		p.c.advance()
		return stmts, nil
	}

	stmts, err := p.parseSimpleStmts()
	if err != nil {
		return nil, err
	}
	if p.c.is(lexer.INDENT) {
		tok := p.c.current()
		return nil, newIndentationError("unexpected indent", tok.PosStart, tok.PosEnd)
	}
	return stmts, nil
}

func lastStatementEnd(stmts []ast.Statement, fallback lexer.Position) lexer.Position {
	if len(stmts) == 0 {
		return fallback
	}
	return stmts[len(stmts)-1].PosEnd()
}
