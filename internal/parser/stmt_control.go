package parser

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

// parseIf: 'if' '(' cond ')' тело ['else' тело].
func (p *Parser) parseIf() ast.StmtID {
	kw := p.advance()
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'if'")
	cond := p.parseExpression()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	then := p.parseBlockOrStmt()

	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseBlockOrStmt()
	}
	return p.arenas.Stmts.NewIf(kw.Span.Cover(p.lastSpan), cond, then, els)
}

// parseWhile: 'while' '(' cond ')' тело.
func (p *Parser) parseWhile() ast.StmtID {
	kw := p.advance()
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'while'")
	cond := p.parseExpression()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	body := p.parseBlockOrStmt()
	return p.arenas.Stmts.NewWhile(kw.Span.Cover(p.lastSpan), cond, body)
}

// parseFor различает 'for (x in e)' и C-форму 'for (init; cond; post)'
// неразрушающим пробегом по первым двум токенам заголовка.
func (p *Parser) parseFor() ast.StmtID {
	kw := p.advance()
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'for'")

	if p.probeForIn() {
		identTok := p.advance()
		v := p.arenas.StringsInterner.Intern(identTok.Text)
		p.advance() // 'in'
		iterable := p.parseExpression()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-in header")
		body := p.parseBlockOrStmt()
		return p.arenas.Stmts.NewForIn(kw.Span.Cover(p.lastSpan), v, iterable, body)
	}

	// C-форма. init съедает свой ';' сам (см. parseStmt).
	init := ast.NoStmtID
	if p.at(token.Semicolon) {
		p.advance()
	} else {
		init = p.parseStmt()
	}

	cond := ast.NoExprID
	if p.at(token.Semicolon) {
		p.advance()
	} else {
		cond = p.parseExpression()
		p.expect(token.Semicolon, diag.SynBadForHeader, "expected ';' after for condition")
	}

	post := ast.NoStmtID
	if !p.at(token.RParen) {
		post = p.parseStmt()
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for header")

	body := p.parseBlockOrStmt()
	return p.arenas.Stmts.NewFor(kw.Span.Cover(p.lastSpan), init, cond, post, body)
}

func (p *Parser) probeForIn() bool {
	state := p.lx.Save()
	defer p.lx.Restore(state)
	if p.lx.Next().Kind != token.Ident {
		return false
	}
	return p.lx.Next().Kind == token.KwIn
}

// parseMatch: 'match' '(' e ')' '{' {case/default} '}'.
// Тело кейса — блок либо statements до следующего case/default/'}'.
func (p *Parser) parseMatch() ast.StmtID {
	kw := p.advance()
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after 'match'")
	scrutinee := p.parseExpression()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after match expression")
	p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open match body")

	var cases []ast.MatchCase
	def := ast.NoStmtID

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwCase:
			p.advance()
			pattern := p.parseExpression()
			p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case pattern")
			body := p.parseCaseBody()
			cases = append(cases, ast.MatchCase{Pattern: pattern, Body: body})

		case token.KwDefault:
			p.advance()
			p.expect(token.Colon, diag.SynExpectColon, "expected ':' after 'default'")
			def = p.parseCaseBody()

		default:
			p.err(diag.SynBadMatchCase, "expected 'case' or 'default' in match body")
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close match body")
	return p.arenas.Stmts.NewMatch(kw.Span.Cover(p.lastSpan), scrutinee, cases, def)
}

func (p *Parser) parseCaseBody() ast.StmtID {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	start := p.lx.Peek().Span
	var stmts []ast.StmtID
	for !p.atOr(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	return p.arenas.Stmts.NewBlock(start.Cover(p.lastSpan), stmts)
}

// parseTry: 'try' блок ['catch' ['(' ident ')'] блок] ['finally' блок].
func (p *Parser) parseTry() ast.StmtID {
	kw := p.advance()
	try := p.parseBlockOrStmt()

	hasCatch := false
	catchName := source.NoStringID
	catchBody := ast.NoStmtID
	if p.at(token.KwCatch) {
		p.advance()
		hasCatch = true
		if p.at(token.LParen) {
			p.advance()
			if id, ok := p.parseIdent(); ok {
				catchName = id
			}
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch binding")
		}
		catchBody = p.parseBlockOrStmt()
	}

	finally := ast.NoStmtID
	if p.at(token.KwFinally) {
		p.advance()
		finally = p.parseBlockOrStmt()
	}

	return p.arenas.Stmts.NewTry(kw.Span.Cover(p.lastSpan), try, hasCatch, catchName, catchBody, finally)
}

// parseReturn: 'return' [expr].
func (p *Parser) parseReturn() ast.StmtID {
	kw := p.advance()
	value := ast.NoExprID
	if !p.atOr(token.Semicolon, token.RBrace, token.EOF) {
		value = p.parseExpression()
	}
	p.eatSemicolons()
	return p.arenas.Stmts.NewReturn(kw.Span.Cover(p.lastSpan), value)
}
