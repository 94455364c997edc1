package parser

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

// parseDeclare: '&insert'|'const' ident [':' type] '=' expr.
func (p *Parser) parseDeclare(isConst bool) ast.StmtID {
	kw := p.advance() // '&insert' или 'const'

	name, ok := p.parseIdent()
	if !ok {
		p.resyncStmt()
		return p.arenas.Stmts.NewEmpty(kw.Span)
	}

	typeName := source.NoStringID
	if p.at(token.Colon) {
		p.advance()
		if id, ok := p.parseIdent(); ok {
			typeName = id
		}
	}

	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in declaration"); !ok {
		p.resyncStmt()
		return p.arenas.Stmts.NewEmpty(kw.Span.Cover(p.lastSpan))
	}

	value := p.parseExpression()
	p.eatSemicolons()
	return p.arenas.Stmts.NewDeclare(kw.Span.Cover(p.lastSpan), name, typeName, value, isConst)
}

// tryAssign — разбор присваиваний, начинающихся с идентификатора:
// x = e, x += e, x++, x--. Если за идентификатором не оператор присваивания,
// откатываемся и даём выражению разобраться самому.
func (p *Parser) tryAssign() (ast.StmtID, bool) {
	state := p.lx.Save()
	identTok := p.advance()
	name := p.arenas.StringsInterner.Intern(identTok.Text)

	next := p.lx.Peek()
	if op, ok := compoundAssignOp(next.Kind); ok {
		p.advance()
		value := p.parseExpression()
		p.eatSemicolons()
		return p.arenas.Stmts.NewAssign(identTok.Span.Cover(p.lastSpan), name, op, value), true
	}

	switch next.Kind {
	case token.PlusPlus:
		p.advance()
		p.eatSemicolons()
		return p.arenas.Stmts.NewAssign(identTok.Span.Cover(next.Span), name, ast.AssignInc, ast.NoExprID), true
	case token.MinusMinus:
		p.advance()
		p.eatSemicolons()
		return p.arenas.Stmts.NewAssign(identTok.Span.Cover(next.Span), name, ast.AssignDec, ast.NoExprID), true
	}

	p.lx.Restore(state)
	return ast.NoStmtID, false
}

// tryWordAssign: 'add x = e' и родственные словесные формы.
// Откат, если за словом-оператором не идёт 'ident ='.
func (p *Parser) tryWordAssign() (ast.StmtID, bool) {
	state := p.lx.Save()
	wordTok := p.advance()
	op, _ := wordAssignOp(wordTok.Kind)

	if !p.at(token.Ident) {
		p.lx.Restore(state)
		return ast.NoStmtID, false
	}
	identTok := p.advance()
	if !p.at(token.Assign) {
		p.lx.Restore(state)
		return ast.NoStmtID, false
	}
	p.advance() // '='

	name := p.arenas.StringsInterner.Intern(identTok.Text)
	value := p.parseExpression()
	p.eatSemicolons()
	return p.arenas.Stmts.NewAssign(wordTok.Span.Cover(p.lastSpan), name, op, value), true
}

// resyncStmt — локальное восстановление: прокрутка до ';' или '}' или EOF.
func (p *Parser) resyncStmt() {
	for !p.atOr(token.Semicolon, token.RBrace, token.EOF) {
		p.advance()
	}
	p.eatSemicolons()
}
