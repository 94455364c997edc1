package parser

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

// parseNamespace: 'namespace' ident блок.
func (p *Parser) parseNamespace() ast.StmtID {
	kw := p.advance()
	name, ok := p.parseIdent()
	if !ok {
		p.resyncStmt()
		return p.arenas.Stmts.NewEmpty(kw.Span)
	}
	body := p.parseBlockOrStmt()
	return p.arenas.Stmts.NewNamespace(kw.Span.Cover(p.lastSpan), name, body)
}

// parseEnum: 'enum' ident '{' member {',' member} [','] '}'.
// member: ident ['=' expr]; без '=' значение — последнее явное плюс один.
func (p *Parser) parseEnum() ast.StmtID {
	kw := p.advance()
	name, ok := p.parseIdent()
	if !ok {
		p.resyncStmt()
		return p.arenas.Stmts.NewEmpty(kw.Span)
	}

	p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open enum body")
	var members []ast.EnumMember
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if !p.at(token.Ident) {
			p.err(diag.SynBadEnumMember, "expected enum member name, got \""+p.lx.Peek().Text+"\"")
			p.advance()
			continue
		}
		tok := p.advance()
		member := ast.EnumMember{
			Name:  p.arenas.StringsInterner.Intern(tok.Text),
			Value: ast.NoExprID,
		}
		if p.at(token.Assign) {
			p.advance()
			member.Value = p.parseExpression()
		}
		members = append(members, member)

		if p.at(token.Comma) {
			p.advance()
		} else if !p.at(token.RBrace) {
			p.err(diag.SynBadEnumMember, "expected ',' or '}' after enum member")
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum body")
	return p.arenas.Stmts.NewEnum(kw.Span.Cover(p.lastSpan), name, members)
}

// parseClass: 'class'|'struct' ident [':' base] блок.
// Тело исполняется как обычный блок — диспатча методов нет.
func (p *Parser) parseClass(isStruct bool) ast.StmtID {
	kw := p.advance()
	name, ok := p.parseIdent()
	if !ok {
		p.resyncStmt()
		return p.arenas.Stmts.NewEmpty(kw.Span)
	}

	base := source.NoStringID
	if p.at(token.Colon) {
		p.advance()
		if id, ok := p.parseIdent(); ok {
			base = id
		}
	}

	body := p.parseBlockOrStmt()
	return p.arenas.Stmts.NewClass(kw.Span.Cover(p.lastSpan), name, base, body, isStruct)
}
