package parser

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/token"
)

// parseFunction: 'function' ident '(' params ')' [=>] тело.
// params: 'void' (нет параметров) либо список 'ident [= default]'.
func (p *Parser) parseFunction() ast.StmtID {
	kw := p.advance()

	name, ok := p.parseIdent()
	if !ok {
		p.resyncStmt()
		return p.arenas.Stmts.NewEmpty(kw.Span)
	}

	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after function name")
	params := p.parseFnParams()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")

	body := p.parseBlockOrStmt()
	return p.arenas.Stmts.NewFunction(kw.Span.Cover(p.lastSpan), name, params, body)
}

func (p *Parser) parseFnParams() []ast.FnParam {
	if p.at(token.KwVoid) {
		p.advance()
		return nil
	}
	if p.at(token.RParen) {
		return nil
	}

	var params []ast.FnParam
	for {
		if !p.at(token.Ident) {
			p.err(diag.SynBadParamList, "expected parameter name, got \""+p.lx.Peek().Text+"\"")
			break
		}
		tok := p.advance()
		param := ast.FnParam{
			Name:    p.arenas.StringsInterner.Intern(tok.Text),
			Default: ast.NoExprID,
		}
		if p.at(token.Assign) {
			p.advance()
			param.Default = p.parseExpression()
		}
		params = append(params, param)

		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return params
}
