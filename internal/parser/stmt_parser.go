package parser

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/token"
)

// parseStmt выбирает по первому токену нужный распознаватель statement.
// Любая ошибка деградирует до null statement — парсер не падает.
func (p *Parser) parseStmt() ast.StmtID {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Semicolon:
		p.advance()
		return p.arenas.Stmts.NewEmpty(tok.Span)

	case token.Invalid:
		// лексер уже отрепортил; пропускаем как no-op
		p.advance()
		return p.arenas.Stmts.NewEmpty(tok.Span)

	case token.AmpInsert:
		return p.parseDeclare(false)

	case token.KwConst:
		return p.parseDeclare(true)

	case token.KwIf:
		return p.parseIf()

	case token.KwWhile:
		return p.parseWhile()

	case token.KwFor:
		return p.parseFor()

	case token.KwFunction:
		return p.parseFunction()

	case token.KwReturn:
		return p.parseReturn()

	case token.KwBreak:
		p.advance()
		p.eatSemicolons()
		return p.arenas.Stmts.NewBreak(tok.Span)

	case token.KwContinue:
		p.advance()
		p.eatSemicolons()
		return p.arenas.Stmts.NewContinue(tok.Span)

	case token.KwNamespace:
		return p.parseNamespace()

	case token.KwEnum:
		return p.parseEnum()

	case token.KwClass:
		return p.parseClass(false)

	case token.KwStruct:
		return p.parseClass(true)

	case token.KwMatch:
		return p.parseMatch()

	case token.KwTry:
		return p.parseTry()

	case token.LBrace:
		return p.parseBlock()

	case token.DirInclude, token.DirInvolve:
		return p.parseInclude()

	case token.KwNew, token.KwHelp, token.KwEnd:
		// зарезервированы без statement-роли
		p.advance()
		p.eatSemicolons()
		return p.arenas.Stmts.NewEmpty(tok.Span)

	case token.KwAdd, token.KwSub, token.KwMul, token.KwDiv, token.KwMod:
		if stmt, ok := p.tryWordAssign(); ok {
			return stmt
		}
		return p.parseExprStmt()

	case token.Ident:
		if stmt, ok := p.tryAssign(); ok {
			return stmt
		}
		return p.parseExprStmt()

	case token.EOF:
		return p.arenas.Stmts.NewEmpty(tok.Span)

	default:
		if tok.IsBuiltinTag() || tok.IsLiteral() ||
			p.atOr(token.LParen, token.LBracket, token.Bang, token.Minus) {
			return p.parseExprStmt()
		}
		p.report(diag.SynUnexpectedStmt, diag.SevError, tok.Span,
			"unexpected token \""+tok.Text+"\" in statement position")
		p.advance()
		return p.arenas.Stmts.NewEmpty(tok.Span)
	}
}

// parseExprStmt — выражение в statement-позиции (bare call и пр.).
func (p *Parser) parseExprStmt() ast.StmtID {
	expr := p.parseExpression()
	p.eatSemicolons()
	return p.arenas.Stmts.NewExpr(p.spanOf(expr), expr)
}

// parseBlock: '{' {stmt} '}'.
func (p *Parser) parseBlock() ast.StmtID {
	open, _ := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{'")
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	closing, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	return p.arenas.Stmts.NewBlock(open.Span.Cover(closing.Span), stmts)
}

// parseBlockOrStmt — тело управляющей конструкции: опциональная '=>', затем
// блок или одиночный statement.
func (p *Parser) parseBlockOrStmt() ast.StmtID {
	if p.at(token.FatArrow) {
		p.advance()
	}
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	return p.parseStmt()
}
