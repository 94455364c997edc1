package parser

import (
	"strconv"

	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.report(diag.LexBadNumber, diag.SevError, tok.Span, "malformed numeric literal \""+tok.Text+"\"")
			value = 0
		}
		return p.arenas.Exprs.NewNumber(tok.Span, value)

	case token.String:
		p.advance()
		return p.arenas.Exprs.NewString(tok.Span, p.arenas.StringsInterner.Intern(tok.Text))

	case token.KwTrue:
		p.advance()
		return p.arenas.Exprs.NewBool(tok.Span, true)

	case token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewBool(tok.Span, false)

	case token.KwNull:
		p.advance()
		return p.arenas.Exprs.NewNull(tok.Span)

	case token.LBracket:
		return p.parseArrayLiteral()

	case token.LBrace:
		return p.parseMapLiteral()

	case token.LParen:
		if p.probeLambda() {
			return p.parseLambda()
		}
		p.advance() // '('
		expr := p.parseExpression()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after expression")
		return expr

	case token.Ident:
		p.advance()
		name := p.arenas.StringsInterner.Intern(tok.Text)
		if p.at(token.LParen) {
			args := p.parseCallArgs()
			return p.arenas.Exprs.NewCall(tok.Span.Cover(p.lastSpan), name, args)
		}
		return p.arenas.Exprs.NewIdent(tok.Span, name)

	default:
		// builtin-теги — примари с фиксированным каноническим именем
		if canonical, ok := token.BuiltinName(tok.Kind); ok {
			p.advance()
			name := p.arenas.StringsInterner.Intern(canonical)
			args := p.parseCallArgs()
			return p.arenas.Exprs.NewCall(tok.Span.Cover(p.lastSpan), name, args)
		}
		p.err(diag.SynExpectExpression, "expected expression, got \""+tok.Text+"\"")
		p.advance()
		return p.arenas.Exprs.NewNull(tok.Span)
	}
}

// parseCallArgs разбирает '(' [expr {',' expr}] ')'.
func (p *Parser) parseCallArgs() []ast.ExprID {
	p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' to open argument list")
	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			args = append(args, p.parseExpression())
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	return args
}

func (p *Parser) parseArrayLiteral() ast.ExprID {
	open := p.advance() // '['
	var elems []ast.ExprID
	if !p.at(token.RBracket) {
		for {
			elems = append(elems, p.parseExpression())
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	closing, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array elements")
	return p.arenas.Exprs.NewArray(open.Span.Cover(closing.Span), elems)
}

// parseMapLiteral: '{' [expr ':' expr {',' expr ':' expr}] '}'.
// Ключи — произвольные выражения; к строке они приводятся при вычислении.
func (p *Parser) parseMapLiteral() ast.ExprID {
	open := p.advance() // '{'
	var keys, values []ast.ExprID
	if !p.at(token.RBrace) {
		for {
			keys = append(keys, p.parseExpression())
			p.expect(token.Colon, diag.SynExpectColon, "expected ':' between map key and value")
			values = append(values, p.parseExpression())
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	closing, _ := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after map entries")
	return p.arenas.Exprs.NewMap(open.Span.Cover(closing.Span), keys, values)
}

// probeLambda — неразрушающе проверяет, стоит ли за закрывающей ')' токен
// '=>'. Только в этом случае скобочная форма — лямбда.
func (p *Parser) probeLambda() bool {
	state := p.lx.Save()
	defer p.lx.Restore(state)

	if p.lx.Next().Kind != token.LParen {
		return false
	}
	depth := 1
	for depth > 0 {
		tok := p.lx.Next()
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.EOF:
			return false
		}
	}
	return p.lx.Next().Kind == token.FatArrow
}

// parseLambda: '(' [ident {',' ident}] ')' '=>' тело.
// Все выражения внутри скобок обязаны быть идентификаторами.
func (p *Parser) parseLambda() ast.ExprID {
	open := p.advance() // '('
	var params []source.StringID
	if !p.at(token.RParen) {
		for {
			if p.at(token.Ident) {
				tok := p.advance()
				params = append(params, p.arenas.StringsInterner.Intern(tok.Text))
			} else {
				p.err(diag.SynBadLambdaParams, "lambda parameters must be identifiers")
				p.advance()
			}
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after lambda parameters")
	p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' after lambda parameters")
	body := p.parseBlockOrStmt()
	return p.arenas.Exprs.NewLambda(open.Span.Cover(p.lastSpan), params, body)
}
