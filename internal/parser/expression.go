package parser

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

// parseExpression — precedence climbing над бинарными операторами.
func (p *Parser) parseExpression() ast.ExprID {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	left := p.parseUnary()
	for {
		kind := p.lx.Peek().Kind
		prec := p.getBinaryOperatorPrec(kind)
		if prec < 0 || prec < minPrec {
			return left
		}
		opTok := p.advance()
		op := p.tokenKindToBinaryOp(opTok.Kind)
		// левоассоциативность: правый операнд с приоритетом на один выше
		right := p.parseBinary(prec + 1)
		span := p.spanOf(left).Cover(p.spanOf(right))
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	switch p.lx.Peek().Kind {
	case token.Bang:
		opTok := p.advance()
		operand := p.parseUnary()
		return p.arenas.Exprs.NewUnary(opTok.Span.Cover(p.spanOf(operand)), ast.UnNot, operand)
	case token.Minus:
		opTok := p.advance()
		operand := p.parseUnary()
		return p.arenas.Exprs.NewUnary(opTok.Span.Cover(p.spanOf(operand)), ast.UnNeg, operand)
	default:
		return p.parsePostfix()
	}
}

// parsePostfix — цепочки индексаций e[i][j], левоассоциативно.
func (p *Parser) parsePostfix() ast.ExprID {
	expr := p.parsePrimary()
	for p.at(token.LBracket) {
		p.advance() // '['
		index := p.parseExpression()
		closing, _ := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index expression")
		span := p.spanOf(expr).Cover(closing.Span)
		expr = p.arenas.Exprs.NewIndex(span, expr, index)
	}
	return expr
}

func (p *Parser) spanOf(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}
