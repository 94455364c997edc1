package lexer

import (
	"sharpscript/internal/token"
)

// Числа без знака и экспоненты: [0-9]+ (опц. .[0-9]+).
// Точка съедается только когда за ней идёт цифра, иначе она остаётся
// оператором (индексация через идентификаторы сюда не попадает).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
