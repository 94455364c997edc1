package lexer

import (
	"sharpscript/internal/diag"
	"sharpscript/internal/token"
)

// Строки "..." без escape-обработки: байты между кавычками попадают в
// Token.Text как есть. Незакрытая строка съедает ввод до EOF.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	contentStart := lx.cursor.Off
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '"' {
			contentEnd := lx.cursor.Off
			lx.cursor.Bump() // closing '"'
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.String,
				Span: sp,
				Text: string(lx.file.Content[contentStart:contentEnd]),
			}
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{
		Kind: token.String,
		Span: sp,
		Text: string(lx.file.Content[contentStart:lx.cursor.Off]),
	}
}
