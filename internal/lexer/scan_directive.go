package lexer

import (
	"sharpscript/internal/diag"
	"sharpscript/internal/token"
)

// scanDirective разбирает '#include "path"' / '#involve "path"'.
// Token.Text — путь без кавычек.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()

	kind := token.Invalid
	switch {
	case lx.cursor.EatSeq("#include"):
		kind = token.DirInclude
	case lx.cursor.EatSeq("#involve"):
		kind = token.DirInvolve
	default:
		// не должно случиться: trivia-фаза пропускает сюда только директивы
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() != '"' {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadDirective, sp, "expected quoted path after directive")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	lx.cursor.Bump() // opening '"'
	pathStart := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '"' && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	pathEnd := lx.cursor.Off
	if !lx.cursor.Eat('"') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadDirective, sp, "unterminated path in directive")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[pathStart:pathEnd])}
}
