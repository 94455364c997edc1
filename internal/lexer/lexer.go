// Package lexer turns SharpScript source bytes into a pull-based token
// stream. Whitespace and '#' comments are collected as leading trivia; the
// '#include'/'#involve' prefixes are the one place where '#' does not open a
// comment.
package lexer

import (
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '#':
		// сюда попадаем только если trivia-фаза распознала директиву
		tok = lx.scanDirective()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// State is an opaque snapshot of the lexer position, used by the parser's
// non-destructive multi-token probe.
type State struct {
	off  uint32
	look *token.Token
}

// Save captures the current position including the lookahead buffer.
func (lx *Lexer) Save() State {
	return State{off: lx.cursor.Off, look: lx.look}
}

// Restore rewinds the lexer to a previously saved state.
func (lx *Lexer) Restore(s State) {
	lx.cursor.Off = s.off
	lx.look = s.look
	lx.hold = nil
}

// EmptySpan returns a zero-length span at the current offset.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}
