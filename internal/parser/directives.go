package parser

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/lexer"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

// parseInclude разворачивает '#include "path"' / '#involve "path"' на месте.
// Путь пробуем как есть, затем с префиксом "src/". Повторное включение того
// же пути в рамках одного разбора — null statement; include-guard общий для
// вложенных включений.
func (p *Parser) parseInclude() ast.StmtID {
	dir := p.advance() // DirInclude | DirInvolve
	path := dir.Text

	fileID, resolved, ok := p.resolveInclude(path)
	if !ok {
		p.report(diag.SynIncludeOpenFailed, diag.SevError, dir.Span,
			"cannot open included file \""+path+"\"")
		p.eatSemicolons()
		return p.arenas.Stmts.NewEmpty(dir.Span)
	}

	if p.included[resolved] {
		p.eatSemicolons()
		return p.arenas.Stmts.NewEmpty(dir.Span)
	}
	p.included[resolved] = true

	stmt := p.parseIncludedFile(fileID, dir)
	p.eatSemicolons()
	return stmt
}

func (p *Parser) resolveInclude(path string) (fileID source.FileID, resolved string, ok bool) {
	if id, err := p.fs.Load(path); err == nil {
		return id, path, true
	}
	prefixed := "src/" + path
	if id, err := p.fs.Load(prefixed); err == nil {
		return id, prefixed, true
	}
	return 0, "", false
}

// parseIncludedFile прогоняет включённый файл свежей парой лексер/парсер и
// подставляет его statements как блок. Арены, интернер, reporter и
// include-guard — общие.
func (p *Parser) parseIncludedFile(fileID source.FileID, dir token.Token) ast.StmtID {
	file := p.fs.Get(fileID)
	sub := Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: p.opts.Reporter}),
		arenas:   p.arenas,
		file:     p.file,
		fs:       p.fs,
		opts:     p.opts,
		lastSpan: dir.Span,
		included: p.included,
	}

	var stmts []ast.StmtID
	for !sub.at(token.EOF) {
		stmts = append(stmts, sub.parseStmt())
	}
	p.opts.CurrentErrors = sub.opts.CurrentErrors

	return p.arenas.Stmts.NewBlock(dir.Span, stmts)
}
