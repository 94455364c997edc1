package ast

import (
	"sharpscript/internal/source"
)

// Builder bundles the arenas of one parse plus the string interner. The
// parser allocates through it; the evaluator reads through it.
type Builder struct {
	Files           *Files
	Stmts           *Stmts
	Exprs           *Exprs
	StringsInterner *source.Interner
}

// NewBuilder creates a Builder with arenas preallocated to capHint.
func NewBuilder(capHint uint, interner *source.Interner) *Builder {
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Files:           NewFiles(4),
		Stmts:           NewStmts(capHint),
		Exprs:           NewExprs(capHint),
		StringsInterner: interner,
	}
}

// PushStmt appends a top-level statement to the file.
func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}

// Lookup resolves an interned string.
func (b *Builder) Lookup(id source.StringID) string {
	return b.StringsInterner.MustLookup(id)
}
