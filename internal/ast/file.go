package ast

import (
	"sharpscript/internal/source"
)

// File is one parsed source unit: the ordered top-level statements of a file
// (includes already expanded in place).
type File struct {
	Span  source.Span
	Stmts []StmtID
}

// Files manages allocation of parsed files.
type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(span source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: span}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
