package driver

import (
	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/lexer"
	"sharpscript/internal/parser"
	"sharpscript/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	Builder *ast.Builder
	File    ast.FileID
	Bag     *diag.Bag
}

// Parse loads and parses a file, includes and all.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics), nil
}

// ParseSource parses an in-memory buffer.
func ParseSource(name string, src []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	builder := ast.NewBuilder(0, nil)
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	result := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})

	return &ParseResult{
		FileSet: fs,
		Builder: builder,
		File:    result.File,
		Bag:     bag,
	}
}
