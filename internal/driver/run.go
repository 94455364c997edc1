package driver

import (
	"io"

	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/diagfmt"
	"sharpscript/internal/interp"
	"sharpscript/internal/lexer"
	"sharpscript/internal/parser"
	"sharpscript/internal/source"
)

// RunOptions configures script execution.
type RunOptions struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	// Color enables ANSI colors in streamed diagnostics.
	Color bool
	// MaxDiagnostics caps collected parse diagnostics.
	MaxDiagnostics int
}

// RunScript parses and evaluates a script file, then synthesizes a
// zero-argument call to main (ignoring the result). Parse diagnostics go to
// stderr before evaluation starts; runtime diagnostics stream to stderr as
// they happen. Runtime diagnostics do not produce a Go error.
func RunScript(path string, opts RunOptions) error {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return err
	}

	max := opts.MaxDiagnostics
	if max == 0 {
		max = 100
	}

	bag := diag.NewBag(max)
	reporter := &diag.BagReporter{Bag: bag}

	builder := ast.NewBuilder(0, nil)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	parsed := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(opts.Stderr, bag, fs, diagfmt.PrettyOpts{Color: opts.Color, Context: true})
	}

	session := interp.New(interp.Options{
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		Stdin:  opts.Stdin,
		Reporter: &diagfmt.StreamReporter{
			W:    opts.Stderr,
			FS:   fs,
			Opts: diagfmt.PrettyOpts{Color: opts.Color},
		},
	})

	session.Eval(builder, parsed.File)
	session.CallByName(builder, "main")
	return nil
}
