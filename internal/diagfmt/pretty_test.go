package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"sharpscript/internal/diag"
	"sharpscript/internal/diagfmt"
	"sharpscript/internal/source"
)

func TestPrettyFormat(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("script.sharp", []byte("&insert x = ;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynExpectExpression, source.Span{File: id, Start: 12, End: 13},
		"expected expression, got \";\""))
	bag.Sort()

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{Context: true})

	out := buf.String()
	if !strings.Contains(out, "script.sharp:1:13: ERROR [SYN2003]") {
		t.Errorf("header wrong: %q", out)
	}
	if !strings.Contains(out, "&insert x = ;") {
		t.Errorf("context line missing: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("caret missing: %q", out)
	}
}

func TestStreamReporter(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("line.sharp", []byte("x\n"))

	var buf bytes.Buffer
	reporter := &diagfmt.StreamReporter{W: &buf, FS: fs}
	reporter.Report(diag.RunUndeclared, diag.SevError,
		source.Span{File: id, Start: 0, End: 1}, "undeclared variable: x", nil)

	if !strings.Contains(buf.String(), "undeclared variable: x") {
		t.Errorf("stream output = %q", buf.String())
	}
}
