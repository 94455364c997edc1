package diagfmt

import (
	"io"

	"sharpscript/internal/diag"
	"sharpscript/internal/source"
)

// StreamReporter renders each diagnostic immediately as it is reported.
// The interpreter uses it so runtime diagnostics hit stderr in source order,
// interleaved correctly with script output.
type StreamReporter struct {
	W    io.Writer
	FS   *source.FileSet
	Opts PrettyOpts
}

func (r *StreamReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	d := diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	}
	PrintOne(r.W, d, r.FS, r.Opts)
}
