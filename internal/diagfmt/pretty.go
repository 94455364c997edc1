package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sharpscript/internal/diag"
	"sharpscript/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgRed)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее). Для каждого diag:
// <path>:<line>:<col>: <SEV> [<CODE>]: <Message>, затем строка исходника с
// подчёркиванием ^~~~ по span, затем каждая Note строкой
// "  note: <path>:<line>:<col>: <msg>" (без severity, кода и строки исходника).
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

// PrintOne renders a single diagnostic, for streaming reporters.
func PrintOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	printDiagnostic(w, d, fs, opts)
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	if opts.Context {
		printContext(w, file, d.Primary, start, opts)
	}

	for _, note := range d.Notes {
		noteFile := fs.Get(note.Span.File)
		noteStart, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
			noteFile.Path, noteStart.Line, noteStart.Col, note.Msg)
	}
}

// printContext печатает строку исходника и подчёркивание ^~~~ под span.
// Ширина подчёркивания считается по экранной ширине рун.
func printContext(w io.Writer, file *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// отступ до начала span в экранных колонках
	prefixEnd := int(start.Col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixEnd])

	spanLen := int(sp.Len())
	if spanLen < 1 {
		spanLen = 1
	}
	underEnd := prefixEnd + spanLen
	if underEnd > len(line) {
		underEnd = len(line)
	}
	width := runewidth.StringWidth(line[prefixEnd:underEnd])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
