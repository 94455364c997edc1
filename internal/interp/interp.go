// Package interp is the tree-walking evaluator: environments, the runtime
// value model, control-flow propagation, structured errors, and the builtin
// library. One Interp instance is one interpreter session; the global frame,
// the calculator memory, and the history sequence live as long as it does.
package interp

import (
	"bufio"
	"io"
	"os"

	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/source"
)

// Options configures an interpreter session.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	// Reporter receives runtime diagnostics. May be nil.
	Reporter diag.Reporter
}

// Interp holds the interpreter context: the global environment, the current
// frame pointer, and the two process-wide side tables (calculator memory and
// history).
type Interp struct {
	globals *Env
	current *Env
	memory  *Env
	history []Value

	arenas *ast.Builder
	opts   Options
	stdin  *bufio.Reader
}

// New creates an interpreter session with a fresh global environment.
func New(opts Options) *Interp {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	globals := NewEnv(nil)
	return &Interp{
		globals: globals,
		current: globals,
		memory:  NewEnv(nil),
		history: make([]Value, 0, 16),
		opts:    opts,
		stdin:   bufio.NewReader(opts.Stdin),
	}
}

// Eval walks the top-level statements of a parsed file in the global frame
// and returns the value of the last one. A structured error escaping every
// try frame is fatal for the remainder of the file: it is reported as a
// diagnostic and evaluation stops.
func (i *Interp) Eval(arenas *ast.Builder, fileID ast.FileID) Value {
	prev := i.arenas
	i.arenas = arenas
	defer func() { i.arenas = prev }()

	file := arenas.Files.Get(fileID)
	if file == nil {
		return Null()
	}

	result := Null()
	for _, stmtID := range file.Stmts {
		v, flow := i.evalStmt(stmtID)
		switch flow {
		case FlowThrown:
			i.diag(diag.RunUncaughtError, arenas.Stmts.Get(stmtID).Span,
				"uncaught error "+v.Display())
			return Null()
		case FlowBreak, FlowContinue, FlowReturn:
			// top-level sentinels are consumed silently, как и в блоке
			return result
		}
		result = v
	}
	return result
}

// CallByName synthesizes a zero-argument call to a bound function, ignoring
// missing bindings. Used by the driver to invoke main after a script runs.
func (i *Interp) CallByName(arenas *ast.Builder, name string) Value {
	prev := i.arenas
	i.arenas = arenas
	defer func() { i.arenas = prev }()

	v, ok := i.current.Lookup(name)
	if !ok || v.Kind != KindFunction {
		return Null()
	}
	result, _ := i.callFunction(v.Fn, nil)
	return result
}

// Memory returns the calculator-memory environment.
func (i *Interp) Memory() *Env {
	return i.memory
}

// History returns a snapshot of the history sequence.
func (i *Interp) History() []Value {
	out := make([]Value, len(i.history))
	copy(out, i.history)
	return out
}

// RestoreSession reinstates persisted calculator memory and history, e.g.
// from the on-disk session cache.
func (i *Interp) RestoreSession(memory map[string]Value, history []Value) {
	for name, v := range memory {
		i.memory.Define(name, v, false, v.TypeName())
	}
	i.history = append(i.history, history...)
}

func (i *Interp) diag(code diag.Code, sp source.Span, msg string) {
	if i.opts.Reporter == nil {
		return
	}
	i.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}

func (i *Interp) lookupStr(id source.StringID) string {
	return i.arenas.StringsInterner.MustLookup(id)
}
