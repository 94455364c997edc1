package interp

import (
	"fmt"
	"io"
	"strings"

	"sharpscript/internal/diag"
	"sharpscript/internal/source"
)

// builtinTable is the complete builtin contract, keyed by exact qualified
// name. Dispatch happens before environment lookup, so user bindings can
// never shadow a builtin.
var builtinTable = map[string]builtinFunc{
	"system.print":    builtinPrint,
	"system.output":   builtinPrint,
	"system.warning":  builtinWarning,
	"system.error":    builtinError,
	"system.input":    builtinInput,
	"system.len":      builtinLen,
	"system.type":     builtinType,
	"system.annotate": builtinAnnotate,

	"system.sin":  mathBuiltin1(mathSin),
	"system.cos":  mathBuiltin1(mathCos),
	"system.tan":  mathBuiltin1(mathTan),
	"system.asin": mathBuiltin1(mathAsin),
	"system.acos": mathBuiltin1(mathAcos),
	"system.atan": mathBuiltin1(mathAtan),
	"system.log":  mathBuiltin1(mathLog10),
	"system.ln":   mathBuiltin1(mathLn),
	"system.exp":  mathBuiltin1(mathExp),
	"system.sqrt": mathBuiltin1(mathSqrt),
	"system.pow":  builtinPow,

	"system.convert": builtinConvert,

	"system.store":    builtinStore,
	"system.recall":   builtinRecall,
	"system.memclear": builtinMemclear,

	"system.history.add":   builtinHistoryAdd,
	"system.history.get":   builtinHistoryGet,
	"system.history.clear": builtinHistoryClear,

	"system.throw": builtinThrow,
	"system.help":  builtinHelp,

	"file.read":  builtinFileRead,
	"file.write": builtinFileWrite,
}

// IsBuiltin reports whether name is dispatched by the evaluator rather than
// looked up in an environment.
func IsBuiltin(name string) bool {
	_, ok := builtinTable[name]
	return ok
}

func printTo(w io.Writer, prefix string, args []Value) {
	var sb strings.Builder
	sb.WriteString(prefix)
	for idx, v := range args {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.Display())
	}
	sb.WriteByte('\n')
	fmt.Fprint(w, sb.String())
}

func builtinPrint(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	printTo(i.opts.Stdout, "", args)
	return Null(), FlowNormal
}

func builtinWarning(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	printTo(i.opts.Stdout, "Warning: ", args)
	return Null(), FlowNormal
}

func builtinError(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	printTo(i.opts.Stderr, "Error: ", args)
	return Null(), FlowNormal
}

// builtinInput prints the optional prompt without a newline, then reads one
// line from stdin with the newline stripped. EOF reads as the empty string.
func builtinInput(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) >= 1 {
		fmt.Fprint(i.opts.Stdout, args[0].Display())
	}
	line, err := i.stdin.ReadString('\n')
	if err != nil && line == "" {
		return Str(""), FlowNormal
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return Str(line), FlowNormal
}

// builtinLen: длина строки в байтах или массива в элементах; иначе 0.
func builtinLen(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 1 {
		return Number(0), FlowNormal
	}
	switch args[0].Kind {
	case KindString:
		return Number(float64(len(args[0].Str))), FlowNormal
	case KindArray:
		return Number(float64(len(args[0].Arr))), FlowNormal
	default:
		return Number(0), FlowNormal
	}
}

func builtinType(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 1 {
		return Str("null"), FlowNormal
	}
	return Str(args[0].TypeName()), FlowNormal
}

// builtinAnnotate overwrites the type annotation on an existing binding in
// the current frame.
func builtinAnnotate(i *Interp, sp source.Span, args []Value) (Value, Flow) {
	if len(args) < 2 || args[0].Kind != KindString || args[1].Kind != KindString {
		return Null(), FlowNormal
	}
	if !i.current.Annotate(args[0].Str, args[1].Str) {
		i.diag(diag.RunUndeclared, sp, "undeclared variable: "+args[0].Str)
	}
	return Null(), FlowNormal
}
