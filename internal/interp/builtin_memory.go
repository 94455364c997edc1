package interp

import (
	"sharpscript/internal/source"
)

// builtinStore copies a value into the process-wide calculator memory.
func builtinStore(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 2 || args[0].Kind != KindString {
		return Null(), FlowNormal
	}
	v := args[1].Clone()
	i.memory.Define(args[0].Str, v, false, v.TypeName())
	return Null(), FlowNormal
}

// builtinRecall returns a copy of the stored value, or null if absent.
func builtinRecall(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 1 || args[0].Kind != KindString {
		return Null(), FlowNormal
	}
	if v, ok := i.memory.Lookup(args[0].Str); ok {
		return v.Clone(), FlowNormal
	}
	return Null(), FlowNormal
}

// builtinMemclear discards the calculator-memory environment and re-creates
// it empty.
func builtinMemclear(i *Interp, _ source.Span, _ []Value) (Value, Flow) {
	i.memory = NewEnv(nil)
	return Null(), FlowNormal
}

func builtinHistoryAdd(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 1 {
		return Null(), FlowNormal
	}
	i.history = append(i.history, args[0].Clone())
	return Null(), FlowNormal
}

// builtinHistoryGet returns a fresh array of clones of the history sequence.
func builtinHistoryGet(i *Interp, _ source.Span, _ []Value) (Value, Flow) {
	out := make([]Value, len(i.history))
	for idx, v := range i.history {
		out[idx] = v.Clone()
	}
	return Array(out), FlowNormal
}

func builtinHistoryClear(i *Interp, _ source.Span, _ []Value) (Value, Flow) {
	i.history = i.history[:0]
	return Null(), FlowNormal
}
