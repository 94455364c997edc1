package interp

import (
	"os"

	"sharpscript/internal/source"
)

// builtinFileRead reads the whole file as a string; any failure returns null.
func builtinFileRead(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 1 || args[0].Kind != KindString {
		return Null(), FlowNormal
	}
	// #nosec G304 -- путь приходит из пользовательского скрипта
	content, err := os.ReadFile(args[0].Str)
	if err != nil {
		return Null(), FlowNormal
	}
	return Str(string(content)), FlowNormal
}

// builtinFileWrite writes a string or general-format number; other payload
// types are ignored. Returns null either way.
func builtinFileWrite(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
	if len(args) < 2 || args[0].Kind != KindString {
		return Null(), FlowNormal
	}
	var data string
	switch args[1].Kind {
	case KindString:
		data = args[1].Str
	case KindNumber:
		data = generalFormat(args[1].Num)
	default:
		return Null(), FlowNormal
	}
	// #nosec G306 -- скриптовый вывод, не секреты
	_ = os.WriteFile(args[0].Str, []byte(data), 0o644)
	return Null(), FlowNormal
}
