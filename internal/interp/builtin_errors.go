package interp

import (
	"sharpscript/internal/source"
)

// builtinThrow constructs an error Value and raises the Thrown flow. It is
// the only builtin that unwinds, and it prints nothing — presentation is the
// catcher's business.
func builtinThrow(_ *Interp, _ source.Span, args []Value) (Value, Flow) {
	name := "Error"
	message := ""
	code := 0.0
	if len(args) >= 1 && args[0].Kind == KindString {
		name = args[0].Str
	}
	if len(args) >= 2 && args[1].Kind == KindString {
		message = args[1].Str
	}
	if len(args) >= 3 {
		code = args[2].AsNumber()
	}
	return ErrorValue(name, message, code), FlowThrown
}
