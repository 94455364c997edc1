package interp

import (
	_ "embed"
	"fmt"

	"sharpscript/internal/source"
)

//go:embed docs/USER_GUIDE.md
var userGuide string

//go:embed docs/DEVELOPER_GUIDE.md
var developerGuide string

// docsGet resolves a help topic. Unknown topics fall back to the user guide.
func docsGet(topic string) string {
	var content string
	switch topic {
	case "dev", "developer":
		content = developerGuide
	default:
		// "user", "help" и всё остальное
		content = userGuide
	}
	if content == "" {
		return "Documentation not found"
	}
	return content
}

// builtinHelp prints documentation for the topic; no argument means the
// default guide.
func builtinHelp(i *Interp, _ source.Span, args []Value) (Value, Flow) {
	topic := "help"
	if len(args) >= 1 && args[0].Kind == KindString {
		topic = args[0].Str
	}
	fmt.Fprintln(i.opts.Stdout, docsGet(topic))
	return Null(), FlowNormal
}
