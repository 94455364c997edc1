package token

var keywords = map[string]Kind{
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"for":       KwFor,
	"function":  KwFunction,
	"return":    KwReturn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"void":      KwVoid,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"const":     KwConst,
	"namespace": KwNamespace,
	"enum":      KwEnum,
	"class":     KwClass,
	"struct":    KwStruct,
	"new":       KwNew,
	"match":     KwMatch,
	"case":      KwCase,
	"default":   KwDefault,
	"try":       KwTry,
	"catch":     KwCatch,
	"finally":   KwFinally,
	"in":        KwIn,
	"help":      KwHelp,
	"end":       KwEnd,

	// word operators; in statement position they spell compound assignment
	"add": KwAdd,
	"sub": KwSub,
	"mul": KwMul,
	"div": KwDiv,
	"mod": KwMod,

	// qualified builtin tags ('.' is an identifier byte, so these arrive here
	// as a single identifier)
	"system.print":   BiPrint,
	"system.input":   BiInput,
	"system.len":     BiLen,
	"system.type":    BiType,
	"system.output":  BiOutput,
	"system.error":   BiError,
	"system.warning": BiWarning,
}

// LookupKeyword returns the kind for ident if it is a keyword or builtin tag.
// Lookup is case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// BuiltinName returns the canonical qualified name for a builtin tag kind.
func BuiltinName(k Kind) (string, bool) {
	switch k {
	case BiPrint:
		return "system.print", true
	case BiInput:
		return "system.input", true
	case BiLen:
		return "system.len", true
	case BiType:
		return "system.type", true
	case BiOutput:
		return "system.output", true
	case BiError:
		return "system.error", true
	case BiWarning:
		return "system.warning", true
	default:
		return "", false
	}
}
