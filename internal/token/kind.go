package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Qualified names such as
	// system.history.add lex as a single Ident because '.' is an
	// identifier-continue byte.
	Ident
	// Number represents a numeric literal token.
	Number
	// String represents a string literal token.
	String

	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwVoid represents the 'void' keyword (empty parameter list).
	KwVoid // void
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwNew represents the reserved 'new' keyword.
	KwNew // new
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwHelp represents the reserved 'help' keyword.
	KwHelp // help
	// KwEnd represents the reserved 'end' keyword.
	KwEnd // end

	// KwAdd represents the word operator 'add'. The word operators double as
	// compound-assignment keywords in statement position.
	KwAdd // add
	// KwSub represents the word operator 'sub'.
	KwSub // sub
	// KwMul represents the word operator 'mul'.
	KwMul // mul
	// KwDiv represents the word operator 'div'.
	KwDiv // div
	// KwMod represents the word operator 'mod'.
	KwMod // mod

	// AmpInsert represents the '&insert' declaration keyword.
	AmpInsert // &insert

	// DirInclude represents a '#include "path"' directive; Text holds the
	// path without quotes.
	DirInclude
	// DirInvolve represents a '#involve "path"' directive.
	DirInvolve

	// BiPrint represents the 'system.print' builtin tag.
	BiPrint // system.print
	// BiInput represents the 'system.input' builtin tag.
	BiInput // system.input
	// BiLen represents the 'system.len' builtin tag.
	BiLen // system.len
	// BiType represents the 'system.type' builtin tag.
	BiType // system.type
	// BiOutput represents the 'system.output' builtin tag.
	BiOutput // system.output
	// BiError represents the 'system.error' builtin tag.
	BiError // system.error
	// BiWarning represents the 'system.warning' builtin tag.
	BiWarning // system.warning

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Bang represents the logical-not operator token.
	Bang // !
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus-assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus-assign operator token.
	MinusAssign // -=
	// StarAssign represents the star-assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash-assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent-assign operator token.
	PercentAssign // %=
	// FatArrow represents the fat-arrow token.
	FatArrow // =>

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the colon token.
	Colon // :
)

var kindNames = map[Kind]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	Number:        "Number",
	String:        "String",
	KwIf:          "KwIf",
	KwElse:        "KwElse",
	KwWhile:       "KwWhile",
	KwFor:         "KwFor",
	KwFunction:    "KwFunction",
	KwReturn:      "KwReturn",
	KwBreak:       "KwBreak",
	KwContinue:    "KwContinue",
	KwVoid:        "KwVoid",
	KwTrue:        "KwTrue",
	KwFalse:       "KwFalse",
	KwNull:        "KwNull",
	KwConst:       "KwConst",
	KwNamespace:   "KwNamespace",
	KwEnum:        "KwEnum",
	KwClass:       "KwClass",
	KwStruct:      "KwStruct",
	KwNew:         "KwNew",
	KwMatch:       "KwMatch",
	KwCase:        "KwCase",
	KwDefault:     "KwDefault",
	KwTry:         "KwTry",
	KwCatch:       "KwCatch",
	KwFinally:     "KwFinally",
	KwIn:          "KwIn",
	KwHelp:        "KwHelp",
	KwEnd:         "KwEnd",
	KwAdd:         "KwAdd",
	KwSub:         "KwSub",
	KwMul:         "KwMul",
	KwDiv:         "KwDiv",
	KwMod:         "KwMod",
	AmpInsert:     "AmpInsert",
	DirInclude:    "DirInclude",
	DirInvolve:    "DirInvolve",
	BiPrint:       "BiPrint",
	BiInput:       "BiInput",
	BiLen:         "BiLen",
	BiType:        "BiType",
	BiOutput:      "BiOutput",
	BiError:       "BiError",
	BiWarning:     "BiWarning",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	Bang:          "Bang",
	PlusPlus:      "PlusPlus",
	MinusMinus:    "MinusMinus",
	Assign:        "Assign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	FatArrow:      "FatArrow",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Comma:         "Comma",
	Dot:           "Dot",
	Semicolon:     "Semicolon",
	Colon:         "Colon",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
