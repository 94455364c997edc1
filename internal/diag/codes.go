package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadDirective       Code = 1004

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectIdentifier  Code = 2002
	SynExpectExpression  Code = 2003
	SynUnclosedParen     Code = 2004
	SynUnclosedBrace     Code = 2005
	SynUnclosedBracket   Code = 2006
	SynExpectSemicolon   Code = 2007
	SynExpectColon       Code = 2008
	SynExpectAssign      Code = 2009
	SynBadLambdaParams   Code = 2010
	SynBadForHeader      Code = 2011
	SynBadParamList      Code = 2012
	SynBadEnumMember     Code = 2013
	SynBadMatchCase      Code = 2014
	SynIncludeOpenFailed Code = 2015
	SynUnexpectedStmt    Code = 2016

	// Рантаймовые (диагностики интерпретатора; structured errors — не сюда)
	RunInfo             Code = 3000
	RunUndeclared       Code = 3001
	RunRedeclared       Code = 3002
	RunConstViolation   Code = 3003
	RunTypeMismatch     Code = 3004
	RunAssignUndeclared Code = 3005
	RunNotAFunction     Code = 3006
	RunUnknownFunction  Code = 3007
	RunBadIterable      Code = 3008
	RunBadIndex         Code = 3009
	RunUncaughtError    Code = 3010
	RunBadOperands      Code = 3011

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadNumber:          "Malformed numeric literal",
	LexBadDirective:       "Malformed include directive",

	SynInfo:              "Parser information",
	SynUnexpectedToken:   "Unexpected token",
	SynExpectIdentifier:  "Expected identifier",
	SynExpectExpression:  "Expected expression",
	SynUnclosedParen:     "Missing closing parenthesis",
	SynUnclosedBrace:     "Missing closing brace",
	SynUnclosedBracket:   "Missing closing bracket",
	SynExpectSemicolon:   "Expected semicolon",
	SynExpectColon:       "Expected colon",
	SynExpectAssign:      "Expected '='",
	SynBadLambdaParams:   "Lambda parameters must be identifiers",
	SynBadForHeader:      "Malformed for header",
	SynBadParamList:      "Malformed parameter list",
	SynBadEnumMember:     "Malformed enum member",
	SynBadMatchCase:      "Malformed match case",
	SynIncludeOpenFailed: "Cannot open included file",
	SynUnexpectedStmt:    "Unexpected token in statement position",

	RunInfo:             "Runtime information",
	RunUndeclared:       "Undeclared variable",
	RunRedeclared:       "Variable already declared in this scope",
	RunConstViolation:   "Assignment to constant",
	RunTypeMismatch:     "Type annotation mismatch",
	RunAssignUndeclared: "Assignment to undeclared variable",
	RunNotAFunction:     "Value is not callable",
	RunUnknownFunction:  "Unknown function",
	RunBadIterable:      "Value is not iterable",
	RunBadIndex:         "Invalid index operation",
	RunUncaughtError:    "Uncaught error",
	RunBadOperands:      "Invalid operand types",

	IOInfo:          "I/O information",
	IOLoadFileError: "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RUN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
