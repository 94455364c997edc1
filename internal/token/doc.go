// Package token defines the closed set of SharpScript token kinds shared by
// the lexer and the parser, plus the keyword and builtin lookup tables.
package token
