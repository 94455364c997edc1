package token_test

import (
	"testing"

	"sharpscript/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  token.Kind
		ok    bool
	}{
		{"if", token.KwIf, true},
		{"function", token.KwFunction, true},
		{"namespace", token.KwNamespace, true},
		{"match", token.KwMatch, true},
		{"add", token.KwAdd, true},
		{"mod", token.KwMod, true},
		{"help", token.KwHelp, true},
		{"end", token.KwEnd, true},
		{"new", token.KwNew, true},
		{"system.print", token.BiPrint, true},
		{"system.warning", token.BiWarning, true},
		{"If", 0, false},
		{"sys", 0, false},
		{"system.sin", 0, false}, // math builtins are not keyword tags
	}
	for _, tc := range cases {
		kind, ok := token.LookupKeyword(tc.ident)
		if ok != tc.ok {
			t.Errorf("LookupKeyword(%q): ok = %v, want %v", tc.ident, ok, tc.ok)
			continue
		}
		if ok && kind != tc.kind {
			t.Errorf("LookupKeyword(%q) = %s, want %s", tc.ident, kind, tc.kind)
		}
	}
}

func TestBuiltinName(t *testing.T) {
	name, ok := token.BuiltinName(token.BiOutput)
	if !ok || name != "system.output" {
		t.Errorf("BuiltinName(BiOutput) = %q, %v", name, ok)
	}
	if _, ok := token.BuiltinName(token.KwIf); ok {
		t.Error("KwIf must not be a builtin tag")
	}
}

func TestTokenClassifiers(t *testing.T) {
	if !(token.Token{Kind: token.Number}).IsLiteral() {
		t.Error("Number must be a literal")
	}
	if !(token.Token{Kind: token.KwNull}).IsLiteral() {
		t.Error("null must be a literal")
	}
	if !(token.Token{Kind: token.KwAdd}).IsKeyword() {
		t.Error("add must be a keyword")
	}
	if !(token.Token{Kind: token.DirInclude}).IsDirective() {
		t.Error("#include must be a directive")
	}
	if !(token.Token{Kind: token.PlusAssign}).IsAssignOp() {
		t.Error("+= must be an assignment operator")
	}
}
