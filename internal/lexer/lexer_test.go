package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"sharpscript/internal/diag"
	"sharpscript/internal/lexer"
	"sharpscript/internal/source"
	"sharpscript/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sharp", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Kind.String())
	}
	return strings.Join(parts, " ")
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %s, got %s (text %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectTokens(t, "if else while for function return break continue",
		[]token.Kind{token.KwIf, token.KwElse, token.KwWhile, token.KwFor,
			token.KwFunction, token.KwReturn, token.KwBreak, token.KwContinue})

	expectTokens(t, "foo Bar _baz x9", []token.Kind{token.Ident, token.Ident, token.Ident, token.Ident})

	// регистрозависимость: только lowercase — ключевые слова
	expectTokens(t, "If WHILE", []token.Kind{token.Ident, token.Ident})
}

func TestQualifiedBuiltinsLexAsSingleToken(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"system.print", token.BiPrint},
		{"system.output", token.BiOutput},
		{"system.input", token.BiInput},
		{"system.len", token.BiLen},
		{"system.type", token.BiType},
		{"system.error", token.BiError},
		{"system.warning", token.BiWarning},
	}
	for _, tc := range cases {
		lx, _ := makeTestLexer(tc.input)
		tok := lx.Next()
		if tok.Kind != tc.kind {
			t.Errorf("%q: expected %s, got %s", tc.input, tc.kind, tok.Kind)
		}
		if tok.Text != tc.input {
			t.Errorf("%q: expected text preserved, got %q", tc.input, tok.Text)
		}
	}

	// неизвестное квалифицированное имя остаётся идентификатором
	lx, _ := makeTestLexer("system.history.add(1)")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "system.history.add" {
		t.Errorf("expected Ident %q, got %s %q", "system.history.add", tok.Kind, tok.Text)
	}
}

func TestNumbers(t *testing.T) {
	lx, reporter := makeTestLexer("42 3.14 0.5 100")
	tokens := collectAllTokens(lx)
	want := []string{"42", "3.14", "0.5", "100"}
	if len(tokens) != len(want)+1 {
		t.Fatalf("expected %d tokens+EOF, got %d: %s", len(want), len(tokens), tokensToString(tokens))
	}
	for i, text := range want {
		if tokens[i].Kind != token.Number || tokens[i].Text != text {
			t.Errorf("token %d: expected Number %q, got %s %q", i, text, tokens[i].Kind, tokens[i].Text)
		}
	}
	if reporter.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", reporter.ErrorMessages())
	}
}

func TestStrings(t *testing.T) {
	lx, _ := makeTestLexer(`"hello world"`)
	tok := lx.Next()
	if tok.Kind != token.String {
		t.Fatalf("expected String, got %s", tok.Kind)
	}
	// текст — содержимое без кавычек, без обработки escape
	if tok.Text != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", tok.Text)
	}

	lx, _ = makeTestLexer(`"a\nb"`)
	tok = lx.Next()
	if tok.Text != `a\nb` {
		t.Errorf("escapes must be verbatim, got %q", tok.Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"no closing quote`)
	tok := lx.Next()
	if tok.Kind != token.String {
		t.Fatalf("expected String, got %s", tok.Kind)
	}
	if tok.Text != "no closing quote" {
		t.Errorf("expected remainder of input, got %q", tok.Text)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected 1 error, got %v", reporter.ErrorMessages())
	}
}

func TestOperatorsLongestMatch(t *testing.T) {
	expectTokens(t, "== != <= >= && || => ++ -- += -= *= /= %=",
		[]token.Kind{token.EqEq, token.BangEq, token.LtEq, token.GtEq,
			token.AndAnd, token.OrOr, token.FatArrow, token.PlusPlus, token.MinusMinus,
			token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
			token.PercentAssign})

	expectTokens(t, "= = < > ! + - * / %",
		[]token.Kind{token.Assign, token.Assign, token.Lt, token.Gt, token.Bang,
			token.Plus, token.Minus, token.Star, token.Slash, token.Percent})
}

func TestAmpInsert(t *testing.T) {
	expectTokens(t, "&insert x = 10;",
		[]token.Kind{token.AmpInsert, token.Ident, token.Assign, token.Number, token.Semicolon})

	expectTokens(t, "a && b", []token.Kind{token.Ident, token.AndAnd, token.Ident})

	// одиночный '&' — ошибка лексера
	lx, reporter := makeTestLexer("a & b")
	tokens := collectAllTokens(lx)
	if tokens[1].Kind != token.Invalid {
		t.Errorf("expected Invalid for bare '&', got %s", tokens[1].Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected 1 error, got %v", reporter.ErrorMessages())
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	lx, _ := makeTestLexer("# comment line\nx")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("expected Ident x after comment, got %s %q", tok.Kind, tok.Text)
	}
	foundComment := false
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaLineComment {
			foundComment = true
		}
	}
	if !foundComment {
		t.Errorf("expected leading comment trivia, got %v", tok.Leading)
	}
}

func TestIncludeDirectiveIsNotComment(t *testing.T) {
	lx, _ := makeTestLexer(`#include "lib.sharp"`)
	tok := lx.Next()
	if tok.Kind != token.DirInclude {
		t.Fatalf("expected DirInclude, got %s", tok.Kind)
	}
	if tok.Text != "lib.sharp" {
		t.Errorf("expected path without quotes, got %q", tok.Text)
	}

	lx, _ = makeTestLexer(`#involve "more.sharp"`)
	tok = lx.Next()
	if tok.Kind != token.DirInvolve || tok.Text != "more.sharp" {
		t.Errorf("expected DirInvolve more.sharp, got %s %q", tok.Kind, tok.Text)
	}
}

func TestUnknownCharProducesInvalid(t *testing.T) {
	lx, reporter := makeTestLexer("x @ y")
	tokens := collectAllTokens(lx)
	if tokens[1].Kind != token.Invalid {
		t.Errorf("expected Invalid for '@', got %s", tokens[1].Kind)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected 1 error, got %v", reporter.ErrorMessages())
	}
	// лексер продолжает после ошибки
	if tokens[2].Kind != token.Ident || tokens[2].Text != "y" {
		t.Errorf("expected lexing to continue, got %s", tokensToString(tokens))
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF forever, got %s", tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	peeked := lx.Peek()
	next := lx.Next()
	if peeked.Kind != next.Kind || peeked.Text != next.Text {
		t.Errorf("peek/next mismatch: %q vs %q", peeked.Text, next.Text)
	}
	if tok := lx.Next(); tok.Text != "b" {
		t.Errorf("expected b after peeked a, got %q", tok.Text)
	}
}

func TestSaveRestore(t *testing.T) {
	lx, _ := makeTestLexer("for (x in xs)")
	lx.Next() // for
	lx.Next() // (
	state := lx.Save()
	first := lx.Next()
	second := lx.Next()
	if first.Kind != token.Ident || second.Kind != token.KwIn {
		t.Fatalf("probe mismatch: %s %s", first.Kind, second.Kind)
	}
	lx.Restore(state)
	if tok := lx.Next(); tok.Kind != token.Ident || tok.Text != "x" {
		t.Errorf("restore failed: got %s %q", tok.Kind, tok.Text)
	}
}

func TestWordOperators(t *testing.T) {
	expectTokens(t, "add x = 5",
		[]token.Kind{token.KwAdd, token.Ident, token.Assign, token.Number})
	expectTokens(t, "sub mul div mod",
		[]token.Kind{token.KwSub, token.KwMul, token.KwDiv, token.KwMod})
}
