package driver_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sharpscript/internal/driver"
	"sharpscript/internal/token"
)

func writeScript(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeScript(t, "t.sharp", "&insert x = 1;\n")
	result, err := driver.Tokenize(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	if result.Bag.HasErrors() {
		t.Errorf("unexpected errors: %v", result.Bag.Items())
	}
	last := result.Tokens[len(result.Tokens)-1]
	if last.Kind != token.EOF {
		t.Errorf("token stream must end with EOF, got %s", last.Kind)
	}
	if result.Tokens[0].Kind != token.AmpInsert {
		t.Errorf("first token = %s", result.Tokens[0].Kind)
	}
}

func TestParseCollectsDiagnostics(t *testing.T) {
	path := writeScript(t, "bad.sharp", "&insert = ;\n")
	result, err := driver.Parse(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Bag.HasErrors() {
		t.Error("expected parse diagnostics")
	}
}

func TestRunScriptCallsMain(t *testing.T) {
	path := writeScript(t, "main.sharp", `
system.output("top");
function main(void) { system.output("from main"); }
`)
	var stdout, stderr bytes.Buffer
	err := driver.RunScript(path, driver.RunOptions{
		Stdout: &stdout,
		Stderr: &stderr,
		Stdin:  strings.NewReader(""),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "top\nfrom main\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunScriptWithoutMainIsFine(t *testing.T) {
	path := writeScript(t, "plain.sharp", `system.output("only");`)
	var stdout, stderr bytes.Buffer
	err := driver.RunScript(path, driver.RunOptions{
		Stdout: &stdout,
		Stderr: &stderr,
		Stdin:  strings.NewReader(""),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "only\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunScriptMissingFile(t *testing.T) {
	err := driver.RunScript(filepath.Join(t.TempDir(), "missing.sharp"), driver.RunOptions{
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		Stdin:  strings.NewReader(""),
	})
	if err == nil {
		t.Error("missing file must be a Go error")
	}
}

func TestRuntimeDiagnosticsGoToStderr(t *testing.T) {
	path := writeScript(t, "diag.sharp", `system.output(missing);`)
	var stdout, stderr bytes.Buffer
	if err := driver.RunScript(path, driver.RunOptions{
		Stdout: &stdout,
		Stderr: &stderr,
		Stdin:  strings.NewReader(""),
	}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "undeclared variable: missing") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if got := stdout.String(); got != "null\n" {
		t.Errorf("stdout = %q", got)
	}
}
