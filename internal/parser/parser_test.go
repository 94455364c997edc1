package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/lexer"
	"sharpscript/internal/parser"
	"sharpscript/internal/source"
)

// parseSource прогоняет строку через лексер и парсер поверх виртуального файла.
func parseSource(t *testing.T, input string) (*ast.Builder, *ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sharp", []byte(input))

	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}

	builder := ast.NewBuilder(0, nil)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	result := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})

	return builder, builder.Files.Get(result.File), bag
}

func stmtKinds(b *ast.Builder, file *ast.File) []ast.StmtKind {
	kinds := make([]ast.StmtKind, 0, len(file.Stmts))
	for _, id := range file.Stmts {
		kinds = append(kinds, b.Stmts.Get(id).Kind)
	}
	return kinds
}

func TestParseDeclarations(t *testing.T) {
	b, file, bag := parseSource(t, `&insert x = 10; const y: number = 2.5;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(file.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(file.Stmts))
	}

	declare, ok := b.Stmts.Declare(file.Stmts[0])
	if !ok {
		t.Fatal("first statement must be a declaration")
	}
	if b.Lookup(declare.Name) != "x" || declare.Const {
		t.Errorf("&insert x: name=%q const=%v", b.Lookup(declare.Name), declare.Const)
	}

	constDecl, ok := b.Stmts.Declare(file.Stmts[1])
	if !ok {
		t.Fatal("second statement must be a declaration")
	}
	if !constDecl.Const || b.Lookup(constDecl.TypeName) != "number" {
		t.Errorf("const y: const=%v type=%q", constDecl.Const, b.Lookup(constDecl.TypeName))
	}
}

func TestParseIfElseAndArrow(t *testing.T) {
	_, file, bag := parseSource(t, `if (x > 1) => { y = 1; } else => { y = 2; }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(file.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(file.Stmts))
	}
}

func TestParseForDisambiguation(t *testing.T) {
	b, file, bag := parseSource(t, `
for (x in [1, 2]) { system.output(x); }
for (&insert i = 0; i < 3; i++) { system.output(i); }
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	kinds := stmtKinds(b, file)
	if kinds[0] != ast.StmtForIn || kinds[1] != ast.StmtFor {
		t.Errorf("expected [ForIn For], got %v", kinds)
	}

	forIn, _ := b.Stmts.ForIn(file.Stmts[0])
	if b.Lookup(forIn.Var) != "x" {
		t.Errorf("for-in variable = %q", b.Lookup(forIn.Var))
	}
}

func TestParseLambdaVsParen(t *testing.T) {
	b, file, bag := parseSource(t, `
&insert f = (a, b) => { return a + b; };
&insert g = (1 + 2) * 3;
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}

	fDecl, _ := b.Stmts.Declare(file.Stmts[0])
	fExpr := b.Exprs.Get(fDecl.Value)
	if fExpr.Kind != ast.ExprLambda {
		t.Errorf("f must be a lambda, got %s", fExpr.Kind)
	}
	lambda, _ := b.Exprs.Lambda(fDecl.Value)
	if len(lambda.Params) != 2 {
		t.Errorf("lambda params = %d", len(lambda.Params))
	}

	gDecl, _ := b.Stmts.Declare(file.Stmts[1])
	if b.Exprs.Get(gDecl.Value).Kind != ast.ExprBinary {
		t.Errorf("g must be a binary expression, got %s", b.Exprs.Get(gDecl.Value).Kind)
	}
}

func TestParsePrecedence(t *testing.T) {
	b, file, bag := parseSource(t, `&insert r = 1 + 2 * 3;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	decl, _ := b.Stmts.Declare(file.Stmts[0])
	root, _ := b.Exprs.Binary(decl.Value)
	if root.Op != ast.BinAdd {
		t.Fatalf("root must be +, got %s", root.Op)
	}
	right, _ := b.Exprs.Binary(root.Right)
	if right == nil || right.Op != ast.BinMul {
		t.Errorf("right child must be *")
	}
}

func TestParseIndexChain(t *testing.T) {
	b, file, bag := parseSource(t, `&insert v = a[0][1];`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	decl, _ := b.Stmts.Declare(file.Stmts[0])
	outer, ok := b.Exprs.Index(decl.Value)
	if !ok {
		t.Fatal("value must be an index expression")
	}
	if _, ok := b.Exprs.Index(outer.Target); !ok {
		t.Error("a[0][1] must nest as (a[0])[1]")
	}
}

func TestParseWordCompound(t *testing.T) {
	b, file, bag := parseSource(t, `add x = 5; mod y = 2;`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	first, _ := b.Stmts.Assign(file.Stmts[0])
	if first.Op != ast.AssignAdd {
		t.Errorf("add x = 5 must desugar to +=, got %s", first.Op)
	}
	second, _ := b.Stmts.Assign(file.Stmts[1])
	if second.Op != ast.AssignMod {
		t.Errorf("mod y = 2 must desugar to %%=, got %s", second.Op)
	}
}

func TestParseEnumMembers(t *testing.T) {
	b, file, bag := parseSource(t, `enum C { R = 1, G, B = 4 }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	enum, ok := b.Stmts.Enum(file.Stmts[0])
	if !ok {
		t.Fatal("expected enum statement")
	}
	if len(enum.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(enum.Members))
	}
	if !enum.Members[0].Value.IsValid() || enum.Members[1].Value.IsValid() || !enum.Members[2].Value.IsValid() {
		t.Error("explicit/implicit member values recorded wrong")
	}
}

func TestParseMatch(t *testing.T) {
	b, file, bag := parseSource(t, `
match (k) {
    case 1: system.output("one");
    case 7: system.output("seven");
    default: system.output("other");
}`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	m, ok := b.Stmts.Match(file.Stmts[0])
	if !ok {
		t.Fatal("expected match statement")
	}
	if len(m.Cases) != 2 || !m.Default.IsValid() {
		t.Errorf("cases=%d default=%v", len(m.Cases), m.Default.IsValid())
	}
}

func TestParseTryCatchFinally(t *testing.T) {
	b, file, bag := parseSource(t, `try { x = 1; } catch (e) { y = e; } finally { z = 2; }`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	tr, ok := b.Stmts.Try(file.Stmts[0])
	if !ok {
		t.Fatal("expected try statement")
	}
	if !tr.HasCatch || b.Lookup(tr.CatchName) != "e" || !tr.Finally.IsValid() {
		t.Errorf("try shape wrong: hasCatch=%v name=%q finally=%v",
			tr.HasCatch, b.Lookup(tr.CatchName), tr.Finally.IsValid())
	}
}

func TestParseFunctionVoidAndDefaults(t *testing.T) {
	b, file, bag := parseSource(t, `
function noargs(void) { return 1; }
function withdef(x, y = 10) { return x + y; }
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	fn1, _ := b.Stmts.Function(file.Stmts[0])
	if len(fn1.Params) != 0 {
		t.Errorf("void parameter list must be empty, got %d", len(fn1.Params))
	}
	fn2, _ := b.Stmts.Function(file.Stmts[1])
	if len(fn2.Params) != 2 || fn2.Params[0].Default.IsValid() || !fn2.Params[1].Default.IsValid() {
		t.Error("parameter defaults recorded wrong")
	}
}

func TestParserRecoversFromGarbage(t *testing.T) {
	b, file, bag := parseSource(t, `) ; &insert x = 1;`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for ')'")
	}
	kinds := stmtKinds(b, file)
	// мусор деградирует до Empty, разбор продолжается
	last := kinds[len(kinds)-1]
	if last != ast.StmtDeclare {
		t.Errorf("expected declaration after recovery, got %v", kinds)
	}
}

func TestIncludeGuard(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.sharp")
	if err := os.WriteFile(libPath, []byte("&insert shared = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mainPath := filepath.Join(dir, "main.sharp")
	mainSrc := "#include \"" + libPath + "\"\n#include \"" + libPath + "\"\n"
	if err := os.WriteFile(mainPath, []byte(mainSrc), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(mainPath)
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag(100)
	reporter := &diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(0, nil)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	result := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}

	file := builder.Files.Get(result.File)
	if len(file.Stmts) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(file.Stmts))
	}
	// первая директива — блок с содержимым, вторая — null statement
	if builder.Stmts.Get(file.Stmts[0]).Kind != ast.StmtBlock {
		t.Errorf("first include must expand to a block")
	}
	if builder.Stmts.Get(file.Stmts[1]).Kind != ast.StmtEmpty {
		t.Errorf("second include of the same path must expand to a null statement")
	}
}

func TestIncludeSrcPrefixFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "src", "util.sharp"), []byte("&insert u = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	b, file, bag := parseSource(t, `#include "util.sharp"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if b.Stmts.Get(file.Stmts[0]).Kind != ast.StmtBlock {
		t.Error("include must resolve under src/ and expand to a block")
	}
}

func TestIncludeMissingFileIsDiagnosedNotFatal(t *testing.T) {
	b, file, bag := parseSource(t, `#include "definitely-missing.sharp"
&insert after = 1;`)
	if !bag.HasErrors() {
		t.Fatal("expected include-open diagnostic")
	}
	kinds := stmtKinds(b, file)
	if kinds[0] != ast.StmtEmpty || kinds[1] != ast.StmtDeclare {
		t.Errorf("expected [Empty Declare], got %v", kinds)
	}
}
