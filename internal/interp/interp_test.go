package interp_test

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"sharpscript/internal/ast"
	"sharpscript/internal/diag"
	"sharpscript/internal/interp"
	"sharpscript/internal/lexer"
	"sharpscript/internal/parser"
	"sharpscript/internal/source"
)

// session bundles one parsed-and-evaluated program with its captured output.
type session struct {
	itp     *interp.Interp
	builder *ast.Builder
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	bag     *diag.Bag
}

// runSource evaluates src in a fresh interpreter and captures everything.
func runSource(t *testing.T, src string) *session {
	t.Helper()
	s := &session{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		bag:    diag.NewBag(100),
	}
	reporter := &diag.BagReporter{Bag: s.bag}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sharp", []byte(src))
	s.builder = ast.NewBuilder(0, nil)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	parsed := parser.ParseFile(fs, lx, s.builder, parser.Options{Reporter: reporter})

	s.itp = interp.New(interp.Options{
		Stdout:   s.stdout,
		Stderr:   s.stderr,
		Stdin:    strings.NewReader(""),
		Reporter: reporter,
	})
	s.itp.Eval(s.builder, parsed.File)
	return s
}

func expectStdout(t *testing.T, src string, lines ...string) *session {
	t.Helper()
	s := runSource(t, src)
	want := ""
	if len(lines) > 0 {
		want = strings.Join(lines, "\n") + "\n"
	}
	if got := s.stdout.String(); got != want {
		t.Errorf("stdout mismatch\n got: %q\nwant: %q\ndiags: %v", got, want, s.bag.Items())
	}
	return s
}

func hasDiagnostic(s *session, code diag.Code) bool {
	for _, d := range s.bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestArithmeticAndConcat(t *testing.T) {
	expectStdout(t,
		`&insert x = 2; &insert y = 3; system.output(x + y); system.output("sum=" + (x+y));`,
		"5", "sum=5")
}

func TestFunctionDefaultsAndClosure(t *testing.T) {
	expectStdout(t,
		`function make(k) { function add(x, y = k) { return x + y; } return add; }
&insert f = make(10);
system.output(f(1));
system.output(f(1, 2));`,
		"11", "3")
}

func TestNamespaceAndEnum(t *testing.T) {
	expectStdout(t,
		`namespace M { &insert b = 10; function show(void) { system.output(b); } }
enum C { R = 1, G, B = 4 }
M.show();
system.output(M.b);
system.output(C.R);
system.output(C.G);
system.output(C.B);`,
		"10", "10", "1", "2", "4")
}

func TestForInWithBreak(t *testing.T) {
	expectStdout(t,
		`for (x in [1,2,3,4]) { if (x == 3) break; system.output(x); }`,
		"1", "2")
}

func TestThrowCatchFinally(t *testing.T) {
	expectStdout(t,
		`try { system.throw("Oops","bad",1); system.output("unreached"); }
catch(e) { system.output(e); }
finally { system.output("done"); }`,
		"<Oops: bad>", "done")
}

func TestMatchWithDefault(t *testing.T) {
	expectStdout(t,
		`&insert k = 7;
match (k) { case 1: system.output("one"); case 7: system.output("seven"); default: system.output("other"); }`,
		"seven")
}

func TestMatchFallsToDefault(t *testing.T) {
	expectStdout(t,
		`match (42) { case 1: system.output("one"); default: system.output("other"); }`,
		"other")
}

func TestIntegerOutputHasNoDecimalPoint(t *testing.T) {
	expectStdout(t, `system.output(7); system.output(-3); system.output(2.5);`,
		"7", "-3", "2.5")
}

func TestLenIsByteLength(t *testing.T) {
	expectStdout(t,
		`system.output(system.len("hello")); system.output(system.len([1,2,3])); system.output(system.len(5));`,
		"5", "3", "0")
}

func TestForInCountMatchesLen(t *testing.T) {
	expectStdout(t,
		`&insert a = [10, 20, 30];
&insert acc = 0;
for (x in a) acc += 1;
system.output(acc == system.len(a));`,
		"true")
}

func TestStaticScoping(t *testing.T) {
	// closure использует окружение точки определения, не вызова
	expectStdout(t,
		`&insert v = 1;
function get(void) { return v; }
function caller(void) { &insert v = 99; return get(); }
system.output(caller());`,
		"1")
}

func TestConstViolation(t *testing.T) {
	s := runSource(t, `const c = 5; c = 6; system.output(c);`)
	if !hasDiagnostic(s, diag.RunConstViolation) {
		t.Errorf("expected const-violation diagnostic, got %v", s.bag.Items())
	}
	if got := s.stdout.String(); got != "5\n" {
		t.Errorf("const must keep its value, stdout = %q", got)
	}
}

func TestRedeclarationKeepsFirstBinding(t *testing.T) {
	s := runSource(t, `&insert x = 1; &insert x = 2; system.output(x);`)
	if !hasDiagnostic(s, diag.RunRedeclared) {
		t.Errorf("expected redeclaration diagnostic, got %v", s.bag.Items())
	}
	if got := s.stdout.String(); got != "1\n" {
		t.Errorf("x must stay bound to 1, stdout = %q", got)
	}
}

func TestUndeclaredIdentifierDegradesToNull(t *testing.T) {
	s := runSource(t, `system.output(nothere);`)
	if !hasDiagnostic(s, diag.RunUndeclared) {
		t.Errorf("expected undeclared diagnostic, got %v", s.bag.Items())
	}
	if got := s.stdout.String(); got != "null\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestAssignmentToUndeclared(t *testing.T) {
	s := runSource(t, `zzz = 1;`)
	if !hasDiagnostic(s, diag.RunAssignUndeclared) {
		t.Errorf("expected assign-to-undeclared diagnostic, got %v", s.bag.Items())
	}
}

func TestTypeAnnotationMismatchSkipsBinding(t *testing.T) {
	s := runSource(t, `&insert x: number = "text"; system.output(x);`)
	if !hasDiagnostic(s, diag.RunTypeMismatch) {
		t.Errorf("expected type-mismatch diagnostic, got %v", s.bag.Items())
	}
	if !hasDiagnostic(s, diag.RunUndeclared) {
		t.Errorf("binding must be skipped, got %v", s.bag.Items())
	}
}

func TestWordCompoundAssignment(t *testing.T) {
	expectStdout(t,
		`&insert x = 10; add x = 5; system.output(x); sub x = 3; system.output(x); mul x = 2; system.output(x);`,
		"15", "12", "24")
}

func TestIncrementDecrement(t *testing.T) {
	expectStdout(t, `&insert n = 5; n++; system.output(n); n--; n--; system.output(n);`,
		"6", "4")
}

func TestWhileLoop(t *testing.T) {
	expectStdout(t,
		`&insert n = 0; while (n < 3) { system.output(n); n += 1; }`,
		"0", "1", "2")
}

func TestCStyleForWithContinue(t *testing.T) {
	expectStdout(t,
		`for (&insert i = 0; i < 5; i++) { if (i % 2 == 1) continue; system.output(i); }`,
		"0", "2", "4")
}

func TestTruthiness(t *testing.T) {
	expectStdout(t,
		`system.output(!null); system.output(!0); system.output(!""); system.output(!1); system.output(!"x");`,
		"true", "true", "true", "false", "false")
}

func TestEqualityIsTypeStrict(t *testing.T) {
	expectStdout(t,
		`system.output(1 == "1"); system.output("a" == "a"); system.output(true == 1); system.output(1 != "1");`,
		"false", "true", "false", "true")
}

func TestLogicalOperatorsEvaluateBothSides(t *testing.T) {
	expectStdout(t,
		`function noisy(v) { system.output("eval"); return v; }
system.output(false && noisy(true));`,
		"eval", "false")
}

func TestStringConcatEitherSide(t *testing.T) {
	expectStdout(t,
		`system.output("n=" + 4); system.output(4 + "=n"); system.output(true + "!");`,
		"n=4", "4=n", "true!")
}

func TestDivisionByZeroIsIEEE(t *testing.T) {
	expectStdout(t, `system.output(1 / 0); system.output(-1 / 0);`,
		"+Inf", "-Inf")
}

func TestModUsesDividendSign(t *testing.T) {
	expectStdout(t, `system.output(7 % 3); system.output((0 - 7) % 3);`,
		"1", "-1")
}

func TestArraysAndIndexing(t *testing.T) {
	expectStdout(t,
		`&insert a = [1, "two", [3]];
system.output(a);
system.output(a[1]);
system.output(a[2][0]);`,
		`[1, two, [3]]`, "two", "3")
}

func TestMapLiteralAndIndex(t *testing.T) {
	expectStdout(t,
		`&insert m = {"name": "ada", 1: "one"};
system.output(m["name"]);
system.output(m[1]);
system.output(m["missing"]);`,
		"ada", "one", "null")
}

func TestForInOverMap(t *testing.T) {
	expectStdout(t,
		`&insert m = {"a": 1, "b": 2};
for (pair in m) { system.output(pair["key"] + "=" + pair["value"]); }`,
		"a=1", "b=2")
}

func TestLambda(t *testing.T) {
	expectStdout(t,
		`&insert twice = (n) => { return n * 2; };
system.output(twice(21));`,
		"42")
}

func TestMissingArgsBindNullAndExtrasIgnored(t *testing.T) {
	expectStdout(t,
		`function show(a, b) { system.output(a); system.output(b); }
show(1);
show(1, 2, 3);`,
		"1", "null", "1", "2")
}

func TestReturnWithoutValueAndNoReturn(t *testing.T) {
	expectStdout(t,
		`function bare(void) { return; }
function none(void) { &insert x = 1; }
system.output(bare());
system.output(none());`,
		"null", "null")
}

func TestTypeBuiltin(t *testing.T) {
	expectStdout(t,
		`system.output(system.type(1));
system.output(system.type("s"));
system.output(system.type(true));
system.output(system.type(null));
system.output(system.type([1]));
system.output(system.type({"k": 1}));`,
		"number", "string", "boolean", "null", "array", "map")
}

func TestMathBuiltins(t *testing.T) {
	expectStdout(t,
		`system.output(system.sqrt(16));
system.output(system.pow(2, 10));
system.output(system.log(1000));
system.output(system.sin("oops"));`,
		"4", "1024", "3", "0")
}

func TestStoreRecallMemclear(t *testing.T) {
	expectStdout(t,
		`system.store("x", 42);
system.output(system.recall("x"));
system.memclear();
system.output(system.recall("x"));`,
		"42", "null")
}

func TestHistory(t *testing.T) {
	expectStdout(t,
		`system.history.add(1);
system.history.add("two");
system.output(system.history.get());
system.history.clear();
system.output(system.len(system.history.get()));`,
		"[1, two]", "0")
}

func TestConvertRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"m", "km"}, {"m", "mi"}, {"kg", "lb"}, {"C", "F"}, {"C", "K"},
	}
	for _, p := range pairs {
		src := `system.output(system.convert(system.convert(12.5, "` + p[0] + `", "` + p[1] + `"), "` + p[1] + `", "` + p[0] + `") - 12.5);`
		s := runSource(t, src)
		out := strings.TrimSpace(s.stdout.String())
		if out == "0" || out == "-0" {
			continue
		}
		diff, err := strconv.ParseFloat(out, 64)
		if err != nil {
			t.Fatalf("%v: unparseable output %q", p, out)
		}
		if math.Abs(diff) > 1e-6*12.5 {
			t.Errorf("%v: round trip off by %v", p, diff)
		}
	}
}

func TestConvertUnknownPairIsNull(t *testing.T) {
	expectStdout(t, `system.output(system.convert(1, "m", "lb"));`, "null")
}

func TestWarningAndErrorStreams(t *testing.T) {
	s := runSource(t, `system.warning("careful"); system.error("broken");`)
	if got := s.stdout.String(); got != "Warning: careful\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := s.stderr.String(); got != "Error: broken\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestUncaughtThrowStopsFile(t *testing.T) {
	s := runSource(t, `system.output("before"); system.throw("Fatal", "boom"); system.output("after");`)
	if got := s.stdout.String(); got != "before\n" {
		t.Errorf("stdout = %q", got)
	}
	if !hasDiagnostic(s, diag.RunUncaughtError) {
		t.Errorf("expected uncaught-error diagnostic, got %v", s.bag.Items())
	}
}

func TestThrowUnwindsThroughFrames(t *testing.T) {
	expectStdout(t,
		`function deep(void) { system.throw("E", "m", 7); }
function mid(void) { deep(); system.output("unreached"); }
try { mid(); } catch (e) { system.output(e); }`,
		"<E: m>")
}

func TestFinallyRunsOnSuccessToo(t *testing.T) {
	expectStdout(t,
		`try { system.output("ok"); } finally { system.output("done"); }`,
		"ok", "done")
}

func TestAnnotateRebindsTypeName(t *testing.T) {
	s := runSource(t, `&insert x = 1; system.annotate("x", "string");`)
	if s.bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", s.bag.Items())
	}
	s = runSource(t, `system.annotate("missing", "string");`)
	if !hasDiagnostic(s, diag.RunUndeclared) {
		t.Errorf("annotate on missing binding must diagnose, got %v", s.bag.Items())
	}
}

func TestClassBodyRunsAsBlock(t *testing.T) {
	expectStdout(t,
		`class Point { &insert px = 1; }
struct Pair : Point { &insert py = 2; }
system.output(px + py);`,
		"3")
}

func TestReservedWordsAreNoOps(t *testing.T) {
	s := runSource(t, `new; help; end; system.output("alive");`)
	if got := s.stdout.String(); got != "alive\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestNestedLoopsBreakInnermost(t *testing.T) {
	expectStdout(t,
		`for (i in [1, 2]) { for (j in [1, 2, 3]) { if (j == 2) break; system.output(i + "." + j); } }`,
		"1.1", "2.1")
}

func TestHelpPrintsDocumentation(t *testing.T) {
	s := runSource(t, `system.help("user");`)
	if !strings.Contains(s.stdout.String(), "SharpScript User Guide") {
		t.Errorf("help output missing guide header: %q", s.stdout.String())
	}
	s = runSource(t, `system.help("dev");`)
	if !strings.Contains(s.stdout.String(), "Developer Guide") {
		t.Errorf("help dev output wrong: %q", s.stdout.String())
	}
	// неизвестная тема — user guide
	s = runSource(t, `system.help("nonsense");`)
	if !strings.Contains(s.stdout.String(), "SharpScript User Guide") {
		t.Errorf("unknown topic must fall back to the user guide")
	}
}

