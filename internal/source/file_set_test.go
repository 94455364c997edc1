package source_test

import (
	"testing"

	"sharpscript/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sharp", []byte("first\nsecond\nthird"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'f'
		{4, 1, 5},  // 't'
		{6, 2, 1},  // 's' of second
		{11, 2, 6}, // 'd'
		{13, 3, 1}, // 't' of third
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(source.Span{File: id, Start: tc.off, End: tc.off})
		if start.Line != tc.line || start.Col != tc.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d",
				tc.off, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sharp", []byte("alpha\nbeta\ngamma"))
	file := fs.Get(id)

	if got := file.GetLine(1); got != "alpha" {
		t.Errorf("line 1: %q", got)
	}
	if got := file.GetLine(2); got != "beta" {
		t.Errorf("line 2: %q", got)
	}
	if got := file.GetLine(3); got != "gamma" {
		t.Errorf("line 3: %q", got)
	}
	if got := file.GetLine(4); got != "" {
		t.Errorf("line 4 must be empty, got %q", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 4, End: 8}
	b := source.Span{File: 1, Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Errorf("Cover = %v", c)
	}
	// другой файл — без изменений
	d := a.Cover(source.Span{File: 2, Start: 0, End: 100})
	if d != a {
		t.Errorf("cross-file cover must be a no-op, got %v", d)
	}
}

func TestLatestVersionWins(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("repl", []byte("one"))
	second := fs.AddVirtual("repl", []byte("two"))
	id, ok := fs.GetLatest("repl")
	if !ok || id != second {
		t.Errorf("GetLatest = %v, %v; want %v", id, ok, second)
	}
}
