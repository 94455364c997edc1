package source_test

import (
	"testing"

	"sharpscript/internal/source"
)

func TestInternDedup(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	c := in.Intern("bar")
	if a != b {
		t.Errorf("same string must intern to same ID: %d vs %d", a, b)
	}
	if a == c {
		t.Error("different strings must not share an ID")
	}
	if got := in.MustLookup(a); got != "foo" {
		t.Errorf("MustLookup = %q", got)
	}
}

func TestNoStringIDIsEmpty(t *testing.T) {
	in := source.NewInterner()
	s, ok := in.Lookup(source.NoStringID)
	if !ok || s != "" {
		t.Errorf("NoStringID must resolve to empty string, got %q %v", s, ok)
	}
	if in.Intern("") != source.NoStringID {
		t.Error("empty string must intern to NoStringID")
	}
}
