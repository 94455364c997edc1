package session_test

import (
	"testing"

	"sharpscript/internal/interp"
	"sharpscript/internal/session"
)

func TestStoredValueRoundTrip(t *testing.T) {
	values := []interp.Value{
		interp.Null(),
		interp.Number(42),
		interp.Str("hello"),
		interp.Bool(true),
		interp.Array([]interp.Value{interp.Number(1), interp.Str("x")}),
		interp.MapValue([]string{"k"}, []interp.Value{interp.Number(7)}),
		interp.ErrorValue("E", "m", 3),
	}
	for _, v := range values {
		back := session.FromValue(v).ToValue()
		if back.Display() != v.Display() {
			t.Errorf("round trip changed %q to %q", v.Display(), back.Display())
		}
		if back.Kind != v.Kind {
			t.Errorf("round trip changed kind %v to %v", v.Kind, back.Kind)
		}
	}
}

func TestFunctionsDegradeToNull(t *testing.T) {
	fn := interp.Function(&interp.FuncProto{Name: "f"})
	back := session.FromValue(fn).ToValue()
	if back.Kind != interp.KindNull {
		t.Errorf("functions must not survive a session, got %v", back.Kind)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store, err := session.Open("sharpscript-test")
	if err != nil {
		t.Fatal(err)
	}

	payload := &session.Payload{
		Memory: map[string]session.StoredValue{
			"x": session.FromValue(interp.Number(5)),
		},
		History: []session.StoredValue{
			session.FromValue(interp.Str("one")),
		},
	}
	if err := store.Save(payload); err != nil {
		t.Fatal(err)
	}

	loaded, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if loaded.Memory["x"].ToValue().Num != 5 {
		t.Error("memory did not survive")
	}
	if len(loaded.History) != 1 || loaded.History[0].ToValue().Str != "one" {
		t.Error("history did not survive")
	}
}

func TestMissingPayloadIsNotAnError(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	store, err := session.Open("sharpscript-test")
	if err != nil {
		t.Fatal(err)
	}
	_, ok, err := store.Load()
	if err != nil || ok {
		t.Errorf("fresh store must load empty: ok=%v err=%v", ok, err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	itp := interp.New(interp.Options{})
	itp.Memory().Define("m", interp.Number(9), false, "number")

	payload := session.Snapshot(itp)

	fresh := interp.New(interp.Options{})
	session.Restore(fresh, payload)
	if v, ok := fresh.Memory().Lookup("m"); !ok || v.Num != 9 {
		t.Error("restore must reinstate calculator memory")
	}
}
