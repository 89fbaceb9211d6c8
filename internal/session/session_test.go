package session

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	in := NewPayload()
	in.Names = []string{"a", "b"}
	in.Values = []string{"42", "-7"}
	in.Last = "35"
	in.History = []string{"a = 42", "b = -7", "a + b"}

	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("Load did not find the saved session")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip drifted:\n in: %+v\nout: %+v", in, out)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}

	first := NewPayload()
	first.Last = "1"
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := NewPayload()
	second.Last = "2"
	second.History = []string{"2"}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, found, err := store.Load()
	if err != nil || !found {
		t.Fatalf("Load = %v, %v", found, err)
	}
	if out.Last != "2" || len(out.History) != 1 {
		t.Errorf("Load returned stale payload: %+v", out)
	}
}

func TestLoadMissing(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	_, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("Load found a session in an empty store")
	}
}

func TestLoadIgnoresOtherSchema(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	in := &Payload{Schema: sessionSchemaVersion + 1, Last: "1"}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("Load accepted a payload from a different schema version")
	}
}

func TestDrop(t *testing.T) {
	store, err := OpenAt(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	if err := store.Save(NewPayload()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Drop(); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	_, found, err := store.Load()
	if err != nil || found {
		t.Errorf("Load after Drop = %v, %v, want not found", found, err)
	}
	// Dropping an already dropped store is not an error.
	if err := store.Drop(); err != nil {
		t.Errorf("second Drop: %v", err)
	}

	// The store survives a drop.
	if err := store.Save(NewPayload()); err != nil {
		t.Errorf("Save after Drop: %v", err)
	}
}

func TestOpenUsesXDGCacheHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	store, err := Open("bigint-test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !strings.HasPrefix(store.path(), filepath.Join(base, "bigint-test")) {
		t.Errorf("path = %q, want under %q", store.path(), base)
	}
}
