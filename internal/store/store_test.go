package store

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "slots", "fcab.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPutGetRoundTrip(t *testing.T) {
	st := openTemp(t)

	if err := st.Put("fcab:fuelLogs", `[{"id":"a"}]`); err != nil {
		t.Fatal(err)
	}

	got, ok, err := st.Get("fcab:fuelLogs")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("slot missing after Put")
	}
	if got != `[{"id":"a"}]` {
		t.Errorf("value = %q, want the stored JSON back byte for byte", got)
	}
}

func TestGetAbsentKey(t *testing.T) {
	st := openTemp(t)

	got, ok, err := st.Get("fcab:expenses")
	if err != nil {
		t.Fatal(err)
	}
	if ok || got != "" {
		t.Errorf("absent slot: ok=%v value=%q, want false and empty", ok, got)
	}
}

func TestPutEmptyStringIsPresent(t *testing.T) {
	// An empty value is still a stored slot, distinct from an absent one.
	st := openTemp(t)

	if err := st.Put("k", ""); err != nil {
		t.Fatal(err)
	}
	got, ok, err := st.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "" {
		t.Errorf("empty slot: ok=%v value=%q, want true and empty", ok, got)
	}
}

func TestPutReplaces(t *testing.T) {
	st := openTemp(t)

	if err := st.Put("k", "old"); err != nil {
		t.Fatal(err)
	}
	if err := st.Put("k", "new"); err != nil {
		t.Fatal(err)
	}

	got, _, err := st.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if got != "new" {
		t.Errorf("value = %q, want full replacement", got)
	}
}

func TestDelete(t *testing.T) {
	st := openTemp(t)

	if err := st.Put("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := st.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := st.Get("k"); ok {
		t.Error("slot still present after Delete")
	}

	// Deleting an absent slot is fine.
	if err := st.Delete("k"); err != nil {
		t.Errorf("deleting absent slot: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fcab.db")

	st, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Put("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st2.Close()

	got, ok, err := st2.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "v" {
		t.Errorf("after reopen: ok=%v value=%q, want true and v", ok, got)
	}
}
