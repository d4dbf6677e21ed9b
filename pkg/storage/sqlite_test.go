package storage

import (
	"path/filepath"
	"testing"
)

func setupSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteSlotSemantics(t *testing.T) {
	store := setupSQLite(t)

	if _, ok, err := store.Get(TasksSlot); err != nil || ok {
		t.Fatalf("expected absent slot, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(TasksSlot, "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(TasksSlot)
	if err != nil || !ok || value != "[]" {
		t.Fatalf("expected stored value, got %q ok=%v err=%v", value, ok, err)
	}

	// Set replaces the whole slot value
	if err := store.Set(TasksSlot, `[{"id":"1"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = store.Get(TasksSlot)
	if value != `[{"id":"1"}]` {
		t.Errorf("expected overwritten value, got %q", value)
	}

	if err := store.Delete(TasksSlot); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(TasksSlot); ok {
		t.Error("expected slot absent after delete")
	}

	// Deleting an absent slot is not an error
	if err := store.Delete(TasksSlot); err != nil {
		t.Errorf("delete absent slot: %v", err)
	}
}

func TestSQLiteSlotsAreIndependent(t *testing.T) {
	store := setupSQLite(t)

	store.Set(TasksSlot, "[]")
	store.Set(UserSlot, `{"id":"u1"}`)
	store.Set(ThemeSlot, "true")

	store.Delete(UserSlot)

	if _, ok, _ := store.Get(TasksSlot); !ok {
		t.Error("tasks slot must survive deleting the user slot")
	}
	if _, ok, _ := store.Get(ThemeSlot); !ok {
		t.Error("theme slot must survive deleting the user slot")
	}
}

func TestSQLiteDurableAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "slots.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := store.Set(ThemeSlot, "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	store.Close()

	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(ThemeSlot)
	if err != nil || !ok || value != "true" {
		t.Errorf("expected value to survive reopen, got %q ok=%v err=%v", value, ok, err)
	}
}
