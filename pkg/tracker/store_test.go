package tracker

import (
	"testing"
	"time"
)

func setupStore(t *testing.T) (*TaskStore, *Gateway) {
	t.Helper()
	g := setupGateway(t)
	return NewTaskStore(g), g
}

func TestAddPrepends(t *testing.T) {
	store, _ := setupStore(t)

	store.Add(sampleTask("first", "u1"))
	store.Add(sampleTask("second", "u1"))

	all := store.All()
	if len(all) != 2 || all[0].ID != "second" || all[1].ID != "first" {
		t.Errorf("expected newest-first insertion order, got %v", all)
	}
}

func TestMutationsPersist(t *testing.T) {
	store, g := setupStore(t)

	store.Add(sampleTask("t1", "u1"))
	if persisted := g.LoadTasks(); len(persisted) != 1 {
		t.Errorf("expected add to persist immediately, got %d tasks", len(persisted))
	}

	task := store.All()[0]
	task.Completed = true
	store.Update(task)
	if persisted := g.LoadTasks(); !persisted[0].Completed {
		t.Error("expected update to persist immediately")
	}

	store.Remove("t1")
	if persisted := g.LoadTasks(); len(persisted) != 0 {
		t.Errorf("expected remove to persist immediately, got %d tasks", len(persisted))
	}
}

func TestUpdateKeepsImmutableFields(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(sampleTask("t1", "u1"))
	original := store.All()[0]

	modified := original
	modified.Title = "Renamed"
	modified.UserID = "u2"
	modified.CreatedAt = original.CreatedAt.Add(time.Hour)
	store.Update(modified)

	got := store.All()[0]
	if got.Title != "Renamed" {
		t.Errorf("expected title to change, got %q", got.Title)
	}
	if got.UserID != "u1" {
		t.Errorf("UserID must not change, got %q", got.UserID)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt must not change, got %v", got.CreatedAt)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(sampleTask("t1", "u1"))

	store.Update(sampleTask("ghost", "u1"))

	if all := store.All(); len(all) != 1 || all[0].ID != "t1" {
		t.Errorf("update of unknown id must never create, got %v", all)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(sampleTask("t1", "u1"))

	store.Remove("ghost")

	if all := store.All(); len(all) != 1 {
		t.Errorf("expected collection untouched, got %v", all)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(sampleTask("t1", "u1"))

	all := store.All()
	all[0].Title = "tampered"

	if store.All()[0].Title == "tampered" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestStoreRestoresFromGateway(t *testing.T) {
	g := setupGateway(t)

	first := NewTaskStore(g)
	first.Add(sampleTask("t1", "u1"))

	// A second store over the same gateway sees the persisted tasks,
	// like a process restart would
	second := NewTaskStore(g)
	if all := second.All(); len(all) != 1 || all[0].ID != "t1" {
		t.Errorf("expected restored collection, got %v", all)
	}
}
