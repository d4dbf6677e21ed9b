package tracker

import (
	"reflect"
	"testing"
)

func TestLoginDerivesStableID(t *testing.T) {
	g := setupGateway(t)
	session := NewSessionManager(g)

	first := session.Login("Alice")
	if first.Username != "Alice" {
		t.Errorf("expected trimmed display name, got %q", first.Username)
	}
	if first.ID != UserIDFor("Alice") {
		t.Errorf("expected derived id %q, got %q", UserIDFor("Alice"), first.ID)
	}
	if first.LoginTime.IsZero() {
		t.Error("expected login time to be stamped")
	}

	session.Logout()
	second := session.Login("  alice  ")
	if second.ID != first.ID {
		t.Errorf("normalized username must reattach to the same id: %q vs %q", second.ID, first.ID)
	}
}

func TestSessionPersistsAndRestores(t *testing.T) {
	g := setupGateway(t)
	session := NewSessionManager(g)
	user := session.Login("bob")

	// A fresh manager over the same gateway restores the session
	restored := NewSessionManager(g)
	current, ok := restored.Current()
	if !ok {
		t.Fatal("expected restored session")
	}
	if !reflect.DeepEqual(current, user) {
		t.Errorf("expected %+v, got %+v", user, current)
	}
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	g := setupGateway(t)
	store := NewTaskStore(g)
	session := NewSessionManager(g)

	user := session.Login("carol")
	task := sampleTask("t1", user.ID)
	store.Add(task)

	session.Logout()
	if _, ok := session.Current(); ok {
		t.Error("expected no current user after logout")
	}
	if _, ok := NewSessionManager(g).Current(); ok {
		t.Error("expected logout to clear the persisted session")
	}

	// Tasks survive the logout and reappear on the next login with the
	// same username
	again := session.Login("carol")
	var found bool
	for _, candidate := range store.All() {
		if candidate.UserID == again.ID && candidate.ID == "t1" {
			found = true
		}
	}
	if !found {
		t.Error("expected the task set to reattach after logout/login")
	}
}
