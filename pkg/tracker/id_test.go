package tracker

import (
	"regexp"
	"testing"
)

func TestUserIDForNormalization(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"case and whitespace fold together", "Alice", "  alice  ", true},
		{"identical input", "bob", "bob", true},
		{"distinct usernames differ", "alice", "bob", false},
		{"inner whitespace is preserved", "mary jane", "maryjane", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idA, idB := UserIDFor(tt.a), UserIDFor(tt.b)
			if (idA == idB) != tt.same {
				t.Errorf("UserIDFor(%q)=%q, UserIDFor(%q)=%q, same=%v, want %v",
					tt.a, idA, tt.b, idB, idA == idB, tt.same)
			}
		})
	}
}

func TestUserIDForDeterministic(t *testing.T) {
	first := UserIDFor("Alice")
	for i := 0; i < 10; i++ {
		if got := UserIDFor("Alice"); got != first {
			t.Fatalf("derivation not deterministic: %q vs %q", first, got)
		}
	}
}

func TestUserIDForAlphanumericOnly(t *testing.T) {
	alnum := regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	for _, username := range []string{"alice", "Anna-Lena", "o'brien", "日本語", "a b c"} {
		if id := UserIDFor(username); !alnum.MatchString(id) {
			t.Errorf("UserIDFor(%q) = %q contains non-alphanumeric characters", username, id)
		}
	}
}

func TestNewTaskIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTaskID()
		if id == "" {
			t.Fatal("empty task id")
		}
		if seen[id] {
			t.Fatalf("duplicate task id %q after %d iterations", id, i)
		}
		seen[id] = true
	}
}
