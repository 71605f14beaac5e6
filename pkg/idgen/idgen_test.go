package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDUnique(t *testing.T) {
	var g UUID
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := g.NewID("task")
		if !strings.HasPrefix(id, "task-") {
			t.Fatalf("id %q missing prefix", id)
		}
		if _, err := uuid.Parse(strings.TrimPrefix(id, "task-")); err != nil {
			t.Fatalf("id %q: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence()
	got := []string{s.NewID("user"), s.NewID("task"), s.NewID("user")}
	want := []string{"user-1", "task-1", "user-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("id %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNew(t *testing.T) {
	if _, ok := New("sequence").(*Sequence); !ok {
		t.Fatal("New(sequence) is not a *Sequence")
	}
	if _, ok := New("uuid").(UUID); !ok {
		t.Fatal("New(uuid) is not UUID")
	}
}
