package realtime

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestPublishFanOut(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t))
	all := h.Subscribe(4)
	tasks := h.Subscribe(4, KindTask)
	defer all.Close()
	defer tasks.Close()

	h.Publish(Event{Kind: KindTeam, ID: "alpha", Op: OpCreated})
	h.Publish(Event{Kind: KindTask, ID: "task-1", Op: OpCreated, Scope: "alpha"})

	if got := <-all.C; got.Kind != KindTeam || got.ID != "alpha" {
		t.Fatalf("first event = %+v", got)
	}
	if got := <-all.C; got.Kind != KindTask {
		t.Fatalf("second event = %+v", got)
	}
	if got := <-tasks.C; got.ID != "task-1" || got.Scope != "alpha" {
		t.Fatalf("task subscriber got %+v", got)
	}
	select {
	case ev := <-tasks.C:
		t.Fatalf("task subscriber got unexpected %+v", ev)
	default:
	}
}

func TestPublishDoesNotBlockOnFullBuffer(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t))
	s := h.Subscribe(1)
	defer s.Close()

	h.Publish(Event{Kind: KindMessage, ID: "msg-1"})
	h.Publish(Event{Kind: KindMessage, ID: "msg-2"})

	if got := <-s.C; got.ID != "msg-1" {
		t.Fatalf("got %+v, want msg-1", got)
	}
	select {
	case ev := <-s.C:
		t.Fatalf("dropped event delivered: %+v", ev)
	default:
	}
}

func TestCloseDetaches(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t))
	s := h.Subscribe(0)
	if h.SubscriberCount() != 1 {
		t.Fatalf("count = %d, want 1", h.SubscriberCount())
	}
	s.Close()
	s.Close()
	if h.SubscriberCount() != 0 {
		t.Fatalf("count = %d after close, want 0", h.SubscriberCount())
	}
	if _, ok := <-s.C; ok {
		t.Fatal("channel still open after Close")
	}
	h.Publish(Event{Kind: KindUser, ID: "user-1"})
}
