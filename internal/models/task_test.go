package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateText(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !d.Equal(NewDate(2026, time.October, 18).Time) {
		t.Fatalf("ParseDate = %v", d)
	}

	task := Task{ID: "task-1", Title: "Book hall", Status: TaskTodo, DueDate: &d}
	b, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Task
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.DueDate == nil || back.DueDate.String() != "2026-10-18" {
		t.Fatalf("due date = %v", back.DueDate)
	}

	if _, err := ParseDate("18/10/2026"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDateOf(t *testing.T) {
	at := time.Date(2026, time.March, 3, 23, 59, 0, 0, time.UTC)
	if got := DateOf(at); !got.Equal(NewDate(2026, time.March, 3).Time) {
		t.Fatalf("DateOf = %v", got)
	}
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range TaskStatuses() {
		if !s.Valid() {
			t.Fatalf("%q not valid", s)
		}
	}
	if TaskStatus("Blocked").Valid() {
		t.Fatal("Blocked reported valid")
	}
}
