package planner

import (
	"testing"
	"time"

	"github.com/demogorgan123/Club/internal/models"
)

func date(s string) *models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestBoard(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Status: models.TaskTodo},
		{ID: "b", Status: models.TaskTodo, DueDate: date("2026-11-05")},
		{ID: "c", Status: models.TaskDone, DueDate: date("2026-10-01")},
		{ID: "d", Status: models.TaskTodo, DueDate: date("2026-10-20")},
		{ID: "e", Status: models.TaskTodo},
		{ID: "f", Status: models.TaskInProgress},
	}
	board := Board(tasks)
	if len(board) != 3 {
		t.Fatalf("columns = %d, want 3", len(board))
	}
	want := map[models.TaskStatus][]string{
		models.TaskTodo:       {"d", "b", "a", "e"},
		models.TaskInProgress: {"f"},
		models.TaskDone:       {"c"},
	}
	for _, col := range board {
		got := ids(col.Tasks)
		if len(got) != len(want[col.Status]) {
			t.Fatalf("%s = %v, want %v", col.Status, got, want[col.Status])
		}
		for i := range got {
			if got[i] != want[col.Status][i] {
				t.Fatalf("%s = %v, want %v", col.Status, got, want[col.Status])
			}
		}
	}
	if board[0].Status != models.TaskTodo || board[2].Status != models.TaskDone {
		t.Fatal("columns out of order")
	}
}

func TestIsOverdue(t *testing.T) {
	today := models.NewDate(2026, time.October, 18)
	cases := []struct {
		name string
		task models.Task
		want bool
	}{
		{name: "past todo", task: models.Task{Status: models.TaskTodo, DueDate: date("2026-10-17")}, want: true},
		{name: "past done", task: models.Task{Status: models.TaskDone, DueDate: date("2026-10-17")}, want: false},
		{name: "due today", task: models.Task{Status: models.TaskInProgress, DueDate: date("2026-10-18")}, want: false},
		{name: "undated", task: models.Task{Status: models.TaskTodo}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOverdue(tc.task, today); got != tc.want {
				t.Fatalf("IsOverdue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalendar(t *testing.T) {
	teams := []models.Team{{ID: "alpha", Name: "Alpha"}, {ID: "beta", Name: "Beta"}}
	tasks := map[string][]models.Task{
		"alpha": {
			{ID: "a1", DueDate: date("2026-10-03")},
			{ID: "a2"},
			{ID: "a3", DueDate: date("2026-11-03")},
		},
		"beta":  {{ID: "b1", DueDate: date("2026-10-03")}},
		"ghost": {{ID: "g1", DueDate: date("2026-10-03")}},
	}
	cal := Calendar(tasks, teams, 2026, time.October)
	if len(cal) != 1 {
		t.Fatalf("days = %d, want 1", len(cal))
	}
	day := cal["2026-10-03"]
	if len(day) != 2 || day[0].Task.ID != "a1" || day[0].TeamName != "Alpha" || day[1].Task.ID != "b1" {
		t.Fatalf("2026-10-03 = %+v", day)
	}
}
