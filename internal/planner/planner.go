// Package planner projects team tasks into a status board and a month calendar.
package planner

import (
	"sort"
	"time"

	"github.com/demogorgan123/Club/internal/models"
)

// Column is one status lane of a board.
type Column struct {
	Status models.TaskStatus `json:"status" yaml:"status"`
	Tasks  []models.Task     `json:"tasks" yaml:"tasks"`
}

// Board groups tasks into To Do, In Progress and Done columns. Each column is
// ordered by due date, earliest first, with undated tasks last in their
// original order.
func Board(tasks []models.Task) []Column {
	cols := make([]Column, 0, 3)
	for _, status := range models.TaskStatuses() {
		col := Column{Status: status, Tasks: []models.Task{}}
		for _, t := range tasks {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		sortByDue(col.Tasks)
		cols = append(cols, col)
	}
	return cols
}

func sortByDue(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case a != nil && b != nil:
			return a.Before(b.Time)
		case a != nil:
			return true
		default:
			return false
		}
	})
}

// IsOverdue reports whether t is dated, not done, and due before today.
func IsOverdue(t models.Task, today models.Date) bool {
	if t.DueDate == nil || t.Status == models.TaskDone {
		return false
	}
	return t.DueDate.Before(today.Time)
}

// Entry is a dated task with its team name, as shown on a calendar day.
type Entry struct {
	Task     models.Task `json:"task" yaml:"task"`
	TeamName string      `json:"team_name" yaml:"team_name"`
}

// Calendar groups the dated tasks of known teams that fall in year/month by
// day key (YYYY-MM-DD). Teams are visited in the given order.
func Calendar(tasksByTeam map[string][]models.Task, teams []models.Team, year int, month time.Month) map[string][]Entry {
	out := make(map[string][]Entry)
	for _, team := range teams {
		for _, t := range tasksByTeam[team.ID] {
			if t.DueDate == nil {
				continue
			}
			if t.DueDate.Year() != year || t.DueDate.Month() != month {
				continue
			}
			key := t.DueDate.String()
			out[key] = append(out[key], Entry{Task: t, TeamName: team.Name})
		}
	}
	return out
}
