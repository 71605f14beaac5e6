package models

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus is a task's board column. Any status may follow any other.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// TaskStatuses returns the statuses in board order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskTodo, TaskInProgress, TaskDone}
}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	return s == TaskTodo || s == TaskInProgress || s == TaskDone
}

// DateLayout is the wire form of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component, held at UTC midnight.
type Date struct {
	time.Time
}

// NewDate returns the date for year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	return d.UnmarshalText([]byte(s))
}

// Task is a unit of team work.
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	TeamID      string     `json:"team_id" yaml:"team_id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	AssignedTo  string     `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	Status      TaskStatus `json:"status" yaml:"status"`
	DueDate     *Date      `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}
