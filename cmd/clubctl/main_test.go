package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/generator"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/store"
)

const answersYAML = `
name: Chess Society
club_type: Chess Club
teams:
  - name: Events
    icon: award
  - name: Design Team
team_tools:
  Events: [Canva, Not A Tool, Docs]
invites: [jane.doe@example.com]
tasks:
  - team: events
    title: Book the hall
    due_date: 2026-11-02
`

func TestDecodeAnswers(t *testing.T) {
	a, err := decodeAnswers(strings.NewReader(answersYAML))
	if err != nil {
		t.Fatalf("decodeAnswers: %v", err)
	}
	if a.Input.Name != "Chess Society" || len(a.Input.Teams) != 2 || a.Input.Teams[1].Icon != "" {
		t.Fatalf("input = %+v", a.Input)
	}
	if len(a.Tasks) != 1 || a.Tasks[0].Team != "events" || a.Tasks[0].Task.Title != "Book the hall" {
		t.Fatalf("tasks = %+v", a.Tasks)
	}
	due := a.Tasks[0].Task.DueDate
	if due == nil || !due.Equal(models.NewDate(2026, time.November, 2).Time) {
		t.Fatalf("due = %v", due)
	}

	if _, err := decodeAnswers(strings.NewReader("name: x\ncolour: red\n")); err == nil {
		t.Fatal("unknown field accepted")
	}
	empty, err := decodeAnswers(strings.NewReader(""))
	if err != nil || empty.Input.Name != "" {
		t.Fatalf("empty answers = %+v, %v", empty, err)
	}
}

func TestFillDefaults(t *testing.T) {
	cases := []struct {
		name      string
		answers   Answers
		clubType  string
		teams     []string
		wantTeams []string
	}{
		{
			name:      "explicit teams win",
			answers:   Answers{Input: generator.Input{Teams: []generator.TeamInput{{Name: "Ops"}}}},
			teams:     []string{"Ignored"},
			wantTeams: []string{"Ops"},
		},
		{
			name:      "configured teams",
			teams:     []string{"Events", "Design"},
			wantTeams: []string{"Events", "Design"},
		},
		{
			name:      "club type defaults",
			clubType:  "Robotics and Automation Club",
			wantTeams: []string{"Mechanical Design", "Electronics & Circuitry", "Software & AI"},
		},
		{
			name:      "fallback",
			wantTeams: []string{"General Management", "Events", "Marketing"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.answers
			fillDefaults(&a, "Club", tc.clubType, "user-1", tc.teams)
			var got []string
			for _, team := range a.Input.Teams {
				got = append(got, team.Name)
			}
			if strings.Join(got, "|") != strings.Join(tc.wantTeams, "|") {
				t.Fatalf("teams = %v, want %v", got, tc.wantTeams)
			}
			if a.Input.Name != "Club" || a.Input.CreatorID != "user-1" {
				t.Fatalf("input = %+v", a.Input)
			}
		})
	}
}

func TestRunGeneratesWorkspace(t *testing.T) {
	t.Setenv("CLUB_ID_MODE", "sequence")
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(answersYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{"-f", path, "-o", "json"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	if snap.Info.Name != "Chess Society" || snap.Info.CreatorID != "user-1" {
		t.Fatalf("info = %+v", snap.Info)
	}
	if len(snap.Teams) != 2 || snap.Teams[1].ID != "design-team" || snap.Teams[1].Icon == "" {
		t.Fatalf("teams = %+v", snap.Teams)
	}
	if got := strings.Join(snap.Tools["events"], ","); got != "Docs,Canva" {
		t.Fatalf("events tools = %q", got)
	}
	if len(snap.Users) != 14 || snap.Users[13].Name != "Jane Doe" {
		t.Fatalf("users = %d", len(snap.Users))
	}
	if tasks := snap.Tasks["events"]; len(tasks) != 1 || tasks[0].Status != models.TaskTodo {
		t.Fatalf("events tasks = %+v", tasks)
	}
}

func TestRunCatalogYAML(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--catalog"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var l listing
	if err := yaml.Unmarshal(out.Bytes(), &l); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(l.Tools) != len(catalog.Tools()) || len(l.Icons) != len(catalog.TeamIcons()) {
		t.Fatalf("listing = %d tools, %d icons", len(l.Tools), len(l.Icons))
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	cases := [][]string{
		{"-o", "xml", "--club", "X"},
		{"extra-arg"},
		{"-f", filepath.Join(t.TempDir(), "missing.yaml")},
		{"--club", ""},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if err := run(args, &bytes.Buffer{}); err == nil {
				t.Fatalf("run(%v) succeeded", args)
			}
		})
	}
}
