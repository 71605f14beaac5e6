package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/generator"
	"github.com/demogorgan123/Club/internal/workspace"
)

// Answers is the onboarding questionnaire as read from YAML.
//
//	name: Chess Society
//	club_type: Chess Club
//	teams:
//	  - name: Events
//	    icon: award
//	team_tools:
//	  Events: [Drive, Calendar]
//	invites: [jane.doe@example.com]
//	tasks:
//	  - team: events
//	    title: Book the hall
type Answers struct {
	Input   generator.Input `yaml:",inline"`
	Invites []string        `yaml:"invites,omitempty"`
	Tasks   []TaskAnswer    `yaml:"tasks,omitempty"`
}

// TaskAnswer is a task the creator files right after generation.
type TaskAnswer struct {
	Team string            `yaml:"team"`
	Task workspace.NewTask `yaml:",inline"`
}

func readAnswers(path string) (Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return Answers{}, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()
	return decodeAnswers(f)
}

func decodeAnswers(r io.Reader) (Answers, error) {
	var a Answers
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && err != io.EOF {
		return Answers{}, fmt.Errorf("decode answers: %w", err)
	}
	return a, nil
}

// fillDefaults completes answers from flags and configuration. Teams fall
// back to the configured list, then to the club type's default teams.
func fillDefaults(a *Answers, club, clubType, creatorID string, teams []string) {
	in := &a.Input
	if club != "" {
		in.Name = club
	}
	if clubType != "" {
		in.ClubType = clubType
	}
	if in.CreatorID == "" {
		in.CreatorID = creatorID
	}
	if len(in.Teams) > 0 {
		return
	}
	if len(teams) == 0 {
		teams = catalog.DefaultTeamsFor(in.ClubType)
	}
	for _, name := range teams {
		in.Teams = append(in.Teams, generator.TeamInput{Name: name})
	}
}
