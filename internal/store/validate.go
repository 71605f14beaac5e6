package store

import (
	"errors"
	"fmt"

	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/models"
)

// validate reports every broken invariant, joined.
func (s *state) validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	teams := make(map[string]struct{}, len(s.teams))
	for _, t := range s.teams {
		if t.ID == "" {
			fail("team %q has empty id", t.Name)
		}
		if _, dup := teams[t.ID]; dup {
			fail("duplicate team id %q", t.ID)
		}
		teams[t.ID] = struct{}{}
		if _, ok := s.tasks[t.ID]; !ok {
			fail("team %q has no task list", t.ID)
		}
	}

	users := make(map[string]struct{}, len(s.users))
	for _, u := range s.users {
		if _, dup := users[u.ID]; dup {
			fail("duplicate user id %q", u.ID)
		}
		users[u.ID] = struct{}{}
		if !u.Role.Valid() {
			fail("user %q has unknown role %q", u.ID, u.Role)
		}
		if u.Role.IsTeamScoped() && u.TeamID == "" {
			fail("user %q is %s without a team", u.ID, u.Role)
		}
		if u.TeamID != "" {
			if _, ok := teams[u.TeamID]; !ok {
				fail("user %q references missing team %q", u.ID, u.TeamID)
			}
		}
	}

	channels := make(map[string]struct{}, len(s.channels))
	for _, ch := range s.channels {
		if _, dup := channels[ch.ID]; dup {
			fail("duplicate channel id %q", ch.ID)
		}
		channels[ch.ID] = struct{}{}
		switch ch.Type {
		case models.ChannelTeam:
			if _, ok := teams[ch.TeamID]; !ok {
				fail("team channel %q references missing team %q", ch.ID, ch.TeamID)
			}
		case models.ChannelDirect:
			if len(ch.Members) != 2 || ch.Members[0] == ch.Members[1] {
				fail("direct channel %q must have two distinct members", ch.ID)
			}
			for _, m := range ch.Members {
				if _, ok := users[m]; !ok {
					fail("direct channel %q references missing user %q", ch.ID, m)
				}
			}
		case models.ChannelGeneral, models.ChannelAnnouncements:
		default:
			fail("channel %q has unknown type %q", ch.ID, ch.Type)
		}
		if ch.Type != models.ChannelTeam && ch.TeamID != "" {
			fail("%s channel %q carries team %q", ch.Type, ch.ID, ch.TeamID)
		}
		if ch.Type != models.ChannelDirect && len(ch.Members) > 0 {
			fail("%s channel %q carries members", ch.Type, ch.ID)
		}
	}

	messages := make(map[string]struct{})
	for channelID, msgs := range s.messages {
		if _, ok := channels[channelID]; !ok {
			fail("messages stored for missing channel %q", channelID)
		}
		for _, m := range msgs {
			if _, dup := messages[m.ID]; dup {
				fail("duplicate message id %q in %s", m.ID, channelID)
			}
			messages[m.ID] = struct{}{}
			if _, ok := users[m.UserID]; !ok {
				fail("message %q authored by missing user %q", m.ID, m.UserID)
			}
		}
	}

	tasks := make(map[string]struct{})
	for teamID, list := range s.tasks {
		if _, ok := teams[teamID]; !ok {
			fail("tasks stored for missing team %q", teamID)
		}
		for _, t := range list {
			if _, dup := tasks[t.ID]; dup {
				fail("duplicate task id %q", t.ID)
			}
			tasks[t.ID] = struct{}{}
			if t.TeamID != teamID {
				fail("task %q stored under %q but owned by %q", t.ID, teamID, t.TeamID)
			}
			if !t.Status.Valid() {
				fail("task %q has unknown status %q", t.ID, t.Status)
			}
			if t.AssignedTo != "" {
				if _, ok := users[t.AssignedTo]; !ok {
					fail("task %q assigned to missing user %q", t.ID, t.AssignedTo)
				}
			}
		}
	}

	for teamID, names := range s.tools {
		if _, ok := teams[teamID]; !ok {
			fail("tools stored for missing team %q", teamID)
		}
		for _, n := range names {
			if _, ok := catalog.Tool(n); !ok {
				fail("team %q has unknown tool %q", teamID, n)
			}
		}
	}

	return errors.Join(errs...)
}
