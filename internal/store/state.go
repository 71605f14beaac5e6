package store

import (
	"fmt"

	"github.com/demogorgan123/Club/internal/models"
)

type state struct {
	info     models.WorkspaceInfo
	users    []models.User
	teams    []models.Team
	channels []models.Channel
	messages map[string][]models.Message
	tasks    map[string][]models.Task
	tools    map[string][]string
}

func newState(info models.WorkspaceInfo) *state {
	return &state{
		info:     info,
		messages: make(map[string][]models.Message),
		tasks:    make(map[string][]models.Task),
		tools:    make(map[string][]string),
	}
}

func (s *state) clone() *state {
	c := &state{
		info:     s.info,
		users:    s.listUsers(),
		teams:    s.listTeams(),
		channels: s.listChannels(),
		messages: make(map[string][]models.Message, len(s.messages)),
		tasks:    make(map[string][]models.Task, len(s.tasks)),
		tools:    make(map[string][]string, len(s.tools)),
	}
	for k, v := range s.messages {
		c.messages[k] = append([]models.Message(nil), v...)
	}
	for k, v := range s.tasks {
		c.tasks[k] = copyTasks(v)
	}
	for k, v := range s.tools {
		c.tools[k] = append([]string(nil), v...)
	}
	return c
}

func copyChannel(ch models.Channel) models.Channel {
	if ch.Members != nil {
		ch.Members = append([]string(nil), ch.Members...)
	}
	return ch
}

func copyTask(t models.Task) models.Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

func copyTasks(in []models.Task) []models.Task {
	out := make([]models.Task, len(in))
	for i, t := range in {
		out[i] = copyTask(t)
	}
	return out
}

func (s *state) listUsers() []models.User {
	return append([]models.User(nil), s.users...)
}

func (s *state) listTeams() []models.Team {
	return append([]models.Team(nil), s.teams...)
}

func (s *state) listChannels() []models.Channel {
	out := make([]models.Channel, len(s.channels))
	for i, ch := range s.channels {
		out[i] = copyChannel(ch)
	}
	return out
}

func (s *state) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *state) teamIndex(id string) int {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *state) channelIndex(id string) int {
	for i := range s.channels {
		if s.channels[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *state) user(id string) (models.User, error) {
	if i := s.userIndex(id); i >= 0 {
		return s.users[i], nil
	}
	return models.User{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
}

func (s *state) team(id string) (models.Team, error) {
	if i := s.teamIndex(id); i >= 0 {
		return s.teams[i], nil
	}
	return models.Team{}, fmt.Errorf("team %q: %w", id, ErrNotFound)
}

func (s *state) channel(id string) (models.Channel, error) {
	if i := s.channelIndex(id); i >= 0 {
		return copyChannel(s.channels[i]), nil
	}
	return models.Channel{}, fmt.Errorf("channel %q: %w", id, ErrNotFound)
}

func (s *state) directChannel(a, b string) (models.Channel, bool) {
	for _, ch := range s.channels {
		if ch.IsPair(a, b) {
			return copyChannel(ch), true
		}
	}
	return models.Channel{}, false
}

func (s *state) listMessages(channelID string) ([]models.Message, error) {
	if s.channelIndex(channelID) < 0 {
		return nil, fmt.Errorf("channel %q: %w", channelID, ErrNotFound)
	}
	return append([]models.Message(nil), s.messages[channelID]...), nil
}

func (s *state) hasMessage(id string) bool {
	for _, msgs := range s.messages {
		for _, m := range msgs {
			if m.ID == id {
				return true
			}
		}
	}
	return false
}

func (s *state) listTasks(teamID string) ([]models.Task, error) {
	tasks, ok := s.tasks[teamID]
	if !ok {
		return nil, fmt.Errorf("tasks for team %q: %w", teamID, ErrNotFound)
	}
	return copyTasks(tasks), nil
}

func (s *state) taskIndex(id string) (string, int) {
	for teamID, tasks := range s.tasks {
		for i := range tasks {
			if tasks[i].ID == id {
				return teamID, i
			}
		}
	}
	return "", -1
}

func (s *state) task(id string) (models.Task, error) {
	teamID, i := s.taskIndex(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %q: %w", id, ErrNotFound)
	}
	return copyTask(s.tasks[teamID][i]), nil
}

func (s *state) teamTools(teamID string) ([]string, error) {
	if s.teamIndex(teamID) < 0 {
		return nil, fmt.Errorf("team %q: %w", teamID, ErrNotFound)
	}
	return append([]string(nil), s.tools[teamID]...), nil
}

func (s *state) snapshot() Snapshot {
	c := s.clone()
	return Snapshot{
		Info:     c.info,
		Users:    c.users,
		Teams:    c.teams,
		Channels: c.channels,
		Messages: c.messages,
		Tasks:    c.tasks,
		Tools:    c.tools,
	}
}
