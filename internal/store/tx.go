package store

import (
	"fmt"

	"github.com/demogorgan123/Club/internal/models"
)

// Tx is a pending change set. It is only valid inside Store.Update.
type Tx struct {
	*state
}

// Info returns the workspace metadata.
func (tx *Tx) Info() models.WorkspaceInfo { return tx.info }

// User looks up a user by id.
func (tx *Tx) User(id string) (models.User, error) { return tx.user(id) }

// Users returns all users in insertion order.
func (tx *Tx) Users() []models.User { return tx.listUsers() }

// Team looks up a team by id.
func (tx *Tx) Team(id string) (models.Team, error) { return tx.team(id) }

// Teams returns all teams in insertion order.
func (tx *Tx) Teams() []models.Team { return tx.listTeams() }

// Channel looks up a channel by id.
func (tx *Tx) Channel(id string) (models.Channel, error) { return tx.channel(id) }

// Channels returns all channels in insertion order.
func (tx *Tx) Channels() []models.Channel { return tx.listChannels() }

// DirectChannel returns the direct channel between a and b.
func (tx *Tx) DirectChannel(a, b string) (models.Channel, bool) { return tx.directChannel(a, b) }

// Task looks up a task by id.
func (tx *Tx) Task(id string) (models.Task, error) { return tx.task(id) }

// HasMessage reports whether any channel holds a message with id.
func (tx *Tx) HasMessage(id string) bool { return tx.hasMessage(id) }

// SetInfo replaces the workspace metadata.
func (tx *Tx) SetInfo(info models.WorkspaceInfo) { tx.info = info }

// InsertUser appends a new user.
func (tx *Tx) InsertUser(u models.User) error {
	if tx.userIndex(u.ID) >= 0 {
		return fmt.Errorf("user %q: %w", u.ID, ErrConflict)
	}
	tx.users = append(tx.users, u)
	return nil
}

// UpdateUser replaces the user with u.ID.
func (tx *Tx) UpdateUser(u models.User) error {
	i := tx.userIndex(u.ID)
	if i < 0 {
		return fmt.Errorf("user %q: %w", u.ID, ErrNotFound)
	}
	tx.users[i] = u
	return nil
}

// InsertTeam appends a team with an empty task list and no tools.
func (tx *Tx) InsertTeam(t models.Team) error {
	if tx.teamIndex(t.ID) >= 0 {
		return fmt.Errorf("team %q: %w", t.ID, ErrConflict)
	}
	tx.teams = append(tx.teams, t)
	tx.tasks[t.ID] = []models.Task{}
	tx.tools[t.ID] = []string{}
	return nil
}

// UpdateTeam replaces the team with t.ID.
func (tx *Tx) UpdateTeam(t models.Team) error {
	i := tx.teamIndex(t.ID)
	if i < 0 {
		return fmt.Errorf("team %q: %w", t.ID, ErrNotFound)
	}
	tx.teams[i] = t
	return nil
}

// InsertChannel appends a channel.
func (tx *Tx) InsertChannel(ch models.Channel) error {
	if tx.channelIndex(ch.ID) >= 0 {
		return fmt.Errorf("channel %q: %w", ch.ID, ErrConflict)
	}
	tx.channels = append(tx.channels, copyChannel(ch))
	return nil
}

// UpdateChannel replaces the channel with ch.ID.
func (tx *Tx) UpdateChannel(ch models.Channel) error {
	i := tx.channelIndex(ch.ID)
	if i < 0 {
		return fmt.Errorf("channel %q: %w", ch.ID, ErrNotFound)
	}
	tx.channels[i] = copyChannel(ch)
	return nil
}

// AppendMessage adds m to the end of its channel.
func (tx *Tx) AppendMessage(m models.Message) error {
	if tx.channelIndex(m.ChannelID) < 0 {
		return fmt.Errorf("channel %q: %w", m.ChannelID, ErrNotFound)
	}
	if tx.hasMessage(m.ID) {
		return fmt.Errorf("message %q: %w", m.ID, ErrConflict)
	}
	tx.messages[m.ChannelID] = append(tx.messages[m.ChannelID], m)
	return nil
}

// AppendTask adds t to the end of its team's list.
func (tx *Tx) AppendTask(t models.Task) error {
	if _, ok := tx.tasks[t.TeamID]; !ok {
		return fmt.Errorf("team %q: %w", t.TeamID, ErrNotFound)
	}
	if _, i := tx.taskIndex(t.ID); i >= 0 {
		return fmt.Errorf("task %q: %w", t.ID, ErrConflict)
	}
	tx.tasks[t.TeamID] = append(tx.tasks[t.TeamID], copyTask(t))
	return nil
}

// UpdateTask replaces the task with t.ID. The owning team cannot change.
func (tx *Tx) UpdateTask(t models.Task) error {
	teamID, i := tx.taskIndex(t.ID)
	if i < 0 {
		return fmt.Errorf("task %q: %w", t.ID, ErrNotFound)
	}
	t.TeamID = teamID
	tx.tasks[teamID][i] = copyTask(t)
	return nil
}

// SetTeamTools replaces a team's tool list.
func (tx *Tx) SetTeamTools(teamID string, names []string) error {
	if tx.teamIndex(teamID) < 0 {
		return fmt.Errorf("team %q: %w", teamID, ErrNotFound)
	}
	tx.tools[teamID] = append([]string{}, names...)
	return nil
}

// Validate checks the invariants of the pending state.
func (tx *Tx) Validate() error { return tx.validate() }
