// Package store holds the entities of one workspace in memory.
//
// Reads return copies. Writes go through Update, which runs against a private
// copy of the state and publishes it only when the callback succeeds, so a
// rejected mutation never leaves partial changes behind.
package store

import (
	"errors"
	"sync"

	"github.com/demogorgan123/Club/internal/models"
)

var (
	// ErrNotFound is returned when an id has no matching entity.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an inserted id is already taken.
	ErrConflict = errors.New("already exists")
)

// Store is the single owner of a workspace's entities.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New returns an empty store for the workspace described by info.
func New(info models.WorkspaceInfo) *Store {
	return &Store{st: newState(info)}
}

// Update runs fn inside a transaction. Changes become visible only if fn
// returns nil. Transactions are serialized.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &Tx{state: s.st.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	s.st = tx.state
	return nil
}

func (s *Store) read() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st
}

// Info returns the workspace metadata.
func (s *Store) Info() models.WorkspaceInfo { return s.read().info }

// Users returns all users in insertion order.
func (s *Store) Users() []models.User { return s.read().listUsers() }

// User looks up a user by id.
func (s *Store) User(id string) (models.User, error) { return s.read().user(id) }

// Teams returns all teams in insertion order.
func (s *Store) Teams() []models.Team { return s.read().listTeams() }

// Team looks up a team by id.
func (s *Store) Team(id string) (models.Team, error) { return s.read().team(id) }

// Channels returns all channels in insertion order.
func (s *Store) Channels() []models.Channel { return s.read().listChannels() }

// Channel looks up a channel by id.
func (s *Store) Channel(id string) (models.Channel, error) { return s.read().channel(id) }

// DirectChannel returns the direct channel between a and b, in either order.
func (s *Store) DirectChannel(a, b string) (models.Channel, bool) { return s.read().directChannel(a, b) }

// Messages returns a channel's messages in append order.
func (s *Store) Messages(channelID string) ([]models.Message, error) {
	return s.read().listMessages(channelID)
}

// Tasks returns a team's tasks in creation order.
func (s *Store) Tasks(teamID string) ([]models.Task, error) { return s.read().listTasks(teamID) }

// Task looks up a task by id across all teams.
func (s *Store) Task(id string) (models.Task, error) { return s.read().task(id) }

// TeamTools returns the tool names assigned to a team.
func (s *Store) TeamTools(teamID string) ([]string, error) { return s.read().teamTools(teamID) }

// Snapshot returns a deep copy of every collection.
func (s *Store) Snapshot() Snapshot { return s.read().snapshot() }

// Validate checks every cross-entity invariant of the current state.
func (s *Store) Validate() error { return s.read().validate() }

// Snapshot is a detached copy of a workspace.
type Snapshot struct {
	Info     models.WorkspaceInfo        `json:"workspace" yaml:"workspace"`
	Users    []models.User               `json:"users" yaml:"users"`
	Teams    []models.Team               `json:"teams" yaml:"teams"`
	Channels []models.Channel            `json:"channels" yaml:"channels"`
	Messages map[string][]models.Message `json:"messages" yaml:"messages"`
	Tasks    map[string][]models.Task    `json:"tasks" yaml:"tasks"`
	Tools    map[string][]string         `json:"tools" yaml:"tools"`
}
