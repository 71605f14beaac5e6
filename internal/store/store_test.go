package store

import (
	"errors"
	"testing"

	"github.com/demogorgan123/Club/internal/models"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New(models.WorkspaceInfo{Name: "Chess Society", CreatorID: "user-1"})
	err := s.Update(func(tx *Tx) error {
		for _, u := range []models.User{
			{ID: "user-1", Name: "Alex", Role: models.RoleSecretary},
			{ID: "user-2", Name: "Brenda", Role: models.RoleMember},
		} {
			if err := tx.InsertUser(u); err != nil {
				return err
			}
		}
		if err := tx.InsertTeam(models.Team{ID: "alpha", Name: "Alpha", Icon: "rocket"}); err != nil {
			return err
		}
		return tx.InsertChannel(models.Channel{ID: "alpha-chat", Name: "alpha", Type: models.ChannelTeam, TeamID: "alpha"})
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestUpdateRollsBackOnError(t *testing.T) {
	s := seeded(t)
	boom := errors.New("boom")
	err := s.Update(func(tx *Tx) error {
		if err := tx.InsertUser(models.User{ID: "user-3", Name: "Charlie", Role: models.RoleMember}); err != nil {
			return err
		}
		if err := tx.InsertTeam(models.Team{ID: "beta", Name: "Beta"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want boom", err)
	}
	if len(s.Users()) != 2 {
		t.Fatalf("users = %d after rollback, want 2", len(s.Users()))
	}
	if _, err := s.Team("beta"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("team beta err = %v, want ErrNotFound", err)
	}
}

func TestInsertConflicts(t *testing.T) {
	s := seeded(t)
	cases := []struct {
		name string
		fn   func(tx *Tx) error
	}{
		{name: "user", fn: func(tx *Tx) error { return tx.InsertUser(models.User{ID: "user-1"}) }},
		{name: "team", fn: func(tx *Tx) error { return tx.InsertTeam(models.Team{ID: "alpha"}) }},
		{name: "channel", fn: func(tx *Tx) error { return tx.InsertChannel(models.Channel{ID: "alpha-chat"}) }},
		{name: "message", fn: func(tx *Tx) error {
			if err := tx.AppendMessage(models.Message{ID: "msg-1", ChannelID: "alpha-chat", UserID: "user-1", Text: "a"}); err != nil {
				return err
			}
			return tx.AppendMessage(models.Message{ID: "msg-1", ChannelID: "alpha-chat", UserID: "user-2", Text: "b"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.Update(tc.fn); !errors.Is(err, ErrConflict) {
				t.Fatalf("err = %v, want ErrConflict", err)
			}
		})
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := seeded(t)
	users := s.Users()
	users[0].Name = "mutated"
	if u, _ := s.User("user-1"); u.Name != "Alex" {
		t.Fatalf("store user mutated through Users(): %q", u.Name)
	}

	err := s.Update(func(tx *Tx) error {
		return tx.InsertChannel(models.Channel{ID: "dm-1", Type: models.ChannelDirect, Members: []string{"user-1", "user-2"}})
	})
	if err != nil {
		t.Fatalf("insert dm: %v", err)
	}
	ch, _ := s.Channel("dm-1")
	ch.Members[0] = "user-9"
	if again, _ := s.Channel("dm-1"); again.Members[0] != "user-1" {
		t.Fatal("store channel members mutated through Channel()")
	}
}

func TestTasksAndTools(t *testing.T) {
	s := seeded(t)
	if tasks, err := s.Tasks("alpha"); err != nil || len(tasks) != 0 {
		t.Fatalf("Tasks(alpha) = %v, %v; want empty", tasks, err)
	}
	if _, err := s.Tasks("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Tasks(missing) err = %v", err)
	}

	due := models.NewDate(2026, 11, 1)
	err := s.Update(func(tx *Tx) error {
		if err := tx.AppendTask(models.Task{ID: "task-1", TeamID: "alpha", Title: "Plan", Status: models.TaskTodo, DueDate: &due}); err != nil {
			return err
		}
		return tx.SetTeamTools("alpha", []string{"Docs", "GitHub"})
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	err = s.Update(func(tx *Tx) error {
		task, err := tx.Task("task-1")
		if err != nil {
			return err
		}
		task.Status = models.TaskDone
		task.TeamID = "elsewhere"
		return tx.UpdateTask(task)
	})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	got, err := s.Task("task-1")
	if err != nil {
		t.Fatalf("Task: %v", err)
	}
	if got.Status != models.TaskDone || got.TeamID != "alpha" {
		t.Fatalf("task = %+v", got)
	}
	if tools, _ := s.TeamTools("alpha"); len(tools) != 2 {
		t.Fatalf("tools = %v", tools)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateDetectsBrokenInvariants(t *testing.T) {
	cases := []struct {
		name string
		fn   func(tx *Tx) error
	}{
		{name: "team head without team", fn: func(tx *Tx) error {
			return tx.InsertUser(models.User{ID: "user-9", Role: models.RoleTeamHead})
		}},
		{name: "team channel to missing team", fn: func(tx *Tx) error {
			return tx.InsertChannel(models.Channel{ID: "ghost-chat", Type: models.ChannelTeam, TeamID: "ghost"})
		}},
		{name: "direct channel with one member", fn: func(tx *Tx) error {
			return tx.InsertChannel(models.Channel{ID: "dm-x", Type: models.ChannelDirect, Members: []string{"user-1", "user-1"}})
		}},
		{name: "duplicate message id across channels", fn: func(tx *Tx) error {
			if err := tx.AppendMessage(models.Message{ID: "msg-1", ChannelID: "alpha-chat", UserID: "user-1", Text: "a"}); err != nil {
				return err
			}
			if err := tx.InsertChannel(models.Channel{ID: "general", Name: "general", Type: models.ChannelGeneral}); err != nil {
				return err
			}
			tx.messages["general"] = append(tx.messages["general"], models.Message{ID: "msg-1", ChannelID: "general", UserID: "user-1", Text: "b"})
			return nil
		}},
		{name: "unknown tool", fn: func(tx *Tx) error {
			return tx.SetTeamTools("alpha", []string{"Fax"})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := seeded(t)
			err := s.Update(func(tx *Tx) error {
				if err := tc.fn(tx); err != nil {
					return err
				}
				return tx.Validate()
			})
			if err == nil {
				t.Fatal("expected invariant violation")
			}
			if verr := s.Validate(); verr != nil {
				t.Fatalf("store left invalid: %v", verr)
			}
		})
	}
}

func TestDirectChannelEitherOrder(t *testing.T) {
	s := seeded(t)
	err := s.Update(func(tx *Tx) error {
		return tx.InsertChannel(models.Channel{ID: "dm-1", Type: models.ChannelDirect, Members: []string{"user-1", "user-2"}})
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if ch, ok := s.DirectChannel("user-2", "user-1"); !ok || ch.ID != "dm-1" {
		t.Fatalf("DirectChannel reversed = %+v, %v", ch, ok)
	}
}
