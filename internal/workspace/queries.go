package workspace

import (
	"time"

	"github.com/demogorgan123/Club/internal/access"
	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/planner"
)

// VisibleChannels lists the channels userID may read, in store order.
func (s *Service) VisibleChannels(userID string) ([]models.Channel, error) {
	user, err := s.store.User(userID)
	if err != nil {
		return nil, classify("VisibleChannels", err)
	}
	return access.VisibleChannels(user, s.store.Channels()), nil
}

// VisibleMembers lists the members shown beside a channel: the team's users
// for a team id, or the club leadership when teamID is empty.
func (s *Service) VisibleMembers(teamID string) ([]models.User, error) {
	team, err := s.optionalTeam("VisibleMembers", teamID)
	if err != nil {
		return nil, err
	}
	return access.VisibleMembers(team, s.store.Users()), nil
}

// Roster lists users by rank, scoped to teamID when it is non-empty.
func (s *Service) Roster(teamID string) ([]models.User, error) {
	team, err := s.optionalTeam("Roster", teamID)
	if err != nil {
		return nil, err
	}
	return access.Roster(team, s.store.Users()), nil
}

// CanEditRole reports whether actorID may change targetID's role.
func (s *Service) CanEditRole(actorID, targetID string) (bool, error) {
	actor, err := s.store.User(actorID)
	if err != nil {
		return false, classify("CanEditRole", err)
	}
	target, err := s.store.User(targetID)
	if err != nil {
		return false, classify("CanEditRole", err)
	}
	return access.CanEditRole(actor, target), nil
}

// CanAssignTask reports whether actorID may create or assign tasks in teamID.
// An empty teamID is never assignable.
func (s *Service) CanAssignTask(actorID, teamID string) (bool, error) {
	actor, err := s.store.User(actorID)
	if err != nil {
		return false, classify("CanAssignTask", err)
	}
	team, err := s.optionalTeam("CanAssignTask", teamID)
	if err != nil {
		return false, err
	}
	return access.CanAssignTask(actor, team), nil
}

// CanCreateTeam reports whether actorID may create teams.
func (s *Service) CanCreateTeam(actorID string) (bool, error) {
	actor, err := s.store.User(actorID)
	if err != nil {
		return false, classify("CanCreateTeam", err)
	}
	return access.CanCreateTeam(actor), nil
}

// CanInviteMembers reports whether actorID may invite new users.
func (s *Service) CanInviteMembers(actorID string) (bool, error) {
	actor, err := s.store.User(actorID)
	if err != nil {
		return false, classify("CanInviteMembers", err)
	}
	return access.CanInviteMembers(actor), nil
}

// Designation returns userID's display label, e.g. "Design Team Head".
func (s *Service) Designation(userID string) (string, error) {
	user, err := s.store.User(userID)
	if err != nil {
		return "", classify("Designation", err)
	}
	return access.DisplayDesignation(user, s.store.Teams()), nil
}

// TeamTools resolves teamID's assigned tool names against the catalog.
func (s *Service) TeamTools(teamID string) ([]models.Tool, error) {
	names, err := s.store.TeamTools(teamID)
	if err != nil {
		return nil, classify("TeamTools", err)
	}
	tools := make([]models.Tool, 0, len(names))
	for _, name := range names {
		if t, ok := catalog.Tool(name); ok {
			tools = append(tools, t)
		}
	}
	return tools, nil
}

// Tasks lists teamID's tasks in insertion order.
func (s *Service) Tasks(teamID string) ([]models.Task, error) {
	tasks, err := s.store.Tasks(teamID)
	if err != nil {
		return nil, classify("Tasks", err)
	}
	return tasks, nil
}

// Messages lists channelID's messages in posting order.
func (s *Service) Messages(channelID string) ([]models.Message, error) {
	msgs, err := s.store.Messages(channelID)
	if err != nil {
		return nil, classify("Messages", err)
	}
	return msgs, nil
}

// Board groups teamID's tasks into status columns.
func (s *Service) Board(teamID string) ([]planner.Column, error) {
	tasks, err := s.Tasks(teamID)
	if err != nil {
		return nil, err
	}
	return planner.Board(tasks), nil
}

// Calendar groups every team's dated tasks in year/month by day.
func (s *Service) Calendar(year int, month time.Month) map[string][]planner.Entry {
	snap := s.store.Snapshot()
	return planner.Calendar(snap.Tasks, snap.Teams, year, month)
}

// Overdue lists teamID's tasks that are past due on the service clock's day.
func (s *Service) Overdue(teamID string) ([]models.Task, error) {
	tasks, err := s.Tasks(teamID)
	if err != nil {
		return nil, err
	}
	today := models.DateOf(s.now())
	out := make([]models.Task, 0)
	for _, t := range tasks {
		if planner.IsOverdue(t, today) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Service) optionalTeam(op, teamID string) (*models.Team, error) {
	if teamID == "" {
		return nil, nil
	}
	team, err := s.store.Team(teamID)
	if err != nil {
		return nil, classify(op, err)
	}
	return &team, nil
}
