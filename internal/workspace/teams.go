package workspace

import (
	"strings"

	"go.uber.org/zap"

	"github.com/demogorgan123/Club/internal/access"
	"github.com/demogorgan123/Club/internal/apperr"
	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/generator"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/realtime"
	"github.com/demogorgan123/Club/internal/store"
	"github.com/demogorgan123/Club/pkg/slug"
	"github.com/demogorgan123/Club/pkg/validation"
)

// CreateTeamInput names a new team and its three leaders.
type CreateTeamInput struct {
	Name      string `json:"name" validate:"notblank"`
	HeadID    string `json:"head_id" validate:"required"`
	CoHead1ID string `json:"co_head1_id" validate:"required,nefield=HeadID"`
	CoHead2ID string `json:"co_head2_id" validate:"required,nefield=HeadID,nefield=CoHead1ID"`
	Icon      string `json:"icon" validate:"required"`
}

// CreateTeam adds a team with its chat channel, an empty task list and the
// default tools, and makes the head Team Head and both co-heads Team Co-Head.
// The Secretary cannot be picked as a leader.
func (s *Service) CreateTeam(in CreateTeamInput) (models.Team, error) {
	const op = "CreateTeam"
	if err := validation.Struct(in); err != nil {
		err = apperr.Validation(op, "%v", err)
		s.logger.Debug("operation rejected", zap.String("op", op), zap.Error(err))
		return models.Team{}, err
	}

	team := models.Team{ID: slug.Make(in.Name), Name: in.Name, Icon: in.Icon}
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		if team.ID == "" {
			return nil, apperr.Validation(op, "team name %q has no usable characters", in.Name)
		}
		if _, err := tx.Team(team.ID); err == nil {
			return nil, apperr.Validation(op, "team id %q is already taken", team.ID)
		}

		leaders := make([]models.User, 0, 3)
		for _, id := range []string{in.HeadID, in.CoHead1ID, in.CoHead2ID} {
			u, err := tx.User(id)
			if err != nil {
				return nil, err
			}
			if u.Role == models.RoleSecretary {
				return nil, apperr.Validation(op, "the Secretary %q cannot lead a team", u.ID)
			}
			leaders = append(leaders, u)
		}

		channel := generator.TeamChannel(team, in.Name)
		if err := tx.InsertTeam(team); err != nil {
			return nil, err
		}
		if err := tx.InsertChannel(channel); err != nil {
			return nil, err
		}
		events := []realtime.Event{
			created(realtime.KindTeam, team.ID, ""),
			created(realtime.KindChannel, channel.ID, team.ID),
		}
		for i, u := range leaders {
			u.Role = models.RoleTeamCoHead
			if i == 0 {
				u.Role = models.RoleTeamHead
			}
			u.TeamID = team.ID
			if err := tx.UpdateUser(u); err != nil {
				return nil, err
			}
			events = append(events, updated(realtime.KindUser, u.ID, team.ID))
		}
		if err := tx.SetTeamTools(team.ID, catalog.DefaultTools(s.defaultTools)); err != nil {
			return nil, err
		}
		events = append(events, updated(realtime.KindTools, team.ID, team.ID))
		return events, tx.Validate()
	})
	if err != nil {
		return models.Team{}, err
	}

	s.logger.Info("team created",
		zap.String("team_id", team.ID),
		zap.String("head_id", in.HeadID),
		zap.Strings("co_head_ids", []string{in.CoHead1ID, in.CoHead2ID}),
	)
	return team, nil
}

// UpdateTeam renames or re-icons a team. The id never changes; the team's
// chat channel takes the new name. Empty name or icon keeps the current one.
func (s *Service) UpdateTeam(actorID, teamID, name, icon string) (models.Team, error) {
	const op = "UpdateTeam"
	var team models.Team
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		actor, err := tx.User(actorID)
		if err != nil {
			return nil, err
		}
		if !access.CanManageTeam(actor) {
			return nil, apperr.PermissionDenied(op, "%s may not manage teams", actor.Role)
		}
		team, err = tx.Team(teamID)
		if err != nil {
			return nil, err
		}
		events := []realtime.Event{updated(realtime.KindTeam, team.ID, "")}
		if name = strings.TrimSpace(name); name != "" {
			team.Name = name
			ch, err := tx.Channel(team.ID + "-chat")
			if err == nil {
				ch.Name = slug.Hyphenate(name)
				if err := tx.UpdateChannel(ch); err != nil {
					return nil, err
				}
				events = append(events, updated(realtime.KindChannel, ch.ID, team.ID))
			}
		}
		if icon != "" {
			team.Icon = icon
		}
		return events, tx.UpdateTeam(team)
	})
	if err != nil {
		return models.Team{}, err
	}
	s.logger.Info("team updated", zap.String("team_id", team.ID), zap.String("actor_id", actorID))
	return team, nil
}
