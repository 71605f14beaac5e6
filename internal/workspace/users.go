package workspace

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/demogorgan123/Club/internal/access"
	"github.com/demogorgan123/Club/internal/apperr"
	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/realtime"
	"github.com/demogorgan123/Club/internal/store"
	"github.com/demogorgan123/Club/pkg/validation"
)

type inviteInput struct {
	Email string `validate:"notblank,contains=@"`
}

// InviteUser adds a Member for email. The display name comes from the
// address's local part.
func (s *Service) InviteUser(email string) (models.User, error) {
	const op = "InviteUser"
	email = strings.TrimSpace(email)
	if err := validation.Struct(inviteInput{Email: email}); err != nil {
		err = apperr.Validation(op, "%v", err)
		s.logger.Debug("operation rejected", zap.String("op", op), zap.Error(err))
		return models.User{}, err
	}

	var user models.User
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		id := s.freshID("user", func(id string) bool {
			_, err := tx.User(id)
			return err == nil
		})
		user = models.User{
			ID:        id,
			Name:      NameFromEmail(email),
			AvatarURL: catalog.AvatarURL(id),
			Role:      models.RoleMember,
			Email:     email,
		}
		if err := tx.InsertUser(user); err != nil {
			return nil, err
		}
		return []realtime.Event{created(realtime.KindUser, user.ID, "")}, nil
	})
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info("user invited", zap.String("user_id", user.ID), zap.String("name", user.Name))
	return user, nil
}

// NameFromEmail turns "jane.doe@example.com" into "Jane Doe": non-letters in
// the local part separate words and each word is capitalized. A local part
// without letters is returned unchanged.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.FieldsFunc(local, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	if len(words) == 0 {
		return local
	}
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// UpdateUserRole sets target's role, and team when teamID is non-empty.
// Only the Secretary may do this, and not on themselves.
func (s *Service) UpdateUserRole(actorID, targetID string, role models.Role, teamID string) (models.User, error) {
	const op = "UpdateUserRole"
	var target models.User
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		if !role.Valid() {
			return nil, apperr.Validation(op, "unknown role %q", role)
		}
		actor, err := tx.User(actorID)
		if err != nil {
			return nil, err
		}
		target, err = tx.User(targetID)
		if err != nil {
			return nil, err
		}
		if !access.CanEditRole(actor, target) {
			return nil, apperr.PermissionDenied(op, "%s %q may not change the role of %q", actor.Role, actor.ID, target.ID)
		}
		if teamID != "" {
			if _, err := tx.Team(teamID); err != nil {
				return nil, err
			}
			target.TeamID = teamID
		}
		if role.IsTeamScoped() && target.TeamID == "" {
			return nil, apperr.Validation(op, "%s requires a team", role)
		}
		target.Role = role
		if err := tx.UpdateUser(target); err != nil {
			return nil, err
		}
		return []realtime.Event{updated(realtime.KindUser, target.ID, target.TeamID)}, nil
	})
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info("user role updated",
		zap.String("actor_id", actorID),
		zap.String("user_id", target.ID),
		zap.String("role", string(target.Role)),
		zap.String("team_id", target.TeamID),
	)
	return target, nil
}
