// Package access decides what a user may see and change in a workspace.
// Every function is pure: it reads its arguments and returns a fresh result.
package access

import (
	"sort"

	"github.com/demogorgan123/Club/internal/models"
)

// CanSeeChannel reports whether user may read ch. Club leadership sees every
// channel; everyone else sees all non-team channels plus their own team's.
func CanSeeChannel(user models.User, ch models.Channel) bool {
	if user.Role.IsClubLeadership() {
		return true
	}
	return ch.Type != models.ChannelTeam || ch.TeamID == user.TeamID
}

// VisibleChannels filters channels down to those user may read, keeping order.
func VisibleChannels(user models.User, channels []models.Channel) []models.Channel {
	out := make([]models.Channel, 0, len(channels))
	for _, ch := range channels {
		if CanSeeChannel(user, ch) {
			out = append(out, ch)
		}
	}
	return out
}

// CanPostTo reports whether user may post in ch. Posting requires visibility;
// a direct channel additionally requires membership.
func CanPostTo(user models.User, ch models.Channel) bool {
	if ch.Type == models.ChannelDirect {
		return ch.HasMember(user.ID)
	}
	return CanSeeChannel(user, ch)
}

// VisibleMembers is the member list shown next to a channel: the team's users
// when team is set, otherwise the club leadership.
func VisibleMembers(team *models.Team, users []models.User) []models.User {
	if team == nil {
		return ClubLeaders(users)
	}
	return inTeam(team.ID, users)
}

// Roster is the members-management list: every user, or only team's users when
// team is set, sorted by role rank.
func Roster(team *models.Team, users []models.User) []models.User {
	if team == nil {
		return SortByRank(users)
	}
	return SortByRank(inTeam(team.ID, users))
}

// ClubLeaders returns the users holding club-wide leadership roles.
func ClubLeaders(users []models.User) []models.User {
	out := make([]models.User, 0, 3)
	for _, u := range users {
		if u.Role.IsClubLeadership() {
			out = append(out, u)
		}
	}
	return out
}

func inTeam(teamID string, users []models.User) []models.User {
	out := make([]models.User, 0)
	for _, u := range users {
		if u.TeamID == teamID {
			out = append(out, u)
		}
	}
	return out
}

// SortByRank returns a copy of users ordered by role rank. Equal ranks keep
// their input order.
func SortByRank(users []models.User) []models.User {
	out := append([]models.User(nil), users...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Role.Rank() < out[j].Role.Rank()
	})
	return out
}

// CanEditRole reports whether actor may change target's role. Only the
// Secretary may, and never on themselves.
func CanEditRole(actor, target models.User) bool {
	if actor.ID == target.ID {
		return false
	}
	return actor.Role == models.RoleSecretary
}

// CanAssignTask reports whether actor may create or assign tasks in team.
func CanAssignTask(actor models.User, team *models.Team) bool {
	if team == nil {
		return false
	}
	if actor.Role.IsClubLeadership() {
		return true
	}
	return actor.Role.IsTeamLeadership() && actor.TeamID == team.ID
}

// CanCreateTeam reports whether actor may create teams.
func CanCreateTeam(actor models.User) bool {
	return actor.Role.IsClubLeadership()
}

// CanManageTeam reports whether actor may rename or re-icon a team.
func CanManageTeam(actor models.User) bool {
	return actor.Role.IsClubLeadership()
}

// CanInviteMembers reports whether actor may invite new users.
func CanInviteMembers(actor models.User) bool {
	return actor.Role == models.RoleSecretary
}

// DisplayDesignation returns the label shown for user's role: team-scoped
// roles are prefixed with the team name when the team resolves.
func DisplayDesignation(user models.User, teams []models.Team) string {
	if user.Role.IsTeamScoped() && user.TeamID != "" {
		for _, t := range teams {
			if t.ID == user.TeamID {
				return t.Name + " " + string(user.Role)
			}
		}
	}
	return string(user.Role)
}
