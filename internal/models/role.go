package models

import "fmt"

// Role represents a user's standing in the club.
type Role string

const (
	RoleSecretary        Role = "Secretary"
	RoleCoordinator      Role = "Coordinator"
	RoleJointCoordinator Role = "Joint Coordinator"
	RoleTeamHead         Role = "Team Head"
	RoleTeamCoHead       Role = "Team Co-Head"
	RoleMember           Role = "Member"
)

// hierarchy lists roles from highest to lowest authority. The index is the rank.
var hierarchy = []Role{
	RoleSecretary,
	RoleCoordinator,
	RoleJointCoordinator,
	RoleTeamHead,
	RoleTeamCoHead,
	RoleMember,
}

// Roles returns every role ordered from highest to lowest authority.
func Roles() []Role {
	out := make([]Role, len(hierarchy))
	copy(out, hierarchy)
	return out
}

// Rank returns the role's position in the hierarchy; lower means more authority.
// Unknown roles rank below Member.
func (r Role) Rank() int {
	for i, h := range hierarchy {
		if h == r {
			return i
		}
	}
	return len(hierarchy)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.Rank() < len(hierarchy)
}

// IsClubLeadership reports whether r carries club-wide authority.
func (r Role) IsClubLeadership() bool {
	return r == RoleSecretary || r == RoleCoordinator || r == RoleJointCoordinator
}

// IsTeamLeadership reports whether r leads a single team.
func (r Role) IsTeamLeadership() bool {
	return r == RoleTeamHead || r == RoleTeamCoHead
}

// IsTeamScoped reports whether r requires a team assignment.
func (r Role) IsTeamScoped() bool {
	return r.IsTeamLeadership()
}

// ParseRole converts a display string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
