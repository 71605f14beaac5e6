package models

// User is a club member.
type User struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	Role      Role   `json:"role" yaml:"role"`
	TeamID    string `json:"team_id,omitempty" yaml:"team_id,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
}

// HasTeam reports whether the user is affiliated with a team.
func (u *User) HasTeam() bool {
	return u.TeamID != ""
}
