package models

// WorkspaceInfo describes the club a workspace was generated for.
type WorkspaceInfo struct {
	Name      string `json:"name" yaml:"name"`
	ClubType  string `json:"club_type,omitempty" yaml:"club_type,omitempty"`
	CreatorID string `json:"creator_id" yaml:"creator_id"`
}
