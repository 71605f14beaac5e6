package models

import "time"

// ChannelType scopes a channel.
type ChannelType string

const (
	ChannelGeneral       ChannelType = "general"
	ChannelAnnouncements ChannelType = "announcements"
	ChannelTeam          ChannelType = "team"
	ChannelDirect        ChannelType = "direct"
)

// Channel is a message-bearing context. TeamID is set only for team channels,
// Members only for direct channels.
type Channel struct {
	ID      string      `json:"id" yaml:"id"`
	Name    string      `json:"name" yaml:"name"`
	Type    ChannelType `json:"type" yaml:"type"`
	TeamID  string      `json:"team_id,omitempty" yaml:"team_id,omitempty"`
	Members []string    `json:"members,omitempty" yaml:"members,omitempty"`
}

// HasMember reports whether userID is one of the channel's direct members.
func (c *Channel) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// IsPair reports whether the channel is the direct channel between a and b.
func (c *Channel) IsPair(a, b string) bool {
	if c.Type != ChannelDirect || len(c.Members) != 2 {
		return false
	}
	return (c.Members[0] == a && c.Members[1] == b) || (c.Members[0] == b && c.Members[1] == a)
}

// Message is an append-only channel entry.
type Message struct {
	ID        string    `json:"id" yaml:"id"`
	ChannelID string    `json:"channel_id" yaml:"channel_id"`
	Text      string    `json:"text" yaml:"text"`
	UserID    string    `json:"user_id" yaml:"user_id"`
	Timestamp string    `json:"timestamp" yaml:"timestamp"`
	SentAt    time.Time `json:"sent_at" yaml:"sent_at"`
}
