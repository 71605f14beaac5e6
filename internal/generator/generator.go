// Package generator turns onboarding answers into a populated workspace.
package generator

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/demogorgan123/Club/internal/apperr"
	"github.com/demogorgan123/Club/internal/catalog"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/store"
	"github.com/demogorgan123/Club/pkg/idgen"
	"github.com/demogorgan123/Club/pkg/slug"
	"github.com/demogorgan123/Club/pkg/validation"
)

const op = "GenerateWorkspace"

// Fixed channel ids present in every workspace.
const (
	GeneralChannelID       = "general"
	AnnouncementsChannelID = "announcements"
)

// Welcome texts seeded into the fixed channels.
const (
	WelcomeText = "Welcome to the club workspace!"
	KickoffText = "IMPORTANT: First all-hands meeting is this Friday. Please be there!"
)

// TeamInput is one team chosen during onboarding.
type TeamInput struct {
	Name string `json:"name" yaml:"name" validate:"notblank"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Input holds the onboarding answers.
type Input struct {
	Name      string              `json:"name" yaml:"name" validate:"notblank"`
	ClubType  string              `json:"club_type,omitempty" yaml:"club_type,omitempty"`
	CreatorID string              `json:"creator_id,omitempty" yaml:"creator_id,omitempty"`
	Teams     []TeamInput         `json:"teams" yaml:"teams" validate:"dive"`
	TeamTools map[string][]string `json:"team_tools,omitempty" yaml:"team_tools,omitempty"`
	// Pool is the seed user set. Nil selects catalog.SeedUsers.
	Pool []models.User `json:"pool,omitempty" yaml:"pool,omitempty"`
}

// Generator builds workspaces. The zero value is not usable; call New.
type Generator struct {
	logger     *zap.Logger
	ids        idgen.Generator
	now        func() time.Time
	timeLayout string
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDs sets the id source for generated messages.
func WithIDs(ids idgen.Generator) Option {
	return func(g *Generator) { g.ids = ids }
}

// WithClock sets the time source for seeded messages.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithTimeLayout sets the display layout of message timestamps.
func WithTimeLayout(layout string) Option {
	return func(g *Generator) { g.timeLayout = layout }
}

// New creates a generator.
func New(logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		logger:     logger,
		ids:        idgen.UUID{},
		now:        time.Now,
		timeLayout: "03:04 PM",
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate validates in and returns a new store holding the workspace.
func (g *Generator) Generate(in Input) (*store.Store, error) {
	if err := validation.Struct(in); err != nil {
		return nil, apperr.Validation(op, "%v", err)
	}

	creatorID := in.CreatorID
	if creatorID == "" {
		creatorID = catalog.DefaultCreatorID
	}
	pool := in.Pool
	if pool == nil {
		pool = catalog.SeedUsers()
	}
	users, err := seedUsers(pool, creatorID)
	if err != nil {
		return nil, err
	}

	teams, err := buildTeams(in.Teams)
	if err != nil {
		return nil, err
	}

	st := store.New(models.WorkspaceInfo{Name: in.Name, ClubType: in.ClubType, CreatorID: creatorID})
	err = st.Update(func(tx *store.Tx) error {
		for _, u := range users {
			if err := tx.InsertUser(u); err != nil {
				return err
			}
		}
		for _, ch := range []models.Channel{
			{ID: GeneralChannelID, Name: "general", Type: models.ChannelGeneral},
			{ID: AnnouncementsChannelID, Name: "announcements", Type: models.ChannelAnnouncements},
		} {
			if err := tx.InsertChannel(ch); err != nil {
				return err
			}
		}
		for i, team := range teams {
			if err := tx.InsertTeam(team); err != nil {
				return err
			}
			if err := tx.InsertChannel(TeamChannel(team, in.Teams[i].Name)); err != nil {
				return err
			}
			if err := tx.SetTeamTools(team.ID, catalog.ResolveTools(in.TeamTools[in.Teams[i].Name])); err != nil {
				return err
			}
		}
		if err := g.seedMessages(tx, creatorID); err != nil {
			return err
		}
		return tx.Validate()
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, apperr.Validation(op, "%v", err)
		}
		return nil, apperr.Validation(op, "invalid workspace: %v", err)
	}

	g.logger.Info("workspace generated",
		zap.String("name", in.Name),
		zap.String("creator_id", creatorID),
		zap.Int("teams", len(teams)),
		zap.Int("users", len(users)),
	)
	return st, nil
}

// TeamChannel returns the companion channel of a team.
func TeamChannel(team models.Team, name string) models.Channel {
	return models.Channel{
		ID:     team.ID + "-chat",
		Name:   slug.Hyphenate(name),
		Type:   models.ChannelTeam,
		TeamID: team.ID,
	}
}

func seedUsers(pool []models.User, creatorID string) ([]models.User, error) {
	users := make([]models.User, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))
	foundCreator := false
	for _, u := range pool {
		if u.ID == "" {
			return nil, apperr.Validation(op, "seed user %q has no id", u.Name)
		}
		if _, dup := seen[u.ID]; dup {
			return nil, apperr.Validation(op, "duplicate seed user %q", u.ID)
		}
		seen[u.ID] = struct{}{}
		if u.ID == creatorID {
			u.Role = models.RoleSecretary
			u.TeamID = ""
			foundCreator = true
		} else if u.Role == models.RoleSecretary {
			return nil, apperr.Validation(op, "seed user %q cannot be Secretary; only the creator is", u.ID)
		}
		if u.Role == "" {
			u.Role = models.RoleMember
		}
		if !u.Role.Valid() {
			return nil, apperr.Validation(op, "seed user %q has unknown role %q", u.ID, u.Role)
		}
		if u.AvatarURL == "" {
			u.AvatarURL = catalog.AvatarURL(u.ID)
		}
		users = append(users, u)
	}
	if !foundCreator {
		return nil, apperr.Validation(op, "creator %q is not in the seed pool", creatorID)
	}
	return users, nil
}

func buildTeams(inputs []TeamInput) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(inputs))
	byID := make(map[string]string, len(inputs))
	for i, in := range inputs {
		id := slug.Make(in.Name)
		if id == "" {
			return nil, apperr.Validation(op, "team name %q has no usable characters", in.Name)
		}
		if prev, dup := byID[id]; dup {
			return nil, apperr.Validation(op, "teams %q and %q share id %q", prev, in.Name, id)
		}
		byID[id] = in.Name
		icon := in.Icon
		if icon == "" {
			icon = catalog.IconAt(i)
		}
		teams = append(teams, models.Team{ID: id, Name: in.Name, Icon: icon})
	}
	return teams, nil
}

func (g *Generator) seedMessages(tx *store.Tx, creatorID string) error {
	at := g.now()
	for _, m := range []struct{ channel, text string }{
		{GeneralChannelID, WelcomeText},
		{AnnouncementsChannelID, KickoffText},
	} {
		id := g.ids.NewID("msg")
		for tx.HasMessage(id) {
			id = g.ids.NewID("msg")
		}
		err := tx.AppendMessage(models.Message{
			ID:        id,
			ChannelID: m.channel,
			Text:      m.text,
			UserID:    creatorID,
			Timestamp: at.Format(g.timeLayout),
			SentAt:    at,
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", m.channel, err)
		}
	}
	return nil
}
