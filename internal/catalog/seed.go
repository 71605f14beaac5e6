package catalog

import "github.com/demogorgan123/Club/internal/models"

// DefaultCreatorID is the seed user who creates the workspace.
const DefaultCreatorID = "user-1"

// AvatarURL is the placeholder avatar for a user id.
func AvatarURL(userID string) string {
	return "https://picsum.photos/seed/" + userID + "/40/40"
}

type seed struct {
	id, name, avatar, email string
	role                    models.Role
}

var seedUsers = []seed{
	{"user-1", "Alex Johnson", "alex", "alex.j@example.com", models.RoleSecretary},
	{"user-2", "Brenda Smith", "brenda", "brenda.s@example.com", models.RoleCoordinator},
	{"user-3", "Charlie Davis", "charlie", "charlie.d@example.com", models.RoleJointCoordinator},
	{"user-4", "Diana Prince", "diana", "diana.p@example.com", models.RoleMember},
	{"user-5", "Ethan Hunt", "ethan", "ethan.h@example.com", models.RoleMember},
	{"user-6", "Fiona Glenanne", "fiona", "fiona.g@example.com", models.RoleMember},
	{"user-7", "George Costanza", "george", "george.c@example.com", models.RoleMember},
	{"user-8", "Hank Hill", "hank", "hank.h@example.com", models.RoleMember},
	{"user-9", "Iris West", "iris", "iris.w@example.com", models.RoleMember},
	{"user-10", "Jack Sparrow", "jack", "jack.s@example.com", models.RoleMember},
	{"user-11", "Kara Danvers", "kara", "kara.d@example.com", models.RoleMember},
	{"user-12", "Lois Lane", "lois", "lois.l@example.com", models.RoleMember},
	{"user-13", "Mike Ross", "mike", "mike.r@example.com", models.RoleMember},
}

// SeedUsers returns the default pool: one Secretary, one Coordinator, one
// Joint Coordinator and ten unaffiliated Members.
func SeedUsers() []models.User {
	out := make([]models.User, 0, len(seedUsers))
	for _, s := range seedUsers {
		out = append(out, models.User{
			ID:        s.id,
			Name:      s.name,
			AvatarURL: AvatarURL(s.avatar),
			Role:      s.role,
			Email:     s.email,
		})
	}
	return out
}
