package catalog

// teamIcons are the icon keys offered for teams.
var teamIcons = []string{
	"briefcase", "palette", "share", "users", "camera", "clapperboard",
	"flask", "mic", "barchart", "book", "code", "film",
	"megaphone", "bot", "lightbulb", "award", "mountain", "brush",
	"target", "drama", "music", "gamepad", "rocket", "newspaper",
}

// TeamIcons returns every team icon key.
func TeamIcons() []string {
	out := make([]string, len(teamIcons))
	copy(out, teamIcons)
	return out
}

// IconAt picks an icon for the i-th team, cycling through the catalog.
func IconAt(i int) string {
	if i < 0 {
		i = -i
	}
	return teamIcons[i%len(teamIcons)]
}

// IsTeamIcon reports whether key is a known team icon.
func IsTeamIcon(key string) bool {
	for _, k := range teamIcons {
		if k == key {
			return true
		}
	}
	return false
}
