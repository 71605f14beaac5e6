package catalog

// ClubType is an onboarding template.
type ClubType struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Icon         string   `json:"icon" yaml:"icon"`
	DefaultTeams []string `json:"default_teams" yaml:"default_teams"`
}

// ClubCategory groups club types.
type ClubCategory struct {
	Name  string     `json:"name" yaml:"name"`
	Clubs []ClubType `json:"clubs" yaml:"clubs"`
}

var fallbackTeams = []string{"General Management", "Events", "Marketing"}

var categories = []ClubCategory{
	{
		Name: "Technical & Professional",
		Clubs: []ClubType{
			{
				Name:         "Robotics and Automation Club",
				Description:  "Design, build, and program intelligent systems and robots.",
				Icon:         "bot",
				DefaultTeams: []string{"Mechanical Design", "Electronics & Circuitry", "Software & AI"},
			},
			{
				Name:         "Coding & Programming Club",
				Description:  "Nurture algorithmic thinking and software development skills.",
				Icon:         "code",
				DefaultTeams: []string{"Competitive Programming", "Development & Projects", "Workshop Team"},
			},
			{
				Name:         "Entrepreneurship Cell (E-Cell)",
				Description:  "Promote and support the startup ecosystem on campus.",
				Icon:         "lightbulb",
				DefaultTeams: []string{"Events & Outreach", "Incubation & Mentorship", "Content & Marketing"},
			},
		},
	},
	{
		Name: "Cultural & Literary",
		Clubs: []ClubType{
			{
				Name:         "Dramatics Club",
				Description:  "Dedicated to the art of theatre and performance.",
				Icon:         "mic",
				DefaultTeams: []string{"Actors' Troupe", "Scriptwriting & Direction", "Production & Backstage"},
			},
			{
				Name:         "Literary & Debating Society",
				Description:  "Enhance critical thinking, rhetoric, and writing skills.",
				Icon:         "book",
				DefaultTeams: []string{"Debate Team", "Publications Team", "Quizzing Team"},
			},
			{
				Name:         "Music and Fine Arts Club",
				Description:  "Foster artistic talent in music, painting, and visual media.",
				Icon:         "brush",
				DefaultTeams: []string{"Music Production", "Visual Arts", "Live Performance"},
			},
		},
	},
	{
		Name: "Sports & Wellness",
		Clubs: []ClubType{
			{
				Name:         "Sports Clubs (General)",
				Description:  "Manage and train college-level sports teams like Cricket, Football, etc.",
				Icon:         "award",
				DefaultTeams: []string{"Team Selection & Training", "Match Management", "Intramural Events"},
			},
			{
				Name:         "Adventure and Wellness Club",
				Description:  "Focus on outdoor activities, physical conditioning, and mental well-being.",
				Icon:         "mountain",
				DefaultTeams: []string{"Trekking & Expedition", "Fitness & Yoga", "Awareness Campaigns"},
			},
		},
	},
}

// Categories returns the club categories. Callers must not modify the result.
func Categories() []ClubCategory {
	return categories
}

// DefaultTeamsFor returns a copy of the default team names for clubName,
// or a general-purpose set when the club type is unknown.
func DefaultTeamsFor(clubName string) []string {
	for _, c := range categories {
		for _, club := range c.Clubs {
			if club.Name == clubName {
				return append([]string(nil), club.DefaultTeams...)
			}
		}
	}
	return append([]string(nil), fallbackTeams...)
}
