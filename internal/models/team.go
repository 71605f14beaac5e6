package models

// Team is a working group inside the club. ID is the slug of Name at creation
// time and never changes.
type Team struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// Tool is an entry of the fixed tool catalog.
type Tool struct {
	Name     string `json:"name" yaml:"name"`
	Icon     string `json:"icon" yaml:"icon"`
	Category string `json:"category" yaml:"category"`
}
