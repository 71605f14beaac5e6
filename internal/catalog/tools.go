// Package catalog holds the fixed reference data a workspace draws from:
// tools, team icons, club types and the default seed users.
package catalog

import "github.com/demogorgan123/Club/internal/models"

// tools is the tool catalog in display order.
var tools = []models.Tool{
	{Name: "Docs", Icon: "file-text", Category: "Google Suite"},
	{Name: "Sheets", Icon: "file-spreadsheet", Category: "Google Suite"},
	{Name: "Slides", Icon: "presentation", Category: "Google Suite"},
	{Name: "Drive", Icon: "folder-open", Category: "Google Suite"},
	{Name: "Forms", Icon: "clipboard-list", Category: "Google Suite"},
	{Name: "Calendar", Icon: "calendar", Category: "Google Suite"},
	{Name: "GitHub", Icon: "github", Category: "Developer"},
	{Name: "Canva", Icon: "palette", Category: "Design"},
	{Name: "Photos", Icon: "image", Category: "Design"},
	{Name: "Instagram", Icon: "instagram", Category: "Social"},
	{Name: "LinkedIn", Icon: "linkedin", Category: "Social"},
	{Name: "X (Twitter)", Icon: "twitter", Category: "Social"},
	{Name: "Maps", Icon: "map", Category: "Misc"},
}

// Tools returns the tool catalog.
func Tools() []models.Tool {
	out := make([]models.Tool, len(tools))
	copy(out, tools)
	return out
}

// Tool looks up a catalog tool by exact name.
func Tool(name string) (models.Tool, bool) {
	for _, t := range tools {
		if t.Name == name {
			return t, true
		}
	}
	return models.Tool{}, false
}

// ResolveTools intersects names with the catalog. The result keeps catalog
// order and drops unknown names.
func ResolveTools(names []string) []string {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	out := make([]string, 0, len(names))
	for _, t := range tools {
		if _, ok := want[t.Name]; ok {
			out = append(out, t.Name)
		}
	}
	return out
}

// DefaultTools returns the names of the first n catalog tools.
func DefaultTools(n int) []string {
	if n > len(tools) {
		n = len(tools)
	}
	if n < 0 {
		n = 0
	}
	out := make([]string, 0, n)
	for _, t := range tools[:n] {
		out = append(out, t.Name)
	}
	return out
}
