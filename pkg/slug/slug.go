// Package slug derives identifiers from human-readable names.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Make lower-cases name, replaces each whitespace run with a hyphen and strips
// every character outside [a-z0-9-]. "Chess Club" becomes "chess-club".
func Make(name string) string {
	s := strings.ToLower(name)
	s = whitespaceRun.ReplaceAllString(s, "-")
	return disallowed.ReplaceAllString(s, "")
}

// Hyphenate lower-cases name and replaces whitespace runs with hyphens,
// keeping every other character. Used for channel display names.
func Hyphenate(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}
