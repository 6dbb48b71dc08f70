package passcheck

import "strings"

// substitution is one leet-speak replacement applied during normalization.
type substitution struct {
	from string
	to   string
}

// substitutions maps common leet-speak characters back to the letter they
// stand in for. Order matters: each replacement runs over the result of the
// previous one, so the table is a slice rather than a map.
var substitutions = []substitution{
	{"@", "a"},
	{"0", "o"},
	{"1", "l"},
	{"!", "i"},
	{"$", "s"},
	{"3", "e"},
	{"5", "s"},
	{"7", "t"},
}

// Normalize collapses a password to the canonical form used for dictionary
// comparisons: trimmed, lower-cased, with leet-speak substitutions undone.
// It is never used for character-class detection, which always looks at the
// raw password.
func Normalize(password string) string {
	s := strings.ToLower(strings.TrimSpace(password))
	for _, sub := range substitutions {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}
	return s
}
