package filter

import (
	"strings"

	"github.com/roach88/days/internal/event"
)

// ParseCategorySet splits a comma-joined argument into trimmed,
// NFC-normalized category names. Commas cannot be escaped.
//
// An empty token is kept as "" (no category), so "work," selects work
// events and uncategorized ones.
func ParseCategorySet(arg string) []string {
	tokens := strings.Split(arg, event.Delimiter)
	set := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		name := event.Normalize(strings.TrimSpace(tok))
		if seen[name] {
			continue
		}
		seen[name] = true
		set = append(set, name)
	}
	return set
}
