package domain

import "strings"

// Denylist is a set of brand names excluded from results. Matching is
// whole-word and case-insensitive: a candidate is blocked when any word of
// its display name equals an entry, substrings do not count.
type Denylist map[string]struct{}

// NewDenylist builds a denylist from raw entries, lowercasing each.
func NewDenylist(entries []string) Denylist {
	set := make(Denylist, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(strings.ToLower(e))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return set
}

// Blocked reports whether any whole word of name is on the list.
func (d Denylist) Blocked(name string) bool {
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if _, ok := d[word]; ok {
			return true
		}
	}
	return false
}

// DefaultDenylistEntries is the built-in set of chain brands filtered out
// of every answer.
func DefaultDenylistEntries() []string {
	return []string{
		"Lidl", "Aldi", "McDonald's", "Starbucks", "Subway", "KFC", "Burger King",
		"IKEA", "H&M", "Zara", "MediaMarkt", "Saturn", "DM", "Rossmann", "Edeka",
		"Rewe", "Netto", "Decathlon", "Kaufland", "Penny", "Norma", "Obi",
		"Bauhaus", "Toom",
	}
}
