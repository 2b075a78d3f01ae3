package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type entrySource []Entry

func (s entrySource) String(i int) string { return strings.ToLower(s[i].Display()) }
func (s entrySource) Len() int            { return len(s) }

// Rank orders entries by fuzzy match quality against query and drops the
// ones that do not match. An empty query keeps every entry in order.
func Rank(entries []Entry, query string) []Entry {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(entries) == 0 {
		return entries
	}
	matches := fuzzy.FindFrom(query, entrySource(entries))
	ranked := make([]Entry, 0, len(matches))
	for _, match := range matches {
		if match.Index >= 0 && match.Index < len(entries) {
			ranked = append(ranked, entries[match.Index])
		}
	}
	return ranked
}
