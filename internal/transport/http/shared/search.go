package shared

import "strings"

// MatchesAny reports whether the query is a case-insensitive substring of
// any of the fields. An empty query matches everything, mirroring the list
// screens that filter as the user types.
func MatchesAny(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
