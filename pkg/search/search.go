package search

import "strings"

// Filter returns the elements of items whose searchable fields contain the
// query as a case-insensitive substring. An empty query returns items
// unchanged. Filtering always happens in the gateway; list queries are never
// forwarded upstream.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
