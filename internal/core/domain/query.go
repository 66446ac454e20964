package domain

import "strings"

// MaxQueryLength is the maximum number of characters kept from a raw query.
// Longer queries are truncated rather than rejected.
const MaxQueryLength = 500

// Query is an immutable search request value.
type Query struct {
	// Text is the raw query text, trimmed and length-capped.
	Text string

	// Filter scopes which content sources are scanned and which
	// match kinds survive post-filtering.
	Filter Filter
}

// NewQuery builds a Query from raw user input.
// The text is trimmed and capped at MaxQueryLength characters;
// an unrecognised filter value is normalised to FilterAll.
func NewQuery(raw string, filter Filter) Query {
	text := strings.TrimSpace(raw)
	if runes := []rune(text); len(runes) > MaxQueryLength {
		text = string(runes[:MaxQueryLength])
	}

	if !filter.IsValid() {
		filter = FilterAll
	}

	return Query{
		Text:   text,
		Filter: filter,
	}
}

// IsEmpty returns true if the query has no searchable text.
// An empty query short-circuits to an empty result set.
func (q Query) IsEmpty() bool {
	return q.Text == ""
}

// SearchOptions configures result aggregation for one search call.
type SearchOptions struct {
	// Page is the 0-based page index. Negative values are clamped to 0.
	Page int

	// PerPage is the number of items per page. Values below 1 are clamped to 1.
	PerPage int

	// Grouped selects section-grouped pagination instead of a flat list.
	Grouped bool
}
