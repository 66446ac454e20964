package domain

// GroupedResult aggregates the matches of one section.
// Subsections nest exactly one level deep: a subsection's
// Subsections slice is always empty.
type GroupedResult struct {
	// SectionNumber is the section's ordinal number.
	SectionNumber int

	// SectionName is the section's display name.
	SectionName string

	// SectionMatched is true when the section's own name or summary
	// matched the query.
	SectionMatched bool

	// SectionURL links to the matched section. Set only when
	// SectionMatched is true.
	SectionURL string

	// SectionSnippet is the excerpt for the section's own match.
	// Set only when the section match was not a title match.
	SectionSnippet string

	// Results are the non-section matches belonging directly to
	// this section, in scan order.
	Results []MatchRecord

	// Subsections are the nested subsection groups, sorted by number.
	Subsections []GroupedResult
}

// HasContent reports whether the group carries anything worth emitting:
// direct results, a matched subsection, or its own section match.
func (g GroupedResult) HasContent() bool {
	if len(g.Results) > 0 || g.SectionMatched {
		return true
	}
	for _, sub := range g.Subsections {
		if sub.HasContent() {
			return true
		}
	}
	return false
}

// CountRecords returns the number of match records in the group,
// including subsection results and section header matches.
func (g GroupedResult) CountRecords() int {
	n := len(g.Results)
	if g.SectionMatched {
		n++
	}
	for _, sub := range g.Subsections {
		n += sub.CountRecords()
	}
	return n
}
