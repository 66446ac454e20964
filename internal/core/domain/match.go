package domain

// Highlight markers embedded in snippets around matched spans.
// Renderers translate them into styled output (a terminal style,
// a <span class="matchtext"> element, or nothing for plain text).
// The control characters never occur in normalised content.
const (
	HighlightOpen  = "\x02"
	HighlightClose = "\x03"
)

// HighlightParam is the URL query parameter carrying the highlight
// target to the linked page. Deduplication strips it.
const HighlightParam = "highlight"

// MatchKind classifies which field of a content unit matched.
type MatchKind string

// Available match kinds.
const (
	// MatchTitle is a match against a name/title field.
	MatchTitle MatchKind = "title"

	// MatchContent is a match against a body/content field.
	MatchContent MatchKind = "content"

	// MatchDescription is a match against a description or summary
	// field, where the two are not distinguished.
	MatchDescription MatchKind = "description_or_content"
)

// IsValid returns true if the match kind is recognised.
func (k MatchKind) IsValid() bool {
	switch k {
	case MatchTitle, MatchContent, MatchDescription:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k MatchKind) String() string {
	return string(k)
}

// Priority orders match kinds for deduplication.
// Higher values win when two records share a canonical URL key.
func (k MatchKind) Priority() int {
	switch k {
	case MatchContent:
		return 3
	case MatchDescription:
		return 2
	case MatchTitle:
		return 1
	default:
		return 0
	}
}

// Label returns the human-readable display label for the match kind.
// Business logic must branch on the kind value, never on this label.
func (k MatchKind) Label() string {
	switch k {
	case MatchTitle:
		return "Title"
	case MatchContent:
		return "Content"
	case MatchDescription:
		return "Description or content"
	default:
		return "Unknown"
	}
}

// MatchRecord is one field-level match produced by the scanner.
// Records are transient: the aggregator consumes them immediately
// and nothing is persisted.
type MatchRecord struct {
	// UnitID identifies the matched content unit.
	UnitID string

	// UnitKind is the structural kind of the matched unit.
	UnitKind UnitKind

	// Kind classifies which field matched.
	Kind MatchKind

	// Title is the display name shown for the result.
	Title string

	// ModuleType is the module type tag, or ModuleTypeSection for
	// section matches. Drives icon display and filter buckets.
	ModuleType string

	// Icon is a renderer hint for the result icon.
	Icon string

	// URL is the navigable link target. May be empty; empty title
	// match URLs are defaulted to the course landing page.
	URL string

	// Snippet is the extracted excerpt with highlight markers.
	// Empty for bare title matches.
	Snippet string

	// SectionNumber is the number of the section the unit belongs to.
	SectionNumber int

	// SectionName is the name of the section the unit belongs to.
	SectionName string

	// ParentSectionNumber is the top-level parent section number when
	// the unit sits in a subsection, nil otherwise.
	ParentSectionNumber *int

	// ParentSectionName is the top-level parent section name, when nested.
	ParentSectionName string

	// ForumName is the containing forum's name for forum sub-item
	// matches. Display-only.
	ForumName string
}

// IsSection returns true for records describing a section-level match.
// Section records annotate group headers and never appear as list items.
func (r MatchRecord) IsSection() bool {
	return r.ModuleType == ModuleTypeSection
}

// GroupNumber returns the top-level section number the record groups
// under: the parent section for subsection records, the record's own
// section otherwise.
func (r MatchRecord) GroupNumber() int {
	if r.ParentSectionNumber != nil {
		return *r.ParentSectionNumber
	}
	return r.SectionNumber
}

// GroupName returns the display name of the top-level grouping section.
func (r MatchRecord) GroupName() string {
	if r.ParentSectionNumber != nil {
		return r.ParentSectionName
	}
	return r.SectionName
}
