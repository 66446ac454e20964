package domain

// Filter scopes a search to a subset of content sources and match kinds.
type Filter string

// Available scope filters.
const (
	// FilterAll scans every source and keeps every match kind.
	FilterAll Filter = "all"

	// FilterTitle keeps only title matches.
	FilterTitle Filter = "title"

	// FilterContent keeps only content matches.
	FilterContent Filter = "content"

	// FilterDescription keeps only description-or-content matches.
	FilterDescription Filter = "description"

	// FilterSections keeps only section matches.
	FilterSections Filter = "sections"

	// FilterActivities keeps only matches from activity modules.
	FilterActivities Filter = "activities"

	// FilterResources keeps only matches from resource modules.
	FilterResources Filter = "resources"

	// FilterForums keeps only matches from forum modules.
	FilterForums Filter = "forums"
)

// activityTypes are the module types classified as activities.
var activityTypes = map[string]bool{
	"assign":   true,
	"quiz":     true,
	"choice":   true,
	"feedback": true,
	"lesson":   true,
	"workshop": true,
	"data":     true,
	"glossary": true,
	"wiki":     true,
	"forum":    true,
}

// resourceTypes are the module types classified as resources.
var resourceTypes = map[string]bool{
	"book":     true,
	"file":     true,
	"folder":   true,
	"imscp":    true,
	"label":    true,
	"page":     true,
	"resource": true,
	"url":      true,
}

// ParseFilter normalises a raw filter value.
// Unrecognised values fall back to FilterAll rather than being rejected.
func ParseFilter(raw string) Filter {
	f := Filter(raw)
	if !f.IsValid() {
		return FilterAll
	}
	return f
}

// IsValid returns true if the filter value is recognised.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterTitle, FilterContent, FilterDescription,
		FilterSections, FilterActivities, FilterResources, FilterForums:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Filter) String() string {
	return string(f)
}

// ScansSections returns true if section name/summary scanning applies.
func (f Filter) ScansSections() bool {
	switch f {
	case FilterAll, FilterTitle, FilterDescription, FilterSections:
		return true
	default:
		return false
	}
}

// ScansModules returns true if module scanning applies.
// Only a pure section search skips the module pass entirely.
func (f Filter) ScansModules() bool {
	return f != FilterSections
}

// ScansIndexTitles returns true if the supplementary course-index title
// pass applies. Content and description searches skip it.
func (f Filter) ScansIndexTitles() bool {
	return f != FilterContent && f != FilterDescription
}

// Retains reports whether a match record survives post-scan filtering.
func (f Filter) Retains(rec MatchRecord) bool {
	switch f {
	case FilterAll:
		return true
	case FilterTitle:
		return rec.Kind == MatchTitle
	case FilterContent:
		return rec.Kind == MatchContent
	case FilterDescription:
		return rec.Kind == MatchDescription
	case FilterSections:
		return rec.ModuleType == ModuleTypeSection
	case FilterActivities:
		return activityTypes[rec.ModuleType]
	case FilterResources:
		return resourceTypes[rec.ModuleType]
	case FilterForums:
		return rec.ModuleType == "forum"
	default:
		return true
	}
}

// AllFilters returns all recognised filter values.
func AllFilters() []Filter {
	return []Filter{
		FilterAll,
		FilterTitle,
		FilterContent,
		FilterDescription,
		FilterSections,
		FilterActivities,
		FilterResources,
		FilterForums,
	}
}
