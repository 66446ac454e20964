package domain

import "fmt"

// ModuleTypeSection is the pseudo module type used for section matches.
const ModuleTypeSection = "section"

// ModuleTypeLabel is the label module type. A label's intro field is its
// body, so it is classified as content rather than as a description.
const ModuleTypeLabel = "label"

// UnitKind identifies the structural kind of a scannable content unit.
type UnitKind string

// Available unit kinds.
const (
	// UnitSection is a course section (name, summary).
	UnitSection UnitKind = "section"

	// UnitModule is a course module (activity or resource).
	UnitModule UnitKind = "module"

	// UnitSubItem is module sub-content such as a forum post,
	// book chapter, lesson page or wiki page.
	UnitSubItem UnitKind = "subitem"
)

// IsValid returns true if the unit kind is recognised.
func (k UnitKind) IsValid() bool {
	switch k {
	case UnitSection, UnitModule, UnitSubItem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k UnitKind) String() string {
	return string(k)
}

// Course identifies the course being searched.
type Course struct {
	// ID is the stable course identifier.
	ID string

	// Name is the course display name.
	Name string

	// URL is the course landing page. Title matches without their own
	// link target default to this URL.
	URL string
}

// Section is one course section as exposed by the content provider.
// A section may be nested one level below a parent section; deeper
// nesting never occurs.
type Section struct {
	// ID is the stable section identifier.
	ID string

	// Number is the section's ordinal position in the course.
	Number int

	// Name is the section title. May be empty for unnamed sections.
	Name string

	// Summary is the section description as HTML.
	Summary string

	// ParentNumber is the containing section's number when this is a
	// subsection, nil for top-level sections.
	ParentNumber *int

	// ParentName is the containing section's name when this is a subsection.
	ParentName string

	// URL links to the section on the course page.
	URL string
}

// IsSubsection returns true if the section is nested under a parent section.
func (s Section) IsSubsection() bool {
	return s.ParentNumber != nil
}

// DisplayName returns the section name, falling back to the bare
// section number for unnamed sections.
func (s Section) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Section %d", s.Number)
}

// ModuleRef is one visible course module as exposed by the content
// provider. Visibility and access filtering happen in the provider;
// the scanner treats every ModuleRef as searchable.
type ModuleRef struct {
	// ID is the course-module identifier.
	ID string

	// InstanceID is the type-specific instance identifier used by
	// sub-item fetchers.
	InstanceID string

	// CourseID is the owning course.
	CourseID string

	// Name is the module display name.
	Name string

	// Type is the module type tag ("page", "book", "forum", ...).
	Type string

	// Icon is a renderer hint for the module type icon.
	Icon string

	// URL is the module's resolved view URL.
	URL string

	// SectionNumber is the number of the section holding the module.
	SectionNumber int

	// SectionName is the name of the section holding the module.
	SectionName string

	// ParentSectionNumber is set when the module lives in a subsection;
	// it is the top-level parent section's number.
	ParentSectionNumber *int

	// ParentSectionName is the top-level parent section's name, when nested.
	ParentSectionName string
}

// ModuleDetail carries the description and body fields of one module
// instance, as far as the module type exposes them.
type ModuleDetail struct {
	// Intro is the module description/intro field as HTML.
	Intro string

	// Content is the module body field as HTML (page content,
	// label text, etc). Empty for types without a body.
	Content string
}

// BookChapter is one chapter of a book module.
type BookChapter struct {
	// ID is the chapter identifier, used as a URL anchor.
	ID string

	// Title is the chapter title.
	Title string

	// Content is the chapter body as HTML.
	Content string
}

// LessonPage is one page of a lesson module.
type LessonPage struct {
	// ID is the lesson page identifier.
	ID string

	// Title is the page title.
	Title string

	// Contents is the page body as HTML.
	Contents string
}

// ForumDiscussion is one discussion thread of a forum module.
type ForumDiscussion struct {
	// ID is the discussion identifier.
	ID string

	// Name is the discussion title.
	Name string

	// URL links to the discussion view.
	URL string
}

// ForumPost is one post within a forum discussion.
type ForumPost struct {
	// ID is the post identifier, used as a URL anchor.
	ID string

	// DiscussionID is the containing discussion.
	DiscussionID string

	// Subject is the post subject line.
	Subject string

	// Message is the post body as HTML.
	Message string

	// URL links to the post within its discussion.
	URL string
}

// WikiPage is one page of a wiki module, from any of its sub-wikis.
type WikiPage struct {
	// ID is the page identifier.
	ID string

	// SubwikiID is the owning sub-wiki.
	SubwikiID string

	// Title is the page title.
	Title string

	// CachedContent is the rendered page content as HTML.
	CachedContent string

	// URL links to the wiki page view.
	URL string
}
