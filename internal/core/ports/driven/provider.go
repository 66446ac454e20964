package driven

import (
	"context"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// CourseProvider yields the searchable content of a course.
//
// Providers are read-only from the core's perspective and are expected
// to have already filtered for visibility and access: every unit they
// return is scannable. Content is read fresh per search call; the core
// caches nothing between requests.
//
// Sub-item fetchers for module types a provider does not know should
// return domain.ErrUnsupportedType; the scanner treats that, and any
// missing record, as a silent skip.
type CourseProvider interface {
	// Course returns the course identity and landing page URL.
	Course(ctx context.Context, courseID string) (domain.Course, error)

	// Sections returns all sections of the course, subsections included.
	Sections(ctx context.Context, courseID string) ([]domain.Section, error)

	// VisibleModules returns the visible course modules with resolved
	// URLs, icons and section placement.
	VisibleModules(ctx context.Context, courseID string) ([]domain.ModuleRef, error)

	// ModuleDetail returns the intro/content fields of one module, as
	// far as its type exposes them.
	ModuleDetail(ctx context.Context, mod domain.ModuleRef) (domain.ModuleDetail, error)

	// BookChapters returns the chapters of a book module.
	BookChapters(ctx context.Context, mod domain.ModuleRef) ([]domain.BookChapter, error)

	// LessonPages returns the pages of a lesson module.
	LessonPages(ctx context.Context, mod domain.ModuleRef) ([]domain.LessonPage, error)

	// ForumDiscussions returns the discussions of a forum module.
	ForumDiscussions(ctx context.Context, mod domain.ModuleRef) ([]domain.ForumDiscussion, error)

	// ForumPosts returns the posts of one forum discussion.
	ForumPosts(ctx context.Context, discussion domain.ForumDiscussion) ([]domain.ForumPost, error)

	// WikiPages returns the pages of a wiki module across all sub-wikis.
	WikiPages(ctx context.Context, mod domain.ModuleRef) ([]domain.WikiPage, error)
}
