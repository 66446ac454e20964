// Package memory provides in-memory implementations of driven port
// interfaces. Useful for tests and demo fixtures.
package memory

import (
	"context"
	"sync"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.CourseProvider = (*Provider)(nil)

// Provider is an in-memory implementation of driven.CourseProvider.
type Provider struct {
	mu          sync.RWMutex
	courses     map[string]domain.Course
	sections    map[string][]domain.Section
	modules     map[string][]domain.ModuleRef
	details     map[string]domain.ModuleDetail
	chapters    map[string][]domain.BookChapter
	lessonPages map[string][]domain.LessonPage
	discussions map[string][]domain.ForumDiscussion
	posts       map[string][]domain.ForumPost
	wikiPages   map[string][]domain.WikiPage
}

// NewProvider creates an empty in-memory course provider.
func NewProvider() *Provider {
	return &Provider{
		courses:     make(map[string]domain.Course),
		sections:    make(map[string][]domain.Section),
		modules:     make(map[string][]domain.ModuleRef),
		details:     make(map[string]domain.ModuleDetail),
		chapters:    make(map[string][]domain.BookChapter),
		lessonPages: make(map[string][]domain.LessonPage),
		discussions: make(map[string][]domain.ForumDiscussion),
		posts:       make(map[string][]domain.ForumPost),
		wikiPages:   make(map[string][]domain.WikiPage),
	}
}

// AddCourse registers a course.
func (p *Provider) AddCourse(course domain.Course) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.courses[course.ID] = course
}

// AddSection appends a section to a course.
func (p *Provider) AddSection(courseID string, section domain.Section) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sections[courseID] = append(p.sections[courseID], section)
}

// AddModule appends a module to a course, with its detail fields.
func (p *Provider) AddModule(courseID string, mod domain.ModuleRef, detail domain.ModuleDetail) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modules[courseID] = append(p.modules[courseID], mod)
	p.details[mod.ID] = detail
}

// AddBookChapter appends a chapter to a book module.
func (p *Provider) AddBookChapter(moduleID string, ch domain.BookChapter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chapters[moduleID] = append(p.chapters[moduleID], ch)
}

// AddLessonPage appends a page to a lesson module.
func (p *Provider) AddLessonPage(moduleID string, page domain.LessonPage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lessonPages[moduleID] = append(p.lessonPages[moduleID], page)
}

// AddDiscussion appends a discussion to a forum module.
func (p *Provider) AddDiscussion(moduleID string, d domain.ForumDiscussion) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.discussions[moduleID] = append(p.discussions[moduleID], d)
}

// AddPost appends a post to a forum discussion.
func (p *Provider) AddPost(discussionID string, post domain.ForumPost) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.posts[discussionID] = append(p.posts[discussionID], post)
}

// AddWikiPage appends a page to a wiki module.
func (p *Provider) AddWikiPage(moduleID string, page domain.WikiPage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wikiPages[moduleID] = append(p.wikiPages[moduleID], page)
}

// Course returns the course identity.
func (p *Provider) Course(_ context.Context, courseID string) (domain.Course, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	course, ok := p.courses[courseID]
	if !ok {
		return domain.Course{}, domain.ErrCourseNotFound
	}
	return course, nil
}

// Sections returns the sections of a course.
func (p *Provider) Sections(_ context.Context, courseID string) ([]domain.Section, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sections[courseID], nil
}

// VisibleModules returns the modules of a course.
func (p *Provider) VisibleModules(_ context.Context, courseID string) ([]domain.ModuleRef, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modules[courseID], nil
}

// ModuleDetail returns the detail fields of one module.
func (p *Provider) ModuleDetail(_ context.Context, mod domain.ModuleRef) (domain.ModuleDetail, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	detail, ok := p.details[mod.ID]
	if !ok {
		return domain.ModuleDetail{}, domain.ErrNotFound
	}
	return detail, nil
}

// BookChapters returns the chapters of a book module.
func (p *Provider) BookChapters(_ context.Context, mod domain.ModuleRef) ([]domain.BookChapter, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.chapters[mod.ID], nil
}

// LessonPages returns the pages of a lesson module.
func (p *Provider) LessonPages(_ context.Context, mod domain.ModuleRef) ([]domain.LessonPage, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lessonPages[mod.ID], nil
}

// ForumDiscussions returns the discussions of a forum module.
func (p *Provider) ForumDiscussions(_ context.Context, mod domain.ModuleRef) ([]domain.ForumDiscussion, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.discussions[mod.ID], nil
}

// ForumPosts returns the posts of one discussion.
func (p *Provider) ForumPosts(_ context.Context, discussion domain.ForumDiscussion) ([]domain.ForumPost, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.posts[discussion.ID], nil
}

// WikiPages returns the pages of a wiki module.
func (p *Provider) WikiPages(_ context.Context, mod domain.ModuleRef) ([]domain.WikiPage, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.wikiPages[mod.ID], nil
}
