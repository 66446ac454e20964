package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CourseProvider = (*Store)(nil)

// Course returns the course identity and landing page URL.
func (s *Store) Course(ctx context.Context, courseID string) (domain.Course, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, url FROM courses WHERE id = ?
	`, courseID)

	var c domain.Course
	if err := row.Scan(&c.ID, &c.Name, &c.URL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Course{}, domain.ErrCourseNotFound
		}
		return domain.Course{}, fmt.Errorf("querying course: %w", err)
	}
	return c, nil
}

// Sections returns all sections of the course, ordered by number.
func (s *Store) Sections(ctx context.Context, courseID string) ([]domain.Section, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, name, summary, parent_number, parent_name, url
		FROM sections
		WHERE course_id = ?
		ORDER BY number
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var (
			section domain.Section
			parent  sql.NullInt64
		)
		if err := rows.Scan(&section.ID, &section.Number, &section.Name, &section.Summary, &parent, &section.ParentName, &section.URL); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		if parent.Valid {
			n := int(parent.Int64)
			section.ParentNumber = &n
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

// VisibleModules returns the visible course modules in course order.
func (s *Store) VisibleModules(ctx context.Context, courseID string) ([]domain.ModuleRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, instance_id, course_id, name, type, icon, url,
		       section_number, section_name, parent_section_number, parent_section_name
		FROM modules
		WHERE course_id = ? AND visible = 1
		ORDER BY section_number, rowid
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("querying modules: %w", err)
	}
	defer rows.Close()

	var modules []domain.ModuleRef
	for rows.Next() {
		var (
			mod    domain.ModuleRef
			parent sql.NullInt64
		)
		if err := rows.Scan(&mod.ID, &mod.InstanceID, &mod.CourseID, &mod.Name, &mod.Type, &mod.Icon, &mod.URL,
			&mod.SectionNumber, &mod.SectionName, &parent, &mod.ParentSectionName); err != nil {
			return nil, fmt.Errorf("scanning module: %w", err)
		}
		if parent.Valid {
			n := int(parent.Int64)
			mod.ParentSectionNumber = &n
		}
		modules = append(modules, mod)
	}
	return modules, rows.Err()
}

// ModuleDetail returns the intro/content fields of one module.
func (s *Store) ModuleDetail(ctx context.Context, mod domain.ModuleRef) (domain.ModuleDetail, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT intro, content FROM modules WHERE id = ?
	`, mod.ID)

	var detail domain.ModuleDetail
	if err := row.Scan(&detail.Intro, &detail.Content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ModuleDetail{}, domain.ErrNotFound
		}
		return domain.ModuleDetail{}, fmt.Errorf("querying module detail: %w", err)
	}
	return detail, nil
}

// BookChapters returns the chapters of a book module in book order.
func (s *Store) BookChapters(ctx context.Context, mod domain.ModuleRef) ([]domain.BookChapter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content FROM book_chapters
		WHERE module_id = ?
		ORDER BY position
	`, mod.ID)
	if err != nil {
		return nil, fmt.Errorf("querying book chapters: %w", err)
	}
	defer rows.Close()

	var chapters []domain.BookChapter
	for rows.Next() {
		var ch domain.BookChapter
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.Content); err != nil {
			return nil, fmt.Errorf("scanning book chapter: %w", err)
		}
		chapters = append(chapters, ch)
	}
	return chapters, rows.Err()
}

// LessonPages returns the pages of a lesson module in lesson order.
func (s *Store) LessonPages(ctx context.Context, mod domain.ModuleRef) ([]domain.LessonPage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, contents FROM lesson_pages
		WHERE module_id = ?
		ORDER BY position
	`, mod.ID)
	if err != nil {
		return nil, fmt.Errorf("querying lesson pages: %w", err)
	}
	defer rows.Close()

	var pages []domain.LessonPage
	for rows.Next() {
		var p domain.LessonPage
		if err := rows.Scan(&p.ID, &p.Title, &p.Contents); err != nil {
			return nil, fmt.Errorf("scanning lesson page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// ForumDiscussions returns the discussions of a forum module.
func (s *Store) ForumDiscussions(ctx context.Context, mod domain.ModuleRef) ([]domain.ForumDiscussion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, url FROM forum_discussions
		WHERE module_id = ?
		ORDER BY rowid
	`, mod.ID)
	if err != nil {
		return nil, fmt.Errorf("querying forum discussions: %w", err)
	}
	defer rows.Close()

	var discussions []domain.ForumDiscussion
	for rows.Next() {
		var d domain.ForumDiscussion
		if err := rows.Scan(&d.ID, &d.Name, &d.URL); err != nil {
			return nil, fmt.Errorf("scanning forum discussion: %w", err)
		}
		discussions = append(discussions, d)
	}
	return discussions, rows.Err()
}

// ForumPosts returns the posts of one forum discussion.
func (s *Store) ForumPosts(ctx context.Context, discussion domain.ForumDiscussion) ([]domain.ForumPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, discussion_id, subject, message, url FROM forum_posts
		WHERE discussion_id = ?
		ORDER BY rowid
	`, discussion.ID)
	if err != nil {
		return nil, fmt.Errorf("querying forum posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.ForumPost
	for rows.Next() {
		var p domain.ForumPost
		if err := rows.Scan(&p.ID, &p.DiscussionID, &p.Subject, &p.Message, &p.URL); err != nil {
			return nil, fmt.Errorf("scanning forum post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// WikiPages returns the pages of a wiki module across all sub-wikis.
func (s *Store) WikiPages(ctx context.Context, mod domain.ModuleRef) ([]domain.WikiPage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subwiki_id, title, cached_content, url FROM wiki_pages
		WHERE module_id = ?
		ORDER BY subwiki_id, rowid
	`, mod.ID)
	if err != nil {
		return nil, fmt.Errorf("querying wiki pages: %w", err)
	}
	defer rows.Close()

	var pages []domain.WikiPage
	for rows.Next() {
		var p domain.WikiPage
		if err := rows.Scan(&p.ID, &p.SubwikiID, &p.Title, &p.CachedContent, &p.URL); err != nil {
			return nil, fmt.Errorf("scanning wiki page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}
