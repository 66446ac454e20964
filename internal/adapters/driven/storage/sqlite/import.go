package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/logger"
)

// CourseArchive is the JSON format of an exported course snapshot.
type CourseArchive struct {
	Course   ArchiveCourse    `json:"course"`
	Sections []ArchiveSection `json:"sections"`
	Modules  []ArchiveModule  `json:"modules"`
}

// ArchiveCourse identifies the archived course.
type ArchiveCourse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ArchiveSection is one course section in the archive.
type ArchiveSection struct {
	ID           string `json:"id"`
	Number       int    `json:"number"`
	Name         string `json:"name"`
	Summary      string `json:"summary"`
	ParentNumber *int   `json:"parent_number,omitempty"`
	ParentName   string `json:"parent_name,omitempty"`
	URL          string `json:"url"`
}

// ArchiveModule is one course module in the archive, with its
// type-specific sub-items inlined.
type ArchiveModule struct {
	ID                  string              `json:"id"`
	InstanceID          string              `json:"instance_id"`
	Name                string              `json:"name"`
	Type                string              `json:"type"`
	Icon                string              `json:"icon"`
	URL                 string              `json:"url"`
	SectionNumber       int                 `json:"section_number"`
	SectionName         string              `json:"section_name"`
	ParentSectionNumber *int                `json:"parent_section_number,omitempty"`
	ParentSectionName   string              `json:"parent_section_name,omitempty"`
	Intro               string              `json:"intro"`
	Content             string              `json:"content"`
	Visible             *bool               `json:"visible,omitempty"`
	Chapters            []ArchiveChapter    `json:"chapters,omitempty"`
	Pages               []ArchivePage       `json:"pages,omitempty"`
	Discussions         []ArchiveDiscussion `json:"discussions,omitempty"`
	WikiPages           []ArchiveWikiPage   `json:"wiki_pages,omitempty"`
}

// ArchiveChapter is one book chapter in the archive.
type ArchiveChapter struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ArchivePage is one lesson page in the archive.
type ArchivePage struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

// ArchiveDiscussion is one forum discussion in the archive.
type ArchiveDiscussion struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	URL   string        `json:"url"`
	Posts []ArchivePost `json:"posts,omitempty"`
}

// ArchivePost is one forum post in the archive.
type ArchivePost struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ArchiveWikiPage is one wiki page in the archive.
type ArchiveWikiPage struct {
	ID            string `json:"id"`
	SubwikiID     string `json:"subwiki_id"`
	Title         string `json:"title"`
	CachedContent string `json:"cached_content"`
	URL           string `json:"url"`
}

// ReadArchive decodes a course archive from JSON.
func ReadArchive(r io.Reader) (*CourseArchive, error) {
	var archive CourseArchive
	if err := json.NewDecoder(r).Decode(&archive); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}
	if archive.Course.Name == "" {
		return nil, fmt.Errorf("%w: archive has no course name", domain.ErrInvalidInput)
	}
	return &archive, nil
}

// Import writes a course archive into the snapshot, replacing any
// previous import of the same course. Records missing an identifier
// get a generated one. The whole import is one transaction.
func (s *Store) Import(ctx context.Context, archive *CourseArchive) (string, error) {
	courseID := orGenerated(archive.Course.ID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	// Replace any previous snapshot of this course. Child rows go
	// with it via foreign key cascades.
	if _, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, courseID); err != nil {
		return "", fmt.Errorf("clearing previous import: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO courses (id, name, url) VALUES (?, ?, ?)
	`, courseID, archive.Course.Name, archive.Course.URL); err != nil {
		return "", fmt.Errorf("importing course: %w", err)
	}

	for _, section := range archive.Sections {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sections (id, course_id, number, name, summary, parent_number, parent_name, url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, orGenerated(section.ID), courseID, section.Number, section.Name, section.Summary,
			nullableInt(section.ParentNumber), section.ParentName, section.URL); err != nil {
			return "", fmt.Errorf("importing section %d: %w", section.Number, err)
		}
	}

	for _, mod := range archive.Modules {
		moduleID := orGenerated(mod.ID)
		visible := mod.Visible == nil || *mod.Visible

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO modules (id, instance_id, course_id, name, type, icon, url,
			                     section_number, section_name, parent_section_number, parent_section_name,
			                     intro, content, visible)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, moduleID, mod.InstanceID, courseID, mod.Name, mod.Type, mod.Icon, mod.URL,
			mod.SectionNumber, mod.SectionName, nullableInt(mod.ParentSectionNumber), mod.ParentSectionName,
			mod.Intro, mod.Content, visible); err != nil {
			return "", fmt.Errorf("importing module %q: %w", mod.Name, err)
		}

		if err := importSubItems(ctx, tx, moduleID, mod); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing import: %w", err)
	}

	logger.Info("Imported course %q as %s (%d sections, %d modules)",
		archive.Course.Name, courseID, len(archive.Sections), len(archive.Modules))
	return courseID, nil
}

// importSubItems writes the type-specific children of one module.
func importSubItems(ctx context.Context, tx *sql.Tx, moduleID string, mod ArchiveModule) error {
	for i, ch := range mod.Chapters {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO book_chapters (id, module_id, position, title, content)
			VALUES (?, ?, ?, ?, ?)
		`, orGenerated(ch.ID), moduleID, i, ch.Title, ch.Content); err != nil {
			return fmt.Errorf("importing chapter %q: %w", ch.Title, err)
		}
	}

	for i, p := range mod.Pages {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO lesson_pages (id, module_id, position, title, contents)
			VALUES (?, ?, ?, ?, ?)
		`, orGenerated(p.ID), moduleID, i, p.Title, p.Contents); err != nil {
			return fmt.Errorf("importing lesson page %q: %w", p.Title, err)
		}
	}

	for _, d := range mod.Discussions {
		discussionID := orGenerated(d.ID)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO forum_discussions (id, module_id, name, url)
			VALUES (?, ?, ?, ?)
		`, discussionID, moduleID, d.Name, d.URL); err != nil {
			return fmt.Errorf("importing discussion %q: %w", d.Name, err)
		}

		for _, post := range d.Posts {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO forum_posts (id, discussion_id, subject, message, url)
				VALUES (?, ?, ?, ?, ?)
			`, orGenerated(post.ID), discussionID, post.Subject, post.Message, post.URL); err != nil {
				return fmt.Errorf("importing post %q: %w", post.Subject, err)
			}
		}
	}

	for _, p := range mod.WikiPages {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO wiki_pages (id, module_id, subwiki_id, title, cached_content, url)
			VALUES (?, ?, ?, ?, ?, ?)
		`, orGenerated(p.ID), moduleID, p.SubwikiID, p.Title, p.CachedContent, p.URL); err != nil {
			return fmt.Errorf("importing wiki page %q: %w", p.Title, err)
		}
	}

	return nil
}

// orGenerated returns the given identifier, or a fresh UUID when empty.
func orGenerated(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// nullableInt converts an optional int to a driver-friendly value.
func nullableInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
