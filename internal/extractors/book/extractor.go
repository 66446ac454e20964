// Package book extracts matches from the chapters of book modules.
package book

import (
	"context"
	"errors"
	"net/url"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Extractor scans the chapters of a book module. Chapter titles and
// bodies are checked independently per chapter; a title hit
// short-circuits that chapter's body check.
type Extractor struct {
	rel driven.Matcher
}

var _ driven.ModuleExtractor = (*Extractor)(nil)

// New creates a book extractor.
func New(rel driven.Matcher) *Extractor {
	return &Extractor{rel: rel}
}

// ModuleType returns the module type tag.
func (e *Extractor) ModuleType() string {
	return "book"
}

// Extract checks every chapter of the book for query matches.
func (e *Extractor) Extract(ctx context.Context, src driven.CourseProvider, mod domain.ModuleRef, q domain.Query) ([]domain.MatchRecord, error) {
	chapters, err := src.BookChapters(ctx, mod)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnsupportedType) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.MatchRecord
	for _, ch := range chapters {
		if e.rel.TitleMatches(ch.Title, q) {
			records = append(records, e.chapterRecord(mod, ch, domain.MatchTitle, ""))
			continue
		}
		if ch.Content != "" && e.rel.ContentMatches(ch.Content, q) {
			records = append(records, e.chapterRecord(mod, ch, domain.MatchContent, e.rel.Snippet(ch.Content, q)))
		}
	}
	return records, nil
}

// chapterRecord builds a match record addressing one chapter.
func (e *Extractor) chapterRecord(mod domain.ModuleRef, ch domain.BookChapter, kind domain.MatchKind, snippet string) domain.MatchRecord {
	return domain.MatchRecord{
		UnitID:              ch.ID,
		UnitKind:            domain.UnitSubItem,
		Kind:                kind,
		Title:               ch.Title,
		ModuleType:          mod.Type,
		Icon:                mod.Icon,
		URL:                 chapterURL(mod.URL, ch.ID),
		Snippet:             snippet,
		SectionNumber:       mod.SectionNumber,
		SectionName:         mod.SectionName,
		ParentSectionNumber: mod.ParentSectionNumber,
		ParentSectionName:   mod.ParentSectionName,
	}
}

// chapterURL addresses a single chapter on the book view page.
func chapterURL(moduleURL, chapterID string) string {
	if moduleURL == "" || chapterID == "" {
		return moduleURL
	}

	u, err := url.Parse(moduleURL)
	if err != nil {
		return moduleURL
	}

	params := u.Query()
	params.Set("chapterid", chapterID)
	u.RawQuery = params.Encode()
	return u.String()
}
