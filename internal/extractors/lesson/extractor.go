// Package lesson extracts matches from the pages of lesson modules.
package lesson

import (
	"context"
	"errors"
	"net/url"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Extractor scans the pages of a lesson module. Only page bodies are
// checked; lesson page titles double as navigation labels and are not
// treated as searchable titles.
type Extractor struct {
	rel driven.Matcher
}

var _ driven.ModuleExtractor = (*Extractor)(nil)

// New creates a lesson extractor.
func New(rel driven.Matcher) *Extractor {
	return &Extractor{rel: rel}
}

// ModuleType returns the module type tag.
func (e *Extractor) ModuleType() string {
	return "lesson"
}

// Extract checks every lesson page body for query matches.
func (e *Extractor) Extract(ctx context.Context, src driven.CourseProvider, mod domain.ModuleRef, q domain.Query) ([]domain.MatchRecord, error) {
	pages, err := src.LessonPages(ctx, mod)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnsupportedType) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.MatchRecord
	for _, p := range pages {
		if p.Contents == "" || !e.rel.ContentMatches(p.Contents, q) {
			continue
		}

		records = append(records, domain.MatchRecord{
			UnitID:              p.ID,
			UnitKind:            domain.UnitSubItem,
			Kind:                domain.MatchContent,
			Title:               p.Title,
			ModuleType:          mod.Type,
			Icon:                mod.Icon,
			URL:                 pageURL(mod.URL, p.ID),
			Snippet:             e.rel.Snippet(p.Contents, q),
			SectionNumber:       mod.SectionNumber,
			SectionName:         mod.SectionName,
			ParentSectionNumber: mod.ParentSectionNumber,
			ParentSectionName:   mod.ParentSectionName,
		})
	}
	return records, nil
}

// pageURL addresses a single page within the lesson view.
func pageURL(moduleURL, pageID string) string {
	if moduleURL == "" || pageID == "" {
		return moduleURL
	}

	u, err := url.Parse(moduleURL)
	if err != nil {
		return moduleURL
	}

	params := u.Query()
	params.Set("pageid", pageID)
	u.RawQuery = params.Encode()
	return u.String()
}
