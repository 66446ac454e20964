// Package wiki extracts matches from the pages of wiki modules.
package wiki

import (
	"context"
	"errors"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Extractor scans the pages of a wiki module across all of its
// sub-wikis. A page title hit short-circuits that page's content check.
type Extractor struct {
	rel driven.Matcher
}

var _ driven.ModuleExtractor = (*Extractor)(nil)

// New creates a wiki extractor.
func New(rel driven.Matcher) *Extractor {
	return &Extractor{rel: rel}
}

// ModuleType returns the module type tag.
func (e *Extractor) ModuleType() string {
	return "wiki"
}

// Extract checks every wiki page for query matches.
func (e *Extractor) Extract(ctx context.Context, src driven.CourseProvider, mod domain.ModuleRef, q domain.Query) ([]domain.MatchRecord, error) {
	pages, err := src.WikiPages(ctx, mod)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnsupportedType) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.MatchRecord
	for _, p := range pages {
		if e.rel.TitleMatches(p.Title, q) {
			records = append(records, e.pageRecord(mod, p, domain.MatchTitle, ""))
			continue
		}
		if p.CachedContent != "" && e.rel.ContentMatches(p.CachedContent, q) {
			records = append(records, e.pageRecord(mod, p, domain.MatchContent, e.rel.Snippet(p.CachedContent, q)))
		}
	}
	return records, nil
}

// pageRecord builds a match record addressing one wiki page.
func (e *Extractor) pageRecord(mod domain.ModuleRef, p domain.WikiPage, kind domain.MatchKind, snippet string) domain.MatchRecord {
	target := p.URL
	if target == "" {
		target = mod.URL
	}

	return domain.MatchRecord{
		UnitID:              p.ID,
		UnitKind:            domain.UnitSubItem,
		Kind:                kind,
		Title:               p.Title,
		ModuleType:          mod.Type,
		Icon:                mod.Icon,
		URL:                 target,
		Snippet:             snippet,
		SectionNumber:       mod.SectionNumber,
		SectionName:         mod.SectionName,
		ParentSectionNumber: mod.ParentSectionNumber,
		ParentSectionName:   mod.ParentSectionName,
	}
}
