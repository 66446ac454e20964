// Package page extracts matches from the body of page modules.
package page

import (
	"context"
	"errors"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Extractor scans the content body of a page module. The module name
// and intro are already covered by the generic module scan; only the
// body is checked here.
type Extractor struct {
	rel driven.Matcher
}

// Ensure Extractor implements the interface.
var _ driven.ModuleExtractor = (*Extractor)(nil)

// New creates a page extractor.
func New(rel driven.Matcher) *Extractor {
	return &Extractor{rel: rel}
}

// ModuleType returns the module type tag.
func (e *Extractor) ModuleType() string {
	return "page"
}

// Extract checks the page body for query matches.
func (e *Extractor) Extract(ctx context.Context, src driven.CourseProvider, mod domain.ModuleRef, q domain.Query) ([]domain.MatchRecord, error) {
	detail, err := src.ModuleDetail(ctx, mod)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnsupportedType) {
			return nil, nil
		}
		return nil, err
	}

	if detail.Content == "" || !e.rel.ContentMatches(detail.Content, q) {
		return nil, nil
	}

	return []domain.MatchRecord{{
		UnitID:              mod.ID,
		UnitKind:            domain.UnitModule,
		Kind:                domain.MatchContent,
		Title:               mod.Name,
		ModuleType:          mod.Type,
		Icon:                mod.Icon,
		URL:                 mod.URL,
		Snippet:             e.rel.Snippet(detail.Content, q),
		SectionNumber:       mod.SectionNumber,
		SectionName:         mod.SectionName,
		ParentSectionNumber: mod.ParentSectionNumber,
		ParentSectionName:   mod.ParentSectionName,
	}}, nil
}
