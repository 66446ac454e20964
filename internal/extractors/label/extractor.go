// Package label extracts matches from label modules.
package label

import (
	"context"
	"errors"
	"fmt"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Extractor scans the text of a label module. A label has no view page
// of its own; its intro field is the entire content, rendered inline
// on the course page, so matches link to the module's section anchor.
type Extractor struct {
	rel driven.Matcher
}

var _ driven.ModuleExtractor = (*Extractor)(nil)

// New creates a label extractor.
func New(rel driven.Matcher) *Extractor {
	return &Extractor{rel: rel}
}

// ModuleType returns the module type tag.
func (e *Extractor) ModuleType() string {
	return domain.ModuleTypeLabel
}

// Extract checks the label text for query matches. A label's intro
// field is its body, so a hit is reported as a content match, linking
// to the label's section on the course landing page.
func (e *Extractor) Extract(ctx context.Context, src driven.CourseProvider, mod domain.ModuleRef, q domain.Query) ([]domain.MatchRecord, error) {
	detail, err := src.ModuleDetail(ctx, mod)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnsupportedType) {
			return nil, nil
		}
		return nil, err
	}

	if detail.Intro == "" || !e.rel.ContentMatches(detail.Intro, q) {
		return nil, nil
	}

	url := mod.URL
	if course, err := src.Course(ctx, mod.CourseID); err == nil && course.URL != "" {
		url = fmt.Sprintf("%s#section-%d", course.URL, mod.SectionNumber)
	}

	return []domain.MatchRecord{{
		UnitID:              mod.ID,
		UnitKind:            domain.UnitModule,
		Kind:                domain.MatchContent,
		Title:               mod.Name,
		ModuleType:          mod.Type,
		Icon:                mod.Icon,
		URL:                 url,
		Snippet:             e.rel.Snippet(detail.Intro, q),
		SectionNumber:       mod.SectionNumber,
		SectionName:         mod.SectionName,
		ParentSectionNumber: mod.ParentSectionNumber,
		ParentSectionName:   mod.ParentSectionName,
	}}, nil
}
