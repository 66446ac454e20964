// Package forum extracts matches from forum discussions and posts.
package forum

import (
	"context"
	"errors"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// Extractor scans the discussions of a forum module and the posts
// within each discussion. Discussion names and post subjects count as
// titles; post messages as content. A subject hit suppresses that
// post's message check.
type Extractor struct {
	rel driven.Matcher
}

var _ driven.ModuleExtractor = (*Extractor)(nil)

// New creates a forum extractor.
func New(rel driven.Matcher) *Extractor {
	return &Extractor{rel: rel}
}

// ModuleType returns the module type tag.
func (e *Extractor) ModuleType() string {
	return "forum"
}

// Extract checks every discussion and post of the forum for matches.
// A discussion whose posts cannot be fetched still contributes its
// name match; the remaining discussions are unaffected.
func (e *Extractor) Extract(ctx context.Context, src driven.CourseProvider, mod domain.ModuleRef, q domain.Query) ([]domain.MatchRecord, error) {
	discussions, err := src.ForumDiscussions(ctx, mod)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnsupportedType) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.MatchRecord
	for _, d := range discussions {
		if e.rel.TitleMatches(d.Name, q) {
			records = append(records, e.record(mod, d.ID, domain.MatchTitle, d.Name, d.URL, ""))
		}

		posts, err := src.ForumPosts(ctx, d)
		if err != nil {
			continue
		}

		for _, p := range posts {
			target := p.URL
			if target == "" {
				target = d.URL + "#p" + p.ID
			}

			if e.rel.TitleMatches(p.Subject, q) {
				records = append(records, e.record(mod, p.ID, domain.MatchTitle, p.Subject, target, ""))
				continue
			}
			if p.Message != "" && e.rel.ContentMatches(p.Message, q) {
				records = append(records, e.record(mod, p.ID, domain.MatchContent, p.Subject, target, e.rel.Snippet(p.Message, q)))
			}
		}
	}
	return records, nil
}

// record builds a match record for a forum sub-item.
func (e *Extractor) record(mod domain.ModuleRef, unitID string, kind domain.MatchKind, title, target, snippet string) domain.MatchRecord {
	return domain.MatchRecord{
		UnitID:              unitID,
		UnitKind:            domain.UnitSubItem,
		Kind:                kind,
		Title:               title,
		ModuleType:          mod.Type,
		Icon:                mod.Icon,
		URL:                 target,
		Snippet:             snippet,
		ForumName:           mod.Name,
		SectionNumber:       mod.SectionNumber,
		SectionName:         mod.SectionName,
		ParentSectionNumber: mod.ParentSectionNumber,
		ParentSectionName:   mod.ParentSectionName,
	}
}
