package driven

import (
	"context"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// Matcher is the relevance and snippet capability handed to module
// extractors. The core's matching service implements it; extractors
// never reimplement relevance rules.
type Matcher interface {
	// TitleMatches reports whether a plain title field is relevant
	// to the query.
	TitleMatches(title string, q domain.Query) bool

	// ContentMatches reports whether an HTML content field is
	// relevant to the query, applying the refinement heuristics
	// (short-query token rule, long-content density threshold).
	ContentMatches(markup string, q domain.Query) bool

	// Snippet renders a bounded excerpt of the content centred on the
	// first match, with highlight markers around every occurrence.
	Snippet(markup string, q domain.Query) string
}

// ModuleExtractor scans the type-specific sub-content of one module
// and emits raw match records. One variant exists per supported module
// type; unknown types resolve to a no-op extractor.
//
// Extractors must not fail the search: a missing or stale sub-record
// is skipped, and an extractor returning an error only causes its own
// module to be skipped.
type ModuleExtractor interface {
	// ModuleType returns the module type tag this extractor serves.
	ModuleType() string

	// Extract scans the module's sub-content for query matches.
	Extract(ctx context.Context, src CourseProvider, mod domain.ModuleRef, q domain.Query) ([]domain.MatchRecord, error)
}
