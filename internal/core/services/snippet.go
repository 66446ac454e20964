package services

import (
	"regexp"
	"strings"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
	"github.com/opencourse-labs/scour-cli/internal/normalise"
)

// Ellipsis marks truncated snippet edges.
const Ellipsis = "..."

// Snippeter produces bounded-length excerpts centred on the first
// query match, with highlight markers around every occurrence.
type Snippeter struct {
	locale         string
	targetLength   int
	highlight      bool
	maxOccurrences int
}

// NewSnippeter creates a snippet extractor for the given settings.
func NewSnippeter(settings domain.SearchSettings) *Snippeter {
	return &Snippeter{
		locale:         settings.Locale,
		targetLength:   domain.DefaultSnippetLength,
		highlight:      settings.EnableHighlight,
		maxOccurrences: settings.MaxOccurrencesPerUnit,
	}
}

// Extract renders a snippet of the content for the query.
//
// When the query is absent from the normalised text the first
// targetLength characters are returned, with a trailing ellipsis if
// anything was cut. Otherwise the excerpt is centred on the match:
// it starts at max(0, matchPos - targetLength/2), carries a leading
// ellipsis when that start is past the beginning, and always a
// trailing one.
func (s *Snippeter) Extract(markup string, q domain.Query) string {
	plain := normalise.PlainText(markup, s.locale)
	needle := normalise.CollapseWhitespace(q.Text)

	runes := []rune(plain)
	pos := Locate(plain, needle)
	if pos < 0 {
		if len(runes) <= s.targetLength {
			return plain
		}
		return string(runes[:s.targetLength]) + Ellipsis
	}

	start := pos - s.targetLength/2
	if start < 0 {
		start = 0
	}
	end := start + s.targetLength
	if end > len(runes) {
		end = len(runes)
	}

	excerpt := s.wrapOccurrences(string(runes[start:end]), needle)
	if start > 0 {
		excerpt = Ellipsis + excerpt
	}
	return excerpt + Ellipsis
}

// wrapOccurrences surrounds every case-insensitive occurrence of the
// query with the highlight markers. The query literal is escaped so it
// is never interpreted as a pattern.
func (s *Snippeter) wrapOccurrences(excerpt, needle string) string {
	if !s.highlight || needle == "" {
		return excerpt
	}

	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(needle))
	if err != nil {
		return excerpt
	}

	wrapped := 0
	return re.ReplaceAllStringFunc(excerpt, func(match string) string {
		if s.maxOccurrences > 0 && wrapped >= s.maxOccurrences {
			return match
		}
		wrapped++

		var b strings.Builder
		b.WriteString(domain.HighlightOpen)
		b.WriteString(match)
		b.WriteString(domain.HighlightClose)
		return b.String()
	})
}

// Relevance bundles the matcher and snippeter into the capability
// handed to module extractors.
type Relevance struct {
	matcher   *Matcher
	snippeter *Snippeter
}

// Ensure Relevance implements the interface.
var _ driven.Matcher = (*Relevance)(nil)

// NewRelevance creates the combined relevance capability.
func NewRelevance(settings domain.SearchSettings) *Relevance {
	return &Relevance{
		matcher:   NewMatcher(settings),
		snippeter: NewSnippeter(settings),
	}
}

// TitleMatches reports whether a title field is relevant to the query.
func (r *Relevance) TitleMatches(title string, q domain.Query) bool {
	return r.matcher.TitleMatches(title, q)
}

// ContentMatches reports whether a content field is relevant to the query.
func (r *Relevance) ContentMatches(markup string, q domain.Query) bool {
	return r.matcher.ContentMatches(markup, q)
}

// Snippet renders the highlighted excerpt for a matched content field.
func (r *Relevance) Snippet(markup string, q domain.Query) string {
	return r.snippeter.Extract(markup, q)
}
