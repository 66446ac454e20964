package services

import (
	"strings"
	"unicode/utf8"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/normalise"
)

// Relevance refinement thresholds.
const (
	// shortQueryLimit is the query length (in characters) at and below
	// which a match must stay within one whitespace-delimited token.
	shortQueryLimit = 3

	// longContentThreshold is the plain content length (in characters)
	// above which the occurrence density rule applies.
	longContentThreshold = 500

	// densityDivisor sets the required occurrences for long content:
	// occurrences >= max(1, contentLength/densityDivisor).
	densityDivisor = 1000
)

// Locate returns the rune position in haystack of the first
// case-insensitive occurrence of needle, or -1 when absent. Both
// operands are Unicode case folded, so matches work across alphabets;
// a byte-oriented search would miss Cyrillic and friends. The position
// refers to the original haystack: folds that change length (ß to ss,
// ligatures) are mapped back to the rune they expanded from.
func Locate(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	fn := normalise.FoldCase(needle)

	// Fold rune by rune, recording where each original rune lands in
	// the folded text. Case folding is context-free, so the per-rune
	// fold concatenates to the whole-string fold.
	var fh strings.Builder
	offsets := make([]int, 0, utf8.RuneCountInString(haystack))
	for _, r := range haystack {
		offsets = append(offsets, fh.Len())
		fh.WriteString(normalise.FoldCase(string(r)))
	}

	idx := strings.Index(fh.String(), fn)
	if idx < 0 {
		return -1
	}
	for i, off := range offsets {
		if off > idx {
			return i - 1
		}
	}
	return len(offsets) - 1
}

// Matcher decides whether normalised text is relevant to a query.
// It implements the refinement heuristics on top of plain substring
// location: the short-query token rule and the long-content
// occurrence density threshold.
type Matcher struct {
	locale         string
	maxOccurrences int
}

// NewMatcher creates a matcher for the given settings.
func NewMatcher(settings domain.SearchSettings) *Matcher {
	return &Matcher{
		locale:         settings.Locale,
		maxOccurrences: settings.MaxOccurrencesPerUnit,
	}
}

// CountOccurrences counts case-insensitive occurrences of needle in
// haystack, capped at the configured per-unit maximum when one is set.
// The cap bounds highlight work only; relevance decisions use the
// uncapped count.
func (m *Matcher) CountOccurrences(haystack, needle string) int {
	n := countOccurrences(haystack, needle)
	if m.maxOccurrences > 0 && n > m.maxOccurrences {
		n = m.maxOccurrences
	}
	return n
}

// countOccurrences is the uncapped case-insensitive occurrence count.
func countOccurrences(haystack, needle string) int {
	fn := normalise.FoldCase(needle)
	if fn == "" {
		return 0
	}
	return strings.Count(normalise.FoldCase(haystack), fn)
}

// ContentMatches reports whether an HTML content field is relevant to
// the query. Multi-language blocks are resolved for the active locale
// and markup stripped before matching.
//
// A case-sensitive exact phrase hit is relevant immediately. Otherwise
// a case-insensitive hit continues to refinement: queries of up to
// three characters must match within a single whitespace-delimited
// token, and content longer than 500 characters must reach the
// occurrence density floor, suppressing single incidental matches in
// very long documents.
func (m *Matcher) ContentMatches(markup string, q domain.Query) bool {
	plain := normalise.PlainText(markup, m.locale)
	needle := normalise.CollapseWhitespace(q.Text)
	if plain == "" || needle == "" {
		return false
	}

	if strings.Contains(plain, needle) {
		return true
	}

	if Locate(plain, needle) < 0 {
		return false
	}

	if utf8.RuneCountInString(needle) <= shortQueryLimit && !tokenContains(plain, needle) {
		return false
	}

	contentLen := utf8.RuneCountInString(plain)
	if contentLen > longContentThreshold {
		required := contentLen / densityDivisor
		if required < 1 {
			required = 1
		}
		if countOccurrences(plain, needle) < required {
			return false
		}
	}

	return true
}

// TitleMatches reports whether a title field is relevant to the query.
// Titles run through the same pipeline; markup in names is rare but legal.
func (m *Matcher) TitleMatches(title string, q domain.Query) bool {
	return m.ContentMatches(title, q)
}

// PlainContains is the looser check used by the supplementary course
// index pass: a bare case-insensitive substring hit with none of the
// refinement rules.
func (m *Matcher) PlainContains(text string, q domain.Query) bool {
	return Locate(normalise.CollapseWhitespace(text), normalise.CollapseWhitespace(q.Text)) >= 0
}

// tokenContains reports whether any whitespace-delimited token of the
// folded haystack contains the folded needle. Prevents short queries
// from leaking across token boundaries.
func tokenContains(haystack, needle string) bool {
	fn := normalise.FoldCase(needle)
	for _, token := range strings.Fields(normalise.FoldCase(haystack)) {
		if strings.Contains(token, fn) {
			return true
		}
	}
	return false
}
