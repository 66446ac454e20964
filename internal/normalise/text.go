package normalise

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// whitespaceRun matches any run of Unicode whitespace, including
// separators such as the non-breaking space that ASCII-oriented
// patterns miss.
var whitespaceRun = regexp.MustCompile(`[\p{Z}\t\n\v\f\r]+`)

// FoldCase lowercases text using full Unicode case folding, so that
// non-Latin alphabets (Cyrillic, Greek, ...) compare correctly.
// A byte-wise ASCII fold is not sufficient here.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// CollapseWhitespace replaces every run of Unicode whitespace with a
// single ASCII space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// PlainText is the full normalisation pipeline for matching: resolve
// multi-language blocks for the locale, strip markup, collapse
// whitespace.
func PlainText(markup, locale string) string {
	return CollapseWhitespace(ToPlainText(ResolveLanguageVariants(markup, locale)))
}
