package normalise

import (
	"regexp"
	"strings"
)

// OtherLocale is the fallback locale code in multi-language markup.
const OtherLocale = "other"

var (
	langBlock  = regexp.MustCompile(`(?s)\{lang:([a-zA-Z0-9_-]+)\}(.*?)\{lang\}`)
	langMarker = regexp.MustCompile(`\{lang:[a-zA-Z0-9_-]+\}|\{lang\}`)
)

// ResolveLanguageVariants resolves inline {lang:xx}...{lang} blocks.
// Blocks matching the active locale are kept; when none match, blocks
// tagged with the "other" fallback locale are kept instead. All other
// language blocks are discarded and any unmatched markers stripped.
func ResolveLanguageVariants(markup, locale string) string {
	if !strings.Contains(markup, "{lang:") {
		return markup
	}

	active := strings.ToLower(strings.TrimSpace(locale))
	haveActive := false
	for _, m := range langBlock.FindAllStringSubmatch(markup, -1) {
		if strings.ToLower(m[1]) == active {
			haveActive = true
			break
		}
	}

	keep := active
	if !haveActive {
		keep = OtherLocale
	}

	out := langBlock.ReplaceAllStringFunc(markup, func(block string) string {
		m := langBlock.FindStringSubmatch(block)
		if strings.ToLower(m[1]) == keep {
			return m[2]
		}
		return ""
	})

	// Unbalanced markers left behind by malformed markup.
	return langMarker.ReplaceAllString(out, "")
}
