package normalise

import (
	"errors"
	"io"
	"regexp"
	"strings"

	stdhtml "html"

	"golang.org/x/net/html"
)

// skipTags are elements whose entire content is discarded.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"svg":      true,
}

// blockTags are elements that act as whitespace separators, so that
// "<p>one</p><p>two</p>" never collapses into "onetwo".
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "dl": true, "dt": true, "dd": true,
	"table": true, "tr": true, "td": true, "th": true,
	"blockquote": true, "pre": true, "section": true, "article": true,
	"header": true, "footer": true, "form": true, "fieldset": true,
}

// Pre-compiled regular expressions for the fallback stripping pass.
var (
	scriptTag        = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag         = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag      = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag          = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag           = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments     = regexp.MustCompile(`(?s)<!--.*?-->`)
	namespacedTags   = regexp.MustCompile(`(?i)</?[a-z]+:[a-z0-9]+[^>]*>`)
	blockSeparators  = regexp.MustCompile(`(?i)</?(p|div|br|hr|h[1-6]|li|ul|ol|dl|dt|dd|tr|td|th|table|blockquote|pre|section|article|header|footer)[^>]*>`)
	allTags          = regexp.MustCompile(`<[^>]+>`)
	conditionalNoise = regexp.MustCompile(`(?is)<!--\[if[^\]]*\]>.*?<!\[endif\]-->`)
)

// ToPlainText strips markup from content while preserving semantic
// breaks as whitespace separators and decoding entities. Malformed
// markup never raises: when the structured parse fails or yields an
// empty result, a regex-based stripping pass takes over.
func ToPlainText(markup string) string {
	if markup == "" {
		return ""
	}

	text, err := structuredText(markup)
	if err != nil || strings.TrimSpace(text) == "" {
		text = regexStrip(markup)
	}

	return text
}

// structuredText walks the markup with a tokenizer, discarding
// script/style style containers and separating block elements.
func structuredText(markup string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(markup))

	var b strings.Builder
	skipDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return "", z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipTags[tag] && tt == html.StartTagToken {
				skipDepth++
				continue
			}
			if blockTags[tag] {
				b.WriteByte(' ')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipTags[tag] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if blockTags[tag] {
				b.WriteByte(' ')
			}

		case html.TextToken:
			if skipDepth == 0 {
				// Text() returns the token with entities decoded.
				b.Write(z.Text())
			}
		}
	}
}

// regexStrip is the tolerant fallback: vendor conditional comments,
// namespaced tags and non-content containers are removed before the
// remaining tags are stripped and entities decoded.
func regexStrip(markup string) string {
	s := conditionalNoise.ReplaceAllString(markup, "")
	s = htmlComments.ReplaceAllString(s, "")
	s = scriptTag.ReplaceAllString(s, "")
	s = styleTag.ReplaceAllString(s, "")
	s = noscriptTag.ReplaceAllString(s, "")
	s = headTag.ReplaceAllString(s, "")
	s = svgTag.ReplaceAllString(s, "")
	s = namespacedTags.ReplaceAllString(s, " ")
	s = blockSeparators.ReplaceAllString(s, " ")
	s = allTags.ReplaceAllString(s, "")
	return stdhtml.UnescapeString(s)
}
