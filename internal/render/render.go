// Package render converts snippets with highlight markers into
// terminal, HTML and plain text output.
package render

import (
	stdhtml "html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// matchClass is the CSS class wrapped around highlighted spans in
// HTML output.
const matchClass = "matchtext"

// highlightStyle renders matched spans in terminal output.
var highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// htmlPolicy sanitizes the generated HTML. Only the highlight span
// survives; everything else in snippet text is escaped upstream.
var htmlPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("class").OnElements("span")
	return p
}()

// Terminal renders marker-delimited highlights with a terminal style.
func Terminal(s string) string {
	return replaceMarkers(s, func(match string) string {
		return highlightStyle.Render(match)
	})
}

// HTML renders the snippet as sanitized HTML with highlighted spans.
// Snippet text is escaped; only the generated span markup survives.
func HTML(s string) string {
	var b strings.Builder
	walkSegments(s, func(segment string, highlighted bool) {
		if highlighted {
			b.WriteString(`<span class="` + matchClass + `">`)
			b.WriteString(stdhtml.EscapeString(segment))
			b.WriteString(`</span>`)
			return
		}
		b.WriteString(stdhtml.EscapeString(segment))
	})
	return htmlPolicy.Sanitize(b.String())
}

// Plain strips the highlight markers, leaving the bare snippet text.
func Plain(s string) string {
	return replaceMarkers(s, func(match string) string {
		return match
	})
}

// replaceMarkers rebuilds the string with every highlighted span
// passed through wrap.
func replaceMarkers(s string, wrap func(string) string) string {
	if !strings.Contains(s, domain.HighlightOpen) {
		return strings.ReplaceAll(s, domain.HighlightClose, "")
	}

	var b strings.Builder
	walkSegments(s, func(segment string, highlighted bool) {
		if highlighted {
			b.WriteString(wrap(segment))
			return
		}
		b.WriteString(segment)
	})
	return b.String()
}

// walkSegments splits the string on highlight markers and visits each
// segment in order. Unbalanced markers degrade to plain segments.
func walkSegments(s string, visit func(segment string, highlighted bool)) {
	for len(s) > 0 {
		open := strings.Index(s, domain.HighlightOpen)
		if open < 0 {
			visit(strings.ReplaceAll(s, domain.HighlightClose, ""), false)
			return
		}

		if open > 0 {
			visit(s[:open], false)
		}
		s = s[open+len(domain.HighlightOpen):]

		end := strings.Index(s, domain.HighlightClose)
		if end < 0 {
			visit(s, false)
			return
		}
		visit(s[:end], true)
		s = s[end+len(domain.HighlightClose):]
	}
}
