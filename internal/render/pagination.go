package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

var currentPageStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

// PaginationBar renders the numbered page link bar for terminal
// output. Page numbers are shown 1-based; the current page is
// emphasised, collapsed ranges appear as an ellipsis.
func PaginationBar(p domain.Pagination) string {
	if p.TotalPages <= 1 {
		return ""
	}

	parts := make([]string, 0, len(p.Links)+2)
	if p.HasPrevious {
		parts = append(parts, "<")
	}

	for _, link := range p.Links {
		switch {
		case link.Ellipsis:
			parts = append(parts, "...")
		case link.Current:
			parts = append(parts, currentPageStyle.Render(strconv.Itoa(link.Number+1)))
		default:
			parts = append(parts, strconv.Itoa(link.Number+1))
		}
	}

	if p.HasNext {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}
