package tui

import (
	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// SearchCompleted carries the outcome of an asynchronous search.
type SearchCompleted struct {
	Page *domain.ResultPage
	Err  error
}
