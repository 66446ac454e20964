package driving

import (
	"context"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// CourseSearchService provides course content search to external actors.
type CourseSearchService interface {
	// Search scans a course for the query and returns one aggregated,
	// deduplicated, grouped and paginated result page.
	Search(ctx context.Context, courseID string, q domain.Query, opts domain.SearchOptions) (*domain.ResultPage, error)
}

// SettingsService manages search behaviour settings.
type SettingsService interface {
	// Get returns the effective search settings.
	Get() domain.SearchSettings

	// SetResultsPerPage updates the page size.
	SetResultsPerPage(n int) error

	// SetHighlight toggles snippet highlighting.
	SetHighlight(enabled bool) error

	// SetLocale updates the active locale.
	SetLocale(locale string) error
}
