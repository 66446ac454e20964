package cli

import (
	"context"
	"errors"

	"github.com/opencourse-labs/scour-cli/internal/adapters/driven/storage/sqlite"
	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// mockSearchService returns a fixed result page.
type mockSearchService struct {
	page *domain.ResultPage
	opts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	q domain.Query,
	opts domain.SearchOptions,
) (*domain.ResultPage, error) {
	m.opts = opts
	if m.page != nil {
		return m.page, nil
	}
	return &domain.ResultPage{
		Query: q.Text,
		Total: 1,
		Results: []domain.MatchRecord{
			{
				Title:      "Cell worksheet",
				ModuleType: "page",
				Kind:       domain.MatchContent,
				URL:        "https://campus.test/mod/page/view.php?id=1",
				Snippet:    "Label the " + domain.HighlightOpen + "cell" + domain.HighlightClose + " diagram",
			},
		},
		Pagination: domain.Pagination{PerPage: 10, TotalItems: 1, TotalPages: 1},
	}, nil
}

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(
	_ context.Context,
	_ string,
	_ domain.Query,
	_ domain.SearchOptions,
) (*domain.ResultPage, error) {
	return nil, errors.New("course unreachable")
}

// mockSettingsService records setter calls.
type mockSettingsService struct {
	settings  domain.SearchSettings
	perPage   int
	highlight *bool
	locale    string
	err       error
}

func (m *mockSettingsService) Get() domain.SearchSettings {
	return m.settings
}

func (m *mockSettingsService) SetResultsPerPage(n int) error {
	m.perPage = n
	return m.err
}

func (m *mockSettingsService) SetHighlight(enabled bool) error {
	m.highlight = &enabled
	return m.err
}

func (m *mockSettingsService) SetLocale(locale string) error {
	m.locale = locale
	return m.err
}

// mockImporter records the imported archive.
type mockImporter struct {
	archive *sqlite.CourseArchive
	id      string
	err     error
}

func (m *mockImporter) Import(_ context.Context, archive *sqlite.CourseArchive) (string, error) {
	m.archive = archive
	if m.err != nil {
		return "", m.err
	}
	if m.id != "" {
		return m.id, nil
	}
	return "42", nil
}

// setupTestServices installs mock services and returns a cleanup that
// restores whatever was injected before.
func setupTestServices() func() {
	oldSearch := searchService
	oldSettings := settingsService
	oldImporter := courseImporter

	searchService = &mockSearchService{}
	settingsService = &mockSettingsService{settings: domain.DefaultSearchSettings()}
	courseImporter = &mockImporter{}

	return func() {
		searchService = oldSearch
		settingsService = oldSettings
		courseImporter = oldImporter
	}
}
