package mcp

import (
	"context"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.CourseSearchService.
type mockSearchService struct {
	page     *domain.ResultPage
	err      error
	courseID string
	query    domain.Query
	opts     domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	courseID string,
	q domain.Query,
	opts domain.SearchOptions,
) (*domain.ResultPage, error) {
	m.courseID = courseID
	m.query = q
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.page == nil {
		return &domain.ResultPage{Pagination: domain.Pagination{TotalPages: 1}}, nil
	}
	return m.page, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.SearchSettings
	err      error
}

func (m *mockSettingsService) Get() domain.SearchSettings {
	return m.settings
}

func (m *mockSettingsService) SetResultsPerPage(_ int) error {
	return m.err
}

func (m *mockSettingsService) SetHighlight(_ bool) error {
	return m.err
}

func (m *mockSettingsService) SetLocale(_ string) error {
	return m.err
}
