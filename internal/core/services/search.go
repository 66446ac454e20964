package services

import (
	"context"
	"fmt"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driving"
	"github.com/opencourse-labs/scour-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.CourseSearchService = (*SearchService)(nil)

// Config keys for search settings storage.
const (
	keyResultsPerPage = "search.results_per_page"
	keyHighlight      = "search.enable_highlight"
	keyMaxOccurrences = "search.max_occurrences_per_unit"
	keyLocale         = "search.locale"
	keyGrouped        = "search.group_by_section"
)

// RegistryFactory builds an extractor registry around the relevance
// capability for one search call. Extractors share the matcher built
// from the effective settings, so locale and highlight changes apply
// to sub-content scans without restart.
type RegistryFactory func(driven.Matcher) *ExtractorRegistry

// SearchService orchestrates the scan and aggregation pipeline behind
// the driving search port.
type SearchService struct {
	provider    driven.CourseProvider
	config      driven.ConfigStore
	registryFor RegistryFactory
}

// NewSearchService creates the course search service. The config store
// is optional; defaults apply when it is nil. A nil registry factory
// disables sub-content extraction.
func NewSearchService(provider driven.CourseProvider, config driven.ConfigStore, registryFor RegistryFactory) *SearchService {
	return &SearchService{
		provider:    provider,
		config:      config,
		registryFor: registryFor,
	}
}

// Settings returns the effective search settings, with config store
// values layered over defaults.
func (s *SearchService) Settings() domain.SearchSettings {
	settings := domain.DefaultSearchSettings()
	if s.config == nil {
		return settings
	}

	if n := s.config.GetInt(keyResultsPerPage); n > 0 {
		settings.ResultsPerPage = n
	}
	if v, ok := s.config.Get(keyHighlight); ok {
		if b, isBool := v.(bool); isBool {
			settings.EnableHighlight = b
		}
	}
	if n := s.config.GetInt(keyMaxOccurrences); n > 0 {
		settings.MaxOccurrencesPerUnit = n
	}
	if locale := s.config.GetString(keyLocale); locale != "" {
		settings.Locale = locale
	}
	if v, ok := s.config.Get(keyGrouped); ok {
		if b, isBool := v.(bool); isBool {
			settings.GroupBySection = b
		}
	}

	return settings
}

// Search scans the course and aggregates the matches into one result page.
func (s *SearchService) Search(ctx context.Context, courseID string, q domain.Query, opts domain.SearchOptions) (*domain.ResultPage, error) {
	logger.Section("Course Search")
	logger.Debug("Course: %s, query: %q, filter: %s", courseID, q.Text, q.Filter)

	settings := s.Settings()
	if opts.PerPage <= 0 {
		opts.PerPage = settings.ResultsPerPage
	}

	if q.IsEmpty() {
		logger.Debug("Empty query, returning no results")
		return NewAggregator().BuildPage(q, nil, opts), nil
	}

	var registry *ExtractorRegistry
	if s.registryFor != nil {
		registry = s.registryFor(NewRelevance(settings))
	}

	scanner := NewScanner(s.provider, registry, settings)
	records, err := scanner.Scan(ctx, courseID, q)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Raw records: %d", len(records))

	page := NewAggregator().BuildPage(q, records, opts)
	logger.Info("Results: %d total, page %d of %d", page.Total, page.Pagination.Page+1, page.Pagination.TotalPages)

	return page, nil
}
