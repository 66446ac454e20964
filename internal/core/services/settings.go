package services

import (
	"fmt"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages search behaviour settings on top of the
// config store.
type SettingsService struct {
	configStore driven.ConfigStore
	search      *SearchService
}

// NewSettingsService creates a settings service backed by the config
// store shared with the search service.
func NewSettingsService(configStore driven.ConfigStore, search *SearchService) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		search:      search,
	}
}

// Get returns the effective search settings.
func (s *SettingsService) Get() domain.SearchSettings {
	if s.search != nil {
		return s.search.Settings()
	}
	return domain.DefaultSearchSettings()
}

// SetResultsPerPage updates the page size.
func (s *SettingsService) SetResultsPerPage(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: results per page must be at least 1", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyResultsPerPage, n)
}

// SetHighlight toggles snippet highlighting.
func (s *SettingsService) SetHighlight(enabled bool) error {
	return s.configStore.Set(keyHighlight, enabled)
}

// SetLocale updates the active locale.
func (s *SettingsService) SetLocale(locale string) error {
	if locale == "" {
		return fmt.Errorf("%w: locale must not be empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyLocale, locale)
}
