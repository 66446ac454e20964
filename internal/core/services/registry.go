package services

import (
	"context"
	"sort"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// ExtractorRegistry is the lookup table of per-module-type sub-content
// extractors. Types without a registered extractor resolve to a no-op,
// so unknown module types are silently skipped during scanning.
type ExtractorRegistry struct {
	extractors map[string]driven.ModuleExtractor
}

// NewExtractorRegistry creates an empty registry.
func NewExtractorRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{
		extractors: make(map[string]driven.ModuleExtractor),
	}
}

// Register adds an extractor, replacing any previous one for the type.
func (r *ExtractorRegistry) Register(e driven.ModuleExtractor) {
	r.extractors[e.ModuleType()] = e
}

// Lookup returns the extractor for a module type, or the no-op
// extractor when none is registered.
func (r *ExtractorRegistry) Lookup(moduleType string) driven.ModuleExtractor {
	if e, ok := r.extractors[moduleType]; ok {
		return e
	}
	return nopExtractor{}
}

// Types returns the registered module types, sorted.
func (r *ExtractorRegistry) Types() []string {
	types := make([]string, 0, len(r.extractors))
	for t := range r.extractors {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// nopExtractor is the fallback for unsupported module types.
type nopExtractor struct{}

// ModuleType returns the empty type tag.
func (nopExtractor) ModuleType() string { return "" }

// Extract yields no records.
func (nopExtractor) Extract(context.Context, driven.CourseProvider, domain.ModuleRef, domain.Query) ([]domain.MatchRecord, error) {
	return nil, nil
}
