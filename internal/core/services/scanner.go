package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
	"github.com/opencourse-labs/scour-cli/internal/logger"
	"github.com/opencourse-labs/scour-cli/internal/normalise"
)

// Scanner walks all searchable content units of a course and emits raw
// match records. It is stateless across calls: content is read fresh
// from the provider on every scan.
//
// No source failure is fatal to a scan. A section or module that
// cannot be read is skipped and the remaining sources still run.
type Scanner struct {
	provider driven.CourseProvider
	registry *ExtractorRegistry
	rel      *Relevance
	matcher  *Matcher
	settings domain.SearchSettings
}

// NewScanner creates a scanner over the given content provider.
func NewScanner(provider driven.CourseProvider, registry *ExtractorRegistry, settings domain.SearchSettings) *Scanner {
	if registry == nil {
		registry = NewExtractorRegistry()
	}
	return &Scanner{
		provider: provider,
		registry: registry,
		rel:      NewRelevance(settings),
		matcher:  NewMatcher(settings),
		settings: settings,
	}
}

// Scan searches the course content for the query and returns the raw
// match records, post-filtered for the query's scope filter.
func (s *Scanner) Scan(ctx context.Context, courseID string, q domain.Query) ([]domain.MatchRecord, error) {
	if q.IsEmpty() {
		return nil, nil
	}

	course, err := s.provider.Course(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("loading course %s: %w", courseID, err)
	}

	sections, err := s.provider.Sections(ctx, courseID)
	if err != nil {
		logger.Warn("Sections unavailable for course %s: %v", courseID, err)
		sections = nil
	}

	var modules []domain.ModuleRef
	if q.Filter.ScansModules() || q.Filter.ScansIndexTitles() {
		modules, err = s.provider.VisibleModules(ctx, courseID)
		if err != nil {
			logger.Warn("Modules unavailable for course %s: %v", courseID, err)
			modules = nil
		}
	}

	var records []domain.MatchRecord

	if q.Filter.ScansSections() {
		for _, section := range sections {
			records = append(records, s.scanSection(section, q)...)
		}
	}

	if q.Filter.ScansModules() {
		for _, mod := range modules {
			records = append(records, s.scanModule(ctx, mod, q)...)
		}
	}

	if q.Filter.ScansIndexTitles() {
		records = s.indexTitlePass(records, sections, modules, q)
	}

	records = s.postFilter(records, course, q)

	logger.Debug("Scan complete: %d records for course %s", len(records), courseID)
	return records, nil
}

// scanSection checks a section's name (or bare number) and summary.
// A title match suppresses the summary check for the same section.
func (s *Scanner) scanSection(section domain.Section, q domain.Query) []domain.MatchRecord {
	base := domain.MatchRecord{
		UnitID:              section.ID,
		UnitKind:            domain.UnitSection,
		Title:               section.DisplayName(),
		ModuleType:          domain.ModuleTypeSection,
		URL:                 section.URL,
		SectionNumber:       section.Number,
		SectionName:         section.Name,
		ParentSectionNumber: section.ParentNumber,
		ParentSectionName:   section.ParentName,
	}

	titleMatched := false
	if section.Name != "" {
		titleMatched = s.rel.TitleMatches(section.Name, q)
	} else {
		// Unnamed sections are addressable by their bare number.
		titleMatched = normalise.CollapseWhitespace(q.Text) == strconv.Itoa(section.Number)
	}

	if titleMatched {
		rec := base
		rec.Kind = domain.MatchTitle
		return []domain.MatchRecord{rec}
	}

	if section.Summary != "" && s.rel.ContentMatches(section.Summary, q) {
		rec := base
		rec.Kind = domain.MatchDescription
		rec.Snippet = s.rel.Snippet(section.Summary, q)
		return []domain.MatchRecord{rec}
	}

	return nil
}

// scanModule checks a module's display name and description, then
// dispatches to the type-specific extractor for sub-content. A name
// match short-circuits the module's own field checks, including the
// body fields the extractor would report; sub-items are scanned
// independently regardless.
func (s *Scanner) scanModule(ctx context.Context, mod domain.ModuleRef, q domain.Query) []domain.MatchRecord {
	var records []domain.MatchRecord

	titleMatched := s.rel.TitleMatches(mod.Name, q)
	if titleMatched {
		records = append(records, moduleRecord(mod, domain.MatchTitle, ""))
	} else if mod.Type != domain.ModuleTypeLabel {
		// A label's intro is its body; the label extractor reports it
		// as content, so the generic description check skips labels.
		detail, err := s.provider.ModuleDetail(ctx, mod)
		switch {
		case err != nil:
			// Stale or unsupported module: skip its fields, keep scanning.
			logger.Debug("Module %s (%s) detail unavailable: %v", mod.ID, mod.Type, err)
		case detail.Intro != "" && s.rel.ContentMatches(detail.Intro, q):
			records = append(records, moduleRecord(mod, domain.MatchDescription, s.rel.Snippet(detail.Intro, q)))
		}
	}

	subRecords, err := s.registry.Lookup(mod.Type).Extract(ctx, s.provider, mod, q)
	if err != nil {
		logger.Warn("Extractor for %s failed on module %s: %v", mod.Type, mod.ID, err)
		return records
	}

	if titleMatched {
		kept := make([]domain.MatchRecord, 0, len(subRecords))
		for _, rec := range subRecords {
			if rec.UnitKind != domain.UnitModule {
				kept = append(kept, rec)
			}
		}
		subRecords = kept
	}

	return append(records, subRecords...)
}

// indexTitlePass is the supplementary course-index scan: all section
// and module titles are re-checked with a plain case-insensitive
// substring match, recovering title hits the refined heuristics may
// have rejected. Hits already present (by name and type) are not
// duplicated.
func (s *Scanner) indexTitlePass(records []domain.MatchRecord, sections []domain.Section, modules []domain.ModuleRef, q domain.Query) []domain.MatchRecord {
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Kind == domain.MatchTitle {
			seen[titleKey(rec.Title, rec.ModuleType)] = true
		}
	}

	for _, section := range sections {
		name := section.DisplayName()
		if seen[titleKey(name, domain.ModuleTypeSection)] || !s.matcher.PlainContains(name, q) {
			continue
		}
		seen[titleKey(name, domain.ModuleTypeSection)] = true
		records = append(records, domain.MatchRecord{
			UnitID:              section.ID,
			UnitKind:            domain.UnitSection,
			Kind:                domain.MatchTitle,
			Title:               name,
			ModuleType:          domain.ModuleTypeSection,
			URL:                 section.URL,
			SectionNumber:       section.Number,
			SectionName:         section.Name,
			ParentSectionNumber: section.ParentNumber,
			ParentSectionName:   section.ParentName,
		})
	}

	for _, mod := range modules {
		if seen[titleKey(mod.Name, mod.Type)] || !s.matcher.PlainContains(mod.Name, q) {
			continue
		}
		seen[titleKey(mod.Name, mod.Type)] = true
		records = append(records, moduleRecord(mod, domain.MatchTitle, ""))
	}

	return records
}

// postFilter applies the scope filter to the raw records, defaults
// missing title match URLs to the course landing page, and tags result
// links with the highlight parameter.
func (s *Scanner) postFilter(records []domain.MatchRecord, course domain.Course, q domain.Query) []domain.MatchRecord {
	out := make([]domain.MatchRecord, 0, len(records))
	for _, rec := range records {
		if !q.Filter.Retains(rec) {
			continue
		}
		if rec.Kind == domain.MatchTitle && rec.URL == "" {
			rec.URL = course.URL
		}
		if s.settings.EnableHighlight {
			rec.URL = withHighlightParam(rec.URL, q.Text)
		}
		out = append(out, rec)
	}
	return out
}

// moduleRecord builds a match record for a module-level match.
func moduleRecord(mod domain.ModuleRef, kind domain.MatchKind, snippet string) domain.MatchRecord {
	return domain.MatchRecord{
		UnitID:              mod.ID,
		UnitKind:            domain.UnitModule,
		Kind:                kind,
		Title:               mod.Name,
		ModuleType:          mod.Type,
		Icon:                mod.Icon,
		URL:                 mod.URL,
		Snippet:             snippet,
		SectionNumber:       mod.SectionNumber,
		SectionName:         mod.SectionName,
		ParentSectionNumber: mod.ParentSectionNumber,
		ParentSectionName:   mod.ParentSectionName,
	}
}

// titleKey builds the duplicate-suppression key for the index pass.
func titleKey(name, moduleType string) string {
	return name + "\x00" + moduleType
}

// withHighlightParam appends the highlight query parameter to a result
// link so the target page can scroll to and mark the matched text.
func withHighlightParam(rawURL, query string) string {
	if rawURL == "" || query == "" {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	params := u.Query()
	if params.Get(domain.HighlightParam) != "" {
		return rawURL
	}
	params.Set(domain.HighlightParam, query)
	u.RawQuery = params.Encode()
	return u.String()
}
