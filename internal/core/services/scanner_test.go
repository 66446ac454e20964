package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockProvider implements driven.CourseProvider for testing.
type mockProvider struct {
	course      domain.Course
	courseErr   error
	sections    []domain.Section
	sectionsErr error
	modules     []domain.ModuleRef
	modulesErr  error
	details     map[string]domain.ModuleDetail
	detailErr   error
}

func (m *mockProvider) Course(_ context.Context, _ string) (domain.Course, error) {
	if m.courseErr != nil {
		return domain.Course{}, m.courseErr
	}
	return m.course, nil
}

func (m *mockProvider) Sections(_ context.Context, _ string) ([]domain.Section, error) {
	return m.sections, m.sectionsErr
}

func (m *mockProvider) VisibleModules(_ context.Context, _ string) ([]domain.ModuleRef, error) {
	return m.modules, m.modulesErr
}

func (m *mockProvider) ModuleDetail(_ context.Context, mod domain.ModuleRef) (domain.ModuleDetail, error) {
	if m.detailErr != nil {
		return domain.ModuleDetail{}, m.detailErr
	}
	detail, ok := m.details[mod.ID]
	if !ok {
		return domain.ModuleDetail{}, domain.ErrNotFound
	}
	return detail, nil
}

func (m *mockProvider) BookChapters(_ context.Context, _ domain.ModuleRef) ([]domain.BookChapter, error) {
	return nil, domain.ErrUnsupportedType
}

func (m *mockProvider) LessonPages(_ context.Context, _ domain.ModuleRef) ([]domain.LessonPage, error) {
	return nil, domain.ErrUnsupportedType
}

func (m *mockProvider) ForumDiscussions(_ context.Context, _ domain.ModuleRef) ([]domain.ForumDiscussion, error) {
	return nil, domain.ErrUnsupportedType
}

func (m *mockProvider) ForumPosts(_ context.Context, _ domain.ForumDiscussion) ([]domain.ForumPost, error) {
	return nil, domain.ErrUnsupportedType
}

func (m *mockProvider) WikiPages(_ context.Context, _ domain.ModuleRef) ([]domain.WikiPage, error) {
	return nil, domain.ErrUnsupportedType
}

// mockExtractor implements driven.ModuleExtractor for testing.
type mockExtractor struct {
	moduleType string
	records    []domain.MatchRecord
	err        error
	calls      int
}

func (m *mockExtractor) ModuleType() string { return m.moduleType }

func (m *mockExtractor) Extract(_ context.Context, _ driven.CourseProvider, _ domain.ModuleRef, _ domain.Query) ([]domain.MatchRecord, error) {
	m.calls++
	return m.records, m.err
}

// --- Fixtures ---

func testSettings() domain.SearchSettings {
	settings := domain.DefaultSearchSettings()
	settings.EnableHighlight = false
	return settings
}

func testProvider() *mockProvider {
	return &mockProvider{
		course: domain.Course{ID: "42", Name: "Biology 101", URL: "https://campus.test/course/view.php?id=42"},
		sections: []domain.Section{
			{ID: "s1", Number: 1, Name: "Cell structure", Summary: "<p>Organelles and membranes.</p>", URL: "https://campus.test/course/view.php?id=42#section-1"},
			{ID: "s2", Number: 2, Summary: "<p>Photosynthesis in plants.</p>", URL: "https://campus.test/course/view.php?id=42#section-2"},
		},
		modules: []domain.ModuleRef{
			{ID: "m1", Name: "Cell worksheet", Type: "page", URL: "https://campus.test/mod/page/view.php?id=1", SectionNumber: 1, SectionName: "Cell structure"},
			{ID: "m2", Name: "Week overview", Type: "page", URL: "https://campus.test/mod/page/view.php?id=2", SectionNumber: 2},
		},
		details: map[string]domain.ModuleDetail{
			"m1": {Intro: "<p>Label the cell diagram.</p>"},
			"m2": {Intro: "<p>Covers photosynthesis basics.</p>"},
		},
	}
}

// --- Tests ---

// TestScanner_Scan tests the full scan over sections and modules.
func TestScanner_Scan(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query yields nothing", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("   ", domain.FilterAll))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("course load failure is fatal", func(t *testing.T) {
		provider := testProvider()
		provider.courseErr = errors.New("connection refused")
		s := NewScanner(provider, nil, testSettings())

		_, err := s.Scan(ctx, "42", domain.NewQuery("cell", domain.FilterAll))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading course 42")
	})

	t.Run("section and module sources both contribute", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("cell", domain.FilterAll))
		require.NoError(t, err)

		var kinds []string
		for _, rec := range records {
			kinds = append(kinds, rec.Title+"/"+rec.Kind.String())
		}
		assert.Contains(t, kinds, "Cell structure/title")
		assert.Contains(t, kinds, "Cell worksheet/title")
	})

	t.Run("module name match suppresses its description check", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		// "cell" hits both m1's name and m1's intro; only the title
		// record must surface for that module.
		records, err := s.Scan(ctx, "42", domain.NewQuery("cell", domain.FilterAll))
		require.NoError(t, err)

		for _, rec := range records {
			if rec.UnitID == "m1" {
				assert.Equal(t, domain.MatchTitle, rec.Kind)
			}
		}
	})

	t.Run("module description match carries a snippet", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("photosynthesis basics", domain.FilterAll))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "m2", records[0].UnitID)
		assert.Equal(t, domain.MatchDescription, records[0].Kind)
		assert.Contains(t, records[0].Snippet, "photosynthesis basics")
	})

	t.Run("section title match suppresses its summary check", func(t *testing.T) {
		provider := testProvider()
		provider.sections[0].Summary = "<p>All about cell structure.</p>"
		s := NewScanner(provider, nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("cell structure", domain.FilterSections))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, domain.MatchTitle, records[0].Kind)
		assert.Empty(t, records[0].Snippet)
	})

	t.Run("unnamed section matches its bare number", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("2", domain.FilterSections))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "s2", records[0].UnitID)
		assert.Equal(t, domain.MatchTitle, records[0].Kind)
		assert.Equal(t, "Section 2", records[0].Title)
	})

	t.Run("section summary match yields a description record", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("organelles", domain.FilterSections))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, domain.MatchDescription, records[0].Kind)
		assert.Contains(t, records[0].Snippet, "Organelles")
	})

	t.Run("section fetch failure skips sections but not modules", func(t *testing.T) {
		provider := testProvider()
		provider.sectionsErr = errors.New("timeout")
		s := NewScanner(provider, nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("cell", domain.FilterAll))
		require.NoError(t, err)

		for _, rec := range records {
			assert.NotEqual(t, domain.UnitSection, rec.UnitKind)
		}
		assert.NotEmpty(t, records)
	})

	t.Run("module detail failure skips that module's fields", func(t *testing.T) {
		provider := testProvider()
		provider.detailErr = errors.New("stale module")
		s := NewScanner(provider, nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("photosynthesis basics", domain.FilterAll))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

// TestScanner_Extractors tests extractor dispatch.
func TestScanner_Extractors(t *testing.T) {
	ctx := context.Background()

	t.Run("sub-content records are appended", func(t *testing.T) {
		extractor := &mockExtractor{
			moduleType: "page",
			records: []domain.MatchRecord{
				{UnitID: "sub1", UnitKind: domain.UnitSubItem, Kind: domain.MatchContent, ModuleType: "page", URL: "https://campus.test/mod/page/view.php?id=1&x=1"},
			},
		}
		registry := NewExtractorRegistry()
		registry.Register(extractor)

		s := NewScanner(testProvider(), registry, testSettings())
		records, err := s.Scan(ctx, "42", domain.NewQuery("cell", domain.FilterContent))
		require.NoError(t, err)

		// Filter "content" drops the title records, keeping only the
		// extractor output; the extractor ran for both page modules.
		assert.Equal(t, 2, extractor.calls)
		require.Len(t, records, 2)
		assert.Equal(t, "sub1", records[0].UnitID)
	})

	t.Run("module name match drops the extractor's body record", func(t *testing.T) {
		// "cell worksheet" hits m1's name; the page extractor's record
		// for m1's own body must not compete with the title record.
		provider := testProvider()
		provider.modules = provider.modules[:1]
		extractor := &mockExtractor{
			moduleType: "page",
			records: []domain.MatchRecord{
				{UnitID: "m1", UnitKind: domain.UnitModule, Kind: domain.MatchContent, Title: "Cell worksheet", ModuleType: "page", URL: "https://campus.test/mod/page/view.php?id=1"},
			},
		}
		registry := NewExtractorRegistry()
		registry.Register(extractor)

		s := NewScanner(provider, registry, testSettings())
		records, err := s.Scan(ctx, "42", domain.NewQuery("cell worksheet", domain.FilterAll))
		require.NoError(t, err)

		assert.Equal(t, 1, extractor.calls)
		require.Len(t, records, 1)
		assert.Equal(t, domain.MatchTitle, records[0].Kind)
	})

	t.Run("content filter hides a module matched only by name", func(t *testing.T) {
		provider := testProvider()
		provider.modules = provider.modules[:1]
		extractor := &mockExtractor{
			moduleType: "page",
			records: []domain.MatchRecord{
				{UnitID: "m1", UnitKind: domain.UnitModule, Kind: domain.MatchContent, Title: "Cell worksheet", ModuleType: "page", URL: "https://campus.test/mod/page/view.php?id=1"},
			},
		}
		registry := NewExtractorRegistry()
		registry.Register(extractor)

		s := NewScanner(provider, registry, testSettings())
		records, err := s.Scan(ctx, "42", domain.NewQuery("cell worksheet", domain.FilterContent))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("sub-item records survive a module name match", func(t *testing.T) {
		provider := testProvider()
		provider.modules = provider.modules[:1]
		extractor := &mockExtractor{
			moduleType: "page",
			records: []domain.MatchRecord{
				{UnitID: "sub1", UnitKind: domain.UnitSubItem, Kind: domain.MatchContent, ModuleType: "page", URL: "https://campus.test/mod/page/view.php?id=1&x=1"},
			},
		}
		registry := NewExtractorRegistry()
		registry.Register(extractor)

		s := NewScanner(provider, registry, testSettings())
		records, err := s.Scan(ctx, "42", domain.NewQuery("cell worksheet", domain.FilterAll))
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, domain.MatchTitle, records[0].Kind)
		assert.Equal(t, "sub1", records[1].UnitID)
	})

	t.Run("label intro is left to its extractor", func(t *testing.T) {
		// A label's intro is its body; the generic description check
		// must not emit a second record for the same field.
		provider := testProvider()
		provider.modules = []domain.ModuleRef{
			{ID: "m3", CourseID: "42", Name: "Notice", Type: "label", SectionNumber: 1},
		}
		provider.details = map[string]domain.ModuleDetail{
			"m3": {Intro: "<p>Bring your lab coat.</p>"},
		}

		s := NewScanner(provider, nil, testSettings())
		records, err := s.Scan(ctx, "42", domain.NewQuery("lab coat", domain.FilterAll))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("extractor failure only skips its module", func(t *testing.T) {
		extractor := &mockExtractor{moduleType: "page", err: errors.New("fetch failed")}
		registry := NewExtractorRegistry()
		registry.Register(extractor)

		s := NewScanner(testProvider(), registry, testSettings())
		records, err := s.Scan(ctx, "42", domain.NewQuery("cell", domain.FilterAll))
		require.NoError(t, err)
		assert.NotEmpty(t, records)
	})
}

// TestScanner_IndexTitlePass tests the supplementary course-index scan.
func TestScanner_IndexTitlePass(t *testing.T) {
	ctx := context.Background()

	t.Run("loose title hit is recovered", func(t *testing.T) {
		// "K O" folds into "Week overview" across the token gap, so
		// the refined matcher rejects it; only the loose pass hits.
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("K O", domain.FilterAll))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "Week overview", records[0].Title)
		assert.Equal(t, domain.MatchTitle, records[0].Kind)
	})

	t.Run("already matched titles are not duplicated", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("cell worksheet", domain.FilterAll))
		require.NoError(t, err)

		count := 0
		for _, rec := range records {
			if rec.Title == "Cell worksheet" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("content filter skips the pass", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("K O", domain.FilterContent))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

// TestScanner_PostFilter tests scope filtering and URL fixups.
func TestScanner_PostFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("title filter keeps only title records", func(t *testing.T) {
		s := NewScanner(testProvider(), nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("organelles", domain.FilterTitle))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("title match without URL falls back to course page", func(t *testing.T) {
		provider := testProvider()
		provider.modules[0].URL = ""
		s := NewScanner(provider, nil, testSettings())

		records, err := s.Scan(ctx, "42", domain.NewQuery("cell worksheet", domain.FilterAll))
		require.NoError(t, err)

		require.NotEmpty(t, records)
		assert.Equal(t, provider.course.URL, records[0].URL)
	})

	t.Run("highlight parameter is appended when enabled", func(t *testing.T) {
		settings := testSettings()
		settings.EnableHighlight = true
		s := NewScanner(testProvider(), nil, settings)

		records, err := s.Scan(ctx, "42", domain.NewQuery("cell worksheet", domain.FilterAll))
		require.NoError(t, err)

		require.NotEmpty(t, records)
		assert.Contains(t, records[0].URL, domain.HighlightParam+"=cell+worksheet")
	})
}
