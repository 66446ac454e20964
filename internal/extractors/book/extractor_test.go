package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/core/services"
)

// mockProvider implements the book-relevant slice of CourseProvider.
type mockProvider struct {
	chapters []domain.BookChapter
	err      error
}

func (m *mockProvider) Course(_ context.Context, _ string) (domain.Course, error) {
	return domain.Course{}, domain.ErrNotFound
}

func (m *mockProvider) Sections(_ context.Context, _ string) ([]domain.Section, error) {
	return nil, nil
}

func (m *mockProvider) VisibleModules(_ context.Context, _ string) ([]domain.ModuleRef, error) {
	return nil, nil
}

func (m *mockProvider) ModuleDetail(_ context.Context, _ domain.ModuleRef) (domain.ModuleDetail, error) {
	return domain.ModuleDetail{}, domain.ErrNotFound
}

func (m *mockProvider) BookChapters(_ context.Context, _ domain.ModuleRef) ([]domain.BookChapter, error) {
	return m.chapters, m.err
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

func testRelevance() *services.Relevance {
	settings := domain.DefaultSearchSettings()
	settings.EnableHighlight = false
	return services.NewRelevance(settings)
}

func testModule() domain.ModuleRef {
	return domain.ModuleRef{
		ID:            "m7",
		Name:          "Course handbook",
		Type:          "book",
		URL:           "https://campus.test/mod/book/view.php?id=7",
		SectionNumber: 1,
		SectionName:   "General",
	}
}

// TestExtractor_Extract tests chapter scanning.
func TestExtractor_Extract(t *testing.T) {
	ctx := context.Background()
	e := New(testRelevance())

	t.Run("chapter title match short-circuits its body", func(t *testing.T) {
		provider := &mockProvider{chapters: []domain.BookChapter{
			{ID: "c1", Title: "Grading policy", Content: "<p>How grading works.</p>"},
			{ID: "c2", Title: "Attendance", Content: "<p>Come to class.</p>"},
		}}

		records, err := e.Extract(ctx, provider, testModule(), domain.NewQuery("grading", domain.FilterAll))
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, domain.MatchTitle, records[0].Kind)
		assert.Equal(t, "Grading policy", records[0].Title)
		assert.Empty(t, records[0].Snippet)
	})

	t.Run("chapter body match carries a snippet and anchor", func(t *testing.T) {
		provider := &mockProvider{chapters: []domain.BookChapter{
			{ID: "c2", Title: "Attendance", Content: "<p>Missing a quiz requires a note.</p>"},
		}}

		records, err := e.Extract(ctx, provider, testModule(), domain.NewQuery("quiz", domain.FilterAll))
		require.NoError(t, err)

		require.Len(t, records, 1)
		rec := records[0]
		assert.Equal(t, domain.MatchContent, rec.Kind)
		assert.Equal(t, domain.UnitSubItem, rec.UnitKind)
		assert.Contains(t, rec.Snippet, "quiz")
		assert.Equal(t, "https://campus.test/mod/book/view.php?chapterid=c2&id=7", rec.URL)
	})

	t.Run("chapters are scanned independently", func(t *testing.T) {
		provider := &mockProvider{chapters: []domain.BookChapter{
			{ID: "c1", Title: "Syllabus", Content: "<p>Week by week plan.</p>"},
			{ID: "c2", Title: "Plan B", Content: "<p>The backup plan.</p>"},
		}}

		records, err := e.Extract(ctx, provider, testModule(), domain.NewQuery("plan", domain.FilterAll))
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, domain.MatchContent, records[0].Kind)
		assert.Equal(t, domain.MatchTitle, records[1].Kind)
	})

	t.Run("missing book is a silent skip", func(t *testing.T) {
		provider := &mockProvider{err: domain.ErrNotFound}

		records, err := e.Extract(ctx, provider, testModule(), domain.NewQuery("plan", domain.FilterAll))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("transport failure surfaces", func(t *testing.T) {
		provider := &mockProvider{err: errors.New("timeout")}

		_, err := e.Extract(ctx, provider, testModule(), domain.NewQuery("plan", domain.FilterAll))
		assert.Error(t, err)
	})
}
