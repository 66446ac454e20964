package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// TestAggregator_Deduplicate tests canonical-URL deduplication.
func TestAggregator_Deduplicate(t *testing.T) {
	a := NewAggregator()

	t.Run("highlight parameter does not split keys", func(t *testing.T) {
		records := []domain.MatchRecord{
			{Kind: domain.MatchTitle, URL: "https://campus.test/mod/page/view.php?id=4"},
			{Kind: domain.MatchContent, URL: "https://campus.test/mod/page/view.php?id=4&highlight=cell"},
		}

		out := a.Deduplicate(records)
		require.Len(t, out, 1)
		assert.Equal(t, domain.MatchContent, out[0].Kind)
	})

	t.Run("higher priority replaces in place", func(t *testing.T) {
		records := []domain.MatchRecord{
			{Kind: domain.MatchTitle, URL: "https://campus.test/a"},
			{Kind: domain.MatchTitle, URL: "https://campus.test/b"},
			{Kind: domain.MatchDescription, URL: "https://campus.test/a"},
		}

		out := a.Deduplicate(records)
		require.Len(t, out, 2)
		// The winner keeps the first-seen position.
		assert.Equal(t, domain.MatchDescription, out[0].Kind)
		assert.Equal(t, "https://campus.test/b", out[1].URL)
	})

	t.Run("equal priority keeps the first record", func(t *testing.T) {
		records := []domain.MatchRecord{
			{Kind: domain.MatchContent, Title: "first", URL: "https://campus.test/a"},
			{Kind: domain.MatchContent, Title: "second", URL: "https://campus.test/a"},
		}

		out := a.Deduplicate(records)
		require.Len(t, out, 1)
		assert.Equal(t, "first", out[0].Title)
	})

	t.Run("fragments address distinct matches", func(t *testing.T) {
		records := []domain.MatchRecord{
			{Kind: domain.MatchContent, URL: "https://campus.test/mod/forum/discuss.php?d=9#p31"},
			{Kind: domain.MatchContent, URL: "https://campus.test/mod/forum/discuss.php?d=9#p32"},
		}

		assert.Len(t, a.Deduplicate(records), 2)
	})

	t.Run("records without a URL are always kept", func(t *testing.T) {
		records := []domain.MatchRecord{
			{Kind: domain.MatchTitle, Title: "one"},
			{Kind: domain.MatchTitle, Title: "two"},
		}

		assert.Len(t, a.Deduplicate(records), 2)
	})

	t.Run("idempotent", func(t *testing.T) {
		records := []domain.MatchRecord{
			{Kind: domain.MatchTitle, URL: "https://campus.test/a"},
			{Kind: domain.MatchContent, URL: "https://campus.test/a?highlight=x"},
			{Kind: domain.MatchContent, URL: "https://campus.test/b"},
		}

		once := a.Deduplicate(records)
		twice := a.Deduplicate(once)
		assert.Equal(t, once, twice)
	})
}

// TestAggregator_GroupBySection tests hierarchical grouping.
func TestAggregator_GroupBySection(t *testing.T) {
	a := NewAggregator()
	parent := 1

	t.Run("groups sort numerically with nested subsections", func(t *testing.T) {
		records := []domain.MatchRecord{
			{Kind: domain.MatchContent, Title: "late", SectionNumber: 3, SectionName: "Exams"},
			{Kind: domain.MatchContent, Title: "early", SectionNumber: 1, SectionName: "Basics"},
			{
				Kind: domain.MatchContent, Title: "nested",
				SectionNumber: 4, SectionName: "Lab work",
				ParentSectionNumber: &parent, ParentSectionName: "Basics",
			},
		}

		groups := a.GroupBySection(records)
		require.Len(t, groups, 2)

		assert.Equal(t, 1, groups[0].SectionNumber)
		assert.Equal(t, "Basics", groups[0].SectionName)
		require.Len(t, groups[0].Results, 1)
		assert.Equal(t, "early", groups[0].Results[0].Title)

		require.Len(t, groups[0].Subsections, 1)
		assert.Equal(t, "Lab work", groups[0].Subsections[0].SectionName)
		assert.Empty(t, groups[0].Subsections[0].Subsections)

		assert.Equal(t, 3, groups[1].SectionNumber)
	})

	t.Run("section match annotates the header", func(t *testing.T) {
		records := []domain.MatchRecord{
			{
				Kind: domain.MatchDescription, ModuleType: domain.ModuleTypeSection,
				Title: "Genetics", Snippet: "intro to genetics",
				URL: "https://campus.test/course?id=1#section-2",
				SectionNumber: 2, SectionName: "Genetics",
			},
			{Kind: domain.MatchContent, Title: "worksheet", SectionNumber: 2, SectionName: "Genetics"},
		}

		groups := a.GroupBySection(records)
		require.Len(t, groups, 1)

		g := groups[0]
		assert.True(t, g.SectionMatched)
		assert.Equal(t, "https://campus.test/course?id=1#section-2", g.SectionURL)
		assert.Equal(t, "intro to genetics", g.SectionSnippet)
		// The section record is a header annotation, not a list item.
		require.Len(t, g.Results, 1)
		assert.Equal(t, "worksheet", g.Results[0].Title)
	})

	t.Run("section title match carries no snippet", func(t *testing.T) {
		records := []domain.MatchRecord{
			{
				Kind: domain.MatchTitle, ModuleType: domain.ModuleTypeSection,
				Title: "Genetics", SectionNumber: 2, SectionName: "Genetics",
			},
		}

		groups := a.GroupBySection(records)
		require.Len(t, groups, 1)
		assert.True(t, groups[0].SectionMatched)
		assert.Empty(t, groups[0].SectionSnippet)
	})

	t.Run("empty groups are dropped", func(t *testing.T) {
		assert.Empty(t, a.GroupBySection(nil))
	})
}

// TestAggregator_BuildPage tests the full post-processing pipeline.
func TestAggregator_BuildPage(t *testing.T) {
	a := NewAggregator()
	q := domain.NewQuery("cell", domain.FilterAll)

	flatRecords := func(n int) []domain.MatchRecord {
		records := make([]domain.MatchRecord, 0, n)
		for i := 0; i < n; i++ {
			records = append(records, domain.MatchRecord{
				Kind:          domain.MatchContent,
				Title:         "unit",
				URL:           "https://campus.test/mod/page/view.php?id=" + string(rune('a'+i)),
				SectionNumber: i % 3,
			})
		}
		return records
	}

	t.Run("flat pagination slices records", func(t *testing.T) {
		page := a.BuildPage(q, flatRecords(25), domain.SearchOptions{Page: 1, PerPage: 10})

		assert.Equal(t, 25, page.Total)
		assert.False(t, page.Grouped)
		assert.Len(t, page.Results, 10)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasPrevious)
		assert.True(t, page.Pagination.HasNext)
	})

	t.Run("last flat page is short", func(t *testing.T) {
		page := a.BuildPage(q, flatRecords(25), domain.SearchOptions{Page: 2, PerPage: 10})

		assert.Len(t, page.Results, 5)
		assert.False(t, page.Pagination.HasNext)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page := a.BuildPage(q, flatRecords(5), domain.SearchOptions{Page: 9, PerPage: 10})

		assert.Empty(t, page.Results)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("grouped pagination pages over groups", func(t *testing.T) {
		// 25 records spread over 3 sections; grouped paging counts
		// groups, not records.
		page := a.BuildPage(q, flatRecords(25), domain.SearchOptions{Page: 0, PerPage: 2, Grouped: true})

		assert.True(t, page.Grouped)
		assert.Len(t, page.Groups, 2)
		assert.Equal(t, 2, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
	})

	t.Run("clamps negative page and zero page size", func(t *testing.T) {
		page := a.BuildPage(q, flatRecords(3), domain.SearchOptions{Page: -4, PerPage: 0})

		assert.Equal(t, 0, page.Pagination.Page)
		assert.Equal(t, 1, page.Pagination.PerPage)
		assert.Len(t, page.Results, 1)
	})

	t.Run("empty input yields one empty page", func(t *testing.T) {
		page := a.BuildPage(q, nil, domain.SearchOptions{Page: 0, PerPage: 10})

		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 1, page.Pagination.TotalPages)
		assert.False(t, page.Pagination.HasPrevious)
		assert.False(t, page.Pagination.HasNext)
	})
}

// TestBuildPageLinks tests page link bar compression.
func TestBuildPageLinks(t *testing.T) {
	numbers := func(links []domain.PageLink) []int {
		out := make([]int, 0, len(links))
		for _, l := range links {
			if l.Ellipsis {
				out = append(out, -1)
				continue
			}
			out = append(out, l.Number)
		}
		return out
	}

	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{
			name:       "few pages show every number",
			current:    2,
			totalPages: 5,
			want:       []int{0, 1, 2, 3, 4},
		},
		{
			name:       "exactly seven pages show every number",
			current:    0,
			totalPages: 7,
			want:       []int{0, 1, 2, 3, 4, 5, 6},
		},
		{
			name:       "window clamps at the start",
			current:    0,
			totalPages: 20,
			want:       []int{0, 1, 2, 3, 4, 5, -1, 19},
		},
		{
			name:       "window centres in the middle",
			current:    10,
			totalPages: 20,
			want:       []int{0, -1, 8, 9, 10, 11, 12, -1, 19},
		},
		{
			name:       "window clamps at the end",
			current:    19,
			totalPages: 20,
			want:       []int{0, -1, 14, 15, 16, 17, 18, 19},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := buildPageLinks(tt.current, tt.totalPages)
			assert.Equal(t, tt.want, numbers(links))

			for _, l := range links {
				if l.Current {
					assert.Equal(t, tt.current, l.Number)
				}
			}
		})
	}
}
