package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/render"
)

// SearchInput is the input schema for the search_course tool.
type SearchInput struct {
	CourseID string `json:"course_id" jsonschema:"identifier of the course to search"`
	Query    string `json:"query" jsonschema:"the search query"`
	Filter   string `json:"filter,omitempty" jsonschema:"scope filter: all, title, content, description, sections, activities, resources or forums (default all)"`
	Page     int    `json:"page,omitempty" jsonschema:"0-based result page (default 0)"`
	PerPage  int    `json:"per_page,omitempty" jsonschema:"results per page (default from settings)"`
}

// SearchOutput is the output schema for the search_course tool.
type SearchOutput struct {
	Results    []SearchResultOutput `json:"results"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	ModuleType  string `json:"module_type"`
	MatchKind   string `json:"match_kind"`
	Snippet     string `json:"snippet,omitempty"`
	Section     string `json:"section,omitempty"`
	ForumName   string `json:"forum_name,omitempty"`
}

// SettingsInput is the input schema for the search_settings tool.
type SettingsInput struct{}

// SettingsOutput is the output schema for the search_settings tool.
type SettingsOutput struct {
	ResultsPerPage        int    `json:"results_per_page"`
	EnableHighlight       bool   `json:"enable_highlight"`
	MaxOccurrencesPerUnit int    `json:"max_occurrences_per_unit"`
	Locale                string `json:"locale"`
	GroupBySection        bool   `json:"group_by_section"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_course",
		Description: "Search the content of a course: section names and summaries, activity and resource names and descriptions, page and book content, forum discussions and posts, lesson and wiki pages",
	}, s.handleSearch)

	if s.ports.Settings != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_settings",
			Description: "Show the effective search settings: page size, highlighting, occurrence cap, locale and grouping",
		}, s.handleSettings)
	}
}

// handleSettings handles the search_settings tool invocation.
func (s *Server) handleSettings(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ SettingsInput,
) (*mcp.CallToolResult, SettingsOutput, error) {
	settings := s.ports.Settings.Get()

	return nil, SettingsOutput{
		ResultsPerPage:        settings.ResultsPerPage,
		EnableHighlight:       settings.EnableHighlight,
		MaxOccurrencesPerUnit: settings.MaxOccurrencesPerUnit,
		Locale:                settings.Locale,
		GroupBySection:        settings.GroupBySection,
	}, nil
}

// handleSearch handles the search_course tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	q := domain.NewQuery(input.Query, domain.ParseFilter(input.Filter))

	opts := domain.SearchOptions{
		Page:    input.Page,
		PerPage: input.PerPage,
	}

	page, err := s.ports.Search.Search(ctx, input.CourseID, q, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results:    make([]SearchResultOutput, len(page.Results)),
		Total:      page.Total,
		Page:       page.Pagination.Page,
		TotalPages: page.Pagination.TotalPages,
	}

	for i := range page.Results {
		rec := page.Results[i]
		output.Results[i] = SearchResultOutput{
			Title:      rec.Title,
			URL:        rec.URL,
			ModuleType: rec.ModuleType,
			MatchKind:  rec.Kind.Label(),
			Snippet:    render.Plain(rec.Snippet),
			Section:    rec.SectionName,
			ForumName:  rec.ForumName,
		}
	}

	return nil, output, nil
}
