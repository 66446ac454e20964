package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/render"
)

var (
	searchFilter  string
	searchPage    int
	searchPerPage int
	searchGrouped bool
	searchFlat    bool
	searchJSON    bool
	searchHTML    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [course-id] [query]",
	Short: "Search course content",
	Long: `Searches a course for the query across section names and summaries,
activity and resource names and descriptions, and the content of pages,
books, forums, lessons and wikis.

Results are deduplicated by target URL and grouped by course section
unless --flat is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchFilter, "filter", "f", "all",
		"scope filter: all, title, content, description, sections, activities, resources, forums")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 0, "0-based result page")
	searchCmd.Flags().IntVarP(&searchPerPage, "per-page", "n", 0, "results per page (0 = settings default)")
	searchCmd.Flags().BoolVar(&searchGrouped, "grouped", false, "group results by section")
	searchCmd.Flags().BoolVar(&searchFlat, "flat", false, "flat result list, no section grouping")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchHTML, "html", false, "render snippets as HTML")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	courseID, query := args[0], args[1]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	q := domain.NewQuery(query, domain.ParseFilter(searchFilter))
	opts := domain.SearchOptions{
		Page:    searchPage,
		PerPage: searchPerPage,
		Grouped: groupedMode(cmd),
	}

	page, err := searchService.Search(context.Background(), courseID, q, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, page)
	}

	return outputSearchPage(cmd, page)
}

// groupedMode resolves the presentation mode: an explicit flag wins,
// otherwise the settings default applies.
func groupedMode(cmd *cobra.Command) bool {
	if searchFlat {
		return false
	}
	if cmd != nil && cmd.Flags().Changed("grouped") {
		return searchGrouped
	}
	if settingsService != nil {
		return settingsService.Get().GroupBySection
	}
	return domain.DefaultSearchSettings().GroupBySection
}

func outputSearchJSON(cmd *cobra.Command, page *domain.ResultPage) error {
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchPage(cmd *cobra.Command, page *domain.ResultPage) error {
	if page.Total == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results for %q: %d\n", page.Query, page.Total)
	cmd.Println()

	if page.Grouped {
		for _, group := range page.Groups {
			printGroup(cmd, group, 0)
		}
	} else {
		for i := range page.Results {
			printRecord(cmd, page.Results[i], 0, i+1)
		}
	}

	if bar := render.PaginationBar(page.Pagination); bar != "" {
		cmd.Println(bar)
	}

	return nil
}

func printGroup(cmd *cobra.Command, group domain.GroupedResult, depth int) {
	pad := strings.Repeat("  ", depth)

	header := group.SectionName
	if header == "" {
		header = fmt.Sprintf("Section %d", group.SectionNumber)
	}
	cmd.Printf("%s%s\n", pad, header)

	if group.SectionMatched {
		cmd.Printf("%s  * Section matched", pad)
		if group.SectionURL != "" {
			cmd.Printf("  %s", group.SectionURL)
		}
		cmd.Println()
		if group.SectionSnippet != "" {
			cmd.Printf("%s    %s\n", pad, renderSnippet(group.SectionSnippet))
		}
	}

	for i := range group.Results {
		printRecord(cmd, group.Results[i], depth+1, 0)
	}

	for _, sub := range group.Subsections {
		printGroup(cmd, sub, depth+1)
	}

	if depth == 0 {
		cmd.Println()
	}
}

func printRecord(cmd *cobra.Command, rec domain.MatchRecord, depth, ordinal int) {
	pad := strings.Repeat("  ", depth)

	if ordinal > 0 {
		cmd.Printf("%s[%d] %s (%s, %s)\n", pad, ordinal, rec.Title, rec.ModuleType, rec.Kind.Label())
	} else {
		cmd.Printf("%s- %s (%s, %s)\n", pad, rec.Title, rec.ModuleType, rec.Kind.Label())
	}
	if rec.ForumName != "" && rec.ForumName != rec.Title {
		cmd.Printf("%s    Forum: %s\n", pad, rec.ForumName)
	}
	if rec.URL != "" {
		cmd.Printf("%s    %s\n", pad, rec.URL)
	}
	if rec.Snippet != "" {
		cmd.Printf("%s    %s\n", pad, renderSnippet(rec.Snippet))
	}
	if ordinal > 0 {
		cmd.Println()
	}
}

func renderSnippet(s string) string {
	if searchHTML {
		return render.HTML(s)
	}
	// Terminal escapes are noise when the output is piped
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return render.Plain(s)
	}
	return render.Terminal(s)
}
