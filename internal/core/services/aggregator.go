package services

import (
	"net/url"
	"sort"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
)

// pageLinkWindow is the maximum number of numbered slots in a page
// link bar before ellipsis compression kicks in.
const pageLinkWindow = 7

// Aggregator turns raw match records into the paged presentation
// model: deduplication by canonical URL, hierarchical grouping by
// section/subsection, and page-level pagination.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// BuildPage runs the full post-processing pipeline over raw records.
// Grouping happens before pagination, so a subsection and its matches
// are never split across pages.
func (a *Aggregator) BuildPage(q domain.Query, records []domain.MatchRecord, opts domain.SearchOptions) *domain.ResultPage {
	page := opts.Page
	if page < 0 {
		page = 0
	}
	perPage := opts.PerPage
	if perPage < 1 {
		perPage = 1
	}

	deduped := a.Deduplicate(records)

	result := &domain.ResultPage{
		Query:   q.Text,
		Filter:  q.Filter,
		Total:   len(deduped),
		Grouped: opts.Grouped,
	}

	if opts.Grouped {
		groups := a.GroupBySection(deduped)
		result.Pagination = paginationFor(page, perPage, len(groups))
		result.Groups = pageSlice(groups, page, perPage)
	} else {
		result.Pagination = paginationFor(page, perPage, len(deduped))
		result.Results = pageSlice(deduped, page, perPage)
	}

	return result
}

// Deduplicate collapses records sharing a canonical URL key, keeping
// the highest-priority one (content > description-or-content > title;
// ties keep the first seen). Records without a parseable URL are
// always kept. The operation is idempotent.
func (a *Aggregator) Deduplicate(records []domain.MatchRecord) []domain.MatchRecord {
	out := make([]domain.MatchRecord, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		key, ok := canonicalKey(rec.URL)
		if !ok {
			out = append(out, rec)
			continue
		}

		if i, seen := index[key]; seen {
			if rec.Kind.Priority() > out[i].Kind.Priority() {
				out[i] = rec
			}
			continue
		}

		index[key] = len(out)
		out = append(out, rec)
	}

	return out
}

// canonicalKey builds the deduplication key for a record URL: scheme,
// host, port and path plus the remaining query parameters with the
// highlight parameter stripped, and the fragment kept verbatim - two
// records differing only by anchor address distinct in-page matches
// and are never merged.
func canonicalKey(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	params := u.Query()
	params.Del(domain.HighlightParam)

	canonical := url.URL{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     u.Path,
		RawQuery: params.Encode(),
		Fragment: u.Fragment,
	}
	return canonical.String(), true
}

// GroupBySection buckets records under their top-level section, with
// subsection records nested one level down. Section-kind records
// enhance the group header instead of appearing as list items. Groups
// are sorted numerically, subsections numerically within their parent,
// and a group is emitted only if it has direct results, a matched
// subsection, or its own section match.
func (a *Aggregator) GroupBySection(records []domain.MatchRecord) []domain.GroupedResult {
	groups := make(map[int]*domain.GroupedResult)
	subGroups := make(map[int]map[int]*domain.GroupedResult)

	ensure := func(m map[int]*domain.GroupedResult, number int, name string) *domain.GroupedResult {
		g, ok := m[number]
		if !ok {
			g = &domain.GroupedResult{SectionNumber: number, SectionName: name}
			m[number] = g
		}
		if g.SectionName == "" {
			g.SectionName = name
		}
		return g
	}

	for _, rec := range records {
		top := ensure(groups, rec.GroupNumber(), rec.GroupName())

		target := top
		if rec.ParentSectionNumber != nil {
			subs, ok := subGroups[top.SectionNumber]
			if !ok {
				subs = make(map[int]*domain.GroupedResult)
				subGroups[top.SectionNumber] = subs
			}
			target = ensure(subs, rec.SectionNumber, rec.SectionName)
		}

		if rec.IsSection() {
			target.SectionMatched = true
			target.SectionURL = rec.URL
			if rec.Title != "" {
				target.SectionName = rec.Title
			}
			if rec.Kind != domain.MatchTitle {
				target.SectionSnippet = rec.Snippet
			}
			continue
		}

		target.Results = append(target.Results, rec)
	}

	numbers := make([]int, 0, len(groups))
	for n := range groups {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	out := make([]domain.GroupedResult, 0, len(groups))
	for _, n := range numbers {
		g := groups[n]

		subNumbers := make([]int, 0, len(subGroups[n]))
		for sn := range subGroups[n] {
			subNumbers = append(subNumbers, sn)
		}
		sort.Ints(subNumbers)
		for _, sn := range subNumbers {
			if sub := subGroups[n][sn]; sub.HasContent() {
				g.Subsections = append(g.Subsections, *sub)
			}
		}

		if g.HasContent() {
			out = append(out, *g)
		}
	}

	return out
}

// paginationFor computes the paging descriptor for a 0-based page over
// totalItems items.
func paginationFor(page, perPage, totalItems int) domain.Pagination {
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	return domain.Pagination{
		Page:        page,
		PerPage:     perPage,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: page > 0,
		HasNext:     (page+1)*perPage < totalItems,
		Links:       buildPageLinks(page, totalPages),
	}
}

// pageSlice returns the items belonging to a 0-based page.
func pageSlice[T any](items []T, page, perPage int) []T {
	start := page * perPage
	if start >= len(items) {
		return nil
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// buildPageLinks renders up to seven numbered page slots with ellipsis
// compression, recentred around the current page and clamped at the
// ends of the range. The first and last pages are always visible.
func buildPageLinks(current, totalPages int) []domain.PageLink {
	if totalPages <= pageLinkWindow {
		links := make([]domain.PageLink, 0, totalPages)
		for i := 0; i < totalPages; i++ {
			links = append(links, domain.PageLink{Number: i, Current: i == current})
		}
		return links
	}

	last := totalPages - 1

	// Five middle slots between the fixed first and last pages.
	start := current - 2
	end := current + 2
	if start < 1 {
		start = 1
		end = pageLinkWindow - 2
	}
	if end > last-1 {
		end = last - 1
		start = last - (pageLinkWindow - 2)
	}

	links := []domain.PageLink{{Number: 0, Current: current == 0}}
	if start > 1 {
		links = append(links, domain.PageLink{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		links = append(links, domain.PageLink{Number: i, Current: i == current})
	}
	if end < last-1 {
		links = append(links, domain.PageLink{Ellipsis: true})
	}
	return append(links, domain.PageLink{Number: last, Current: current == last})
}
