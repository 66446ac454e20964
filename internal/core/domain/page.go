package domain

// PageLink is one slot in the rendered pagination bar.
type PageLink struct {
	// Number is the 0-based page index the link points to.
	// Meaningless when Ellipsis is true.
	Number int

	// Current is true for the page being displayed.
	Current bool

	// Ellipsis marks a compressed gap in the page number sequence.
	Ellipsis bool
}

// Pagination describes the paging state of a result page.
type Pagination struct {
	// Page is the 0-based current page index.
	Page int

	// PerPage is the number of items per page.
	PerPage int

	// TotalItems is the number of pageable items (groups in grouped
	// mode, records in flat mode).
	TotalItems int

	// TotalPages is ceil(TotalItems / PerPage), at least 1.
	TotalPages int

	// HasPrevious is true when an earlier page exists.
	HasPrevious bool

	// HasNext is true when a later page exists.
	HasNext bool

	// Links is the rendered page link bar: up to seven numbered
	// slots with ellipsis compression, recentred on the current page.
	Links []PageLink
}

// ResultPage is the presentation model produced by the aggregator.
// Field semantics are an internal contract with the rendering layer.
type ResultPage struct {
	// Query echoes the searched text.
	Query string

	// Filter echoes the applied scope filter.
	Filter Filter

	// Total is the number of deduplicated match records.
	Total int

	// Grouped selects between Groups and Results.
	Grouped bool

	// Groups is the current page of section groups (grouped mode).
	Groups []GroupedResult

	// Results is the current page of flat records (flat mode).
	Results []MatchRecord

	// Pagination describes the paging state.
	Pagination Pagination
}
