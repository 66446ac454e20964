package domain

// Default search settings.
const (
	// DefaultResultsPerPage is the results-per-page default.
	DefaultResultsPerPage = 10

	// DefaultSnippetLength is the target snippet length in characters.
	DefaultSnippetLength = 150

	// DefaultLocale is the fallback active locale for multi-language
	// content resolution.
	DefaultLocale = "en"
)

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// ResultsPerPage is the page size for result pagination.
	ResultsPerPage int

	// EnableHighlight toggles highlight markers in snippets and the
	// highlight URL parameter on result links.
	EnableHighlight bool

	// MaxOccurrencesPerUnit caps how many occurrences are highlighted
	// and reported within one content unit. Relevance decisions use the
	// uncapped count. Zero means no cap.
	MaxOccurrencesPerUnit int

	// Locale is the active locale for multi-language block resolution.
	Locale string

	// GroupBySection selects grouped result presentation by default.
	GroupBySection bool
}

// DefaultSearchSettings returns settings with sensible defaults.
func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		ResultsPerPage:        DefaultResultsPerPage,
		EnableHighlight:       true,
		MaxOccurrencesPerUnit: 0,
		Locale:                DefaultLocale,
		GroupBySection:        true,
	}
}
