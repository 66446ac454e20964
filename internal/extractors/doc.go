// Package extractors provides implementations of the ModuleExtractor
// interface for module types with searchable sub-content. Each
// extractor knows how to walk the sub-items of one module type (book
// chapters, forum posts, wiki pages, ...) and emit match records.
//
// Extractors are registered with the ExtractorRegistry at startup.
package extractors
