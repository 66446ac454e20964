// Package normalise converts rich course markup into comparable plain
// text. It provides HTML-to-text extraction, Unicode-aware case folding,
// whitespace collapsing and multi-language block resolution.
//
// Extraction is tolerant by design: a structured parse that fails or
// yields nothing falls back to a regex stripping pass, and malformed
// markup never raises an error.
package normalise
