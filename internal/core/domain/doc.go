// Package domain defines the core business entities for Scour.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Query: A trimmed, length-capped search query with a scope filter
//   - Section / ModuleRef: Scannable course content units
//   - MatchRecord: One field-level match with a highlighted snippet
//   - GroupedResult: A section-level aggregate of matches
//   - ResultPage: The paged presentation model handed to renderers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
