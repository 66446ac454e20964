// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CourseProvider: Yields course structure and typed sub-content
//   - ConfigStore: Application configuration
//
// # Plugin Interfaces
//
//   - ModuleExtractor: Per-module-type sub-content scanning, registered
//     in a lookup table; unknown types resolve to a no-op extractor
//   - Matcher: Relevance and snippet capability handed to extractors
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
