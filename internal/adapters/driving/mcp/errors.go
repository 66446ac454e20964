// Package mcp provides an MCP (Model Context Protocol) server adapter for Scour.
// It enables AI assistants like Claude to search course content locally.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
