package mcp

import (
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides course content search.
	Search driving.CourseSearchService

	// Settings exposes the effective search settings.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Settings is optional; defaults apply without it
	return nil
}
