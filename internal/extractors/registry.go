package extractors

import (
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
	"github.com/opencourse-labs/scour-cli/internal/core/services"
	"github.com/opencourse-labs/scour-cli/internal/extractors/book"
	"github.com/opencourse-labs/scour-cli/internal/extractors/forum"
	"github.com/opencourse-labs/scour-cli/internal/extractors/label"
	"github.com/opencourse-labs/scour-cli/internal/extractors/lesson"
	"github.com/opencourse-labs/scour-cli/internal/extractors/page"
	"github.com/opencourse-labs/scour-cli/internal/extractors/wiki"
)

// DefaultRegistry returns a registry with every built-in module
// extractor registered.
func DefaultRegistry(rel driven.Matcher) *services.ExtractorRegistry {
	r := services.NewExtractorRegistry()
	r.Register(book.New(rel))
	r.Register(forum.New(rel))
	r.Register(label.New(rel))
	r.Register(lesson.New(rel))
	r.Register(page.New(rel))
	r.Register(wiki.New(rel))
	return r
}
