// Package cli provides the cobra command tree for the scour binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencourse-labs/scour-cli/internal/core/ports/driving"
	"github.com/opencourse-labs/scour-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	searchService   driving.CourseSearchService
	settingsService driving.SettingsService
	courseImporter  CourseImporter
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "scour",
	Short: "Search course content from the terminal",
	Long: `Scour searches the content of imported courses: section names and
summaries, activity and resource names and descriptions, page and book
content, forum discussions and posts, lesson and wiki pages.

Import a course archive with 'scour import', then search it with
'scour search' or browse interactively with 'scour tui'.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles everything the command tree needs.
type Services struct {
	Search   driving.CourseSearchService
	Settings driving.SettingsService
	Importer CourseImporter
}

// SetServices injects the application services into the command tree.
// Must be called before Execute.
func SetServices(s Services) {
	searchService = s.Search
	settingsService = s.Settings
	courseImporter = s.Importer
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}
