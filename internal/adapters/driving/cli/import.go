package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencourse-labs/scour-cli/internal/adapters/driven/storage/sqlite"
)

// CourseImporter loads a course archive into local storage.
type CourseImporter interface {
	Import(ctx context.Context, archive *sqlite.CourseArchive) (string, error)
}

var importCmd = &cobra.Command{
	Use:   "import [archive.json]",
	Short: "Import a course archive",
	Long: `Imports a course archive file into local storage, replacing any
previous import of the same course.

The archive is a JSON export of the course structure: sections, modules
with their descriptions and content, book chapters, lesson pages, forum
discussions with posts, and wiki pages.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if courseImporter == nil {
		return errors.New("course storage not configured")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close() //nolint:errcheck

	archive, err := sqlite.ReadArchive(f)
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}

	courseID, err := courseImporter.Import(cmd.Context(), archive)
	if err != nil {
		return fmt.Errorf("importing course: %w", err)
	}

	cmd.Printf("Imported course %q (id %s)\n", archive.Course.Name, courseID)
	cmd.Printf("Search it with: scour search %s <query>\n", courseID)
	return nil
}
