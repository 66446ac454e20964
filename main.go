// Command scour searches the content of locally imported courses.
package main

import (
	"fmt"
	"os"

	"github.com/opencourse-labs/scour-cli/internal/adapters/driven/config/file"
	"github.com/opencourse-labs/scour-cli/internal/adapters/driven/storage/sqlite"
	"github.com/opencourse-labs/scour-cli/internal/adapters/driving/cli"
	"github.com/opencourse-labs/scour-cli/internal/core/ports/driven"
	"github.com/opencourse-labs/scour-cli/internal/core/services"
	"github.com/opencourse-labs/scour-cli/internal/extractors"
	"github.com/opencourse-labs/scour-cli/internal/logger"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialising course storage: %w", err)
	}
	defer store.Close() //nolint:errcheck

	registryFor := func(rel driven.Matcher) *services.ExtractorRegistry {
		return extractors.DefaultRegistry(rel)
	}

	searchService := services.NewSearchService(store, configStore, registryFor)
	settingsService := services.NewSettingsService(configStore, searchService)

	// Re-read settings when the config file changes on disk
	stopWatch, err := configStore.Watch(func() {
		logger.Debug("Config file reloaded")
	})
	if err == nil {
		defer stopWatch()
	} else {
		logger.Warn("Config watch unavailable: %v", err)
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Search:   searchService,
		Settings: settingsService,
		Importer: store,
	})

	return cli.Execute()
}
