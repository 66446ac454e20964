package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage search settings",
	Long: `View and configure search behaviour: page size, snippet
highlighting and the active content locale.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsPerPageCmd = &cobra.Command{
	Use:   "per-page [n]",
	Short: "Set results per page",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPerPage,
}

var settingsHighlightCmd = &cobra.Command{
	Use:   "highlight [on|off]",
	Short: "Toggle snippet highlighting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHighlight,
}

var settingsLocaleCmd = &cobra.Command{
	Use:   "locale [code]",
	Short: "Set the active content locale",
	Long: `Sets the locale used to resolve multi-language content blocks.
Content tagged for other locales is dropped before matching.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsLocale,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPerPageCmd)
	settingsCmd.AddCommand(settingsHighlightCmd)
	settingsCmd.AddCommand(settingsLocaleCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	cmd.Println("Search Settings")
	cmd.Println("===============")
	cmd.Printf("  Results per page: %d\n", settings.ResultsPerPage)
	cmd.Printf("  Highlighting:     %s\n", onOff(settings.EnableHighlight))
	cmd.Printf("  Occurrence cap:   %d\n", settings.MaxOccurrencesPerUnit)
	cmd.Printf("  Locale:           %s\n", settings.Locale)
	cmd.Printf("  Group by section: %s\n", onOff(settings.GroupBySection))

	return nil
}

func runSettingsPerPage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid page size %q", args[0])
	}

	if err := settingsService.SetResultsPerPage(n); err != nil {
		return fmt.Errorf("failed to set page size: %w", err)
	}

	cmd.Printf("Results per page set to %d\n", n)
	return nil
}

func runSettingsHighlight(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var enabled bool
	switch args[0] {
	case "on", "true", "yes":
		enabled = true
	case "off", "false", "no":
		enabled = false
	default:
		return fmt.Errorf("invalid value %q, expected on or off", args[0])
	}

	if err := settingsService.SetHighlight(enabled); err != nil {
		return fmt.Errorf("failed to set highlighting: %w", err)
	}

	cmd.Printf("Highlighting %s\n", onOff(enabled))
	return nil
}

func runSettingsLocale(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetLocale(args[0]); err != nil {
		return fmt.Errorf("failed to set locale: %w", err)
	}

	cmd.Printf("Locale set to %s\n", args[0])
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
