package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change settings stored in ~/.larder/config.toml.

Use 'larder config keys' to list the settings that can be changed.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting, for example:
  larder config set output.format json
  larder config set history.enabled true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Parser]")
	cmd.Printf("  Max input length: %d bytes\n", settings.Parser.MaxInputLength)
	cmd.Printf("  Workers: %d\n", settings.Parser.Workers)
	cmd.Println()

	cmd.Println("[Units]")
	if settings.Units.ExtraFile != "" {
		cmd.Printf("  Extra file: %s\n", settings.Units.ExtraFile)
	} else {
		cmd.Println("  Extra file: (none)")
	}
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format)
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Println("  Enabled: yes")
		cmd.Printf("  Backend: %s\n", settings.History.Backend)
		if settings.History.Dir != "" {
			cmd.Printf("  Directory: %s\n", settings.History.Dir)
		}
	} else {
		cmd.Println("  Enabled: no")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}
