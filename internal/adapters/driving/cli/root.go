// Package cli implements the larder command line on top of cobra.
// Commands read their services from package state set by SetServices, or
// built on first use by the bootstrap function registered from main.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/larder/internal/core/ports/driven"
	"github.com/custodia-labs/larder/internal/core/ports/driving"
	"github.com/custodia-labs/larder/internal/logger"
)

// Options are the global flags passed to the bootstrap function.
type Options struct {
	// ConfigDir overrides ~/.larder.
	ConfigDir string

	// Verbose enables debug logging.
	Verbose bool
}

// Services holds the driving ports the commands use.
type Services struct {
	Parse    driving.ParseService
	History  driving.HistoryService
	Settings driving.SettingsService

	// Units renders plural unit names in text output.
	Units driven.UnitLookup

	// Close releases storage. Optional.
	Close func() error
}

// BootstrapFunc builds services from the global options.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	version = "dev"

	configDir string
	verbose   bool

	bootstrap BootstrapFunc
	closer    func() error

	parseService    driving.ParseService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	unitLookup      driven.UnitLookup
)

var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "Parse recipe ingredient lines",
	Long: `Larder turns free-text recipe ingredient lines such as
"1 1/2 cups (180 g) flour, sifted" into structured data: quantity, unit,
ingredient name, conversions and preparation notes.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.larder)")
}

// SetVersion sets the version reported by "larder version".
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services before a command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	parseService = s.Parse
	historyService = s.History
	settingsService = s.Settings
	unitLookup = s.Units
	closer = s.Close
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || parseService != nil {
		return nil
	}
	s, err := bootstrap(Options{ConfigDir: configDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(s)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closer == nil {
		return nil
	}
	err := closer()
	closer = nil
	return err
}

func requireParse() error {
	if parseService == nil {
		return fmt.Errorf("parse %w", errNotConfigured)
	}
	return nil
}
