package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Type a line and press enter to see how it parses. Browse the unit table and
recorded history from the menu.

Controls:
  Enter      - Parse line / Select
  ↑/k, ↓/j   - Navigate
  n          - New line
  ←/→, tab   - Change unit kind
  Esc        - Back
  ctrl+c     - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(parseService, historyService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
