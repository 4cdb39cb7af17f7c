package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/larder/internal/core/domain"
)

var (
	historyLimit    int
	historyContains string
	historyFormat   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded parse results",
	Long: `List, show and clear parse results recorded by earlier runs.

History is off by default. Enable it with:
  larder config set history.enabled true`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded lines, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one recorded result",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded results",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries (0 for all)")
	historyListCmd.Flags().StringVarP(&historyContains, "contains", "c", "", "only entries whose input contains this text")
	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "o", "", "output format: text, json, yaml, table (default from config)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func requireHistory() error {
	if historyService == nil || !historyService.Enabled() {
		return fmt.Errorf("%w (run 'larder config set history.enabled true')", domain.ErrHistoryDisabled)
	}
	return nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if err := requireHistory(); err != nil {
		return err
	}

	entries, err := historyService.List(cmd.Context(), domain.HistoryFilter{
		Limit:    historyLimit,
		Contains: historyContains,
	})
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history entries.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%s  %s  %s\n", e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Input)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if err := requireHistory(); err != nil {
		return err
	}

	entry, err := historyService.Get(cmd.Context(), strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	r, err := newRenderer(cmd.OutOrStdout(), outputFormat(historyFormat), unitLookup)
	if err != nil {
		return err
	}
	return r.Render([]item{{Result: entry.Result}})
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if err := requireHistory(); err != nil {
		return err
	}

	n, err := historyService.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Printf("Removed %d entries.\n", n)
	return nil
}
