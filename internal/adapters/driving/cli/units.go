package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/larder/internal/core/domain"
)

var (
	unitsKind   string
	unitsFormat string
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List recognised units",
	Long: `List the canonical units, their kind and every accepted spelling.

Kinds: package, volume, weight, count, size, length.`,
	Args: cobra.NoArgs,
	RunE: runUnits,
}

func init() {
	unitsCmd.Flags().StringVarP(&unitsKind, "kind", "k", "", "only list units of this kind")
	unitsCmd.Flags().StringVarP(&unitsFormat, "format", "o", "table", "output format: text, json, yaml, table")
	rootCmd.AddCommand(unitsCmd)
}

// unitView is the structured output shape for a unit.
type unitView struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     string   `json:"kind" yaml:"kind"`
	Plural   string   `json:"plural,omitempty" yaml:"plural,omitempty"`
	Variants []string `json:"variants" yaml:"variants"`
}

func runUnits(cmd *cobra.Command, _ []string) error {
	if err := requireParse(); err != nil {
		return err
	}

	list, err := parseService.Units(domain.UnitKind(strings.ToLower(unitsKind)))
	if err != nil {
		return err
	}

	format := domain.OutputFormat(strings.ToLower(unitsFormat))
	r, err := newRenderer(cmd.OutOrStdout(), format, nil)
	if err != nil {
		return err
	}

	views := make([]unitView, len(list))
	for i, u := range list {
		views[i] = unitView{Name: u.Name, Kind: u.Kind.String(), Plural: u.Plural, Variants: u.Variants}
	}

	switch format {
	case domain.OutputFormatJSON:
		return r.writeJSON(views)
	case domain.OutputFormatYAML:
		return r.writeYAML(views)
	case domain.OutputFormatText:
		for _, u := range views {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-8s %s\n", u.Name, u.Kind, strings.Join(u.Variants, ", "))
		}
		return nil
	default:
		return renderUnitTable(cmd, views)
	}
}

func renderUnitTable(cmd *cobra.Command, views []unitView) error {
	s := styles.DefaultStyles()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Muted).
		Headers("UNIT", "KIND", "PLURAL", "SPELLINGS").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.Subtitle.Padding(0, 1)
			case col == 0:
				return s.Unit.Padding(0, 1)
			default:
				return s.Normal.Padding(0, 1)
			}
		})
	for _, u := range views {
		t.Row(u.Name, u.Kind, u.Plural, strings.Join(u.Variants, ", "))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
