package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
	"github.com/custodia-labs/larder/internal/parser"
)

// item is one rendered line: the parse result and, with --prep, the
// preparation phrase split from its notes.
type item struct {
	Result domain.ParseResult
	Prep   *prepared
}

type prepared struct {
	Preparation string `json:"preparation" yaml:"preparation"`
	Remainder   string `json:"remainder" yaml:"remainder"`
}

// preparedView is the JSON/YAML shape when --prep is set.
type preparedView struct {
	Input       string             `json:"input" yaml:"input"`
	Result      domain.ParseResult `json:"result" yaml:"result"`
	Preparation string             `json:"preparation" yaml:"preparation"`
	Remainder   string             `json:"remainder" yaml:"remainder"`
}

// renderer writes parse results in one of the output formats.
type renderer struct {
	w      io.Writer
	format domain.OutputFormat
	units  driven.UnitLookup
}

func newRenderer(w io.Writer, format domain.OutputFormat, units driven.UnitLookup) (*renderer, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q (want one of %s)", domain.ErrUnsupportedFormat, format, formatList())
	}
	return &renderer{w: w, format: format, units: units}, nil
}

func formatList() string {
	names := make([]string, 0, len(domain.AllOutputFormats()))
	for _, f := range domain.AllOutputFormats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// withPrep splits the preparation phrase off each result's notes.
func withPrep(results []domain.ParseResult, splitter *parser.PrepSplitter) []item {
	items := make([]item, len(results))
	for i, r := range results {
		items[i] = item{Result: r}
		if splitter != nil {
			prep, rest := splitter.Split(r.Additional)
			items[i].Prep = &prepared{Preparation: prep, Remainder: rest}
		}
	}
	return items
}

// Render writes the items. A single item is written as an object in the
// structured formats, several as a list.
func (r *renderer) Render(items []item) error {
	switch r.format {
	case domain.OutputFormatJSON:
		return r.renderJSON(items)
	case domain.OutputFormatYAML:
		return r.renderYAML(items)
	case domain.OutputFormatTable:
		return r.renderTable(items)
	default:
		return r.renderText(items)
	}
}

func structured(items []item) any {
	values := make([]any, len(items))
	for i, it := range items {
		if it.Prep == nil {
			values[i] = it.Result
			continue
		}
		values[i] = preparedView{
			Input:       it.Result.Input,
			Result:      it.Result,
			Preparation: it.Prep.Preparation,
			Remainder:   it.Prep.Remainder,
		}
	}
	if len(values) == 1 {
		return values[0]
	}
	return values
}

func (r *renderer) renderJSON(items []item) error {
	return r.writeJSON(structured(items))
}

func (r *renderer) renderYAML(items []item) error {
	return r.writeYAML(structured(items))
}

func (r *renderer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(r.w, string(data))
	return err
}

func (r *renderer) writeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return enc.Close()
}

func (r *renderer) renderText(items []item) error {
	for _, it := range items {
		line := r.summary(it.Result)
		if it.Prep != nil && it.Prep.Preparation != "" {
			line += " [" + it.Prep.Preparation + "]"
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) renderTable(items []item) error {
	s := styles.DefaultStyles()
	headers := []string{"QUANTITY", "UNIT", "NAME", "CONVERTED", "NOTES"}
	showPrep := len(items) > 0 && items[0].Prep != nil
	if showPrep {
		headers = append(headers, "PREPARATION")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Muted).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.Subtitle.Padding(0, 1)
			case col == 0:
				return s.Quantity.Padding(0, 1)
			case col == 1:
				return s.Unit.Padding(0, 1)
			default:
				return s.Normal.Padding(0, 1)
			}
		})

	for _, it := range items {
		res := it.Result
		var qty, unit []string
		for _, m := range res.Measurements {
			qty = append(qty, quantityText(m.Quantity))
			unit = append(unit, r.unitText(m))
		}
		converted := ""
		if res.Converted != nil {
			converted = r.measurementText(*res.Converted)
		}
		row := []string{
			strings.Join(qty, " + "),
			strings.Join(unit, " + "),
			strings.Join(res.Names, " or "),
			converted,
			res.Additional,
		}
		if showPrep {
			row[4] = it.Prep.Remainder
			row = append(row, it.Prep.Preparation)
		}
		t.Row(row...)
	}

	_, err := fmt.Fprintln(r.w, t.Render())
	return err
}

// summary renders a result the way a recipe would print it:
// "1.5 cups (180 grams) flour, sifted".
func (r *renderer) summary(res domain.ParseResult) string {
	var parts []string

	if len(res.Measurements) > 0 {
		amounts := make([]string, 0, len(res.Measurements))
		for _, m := range res.Measurements {
			amounts = append(amounts, r.measurementText(m))
		}
		parts = append(parts, strings.Join(amounts, " plus "))
	}
	if res.Converted != nil {
		parts = append(parts, "("+r.measurementText(*res.Converted)+")")
	}
	if len(res.Names) > 0 {
		parts = append(parts, strings.Join(res.Names, " or "))
	}

	out := strings.Join(parts, " ")
	if res.Additional != "" {
		if out == "" {
			return res.Additional
		}
		out += ", " + res.Additional
	}
	return out
}

func (r *renderer) measurementText(m domain.Measurement) string {
	var parts []string
	if m.Quantity != nil {
		parts = append(parts, quantityText(m.Quantity))
	}
	if u := r.unitText(m); u != "" {
		parts = append(parts, u)
	}
	return strings.Join(parts, " ")
}

// unitText pluralises the unit for amounts other than one.
func (r *renderer) unitText(m domain.Measurement) string {
	q := m.Quantity
	if !m.HasUnit() || r.units == nil || q == nil || (!q.Range && q.Min == 1) {
		return m.Unit
	}
	return r.units.Plural(m.Unit)
}

func quantityText(q *domain.Quantity) string {
	if q == nil {
		return ""
	}
	return q.String()
}
