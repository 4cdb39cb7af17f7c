// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/larder/internal/core/domain"
)

// ResultList displays parsed lines, newest first, in a navigable list.
type ResultList struct {
	results  []domain.ParseResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("Nothing parsed yet")
	}

	lines := make([]string, 0, len(r.results)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Parsed (%d)", len(r.results))), "")

	visible := max(r.height-2, 1)
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.results))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderLine(i, r.results[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *ResultList) renderLine(index int, result domain.ParseResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	text := truncate(result.Input, max(r.width-6, 10))
	if index == r.selected {
		return r.styles.Selected.Render(indicator + text)
	}
	return r.styles.Normal.Render(indicator + text)
}

// Summary renders a result with each part styled: quantity, unit, name, notes.
func Summary(s *styles.Styles, result domain.ParseResult) string {
	var parts []string

	for i, m := range result.Measurements {
		if i > 0 {
			parts = append(parts, s.Muted.Render("+"))
		}
		parts = append(parts, measurement(s, m))
	}
	if result.Converted != nil {
		parts = append(parts, s.Muted.Render("(")+measurement(s, *result.Converted)+s.Muted.Render(")"))
	}

	names := make([]string, 0, len(result.Names))
	for _, n := range result.Names {
		names = append(names, s.Name.Render(n))
	}
	if len(names) > 0 {
		parts = append(parts, strings.Join(names, s.Muted.Render(" or ")))
	}

	if result.Additional != "" {
		parts = append(parts, s.Note.Render(result.Additional))
	}
	return strings.Join(parts, " ")
}

func measurement(s *styles.Styles, m domain.Measurement) string {
	var out []string
	if m.Quantity != nil {
		out = append(out, s.Quantity.Render(m.Quantity.String()))
	}
	if m.HasUnit() {
		out = append(out, s.Unit.Render(m.Unit))
	}
	return strings.Join(out, " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// Prepend adds a result at the top and selects it.
func (r *ResultList) Prepend(result domain.ParseResult) {
	r.results = append([]domain.ParseResult{result}, r.results...)
	r.selected = 0
}

// SetResults replaces the list.
func (r *ResultList) SetResults(results []domain.ParseResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.ParseResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.ParseResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}
