// Package units provides the unit table view for the TUI.
package units

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driving"
)

// maxVariants caps how many spellings are shown per unit.
const maxVariants = 6

// View lists the unit table, filtered by kind.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	parseService driving.ParseService

	// kinds is the filter cycle; the empty kind means all units.
	kinds []domain.UnitKind
	kind  int
	units []domain.Unit
	err   error

	width  int
	height int
	ready  bool
}

// NewView creates a new units view.
func NewView(s *styles.Styles, km *keymap.KeyMap, parseService driving.ParseService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateUnits)

	return &View{
		styles:       s,
		keymap:       km,
		statusbar:    bar,
		parseService: parseService,
		kinds:        append([]domain.UnitKind{""}, domain.AllUnitKinds()...),
		width:        80,
		height:       24,
	}
}

// Init loads the units for the current filter.
func (v *View) Init() tea.Cmd {
	return v.loadUnits()
}

func (v *View) loadUnits() tea.Cmd {
	svc := v.parseService
	kind := v.Kind()
	return func() tea.Msg {
		if svc == nil {
			return messages.UnitsLoaded{Err: ErrNoParseService}
		}
		units, err := svc.Units(kind)
		return messages.UnitsLoaded{Units: units, Err: err}
	}
}

// Update handles messages for the units view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.UnitsLoaded:
		v.units = msg.Units
		v.err = msg.Err
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StateUnits)
			v.statusbar.SetMessage("")
			v.statusbar.SetCount(len(msg.Units))
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case key.Matches(msg, v.keymap.NextKind):
			v.kind = (v.kind + 1) % len(v.kinds)
			return v, v.loadUnits()
		case key.Matches(msg, v.keymap.PrevKind):
			v.kind = (v.kind - 1 + len(v.kinds)) % len(v.kinds)
			return v, v.loadUnits()
		}
	}
	return v, nil
}

// View renders the units view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Units"),
		"",
		v.renderKinds(),
		"",
	}

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case len(v.units) == 0:
		sections = append(sections, v.styles.Muted.Render("No units"))
	default:
		sections = append(sections, v.renderTable())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderKinds() string {
	tabs := make([]string, 0, len(v.kinds))
	for i, k := range v.kinds {
		label := "all"
		if k != "" {
			label = k.String()
		}
		if i == v.kind {
			tabs = append(tabs, v.styles.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, v.styles.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (v *View) renderTable() string {
	rows := v.units
	// Header, borders and status bar take about ten lines.
	if limit := v.height - 12; limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(v.styles.Muted).
		Headers("UNIT", "KIND", "PLURAL", "SPELLINGS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return v.styles.Subtitle
			}
			return v.styles.Normal
		})

	for _, u := range rows {
		t.Row(u.Name, u.Kind.String(), u.Plural, variants(u.Variants))
	}

	out := t.Render()
	if len(rows) < len(v.units) {
		out += "\n" + v.styles.Muted.Render(fmt.Sprintf("... %d more", len(v.units)-len(rows)))
	}
	return out
}

func variants(vs []string) string {
	if len(vs) <= maxVariants {
		return strings.Join(vs, ", ")
	}
	return strings.Join(vs[:maxVariants], ", ") + ", ..."
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Kind returns the current filter. Empty means all kinds.
func (v *View) Kind() domain.UnitKind {
	return v.kinds[v.kind]
}

// Units returns the loaded units.
func (v *View) Units() []domain.Unit {
	return v.units
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
