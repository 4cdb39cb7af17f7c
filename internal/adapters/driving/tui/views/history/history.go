// Package history provides the recorded parse results view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driving"
)

// pageSize caps how many entries are loaded.
const pageSize = 100

// View lists recorded parse results, newest first.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	historyService driving.HistoryService
	ctx            context.Context

	entries  []domain.HistoryEntry
	selected int
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new history view. historyService may be nil.
func NewView(s *styles.Styles, km *keymap.KeyMap, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		historyService: historyService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Enabled reports whether there is history to show.
func (v *View) Enabled() bool {
	return v.historyService != nil && v.historyService.Enabled()
}

// Init loads the most recent entries.
func (v *View) Init() tea.Cmd {
	if !v.Enabled() {
		return nil
	}
	svc := v.historyService
	ctx := v.ctx
	return func() tea.Msg {
		entries, err := svc.List(ctx, domain.HistoryFilter{Limit: pageSize})
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.entries = msg.Entries
		v.err = msg.Err
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case key.Matches(msg, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case key.Matches(msg, v.keymap.Down):
			if v.selected < len(v.entries)-1 {
				v.selected++
			}
		case key.Matches(msg, v.keymap.Parse):
			if e := v.SelectedEntry(); e != nil {
				line := e.Input
				return v, func() tea.Msg {
					return messages.ParseRequested{Line: line}
				}
			}
		}
	}
	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("History"), ""}

	switch {
	case !v.Enabled():
		sections = append(sections,
			v.styles.Muted.Render("History is disabled."),
			v.styles.Muted.Render("Enable it with: larder config set history.enabled true"),
		)
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case len(v.entries) == 0:
		sections = append(sections, v.styles.Muted.Render("No history yet"))
	default:
		sections = append(sections, v.renderEntries())
		if e := v.SelectedEntry(); e != nil {
			sections = append(sections, "", list.Summary(v.styles, e.Result))
		}
	}

	sections = append(sections, "", v.styles.Help.Render("[j/k] Navigate  [Enter] Parse again  [Esc] Back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderEntries() string {
	visible := max(v.height-10, 1)
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.entries))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := v.entries[i]
		text := fmt.Sprintf("%s  %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Input)
		if i == v.selected {
			lines = append(lines, v.styles.Selected.Render("> "+text))
		} else {
			lines = append(lines, v.styles.Normal.Render("  "+text))
		}
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the loaded entries.
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// SelectedEntry returns the selected entry, or nil if none.
func (v *View) SelectedEntry() *domain.HistoryEntry {
	if v.selected < 0 || v.selected >= len(v.entries) {
		return nil
	}
	return &v.entries[v.selected]
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
