// Package parse provides the line input and parsed results view for the TUI.
package parse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driving"
)

// View shows a line input above the lines parsed so far, with a detail
// panel for the selected result.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.LineInput
	list      *list.ResultList
	statusbar *status.Bar

	parseService driving.ParseService
	ctx          context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a line, false = browsing results
}

// NewView creates a new parse view.
func NewView(s *styles.Styles, km *keymap.KeyMap, parseService driving.ParseService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewLineInput(s, 0),
		list:         list.NewResultList(s),
		statusbar:    status.NewBar(s, km),
		parseService: parseService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
		focusInput:   true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the parse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ParseRequested:
		v.input.SetValue(msg.Line)
		return v, v.submit(msg.Line)

	case messages.LineParsed:
		v.handleLineParsed(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if key.Matches(msg, v.keymap.Back) {
		if !v.focusInput {
			v.focusInput = true
			v.input.Focus()
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		if key.Matches(msg, v.keymap.Parse) {
			return v, v.submit(v.input.Value())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
	case key.Matches(msg, v.keymap.NewLine):
		v.focusInput = true
		v.input.Reset()
		v.statusbar.SetMessage("")
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *View) submit(line string) tea.Cmd {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	v.statusbar.SetState(status.StateParsing)
	v.statusbar.SetMessage("")
	return v.performParse(line)
}

// performParse runs the parse service off the update loop.
func (v *View) performParse(line string) tea.Cmd {
	svc := v.parseService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoParseService}
		}
		result, err := svc.Parse(ctx, line)
		return messages.LineParsed{Line: line, Result: result, Err: err}
	}
}

func (v *View) handleLineParsed(msg messages.LineParsed) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	if msg.Result == nil {
		return
	}

	v.err = nil
	v.list.Prepend(*msg.Result)
	v.input.Reset()
	v.input.Blur()
	v.focusInput = false
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetCount(v.list.Count())
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the parse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Parse"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())

	if r := v.list.SelectedResult(); r != nil {
		sections = append(sections, "", v.renderDetail(*r))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDetail shows every field of a result in a bordered panel.
func (v *View) renderDetail(r domain.ParseResult) string {
	row := func(label, value string) string {
		return v.styles.Label.Render(label) + value
	}

	var rows []string
	rows = append(rows, list.Summary(v.styles, r), "")

	name := strings.Join(r.Names, " | ")
	if name == "" {
		name = v.styles.Muted.Render("none")
	}
	rows = append(rows, row("Name", name))

	if len(r.Measurements) == 0 {
		rows = append(rows, row("Amount", v.styles.Muted.Render("none")))
	}
	for i, m := range r.Measurements {
		label := "Amount"
		if i > 0 {
			label = "Added"
		}
		rows = append(rows, row(label, describe(m)))
	}
	if r.Converted != nil {
		rows = append(rows, row("Converted", describe(*r.Converted)))
	}
	if r.Additional != "" {
		rows = append(rows, row("Notes", r.Additional))
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(rows, "\n"))
}

func describe(m domain.Measurement) string {
	s := m.String()
	if s == "" {
		s = "-"
	}
	if m.IsRange() {
		s = fmt.Sprintf("%s (range)", s)
	}
	return s
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, max(height-20, 4)) // Reserve space for header, detail and status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Line returns the current input value.
func (v *View) Line() string {
	return v.input.Value()
}

// SetLine sets the input value.
func (v *View) SetLine(line string) {
	v.input.SetValue(line)
}

// Results returns the parsed lines, newest first.
func (v *View) Results() []domain.ParseResult {
	return v.list.Results()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.ParseResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to input mode and clears the error. Parsed lines
// are kept for the session.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.Reset()
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}
