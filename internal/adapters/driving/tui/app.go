package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/views/parse"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/views/units"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView    *menu.View
	parseView   *parse.View
	unitsView   *units.View
	historyView *history.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		parseView:   parse.NewView(s, km, ports.Parse),
		unitsView:   units.NewView(s, km, ports.Parse),
		historyView: history.NewView(s, km, ports.History),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.parseView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("larder"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ParseRequested:
		a.currentView = messages.ViewParse
		a.parseView.Reset()
		a.parseView, cmd = a.parseView.Update(msg)
		return a, cmd

	case messages.LineParsed:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.parseView, cmd = a.parseView.Update(msg)
		return a, cmd

	case messages.UnitsLoaded:
		a.unitsView, cmd = a.unitsView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewParse {
			a.parseView, cmd = a.parseView.Update(msg)
		}
		return a, cmd
	}

	// Cursor blinks and other component messages go to the input.
	if a.currentView == messages.ViewParse {
		a.parseView, cmd = a.parseView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewParse:
		a.parseView, cmd = a.parseView.Update(msg)
	case messages.ViewUnits:
		a.unitsView, cmd = a.unitsView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		if key.Matches(msg, a.keymap.Back) {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewParse:
		a.parseView.Reset()
		return a.parseView.Init()
	case messages.ViewUnits:
		return a.unitsView.Init()
	case messages.ViewHistory:
		return a.historyView.Init()
	case messages.ViewMenu, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewParse:
		return a.parseView.View()
	case messages.ViewUnits:
		return a.unitsView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the keybindings from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(a.styles.Label.Render(h.Key))
			b.WriteString(h.Desc)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.parseView.SetDimensions(width, height)
	a.unitsView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
