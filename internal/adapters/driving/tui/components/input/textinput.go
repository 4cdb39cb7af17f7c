// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
)

// LineInput wraps a bubbles textinput for entering one ingredient line.
type LineInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewLineInput creates a new line input component. limit caps the number
// of characters accepted; zero leaves it unbounded.
func NewLineInput(s *styles.Styles, limit int) *LineInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "1 1/2 cups (180 g) flour, sifted"
	ti.Focus()
	ti.CharLimit = limit
	ti.Width = 50

	return &LineInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the input.
func (l *LineInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (l *LineInput) Update(msg tea.Msg) (*LineInput, tea.Cmd) {
	var cmd tea.Cmd
	l.textinput, cmd = l.textinput.Update(msg)
	return l, cmd
}

// View renders the input.
func (l *LineInput) View() string {
	label := l.styles.Title.Render("Line: ")
	field := l.styles.InputField.Render(l.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (l *LineInput) Value() string {
	return l.textinput.Value()
}

// SetValue sets the input value.
func (l *LineInput) SetValue(value string) {
	l.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (l *LineInput) Focus() tea.Cmd {
	return l.textinput.Focus()
}

// Blur removes focus from the input.
func (l *LineInput) Blur() {
	l.textinput.Blur()
}

// Focused returns whether the input is focused.
func (l *LineInput) Focused() bool {
	return l.textinput.Focused()
}

// SetWidth sets the width of the input.
func (l *LineInput) SetWidth(width int) {
	l.width = width
	// Account for label and padding
	l.textinput.Width = max(width-10, 20)
}

// Width returns the current width.
func (l *LineInput) Width() int {
	return l.width
}

// Reset clears the input.
func (l *LineInput) Reset() {
	l.textinput.Reset()
}
