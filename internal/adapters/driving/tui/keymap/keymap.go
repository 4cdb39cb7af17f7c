// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns to the menu, or to the input from the result list.
	Back key.Binding

	// Parse submits the current line.
	Parse key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// NextKind cycles the unit kind filter forward.
	NextKind key.Binding

	// PrevKind cycles the unit kind filter backward.
	PrevKind key.Binding

	// NewLine returns focus to the input from the result list.
	NewLine key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Parse: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "parse"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next kind"),
		),
		PrevKind: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "previous kind"),
		),
		NewLine: key.NewBinding(
			key.WithKeys("n", "/"),
			key.WithHelp("n", "new line"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Parse, k.Back, k.Quit}
}

// ResultsHelp returns keybindings for navigating parsed lines.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewLine, k.Up, k.Down, k.Back}
}

// UnitsHelp returns keybindings for the units view.
func (k *KeyMap) UnitsHelp() []key.Binding {
	return []key.Binding{k.PrevKind, k.NextKind, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Parse, k.NewLine, k.Back},
		{k.Up, k.Down},
		{k.PrevKind, k.NextKind},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
