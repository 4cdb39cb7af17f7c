// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/larder/internal/core/domain"
)

// ParseRequested is a command to parse one line.
type ParseRequested struct {
	Line string
}

// LineParsed carries a parse result back to the model.
type LineParsed struct {
	Line   string
	Result *domain.ParseResult
	Err    error
}

// UnitsLoaded carries the unit table for the units view.
type UnitsLoaded struct {
	Units []domain.Unit
	Err   error
}

// HistoryLoaded carries recorded entries for the history view.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred is sent when an operation fails.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewParse is the line input and parsed results view.
	ViewParse
	// ViewUnits lists the unit table.
	ViewUnits
	// ViewHistory lists recorded parse results.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewParse:
		return "parse"
	case ViewUnits:
		return "units"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
