// Package tui provides an interactive terminal user interface for larder.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/larder/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Parse turns lines into results. Required.
	Parse driving.ParseService

	// History lists recorded results. Optional.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(parse driving.ParseService, history driving.HistoryService) *Ports {
	return &Ports{
		Parse:   parse,
		History: history,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Parse == nil {
		return ErrMissingParseService
	}
	return nil
}
