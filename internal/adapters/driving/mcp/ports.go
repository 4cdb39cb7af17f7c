package mcp

import (
	"github.com/custodia-labs/larder/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Parse turns lines into results and exposes the unit table.
	Parse driving.ParseService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Parse == nil {
		return ErrMissingParseService
	}
	return nil
}
