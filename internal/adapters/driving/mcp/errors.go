// Package mcp provides an MCP (Model Context Protocol) server adapter for larder.
// It lets AI assistants parse ingredient lines and read the unit table.
package mcp

import "errors"

// ErrMissingParseService is returned when the parse service is not provided.
var ErrMissingParseService = errors.New("mcp: parse service is required")

// ErrNoLines is returned when parse_ingredients is called without lines.
var ErrNoLines = errors.New("mcp: at least one line is required")
