package tui

import "errors"

// ErrMissingParseService is returned when the parse service is not provided.
var ErrMissingParseService = errors.New("tui: parse service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
