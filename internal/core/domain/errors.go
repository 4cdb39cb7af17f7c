package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputTooLong indicates an ingredient line exceeds the configured limit.
	ErrInputTooLong = errors.New("input too long")

	// ErrUnsupportedFormat indicates an unknown output format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnknownUnitKind indicates a unit kind outside the known set.
	ErrUnknownUnitKind = errors.New("unknown unit kind")

	// ErrHistoryDisabled indicates history was requested but no store is configured.
	ErrHistoryDisabled = errors.New("history is disabled")
)
