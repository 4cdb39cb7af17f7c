package domain

import "time"

// HistoryEntry is a parse result kept by a history store.
type HistoryEntry struct {
	// ID is a unique identifier (UUID).
	ID string

	// Input is the raw ingredient line.
	Input string

	// Result is the parsed form of Input.
	Result ParseResult

	// CreatedAt is when the line was parsed.
	CreatedAt time.Time
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	// Limit caps the number of entries returned. Zero means no limit.
	Limit int

	// Contains keeps only entries whose input contains this text,
	// ignoring ASCII case.
	Contains string
}
