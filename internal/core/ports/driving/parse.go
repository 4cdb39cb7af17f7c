package driving

import (
	"context"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// ParseService turns ingredient lines into structured results.
type ParseService interface {
	// Parse parses one ingredient line.
	// Returns domain.ErrInputTooLong if the line exceeds the configured limit.
	Parse(ctx context.Context, line string) (*domain.ParseResult, error)

	// ParseBatch parses lines concurrently. Results keep the input order.
	ParseBatch(ctx context.Context, lines []string) ([]domain.ParseResult, error)

	// Normalise returns the line as the parser sees it after cleanup.
	Normalise(line string) string

	// Units returns the unit table, optionally filtered by kind.
	// Returns domain.ErrUnknownUnitKind for an unrecognised kind.
	Units(kind domain.UnitKind) ([]domain.Unit, error)
}
