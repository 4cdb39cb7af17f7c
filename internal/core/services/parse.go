package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
	"github.com/custodia-labs/larder/internal/core/ports/driving"
	"github.com/custodia-labs/larder/internal/logger"
	"github.com/custodia-labs/larder/internal/parser"
)

// Ensure ParseService implements the interface.
var _ driving.ParseService = (*ParseService)(nil)

// ParseService parses ingredient lines and optionally records them.
type ParseService struct {
	parser   *parser.Parser
	lookup   driven.UnitLookup
	history  driven.HistoryStore
	settings domain.ParserSettings
}

// NewParseService creates a new parse service.
// The history parameter is optional (can be nil).
func NewParseService(
	lookup driven.UnitLookup,
	history driven.HistoryStore,
	settings domain.ParserSettings,
) *ParseService {
	if settings.MaxInputLength <= 0 {
		settings.MaxInputLength = domain.DefaultMaxInputLength
	}
	if settings.Workers <= 0 {
		settings.Workers = domain.DefaultWorkers
	}
	return &ParseService{
		parser:   parser.New(lookup, parser.WithTracer(traceStage)),
		lookup:   lookup,
		history:  history,
		settings: settings,
	}
}

func traceStage(stage, rest string) {
	logger.Debug("%s: %q", stage, rest)
}

// Parse parses one ingredient line.
func (s *ParseService) Parse(ctx context.Context, line string) (*domain.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(line) > s.settings.MaxInputLength {
		parseTotal.WithLabelValues(outcomeRejected).Inc()
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrInputTooLong, len(line), s.settings.MaxInputLength)
	}

	logger.Section("Parse")
	logger.Debug("Input: %q", line)

	start := time.Now()
	result := s.parser.Parse(line)
	parseDuration.Observe(time.Since(start).Seconds())

	if len(result.Measurements) > 0 {
		parseTotal.WithLabelValues(outcomeMeasured).Inc()
	} else {
		parseTotal.WithLabelValues(outcomeNameOnly).Inc()
	}
	logger.Info("Parsed: %s", result.String())

	s.record(ctx, result)
	return &result, nil
}

// record saves a result to history. Failures are logged and not returned.
func (s *ParseService) record(ctx context.Context, result domain.ParseResult) {
	if s.history == nil || strings.TrimSpace(result.Input) == "" {
		return
	}
	entry := &domain.HistoryEntry{
		ID:        uuid.NewString(),
		Input:     result.Input,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.history.Save(ctx, entry); err != nil {
		logger.Warn("Failed to record history: %v", err)
	}
}

// ParseBatch parses lines concurrently, at most settings.Workers at a time.
// Results keep the input order. The first failing line cancels the batch.
func (s *ParseService) ParseBatch(ctx context.Context, lines []string) ([]domain.ParseResult, error) {
	batchSize.Observe(float64(len(lines)))
	logger.Debug("Batch: %d lines, %d workers", len(lines), s.settings.Workers)
	defer logger.Timed("Batch")()

	results := make([]domain.ParseResult, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.Workers)

	for i, line := range lines {
		g.Go(func() error {
			r, err := s.Parse(gctx, line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = *r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Normalise returns the line as the parser sees it.
func (s *ParseService) Normalise(line string) string {
	return parser.Normalise(line)
}

// Units returns the unit table, or only the units of kind when it is set.
func (s *ParseService) Units(kind domain.UnitKind) ([]domain.Unit, error) {
	all := s.lookup.Units()
	if kind == "" {
		return all, nil
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownUnitKind, kind)
	}

	var filtered []domain.Unit
	for _, u := range all {
		if u.Kind == kind {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}
