package mcp

import (
	"context"

	"github.com/custodia-labs/larder/internal/core/domain"
)

// mockParseService is a mock implementation of driving.ParseService.
type mockParseService struct {
	results []domain.ParseResult
	units   []domain.Unit
	err     error

	lines []string
	kind  domain.UnitKind
}

func (m *mockParseService) Parse(_ context.Context, line string) (*domain.ParseResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ParseResult{Input: line}, nil
}

func (m *mockParseService) ParseBatch(_ context.Context, lines []string) ([]domain.ParseResult, error) {
	m.lines = lines
	return m.results, m.err
}

func (m *mockParseService) Normalise(line string) string {
	return "normalised: " + line
}

func (m *mockParseService) Units(kind domain.UnitKind) ([]domain.Unit, error) {
	m.kind = kind
	if m.err != nil {
		return nil, m.err
	}
	if kind == "" {
		return m.units, nil
	}
	var out []domain.Unit
	for _, u := range m.units {
		if u.Kind == kind {
			out = append(out, u)
		}
	}
	return out, nil
}
