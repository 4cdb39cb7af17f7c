package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/larder/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/services"
	"github.com/custodia-labs/larder/internal/logger"
	"github.com/custodia-labs/larder/internal/units"
)

// mockParseService returns canned results keyed by input line.
type mockParseService struct {
	results map[string]domain.ParseResult
	units   []domain.Unit
	err     error

	mu      sync.Mutex
	batches [][]string
}

func (m *mockParseService) Parse(_ context.Context, line string) (*domain.ParseResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	r := m.result(line)
	return &r, nil
}

func (m *mockParseService) ParseBatch(_ context.Context, lines []string) ([]domain.ParseResult, error) {
	m.mu.Lock()
	m.batches = append(m.batches, lines)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.ParseResult, len(lines))
	for i, line := range lines {
		out[i] = m.result(line)
	}
	return out, nil
}

func (m *mockParseService) batchesSnapshot() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.batches...)
}

func (m *mockParseService) result(line string) domain.ParseResult {
	if r, ok := m.results[line]; ok {
		r.Input = line
		return r
	}
	return domain.ParseResult{Input: line, Names: []string{line}}
}

func (m *mockParseService) Normalise(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

func (m *mockParseService) Units(kind domain.UnitKind) ([]domain.Unit, error) {
	if m.err != nil {
		return nil, m.err
	}
	if kind == "" {
		return m.units, nil
	}
	if !kind.IsValid() {
		return nil, domain.ErrUnknownUnitKind
	}
	var out []domain.Unit
	for _, u := range m.units {
		if u.Kind == kind {
			out = append(out, u)
		}
	}
	return out, nil
}

// flourResult is "1 1/2 cups (180 g) flour, sifted".
func flourResult() domain.ParseResult {
	return domain.ParseResult{
		Names: []string{"flour"},
		Measurements: []domain.Measurement{
			{Quantity: domain.NewScalar(1.5), Unit: "cup"},
		},
		Converted:  &domain.Measurement{Quantity: domain.NewScalar(180), Unit: "gram"},
		Additional: "finely chopped, divided",
	}
}

func newMockParse() *mockParseService {
	return &mockParseService{
		results: map[string]domain.ParseResult{
			"1 1/2 cups (180 g) flour": flourResult(),
			"1 egg": {
				Names:        []string{"egg"},
				Measurements: []domain.Measurement{{Quantity: domain.NewScalar(1)}},
			},
		},
		units: []domain.Unit{
			{Name: "cup", Kind: domain.UnitKindVolume, Plural: "cups", Variants: []string{"cup", "cups", "c"}},
			{Name: "gram", Kind: domain.UnitKindWeight, Plural: "grams", Variants: []string{"gram", "grams", "g"}},
		},
	}
}

// testEnv holds the services installed for one test.
type testEnv struct {
	parse    *mockParseService
	history  *services.HistoryService
	store    *memory.HistoryStore
	settings *services.SettingsService
}

// setupTestServices installs a mock parser, memory history and memory
// settings, and restores package state when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	table, err := units.Default()
	require.NoError(t, err)

	env := &testEnv{
		parse:    newMockParse(),
		store:    memory.NewHistoryStore(),
		settings: services.NewSettingsService(memory.NewConfigStore()),
	}
	env.history = services.NewHistoryService(env.store)

	SetServices(&Services{
		Parse:    env.parse,
		History:  env.history,
		Settings: env.settings,
		Units:    table,
	})
	t.Cleanup(resetState)
	return env
}

// resetState clears services and flag variables between tests.
func resetState() {
	SetServices(nil)
	bootstrap = nil
	configDir = ""
	verbose = false
	logger.SetVerbose(false)

	parseFile = ""
	parseFormat = ""
	parsePrep = false
	unitsKind = ""
	unitsFormat = "table"
	historyLimit = 20
	historyContains = ""
	historyFormat = ""
	watchFormat = ""

	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	rootCmd.SetArgs(args)
	t.Cleanup(resetState)

	err := rootCmd.Execute()
	return buf.String(), err
}
