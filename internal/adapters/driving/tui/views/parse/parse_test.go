package parse

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/larder/internal/core/domain"
)

// mockParseService implements driving.ParseService for testing.
type mockParseService struct {
	parseFunc func(ctx context.Context, line string) (*domain.ParseResult, error)
}

func (m *mockParseService) Parse(ctx context.Context, line string) (*domain.ParseResult, error) {
	if m.parseFunc != nil {
		return m.parseFunc(ctx, line)
	}
	return &domain.ParseResult{Input: line, Names: []string{line}}, nil
}

func (m *mockParseService) ParseBatch(ctx context.Context, lines []string) ([]domain.ParseResult, error) {
	out := make([]domain.ParseResult, 0, len(lines))
	for _, l := range lines {
		r, err := m.Parse(ctx, l)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockParseService) Normalise(line string) string {
	return line
}

func (m *mockParseService) Units(_ domain.UnitKind) ([]domain.Unit, error) {
	return nil, nil
}

func flour() *domain.ParseResult {
	return &domain.ParseResult{
		Input:        "1 1/2 cups (180 g) flour, sifted",
		Names:        []string{"flour"},
		Measurements: []domain.Measurement{{Quantity: domain.NewScalar(1.5), Unit: "cup"}},
		Converted:    &domain.Measurement{Quantity: domain.NewScalar(180), Unit: "gram"},
		Additional:   "sifted",
	}
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.False(t, view.Ready())
	assert.True(t, view.InputFocused())
	assert.NotNil(t, view.Init())
}

func TestView_WithContext(t *testing.T) {
	view := NewView(nil, nil, nil)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, view, view.WithContext(ctx))
	assert.Equal(t, ctx, view.ctx)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.Ready())
}

func TestView_Update_EnterParsesLine(t *testing.T) {
	var got string
	svc := &mockParseService{
		parseFunc: func(_ context.Context, line string) (*domain.ParseResult, error) {
			got = line
			return flour(), nil
		},
	}
	view := NewView(nil, nil, svc)
	view.SetLine("1 1/2 cups (180 g) flour, sifted")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	parsed, ok := msg.(messages.LineParsed)
	require.True(t, ok)
	assert.Equal(t, "1 1/2 cups (180 g) flour, sifted", got)
	assert.NoError(t, parsed.Err)

	view.Update(parsed)
	require.Len(t, view.Results(), 1)
	assert.False(t, view.InputFocused())
	assert.Empty(t, view.Line())
}

func TestView_Update_EnterBlankLine(t *testing.T) {
	view := NewView(nil, nil, &mockParseService{})
	view.SetLine("   ")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Update_NoService(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.SetLine("2 eggs")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	occurred, ok := msg.(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, occurred.Err, ErrNoParseService)

	view.Update(occurred)
	assert.ErrorIs(t, view.Err(), ErrNoParseService)
}

func TestView_Update_ParseError(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.SetDimensions(80, 30)

	view.Update(messages.LineParsed{Line: "x", Err: domain.ErrInputTooLong})

	assert.ErrorIs(t, view.Err(), domain.ErrInputTooLong)
	assert.Empty(t, view.Results())
	assert.True(t, view.InputFocused())
	assert.Contains(t, view.View(), "input too long")
}

func TestView_Update_ParseRequested(t *testing.T) {
	view := NewView(nil, nil, &mockParseService{})

	_, cmd := view.Update(messages.ParseRequested{Line: "3 cloves garlic"})
	require.NotNil(t, cmd)

	assert.Equal(t, "3 cloves garlic", view.Line())
	parsed, ok := cmd().(messages.LineParsed)
	require.True(t, ok)
	assert.Equal(t, "3 cloves garlic", parsed.Line)
}

func TestView_Update_Esc(t *testing.T) {
	t.Run("from input goes to menu", func(t *testing.T) {
		view := NewView(nil, nil, nil)

		_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, cmd)

		changed, ok := cmd().(messages.ViewChanged)
		require.True(t, ok)
		assert.Equal(t, messages.ViewMenu, changed.View)
	})

	t.Run("from results returns to input", func(t *testing.T) {
		view := NewView(nil, nil, nil)
		view.Update(messages.LineParsed{Line: "a", Result: flour()})
		require.False(t, view.InputFocused())

		_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

		assert.Nil(t, cmd)
		assert.True(t, view.InputFocused())
	})
}

func TestView_Update_ResultsNavigation(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.Update(messages.LineParsed{Result: &domain.ParseResult{Input: "first"}})
	view.Update(messages.LineParsed{Result: &domain.ParseResult{Input: "second"}})

	assert.Equal(t, "second", view.SelectedResult().Input)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, "first", view.SelectedResult().Input)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "second", view.SelectedResult().Input)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.True(t, view.InputFocused())
}

func TestView_View(t *testing.T) {
	view := NewView(nil, nil, nil)
	assert.Contains(t, view.View(), "Initialising")

	view.SetDimensions(120, 40)
	view.Update(messages.LineParsed{Result: flour()})

	out := view.View()
	for _, want := range []string{"Parse", "Name", "flour", "Amount", "1.5 cup", "Converted", "180 gram", "Notes", "sifted", "1 parsed"} {
		assert.Contains(t, out, want)
	}
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, nil, nil)
	view.Update(messages.LineParsed{Result: flour()})
	view.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	view.Reset()

	assert.True(t, view.InputFocused())
	assert.NoError(t, view.Err())
	assert.Len(t, view.Results(), 1)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		m    domain.Measurement
		want string
	}{
		{name: "scalar", m: domain.Measurement{Quantity: domain.NewScalar(2), Unit: "cup"}, want: "2 cup"},
		{name: "range", m: domain.Measurement{Quantity: domain.NewRange(1, 2)}, want: "1-2 (range)"},
		{name: "empty", m: domain.Measurement{}, want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.m))
		})
	}
}
