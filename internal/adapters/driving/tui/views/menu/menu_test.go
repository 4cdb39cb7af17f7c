package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/larder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/larder/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.items, 5)
	assert.Equal(t, 0, view.Selected())
	assert.Nil(t, view.Init())

	assert.NotNil(t, NewView(nil).styles)
}

func TestView_Navigation(t *testing.T) {
	view := NewView(nil)
	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyUp}

	for range 10 {
		view.Update(down)
	}
	assert.Equal(t, 4, view.Selected(), "stops at the last item")

	for range 10 {
		view.Update(up)
	}
	assert.Equal(t, 0, view.Selected(), "stops at the first item")
}

func TestView_EnterChangesView(t *testing.T) {
	tests := []struct {
		index int
		want  messages.ViewType
	}{
		{index: 0, want: messages.ViewParse},
		{index: 1, want: messages.ViewUnits},
		{index: 2, want: messages.ViewHistory},
		{index: 3, want: messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)

			changed, ok := cmd().(messages.ViewChanged)
			require.True(t, ok)
			assert.Equal(t, tt.want, changed.View)
		})
	}
}

func TestView_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 4

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil)
	assert.Contains(t, view.View(), "Initialising")

	view.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := view.View()
	for _, want := range []string{"Larder", "Ingredient Line Parser", "> Parse", "Units", "History", "Help", "Quit"} {
		assert.Contains(t, out, want)
	}
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil)

	view.SetDimensions(120, 60)

	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
	assert.True(t, view.ready)
}
