package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/larder/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewMenu, "menu"},
		{ViewParse, "parse"},
		{ViewUnits, "units"},
		{ViewHistory, "history"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestLineParsed_Fields(t *testing.T) {
	result := &domain.ParseResult{Input: "1 egg", Names: []string{"egg"}}
	msg := LineParsed{Line: "1 egg", Result: result}

	assert.Equal(t, "egg", msg.Result.Name())
	assert.NoError(t, msg.Err)

	failed := LineParsed{Line: "x", Err: errors.New("boom")}
	assert.Nil(t, failed.Result)
	assert.EqualError(t, failed.Err, "boom")
}
