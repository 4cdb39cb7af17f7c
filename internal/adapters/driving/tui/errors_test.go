package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert.NotEqual(t, ErrMissingParseService.Error(), ErrInvalidPorts.Error())
	assert.Contains(t, ErrMissingParseService.Error(), "parse service")
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
