package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Bootstrap(t *testing.T) {
	t.Cleanup(resetState)
	SetServices(nil)

	var got Options
	closed := false
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return &Services{
			Parse: newMockParse(),
			Close: func() error {
				closed = true
				return nil
			},
		}, nil
	})

	out, err := executeCommand(t, nil, "--config-dir", "/tmp/larder-test", "-v", "normalise", "Egg")

	require.NoError(t, err)
	assert.Equal(t, "egg\n", out)
	assert.Equal(t, Options{ConfigDir: "/tmp/larder-test", Verbose: true}, got)
	assert.True(t, closed)
}

func TestRootCmd_BootstrapError(t *testing.T) {
	t.Cleanup(resetState)
	SetServices(nil)
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("disk full")
	})

	_, err := executeCommand(t, nil, "normalise", "egg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialise: disk full")
}

func TestRootCmd_SkipsBootstrapWhenServicesSet(t *testing.T) {
	setupTestServices(t)
	SetBootstrap(func(Options) (*Services, error) {
		t.Fatal("bootstrap should not run")
		return nil, nil
	})

	_, err := executeCommand(t, nil, "normalise", "egg")

	require.NoError(t, err)
}

func TestTeardown_CloseError(t *testing.T) {
	t.Cleanup(resetState)
	closer = func() error { return errors.New("busy") }

	err := teardown(nil, nil)

	require.EqualError(t, err, "busy")
	assert.Nil(t, closer)
	assert.NoError(t, teardown(nil, nil))
}

func TestExecuteContext(t *testing.T) {
	setupTestServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetArgs([]string{"version"})
	rootCmd.SetOut(io.Discard)
	t.Cleanup(resetState)

	assert.NoError(t, ExecuteContext(ctx))
}

func TestMCPServeCmd_NotConfigured(t *testing.T) {
	t.Cleanup(resetState)
	SetServices(nil)

	_, err := executeCommand(t, nil, "mcp", "serve")

	assert.ErrorIs(t, err, errNotConfigured)
}
