package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil parse service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingParseService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Parse: &mockParseService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.limiter)
	})
}

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingParseService)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingParseService)
	assert.NoError(t, (&Ports{Parse: &mockParseService{}}).Validate())
}

func TestServer_Handler_Metrics(t *testing.T) {
	server, err := NewServer(&Ports{Parse: &mockParseService{}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "larder_mcp_rate_limited_total")
}

func TestServer_Handler_RateLimit(t *testing.T) {
	server, err := NewServer(&Ports{Parse: &mockParseService{}}, WithRateLimit(0, 1))
	require.NoError(t, err)
	handler := server.Handler()
	before := testutil.ToFloat64(rateLimited)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, http.StatusTooManyRequests, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Equal(t, before+1, testutil.ToFloat64(rateLimited))

	// Metrics are not rate limited.
	metrics := httptest.NewRecorder()
	handler.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, metrics.Code)
}
