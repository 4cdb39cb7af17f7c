package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/larder/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Default HTTP request limits.
const (
	DefaultRateLimit = rate.Limit(20)
	DefaultBurst     = 40
)

var rateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Name: "larder_mcp_rate_limited_total",
	Help: "MCP HTTP requests rejected by the rate limiter",
})

// Server is the MCP server for larder.
type Server struct {
	ports   *Ports
	server  *mcp.Server
	limiter *rate.Limiter
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit sets the HTTP token bucket: r requests per second with the
// given burst.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(r, burst)
	}
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "larder",
		Version: Version,
	}

	s := &Server{
		ports:   ports,
		server:  mcp.NewServer(impl, nil),
		limiter: rate.NewLimiter(DefaultRateLimit, DefaultBurst),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP handler: the rate-limited MCP endpoint at "/"
// and Prometheus metrics at "/metrics".
func (s *Server) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", s.rateLimit(streamable))
	return mux
}

// rateLimit rejects requests once the token bucket is empty.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			rateLimited.Inc()
			logger.Debug("mcp: rate limited %s %s", r.Method, r.URL.Path)
			w.Header().Set("Retry-After", "1")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
