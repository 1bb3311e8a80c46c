package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/samuel"
	samuelhttp "github.com/aretw0/samuel/pkg/adapters/http"
	"github.com/aretw0/samuel/pkg/adapters/mcp"
	"github.com/aretw0/samuel/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Options
	StoreOptions
	Addr            string
	ShutdownTimeout time.Duration
}

// RunServe starts the HTTP API and blocks until ctx is cancelled, then shuts
// down gracefully.
func RunServe(ctx context.Context, opts ServeOptions) error {
	logger, err := createLogger(opts.LogLevel, opts.Debug)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	puzzleOpts := append(opts.puzzleOptions(logger), samuel.WithHooks(metrics.Hooks()))
	sessions, closeStore, err := newSessions(ctx, opts.StoreOptions, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	handler := samuelhttp.NewHandler(sessions,
		samuelhttp.WithLogger(logger),
		samuelhttp.WithPuzzleOptions(puzzleOpts...),
		samuelhttp.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting Samuel HTTP Server", "addr", opts.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		timeout := opts.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		logger.Info("Server stopped")
		return nil
	}
}

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// MCPOptions configures the MCP server.
type MCPOptions struct {
	Options
	StoreOptions
	Transport string
	Addr      string
	BaseURL   string
}

// RunMCP serves the puzzle tools over MCP until ctx is cancelled or stdin
// closes.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	logger, err := createLogger(opts.LogLevel, opts.Debug)
	if err != nil {
		return err
	}
	sessions, closeStore, err := newSessions(ctx, opts.StoreOptions, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := mcp.NewServer(sessions,
		mcp.WithLogger(logger),
		mcp.WithPuzzleOptions(opts.puzzleOptions(logger)...),
	)

	switch opts.Transport {
	case "", TransportStdio:
		return handleExecutionError(srv.ServeStdio())
	case TransportSSE:
		baseURL := opts.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost" + opts.Addr
		}
		return srv.ServeSSE(ctx, opts.Addr, baseURL)
	default:
		return fmt.Errorf("unknown transport %q", opts.Transport)
	}
}
