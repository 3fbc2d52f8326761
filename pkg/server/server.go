package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"vindex-hq/vindex/pkg/audit"
	"vindex-hq/vindex/pkg/config"
	"vindex-hq/vindex/pkg/telemetry/logging"
	"vindex-hq/vindex/pkg/telemetry/metrics"
	"vindex-hq/vindex/pkg/vin"
	"vindex-hq/vindex/pkg/vin/wmi"
)

// Server is the HTTP API server for VIN decoding.
type Server struct {
	config       *config.Config
	resolver     vin.Resolver
	recorder     *audit.Recorder
	collector    *metrics.Collector
	logger       *logging.Logger
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a new API server.
//
// resolver decides which WMI table backs decoding; nil falls back to the
// built-in registry. recorder may be nil when auditing is disabled.
// collector and logger may be nil, in which case a fresh collector and a
// logger built from the config's telemetry section are used.
func NewServer(cfg *config.Config, resolver vin.Resolver, recorder *audit.Recorder, collector *metrics.Collector, logger *logging.Logger) *Server {
	if resolver == nil {
		resolver = wmi.Registry{}
	}
	if collector == nil {
		collector = metrics.NewCollector(nil)
	}
	if logger == nil {
		l, err := logging.New(logging.Config{
			Level:     cfg.Telemetry.Logging.Level,
			Format:    cfg.Telemetry.Logging.Format,
			AddSource: cfg.Telemetry.Logging.AddSource,
		})
		if err != nil {
			// The config was validated before reaching here, so this only
			// fires for a zero-value config. Fall back to defaults.
			l, _ = logging.New(logging.Config{})
		}
		logger = l
	}

	return &Server{
		config:       cfg,
		resolver:     resolver,
		recorder:     recorder,
		collector:    collector,
		logger:       logger,
		shutdownChan: make(chan struct{}),
		isRunning:    false,
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting api server",
			"address", s.config.Server.ListenAddress,
			"metrics_enabled", s.config.Telemetry.Metrics.Enabled,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		s.logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("api server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	decodeHandler := NewDecodeHandler(s.resolver, s.recorder, s.collector, s.logger)
	validateHandler := NewValidateHandler(s.collector)
	healthHandler := NewHealthHandler()

	mux.Handle("GET /v1/vins/{vin}", decodeHandler)
	mux.Handle("POST /v1/vins/validate", validateHandler)
	mux.Handle("GET /health", healthHandler)

	if s.config.Telemetry.Metrics.Enabled {
		mux.Handle("GET "+s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}

	var handler http.Handler = mux

	handler = timeoutMiddleware(s.config.Server.RequestTimeout)(handler)
	handler = loggingMiddleware(s.logger)(handler)
	handler = requestIDMiddleware(handler)
	handler = recoveryMiddleware(s.logger)(handler)

	return handler
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
