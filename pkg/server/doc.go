// Package server provides the HTTP API for VIN decoding and validation.
//
// This package ties together the decoder, the override registry, auditing
// and telemetry, and manages server lifecycle including start, graceful
// shutdown and OS signal handling (SIGTERM, SIGINT).
//
// # Endpoints
//
//   - GET  /v1/vins/{vin}      decode a single VIN
//   - POST /v1/vins/validate   batch structural and checksum validation
//   - GET  /health             liveness check
//   - GET  /metrics            prometheus metrics (when enabled)
//
// A checksum mismatch is not an error at the HTTP layer: the decode
// endpoint returns 200 with the mismatch embedded in the result, matching
// the decoder's own contract. Structural errors return 400 and an unknown
// manufacturer prefix returns 404.
//
// # Basic Usage
//
//	import (
//	    "context"
//	    "vindex-hq/vindex/pkg/config"
//	    "vindex-hq/vindex/pkg/registry"
//	    "vindex-hq/vindex/pkg/server"
//	)
//
//	cfg, err := config.LoadConfig("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := registry.New()
//	srv := server.NewServer(cfg, reg, nil, nil, nil)
//	if err := srv.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// The server shuts down gracefully on SIGTERM or SIGINT, or when Shutdown
// is called programmatically:
//
//	if err := srv.Shutdown(context.Background()); err != nil {
//	    log.Error("shutdown error", "error", err)
//	}
//
// Shutdown stops accepting new connections, waits for active requests up
// to the configured shutdown timeout, then forces connection closure.
//
// # Middleware Chain
//
// Requests pass through the following middleware (outermost to innermost):
//  1. Recovery: recovers from panics and returns a 500 error
//  2. RequestID: assigns a unique request ID for correlation
//  3. Logging: logs request/response details
//  4. Timeout: enforces the per-request timeout
//
// # Thread Safety
//
// All server operations are thread-safe and can be called concurrently
// from multiple goroutines.
package server
