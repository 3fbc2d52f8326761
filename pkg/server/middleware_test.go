package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vindex-hq/vindex/pkg/telemetry/logging"
)

func quietLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.New(logging.Config{
		Level:  "error",
		Format: "text",
		Writer: io.Discard,
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var seen string
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatal("Expected request ID in context")
	}
	if got := rec.Header().Get(requestIDHeader); got != seen {
		t.Errorf("Expected response header %q to match context ID %q", got, seen)
	}
}

func TestRequestIDMiddleware_HonorsClientID(t *testing.T) {
	var seen string
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "client-supplied-id" {
		t.Errorf("Expected client-supplied ID to be kept, got %q", seen)
	}
	if got := rec.Header().Get(requestIDHeader); got != "client-supplied-id" {
		t.Errorf("Expected echoed header, got %q", got)
	}
}

func TestRecoveryMiddleware_Returns500(t *testing.T) {
	handler := recoveryMiddleware(quietLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/vins/x", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected error message in body")
	}
}

func TestRecoveryMiddleware_PassesThrough(t *testing.T) {
	handler := recoveryMiddleware(quietLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected 418, got %d", rec.Code)
	}
}

func TestTimeoutMiddleware_Returns504(t *testing.T) {
	blocked := make(chan struct{})
	handler := timeoutMiddleware(20*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-blocked:
		}
	}))
	defer close(blocked)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/vins/x", nil))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("Expected 504, got %d", rec.Code)
	}
}

func TestTimeoutMiddleware_FastRequestUnaffected(t *testing.T) {
	handler := timeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	handler := loggingMiddleware(quietLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/vins/x", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected wrapped writer to pass 400 through, got %d", rec.Code)
	}
}

func TestResponseWriter_DoubleWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK) // ignored

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("Expected first status to stick, got %d", rw.statusCode)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected recorder code 404, got %d", rec.Code)
	}
}
