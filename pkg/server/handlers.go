package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vindex-hq/vindex/pkg/audit"
	"vindex-hq/vindex/pkg/telemetry/logging"
	"vindex-hq/vindex/pkg/telemetry/metrics"
	"vindex-hq/vindex/pkg/vin"
	"vindex-hq/vindex/pkg/vin/wmi"
)

// maxValidateBatch caps the number of VINs accepted by a single
// validation request.
const maxValidateBatch = 1000

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response carrying the request ID for
// correlation with server logs.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Error:     msg,
		RequestID: logging.GetRequestID(r.Context()),
	})
}

// DecodeHandler serves GET /v1/vins/{vin}.
//
// Structural errors return 400, an unknown manufacturer returns 404, and a
// checksum mismatch still returns 200 with the outcome embedded in the
// decode result.
type DecodeHandler struct {
	resolver  vin.Resolver
	recorder  *audit.Recorder
	collector *metrics.Collector
	logger    *logging.Logger
}

// NewDecodeHandler creates a decode handler. recorder may be nil when
// auditing is disabled.
func NewDecodeHandler(resolver vin.Resolver, recorder *audit.Recorder, collector *metrics.Collector, logger *logging.Logger) *DecodeHandler {
	return &DecodeHandler{
		resolver:  resolver,
		recorder:  recorder,
		collector: collector,
		logger:    logger,
	}
}

// ServeHTTP handles the decode request.
func (h *DecodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("vin")

	start := time.Now()
	info, err := vin.DecodeWith(raw, h.resolver)
	elapsed := time.Since(start)

	if err != nil {
		var unknown *wmi.UnknownManufacturerError
		if errors.As(err, &unknown) {
			h.collector.RecordDecode(metrics.OutcomeUnknownWMI, elapsed)
			h.collector.RecordLookup(unknown.WMI, false)
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		h.collector.RecordDecode(metrics.OutcomeInvalidInput, elapsed)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	outcome := metrics.OutcomeOK
	if !info.ValidChecksum {
		outcome = metrics.OutcomeChecksumMismatch
	}
	h.collector.RecordDecode(outcome, elapsed)
	h.collector.RecordLookup(info.VIN.WMI(), true)

	if h.recorder != nil {
		if err := h.recorder.Record(r.Context(), audit.NewRecord(info, audit.SourceAPI)); err != nil {
			// Auditing is best effort; the decode already succeeded.
			h.logger.WarnContext(r.Context(), "audit record failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, info)
}

// validateRequest is the JSON body accepted by POST /v1/vins/validate.
type validateRequest struct {
	VINs []string `json:"vins"`
}

// validateResult is the per-VIN outcome in a validation response.
type validateResult struct {
	VIN           string `json:"vin"`
	Valid         bool   `json:"valid"`
	ValidChecksum bool   `json:"valid_checksum"`
	Error         string `json:"error,omitempty"`
}

// validateResponse is the JSON body returned by POST /v1/vins/validate.
type validateResponse struct {
	Results []validateResult `json:"results"`
}

// ValidateHandler serves POST /v1/vins/validate: batch structural and
// checksum validation without WMI resolution.
type ValidateHandler struct {
	collector *metrics.Collector
}

// NewValidateHandler creates a validation handler.
func NewValidateHandler(collector *metrics.Collector) *ValidateHandler {
	return &ValidateHandler{collector: collector}
}

// ServeHTTP handles the validation request.
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.VINs) == 0 {
		writeError(w, r, http.StatusBadRequest, "no vins provided")
		return
	}
	if len(req.VINs) > maxValidateBatch {
		writeError(w, r, http.StatusBadRequest, "too many vins in one request")
		return
	}

	results := make([]validateResult, 0, len(req.VINs))
	for _, s := range req.VINs {
		start := time.Now()
		res := validateResult{VIN: s}

		switch err := vin.VerifyChecksum(s); {
		case err == nil:
			res.Valid = true
			res.ValidChecksum = true
			h.collector.RecordDecode(metrics.OutcomeOK, time.Since(start))
		case errors.Is(err, vin.ErrChecksumMismatch):
			res.Valid = true
			res.Error = err.Error()
			h.collector.RecordDecode(metrics.OutcomeChecksumMismatch, time.Since(start))
		default:
			res.Error = err.Error()
			h.collector.RecordDecode(metrics.OutcomeInvalidInput, time.Since(start))
		}

		results = append(results, res)
	}

	writeJSON(w, http.StatusOK, validateResponse{Results: results})
}

// HealthHandler serves GET /health.
type HealthHandler struct{}

// NewHealthHandler creates a health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP reports liveness. The decoder has no external dependencies, so
// a running process is a healthy process.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
