package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vindex-hq/vindex/pkg/telemetry/logging"
	"vindex-hq/vindex/pkg/telemetry/metrics"
)

// Recorder persists audit records through a storage backend and keeps
// write metrics. Recording failures are reported to the caller but are
// expected to be treated as non-fatal: a decode result is never
// withheld because its audit write failed.
type Recorder struct {
	backend   Backend
	logger    *logging.Logger
	collector *metrics.Collector
}

// NewRecorder creates a recorder on top of the given backend. The
// logger and collector may be nil, in which case logging and metrics
// are skipped.
func NewRecorder(backend Backend, logger *logging.Logger, collector *metrics.Collector) *Recorder {
	return &Recorder{
		backend:   backend,
		logger:    logger,
		collector: collector,
	}
}

// Record assigns the record an ID and timestamp and persists it.
func (r *Recorder) Record(ctx context.Context, record *Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.RequestID == "" {
		record.RequestID = logging.GetRequestID(ctx)
	}

	err := r.backend.Save(ctx, record)

	if r.collector != nil {
		r.collector.RecordAuditWrite(err)
	}
	if err != nil {
		if r.logger != nil {
			r.logger.ErrorContext(ctx, "audit write failed", "vin", record.VIN, "error", err)
		}
		return fmt.Errorf("failed to save audit record: %w", err)
	}

	if r.logger != nil {
		r.logger.DebugContext(ctx, "audit record saved", "id", record.ID, "vin", record.VIN)
	}
	return nil
}

// Query retrieves audit records from the backend.
func (r *Recorder) Query(ctx context.Context, query *Query) ([]*Record, error) {
	return r.backend.Query(ctx, query)
}

// Close closes the underlying backend.
func (r *Recorder) Close() error {
	return r.backend.Close()
}
