package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"vindex-hq/vindex/pkg/telemetry/logging"
	"vindex-hq/vindex/pkg/vin"
)

// fakeBackend captures saved records and optionally fails.
type fakeBackend struct {
	saved   []*Record
	saveErr error
}

func (f *fakeBackend) Save(_ context.Context, r *Record) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeBackend) Query(_ context.Context, _ *Query) ([]*Record, error) {
	return f.saved, nil
}

func (f *fakeBackend) Count(_ context.Context, _ *Query) (int64, error) {
	return int64(len(f.saved)), nil
}

func (f *fakeBackend) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeBackend) Close() error { return nil }

func TestRecordFillsIDAndTimestamp(t *testing.T) {
	backend := &fakeBackend{}
	recorder := NewRecorder(backend, nil, nil)

	rec := &Record{VIN: "WP0ZZZ99ZTS392124", WMI: "WP0", Source: SourceAPI}
	if err := recorder.Record(context.Background(), rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if rec.ID == "" {
		t.Error("ID should be assigned")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be assigned")
	}
	if len(backend.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(backend.saved))
	}
}

func TestRecordKeepsExplicitID(t *testing.T) {
	backend := &fakeBackend{}
	recorder := NewRecorder(backend, nil, nil)

	rec := &Record{ID: "fixed", VIN: "WP0ZZZ99ZTS392124"}
	if err := recorder.Record(context.Background(), rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if rec.ID != "fixed" {
		t.Errorf("ID = %q, want explicit id preserved", rec.ID)
	}
}

func TestRecordPicksUpRequestID(t *testing.T) {
	backend := &fakeBackend{}
	recorder := NewRecorder(backend, nil, nil)

	ctx := logging.WithRequestID(context.Background(), "req-42")
	rec := &Record{VIN: "WP0ZZZ99ZTS392124"}
	if err := recorder.Record(ctx, rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if rec.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want req-42 from context", rec.RequestID)
	}
}

func TestRecordPropagatesBackendError(t *testing.T) {
	wantErr := errors.New("disk full")
	recorder := NewRecorder(&fakeBackend{saveErr: wantErr}, nil, nil)

	err := recorder.Record(context.Background(), &Record{VIN: "WP0ZZZ99ZTS392124"})
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped backend error", err)
	}
}

func TestRecordNil(t *testing.T) {
	recorder := NewRecorder(&fakeBackend{}, nil, nil)
	if err := recorder.Record(context.Background(), nil); err == nil {
		t.Error("Record(nil) should fail")
	}
}

func TestNewRecordFromInfo(t *testing.T) {
	info, err := vin.Decode("WP0ZZZ99ZTS392124")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	rec := NewRecord(info, SourceCLI)
	if rec.VIN != "WP0ZZZ99ZTS392124" {
		t.Errorf("VIN = %q", rec.VIN)
	}
	if rec.WMI != "WP0" {
		t.Errorf("WMI = %q, want WP0", rec.WMI)
	}
	if rec.Manufacturer != "Porsche car" {
		t.Errorf("Manufacturer = %q", rec.Manufacturer)
	}
	if rec.ValidChecksum {
		t.Error("this VIN carries a mismatched check digit")
	}
	if rec.Source != SourceCLI {
		t.Errorf("Source = %q", rec.Source)
	}
}
