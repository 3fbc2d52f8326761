package retention

import (
	"context"
	"testing"
	"time"

	"vindex-hq/vindex/pkg/audit"
	"vindex-hq/vindex/pkg/audit/storage"
)

func saveRecord(t *testing.T, backend audit.Backend, id string, createdAt time.Time) {
	t.Helper()
	err := backend.Save(context.Background(), &audit.Record{
		ID:            id,
		VIN:           "WP0ZZZ99ZTS392124",
		WMI:           "WP0",
		Manufacturer:  "Porsche car",
		ValidChecksum: true,
		Source:        audit.SourceAPI,
		CreatedAt:     createdAt,
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}

func TestPruneDeletesExpiredRecords(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer backend.Close()

	now := time.Now().UTC()
	saveRecord(t, backend, "old", now.AddDate(0, 0, -100))
	saveRecord(t, backend, "fresh", now.AddDate(0, 0, -1))

	pruner := NewPruner(backend, &Config{RetentionDays: 90, Schedule: ""}, nil)

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	remaining, err := backend.Query(context.Background(), &audit.Query{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "fresh" {
		t.Errorf("remaining = %+v, want only the fresh record", remaining)
	}
}

func TestPruneDisabledWhenRetentionZero(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer backend.Close()

	saveRecord(t, backend, "ancient", time.Now().UTC().AddDate(-10, 0, 0))

	pruner := NewPruner(backend, &Config{RetentionDays: 0}, nil)

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0 when retention is disabled", deleted)
	}
}

func TestPruneNothingExpired(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer backend.Close()

	saveRecord(t, backend, "fresh", time.Now().UTC())

	pruner := NewPruner(backend, nil, nil)

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}
}
