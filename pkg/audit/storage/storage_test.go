package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"vindex-hq/vindex/pkg/audit"
)

// backends under test, keyed by name.
func testBackends(t *testing.T) map[string]audit.Backend {
	t.Helper()

	sqlite, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("failed to create sqlite backend: %v", err)
	}

	return map[string]audit.Backend{
		"memory": NewMemoryBackend(),
		"sqlite": sqlite,
	}
}

func testRecord(vin string, createdAt time.Time) *audit.Record {
	return &audit.Record{
		ID:            fmt.Sprintf("id-%s-%d", vin, createdAt.UnixNano()),
		VIN:           vin,
		WMI:           vin[:3],
		Manufacturer:  "Porsche car",
		Country:       "Germany/West Germany",
		Region:        "Europe",
		ValidChecksum: true,
		Source:        audit.SourceAPI,
		CreatedAt:     createdAt,
	}
}

func TestSaveAndQuery(t *testing.T) {
	for name, backend := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()
			ctx := context.Background()

			now := time.Now().UTC()
			if err := backend.Save(ctx, testRecord("WP0ZZZ99ZTS392124", now)); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			records, err := backend.Query(ctx, &audit.Query{})
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			got := records[0]
			if got.VIN != "WP0ZZZ99ZTS392124" || got.WMI != "WP0" {
				t.Errorf("record = %+v", got)
			}
			if !got.ValidChecksum {
				t.Error("valid_checksum should round-trip as true")
			}
			if !got.CreatedAt.Equal(now) {
				t.Errorf("created_at = %v, want %v", got.CreatedAt, now)
			}
		})
	}
}

func TestQueryFilters(t *testing.T) {
	for name, backend := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()
			ctx := context.Background()

			base := time.Now().UTC().Add(-time.Hour)
			porsche := testRecord("WP0ZZZ99ZTS392124", base)
			mack := testRecord("1M8GDM9AXKP042788", base.Add(time.Minute))
			mack.Source = audit.SourceCLI
			mack.ValidChecksum = false

			for _, r := range []*audit.Record{porsche, mack} {
				if err := backend.Save(ctx, r); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}

			byWMI, err := backend.Query(ctx, &audit.Query{WMI: "WP0"})
			if err != nil {
				t.Fatalf("Query by wmi failed: %v", err)
			}
			if len(byWMI) != 1 || byWMI[0].WMI != "WP0" {
				t.Errorf("wmi filter returned %d records", len(byWMI))
			}

			bySource, err := backend.Query(ctx, &audit.Query{Source: audit.SourceCLI})
			if err != nil {
				t.Fatalf("Query by source failed: %v", err)
			}
			if len(bySource) != 1 || bySource[0].Source != audit.SourceCLI {
				t.Errorf("source filter returned %d records", len(bySource))
			}

			invalid := false
			byChecksum, err := backend.Query(ctx, &audit.Query{ValidChecksum: &invalid})
			if err != nil {
				t.Fatalf("Query by checksum failed: %v", err)
			}
			if len(byChecksum) != 1 || byChecksum[0].ValidChecksum {
				t.Errorf("checksum filter returned %d records", len(byChecksum))
			}

			cutoff := base.Add(30 * time.Second)
			byTime, err := backend.Query(ctx, &audit.Query{StartTime: &cutoff})
			if err != nil {
				t.Fatalf("Query by time failed: %v", err)
			}
			if len(byTime) != 1 || byTime[0].VIN != mack.VIN {
				t.Errorf("time filter returned %d records", len(byTime))
			}
		})
	}
}

func TestQueryOrderAndPagination(t *testing.T) {
	for name, backend := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()
			ctx := context.Background()

			base := time.Now().UTC().Add(-time.Hour)
			for i := 0; i < 5; i++ {
				r := testRecord("WP0ZZZ99ZTS392124", base.Add(time.Duration(i)*time.Minute))
				r.ID = fmt.Sprintf("rec-%d", i)
				if err := backend.Save(ctx, r); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}

			records, err := backend.Query(ctx, &audit.Query{Limit: 2, Offset: 1})
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(records) != 2 {
				t.Fatalf("got %d records, want 2", len(records))
			}
			// Newest first; offset 1 skips rec-4.
			if records[0].ID != "rec-3" || records[1].ID != "rec-2" {
				t.Errorf("got ids %s, %s; want rec-3, rec-2", records[0].ID, records[1].ID)
			}
		})
	}
}

func TestCount(t *testing.T) {
	for name, backend := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()
			ctx := context.Background()

			base := time.Now().UTC()
			for i := 0; i < 3; i++ {
				r := testRecord("WP0ZZZ99ZTS392124", base.Add(time.Duration(i)*time.Second))
				r.ID = fmt.Sprintf("count-%d", i)
				if err := backend.Save(ctx, r); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}

			count, err := backend.Count(ctx, &audit.Query{})
			if err != nil {
				t.Fatalf("Count failed: %v", err)
			}
			if count != 3 {
				t.Errorf("Count = %d, want 3", count)
			}
		})
	}
}

func TestDeleteOlderThan(t *testing.T) {
	for name, backend := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()
			ctx := context.Background()

			old := testRecord("WP0ZZZ99ZTS392124", time.Now().UTC().Add(-48*time.Hour))
			fresh := testRecord("1M8GDM9AXKP042788", time.Now().UTC())
			for _, r := range []*audit.Record{old, fresh} {
				if err := backend.Save(ctx, r); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}

			deleted, err := backend.DeleteOlderThan(ctx, time.Now().UTC().Add(-24*time.Hour))
			if err != nil {
				t.Fatalf("DeleteOlderThan failed: %v", err)
			}
			if deleted != 1 {
				t.Errorf("deleted = %d, want 1", deleted)
			}

			remaining, err := backend.Query(ctx, &audit.Query{})
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(remaining) != 1 || remaining[0].VIN != fresh.VIN {
				t.Errorf("remaining = %d records", len(remaining))
			}
		})
	}
}

func TestSaveValidation(t *testing.T) {
	for name, backend := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer backend.Close()
			if err := backend.Save(context.Background(), nil); err == nil {
				t.Error("Save(nil) should fail")
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	ctx := context.Background()

	backend, err := NewSQLiteBackend(path)
	if err != nil {
		t.Fatalf("failed to create backend: %v", err)
	}
	if err := backend.Save(ctx, testRecord("WP0ZZZ99ZTS392124", time.Now().UTC())); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewSQLiteBackend(path)
	if err != nil {
		t.Fatalf("failed to reopen backend: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.Count(ctx, &audit.Query{})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d after reopen, want 1", count)
	}
}

func TestSQLiteCloseIsIdempotent(t *testing.T) {
	backend, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("failed to create backend: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestSQLiteAppliesConnectionConfig(t *testing.T) {
	backend, err := NewSQLiteBackendWithConfig(SQLiteBackendConfig{
		DBPath:       filepath.Join(t.TempDir(), "audit.db"),
		BusyTimeout:  7 * time.Second,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	})
	if err != nil {
		t.Fatalf("failed to create backend: %v", err)
	}
	defer backend.Close()

	if got := backend.db.Stats().MaxOpenConnections; got != 4 {
		t.Errorf("MaxOpenConnections = %d, want 4", got)
	}

	var journalMode string
	if err := backend.db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		t.Fatalf("journal_mode query failed: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %q, want wal", journalMode)
	}

	var busyTimeout int64
	if err := backend.db.QueryRow("PRAGMA busy_timeout;").Scan(&busyTimeout); err != nil {
		t.Fatalf("busy_timeout query failed: %v", err)
	}
	if busyTimeout != 7000 {
		t.Errorf("busy_timeout = %d, want 7000", busyTimeout)
	}
}

func TestSQLiteRequiresPath(t *testing.T) {
	if _, err := NewSQLiteBackendWithConfig(SQLiteBackendConfig{}); err == nil {
		t.Error("expected error for empty db path")
	}
}
