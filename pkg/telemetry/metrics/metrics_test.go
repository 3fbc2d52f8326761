package metrics

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDecode(t *testing.T) {
	c := NewCollector(nil)

	c.RecordDecode(OutcomeOK, 10*time.Microsecond)
	c.RecordDecode(OutcomeOK, 15*time.Microsecond)
	c.RecordDecode(OutcomeChecksumMismatch, 12*time.Microsecond)

	if got := testutil.ToFloat64(c.decodesTotal.WithLabelValues(OutcomeOK)); got != 2 {
		t.Errorf("ok decodes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.decodesTotal.WithLabelValues(OutcomeChecksumMismatch)); got != 1 {
		t.Errorf("checksum_mismatch decodes = %v, want 1", got)
	}
}

func TestRecordLookup(t *testing.T) {
	c := NewCollector(nil)

	c.RecordLookup("WP0", true)
	c.RecordLookup("WP0", true)
	c.RecordLookup("ZZZ", false)

	if got := testutil.ToFloat64(c.lookupsTotal.WithLabelValues("hit", "WP0")); got != 2 {
		t.Errorf("WP0 hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.lookupsTotal.WithLabelValues("miss", "ZZZ")); got != 1 {
		t.Errorf("ZZZ misses = %v, want 1", got)
	}
}

func TestRecordLookupCardinalityCap(t *testing.T) {
	c := NewCollector(nil)
	c.cardinalityLimiter = NewCardinalityLimiter(3)

	for i := 0; i < 10; i++ {
		c.RecordLookup(fmt.Sprintf("W%02d", i), true)
	}

	// Three distinct codes plus the "other" bucket.
	if got := testutil.ToFloat64(c.lookupsTotal.WithLabelValues("hit", "other")); got != 7 {
		t.Errorf("other hits = %v, want 7", got)
	}
}

func TestRecordAuditWrite(t *testing.T) {
	c := NewCollector(nil)

	c.RecordAuditWrite(nil)
	c.RecordAuditWrite(fmt.Errorf("disk full"))

	if got := testutil.ToFloat64(c.auditWritesTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok writes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.auditWritesTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("error writes = %v, want 1", got)
	}
}

func TestRecordOverrideReload(t *testing.T) {
	c := NewCollector(nil)

	c.RecordOverrideReload(5)
	c.RecordOverrideReload(7)

	if got := testutil.ToFloat64(c.overrideReloads); got != 2 {
		t.Errorf("reloads = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.overrideEntries); got != 7 {
		t.Errorf("entries gauge = %v, want 7", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector(nil)
	c.RecordDecode(OutcomeOK, time.Microsecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "vindex_decodes_total") {
		t.Errorf("exposition missing vindex_decodes_total:\n%s", body)
	}
}

func TestNewCollectorWithSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	if c.Registry() != reg {
		t.Error("collector should use the provided registry")
	}
}

func TestCardinalityLimiter(t *testing.T) {
	cl := NewCardinalityLimiter(2)

	if !cl.Allow("a") || !cl.Allow("b") {
		t.Fatal("first values should be allowed")
	}
	if cl.Allow("c") {
		t.Error("value beyond cap should be rejected")
	}
	if !cl.Allow("a") {
		t.Error("existing value should stay allowed")
	}
	if cl.Count() != 2 {
		t.Errorf("Count() = %d, want 2", cl.Count())
	}
}
