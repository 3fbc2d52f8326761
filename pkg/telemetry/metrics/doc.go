// Package metrics provides Prometheus metrics collection for vindex.
//
// # Overview
//
// The metrics package implements Prometheus metrics for monitoring VIN
// decode operations, WMI lookups, override reloads, and audit writes.
//
// # Usage
//
//	// Create collector
//	collector := metrics.NewCollector(nil)
//
//	// Record decode metrics
//	collector.RecordDecode(metrics.OutcomeOK, 12*time.Microsecond)
//
//	// Record lookup metrics
//	collector.RecordLookup("WP0", true)
//
// # Prometheus Endpoint
//
// All metrics are exposed on the /metrics endpoint in standard Prometheus format:
//
//	# HELP vindex_decodes_total Total number of VIN decode operations by outcome
//	# TYPE vindex_decodes_total counter
//	vindex_decodes_total{outcome="ok"} 1234
//
// # Cardinality Management
//
// The wmi label on lookup metrics is capped by a cardinality limiter;
// values beyond the cap are aggregated into "other". The world holds a
// few thousand assigned WMI codes, so the default cap of 2000 covers
// normal traffic while bounding memory under adversarial input.
package metrics
