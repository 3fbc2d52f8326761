package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Decode outcome labels.
const (
	OutcomeOK               = "ok"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeUnknownWMI       = "unknown_wmi"
	OutcomeChecksumMismatch = "checksum_mismatch"
)

// Collector manages all Prometheus metrics for vindex. It owns a
// dedicated registry and provides typed recording methods so callers
// never touch label names directly.
type Collector struct {
	registry *prometheus.Registry

	// Decode metrics
	decodesTotal   *prometheus.CounterVec
	decodeDuration prometheus.Histogram

	// Lookup metrics
	lookupsTotal *prometheus.CounterVec

	// Audit metrics
	auditWritesTotal *prometheus.CounterVec

	// Registry overlay metrics
	overrideReloads prometheus.Counter
	overrideEntries prometheus.Gauge

	// Cardinality tracking for the wmi label
	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a new metrics collector backed by the given
// Prometheus registry. If registry is nil, a fresh registry is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry:           registry,
		cardinalityLimiter: NewCardinalityLimiter(2000),

		decodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vindex",
				Name:      "decodes_total",
				Help:      "Total number of VIN decode operations by outcome",
			},
			[]string{"outcome"},
		),

		decodeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "vindex",
				Name:      "decode_duration_seconds",
				Help:      "Duration of VIN decode operations in seconds",
				Buckets:   []float64{0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001},
			},
		),

		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vindex",
				Name:      "wmi_lookups_total",
				Help:      "Total number of WMI lookups by result and code",
			},
			[]string{"result", "wmi"},
		),

		auditWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vindex",
				Name:      "audit_writes_total",
				Help:      "Total number of audit record writes by status",
			},
			[]string{"status"},
		),

		overrideReloads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "vindex",
				Name:      "override_reloads_total",
				Help:      "Total number of override file reloads",
			},
		),

		overrideEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "vindex",
				Name:      "override_entries",
				Help:      "Current number of loaded WMI overrides",
			},
		),
	}

	registry.MustRegister(
		c.decodesTotal,
		c.decodeDuration,
		c.lookupsTotal,
		c.auditWritesTotal,
		c.overrideReloads,
		c.overrideEntries,
	)

	return c
}

// RecordDecode records a completed decode operation.
//
// Parameters:
//   - outcome: one of OutcomeOK, OutcomeInvalidInput, OutcomeUnknownWMI,
//     or OutcomeChecksumMismatch
//   - duration: total decode duration
func (c *Collector) RecordDecode(outcome string, duration time.Duration) {
	c.decodesTotal.WithLabelValues(outcome).Inc()
	c.decodeDuration.Observe(duration.Seconds())
}

// RecordLookup records a WMI lookup. The wmi label is capped by the
// cardinality limiter; codes beyond the cap are aggregated as "other".
func (c *Collector) RecordLookup(wmi string, hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	if !c.cardinalityLimiter.Allow(wmi) {
		wmi = "other"
	}
	c.lookupsTotal.WithLabelValues(result, wmi).Inc()
}

// RecordAuditWrite records an audit store write attempt.
func (c *Collector) RecordAuditWrite(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.auditWritesTotal.WithLabelValues(status).Inc()
}

// RecordOverrideReload records a successful override file reload and the
// resulting table size.
func (c *Collector) RecordOverrideReload(entries int) {
	c.overrideReloads.Inc()
	c.overrideEntries.Set(float64(entries))
}

// Registry returns the Prometheus registry used by this collector.
// This can be used to create an HTTP handler for the /metrics endpoint:
//
//	http.Handle("/metrics", promhttp.HandlerFor(
//		collector.Registry(),
//		promhttp.HandlerOpts{},
//	))
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label values per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label value is allowed. Returns true if the value
// already exists or if we haven't reached the cardinality limit yet.
// Returns false if adding this value would exceed the limit.
func (cl *CardinalityLimiter) Allow(labelValue string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelValue]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[labelValue]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelValue] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
