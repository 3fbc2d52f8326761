// Package telemetry provides observability for vindex.
//
// # Components
//
//   - logging: Structured logging built on log/slog
//   - metrics: Prometheus metrics collection
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	collector := metrics.NewCollector(nil)
//
//	logger.Info("decode completed", "vin", vin)
//	collector.RecordDecode(metrics.OutcomeOK, elapsed)
package telemetry
