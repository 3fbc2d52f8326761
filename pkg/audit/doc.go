// Package audit provides decode audit recording for vindex.
//
// Every decode handled by the server (and optionally the CLI) can be
// recorded as an audit record capturing the input VIN, the resolved
// manufacturer information, and the checksum outcome. Records are
// persisted through a pluggable storage backend (memory or SQLite) and
// pruned on a schedule by the retention subpackage.
//
// # Usage
//
//	backend, err := storage.NewSQLiteBackend("data/audit.db")
//	if err != nil {
//	    return err
//	}
//	recorder := audit.NewRecorder(backend, logger, collector)
//
//	rec := audit.NewRecord(info, audit.SourceAPI)
//	if err := recorder.Record(ctx, rec); err != nil {
//	    // Recording failures never fail the decode itself.
//	    logger.Error("audit write failed", "error", err)
//	}
package audit
