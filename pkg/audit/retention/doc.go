// Package retention enforces audit record retention policies.
//
// A Pruner deletes audit records older than the configured retention
// period. A Scheduler runs the pruner on a cron schedule (for example
// daily at 03:00) so the audit store does not grow without bound.
//
//	pruner := retention.NewPruner(backend, &retention.Config{
//	    RetentionDays: 90,
//	    Schedule:      "0 3 * * *",
//	}, logger)
//	if err := pruner.Start(ctx); err != nil {
//	    return err
//	}
//	defer pruner.Stop()
package retention
