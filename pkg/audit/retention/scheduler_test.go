package retention

import (
	"context"
	"testing"
	"time"

	"vindex-hq/vindex/pkg/audit/storage"
)

func TestSchedulerStartStop(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer backend.Close()

	pruner := NewPruner(backend, &Config{RetentionDays: 90, Schedule: "0 3 * * *"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := pruner.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !pruner.scheduler.IsRunning() {
		t.Error("scheduler should be running after Start")
	}

	next := pruner.NextPruning()
	if next == nil {
		t.Fatal("NextPruning returned nil for a scheduled pruner")
	}
	if !next.After(time.Now()) {
		t.Errorf("next run %v should be in the future", next)
	}

	pruner.Stop()
	if pruner.scheduler.IsRunning() {
		t.Error("scheduler should not be running after Stop")
	}
}

func TestSchedulerEmptyScheduleIsNoop(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer backend.Close()

	pruner := NewPruner(backend, &Config{RetentionDays: 90, Schedule: ""}, nil)

	if err := pruner.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if pruner.scheduler.IsRunning() {
		t.Error("scheduler should not run without a schedule")
	}
}

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer backend.Close()

	pruner := NewPruner(backend, &Config{RetentionDays: 90, Schedule: "whenever"}, nil)

	if err := pruner.Start(context.Background()); err == nil {
		t.Error("Start should fail for an invalid cron expression")
	}
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	backend := storage.NewMemoryBackend()
	defer backend.Close()

	pruner := NewPruner(backend, &Config{RetentionDays: 90, Schedule: "@daily"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	if err := pruner.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	cancel()

	deadline := time.After(2 * time.Second)
	for pruner.scheduler.IsRunning() {
		select {
		case <-deadline:
			t.Fatal("scheduler still running after context cancellation")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
