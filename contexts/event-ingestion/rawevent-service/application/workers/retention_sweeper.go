package workers

import (
	"context"
	"log/slog"
	"time"

	application "rawvault/contexts/event-ingestion/rawevent-service/application"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"
)

// RetentionSweeper removes raw events older than the retention window.
// It is the only deleter besides explicit per-record deletes; the store
// itself never expires anything.
type RetentionSweeper struct {
	RawEvents ports.RawEventRepository
	Clock     ports.Clock
	Retention time.Duration
	BatchSize int
	Logger    *slog.Logger
}

func (s RetentionSweeper) RunOnce(ctx context.Context) (int64, error) {
	logger := application.ResolveLogger(s.Logger)
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock.Now().UTC()
	}
	cutoff := now.Add(-s.Retention)

	var total int64
	for {
		removed, err := s.RawEvents.DeleteRawEventsBefore(ctx, cutoff, s.BatchSize)
		if err != nil {
			logger.Error("retention sweep failed",
				"event", "raw_event_retention_sweep_failed",
				"module", "event-ingestion/rawevent-service",
				"layer", "worker",
				"error", err.Error(),
			)
			return total, err
		}
		total += removed
		if removed == 0 || (s.BatchSize > 0 && removed < int64(s.BatchSize)) {
			break
		}
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
	}

	if total > 0 {
		logger.Info("retention sweep completed",
			"event", "raw_event_retention_sweep_completed",
			"module", "event-ingestion/rawevent-service",
			"layer", "worker",
			"removed_count", total,
			"cutoff", cutoff,
		)
	}
	return total, nil
}

// Run sweeps on the given interval until the context is canceled.
func (s RetentionSweeper) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}
