package workers

import (
	"chat-poll/observability"
	"context"
	"log/slog"
	"time"
)

const defaultReportInterval = time.Minute

// ReporterWorker logs the poll counters at a fixed interval, and once more on shutdown.
type ReporterWorker struct {
	log        *slog.Logger
	monitoring *observability.Monitoring
	interval   time.Duration
}

func NewReporterWorker(log *slog.Logger, monitoring *observability.Monitoring, interval time.Duration) *ReporterWorker {
	if interval <= 0 {
		interval = defaultReportInterval
	}
	return &ReporterWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report()
			return ctx.Err()
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *ReporterWorker) report() {
	stats := w.monitoring.GetLatest()
	w.log.Info("Poll stats",
		"uptime", stats.Uptime,
		"polls", stats.PollsServed,
		"degraded", stats.PollsDegraded,
		"failed", stats.PollsFailed,
		"ids", stats.IDsReported,
		"mem_mb", stats.AllocMemMb,
		"goroutines", stats.NumGoroutine)
}
