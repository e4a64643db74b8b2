package workers

import (
	"context"
	"dweb-bridge/contract"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitorWorker periodically logs the bridge load along with
// the memory and cpu usage of the process itself.
type HealthMonitorWorker struct {
	log      *slog.Logger
	reporter contract.HealthReporter
	interval time.Duration
	self     *process.Process
}

func NewHealthMonitorWorker(log *slog.Logger, reporter contract.HealthReporter, interval time.Duration) *HealthMonitorWorker {
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Debug("Process metrics unavailable", "error", err)
	}
	return &HealthMonitorWorker{log: log, reporter: reporter, interval: interval, self: self}
}

func (w *HealthMonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitor")
			return nil
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

func (w *HealthMonitorWorker) report(ctx context.Context) {
	stats := w.reporter.Health()
	attrs := []any{
		"queued", stats.Queued,
		"active", stats.Active,
		"max_concurrent", stats.MaxConcurrent,
		"uploads_in_progress", stats.UploadsInProgress,
		"sessions", stats.Sessions,
	}

	if w.self != nil {
		if memory, err := w.self.MemoryInfoWithContext(ctx); err != nil {
			w.log.Debug("Error while reading process memory", "error", err)
		} else {
			attrs = append(attrs, "rss_bytes", memory.RSS)
		}
		if cpu, err := w.self.CPUPercentWithContext(ctx); err != nil {
			w.log.Debug("Error while reading process cpu usage", "error", err)
		} else {
			attrs = append(attrs, "cpu_percent", cpu)
		}
	}
	w.log.Info("Bridge health", attrs...)
}
