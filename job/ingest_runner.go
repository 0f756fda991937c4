package job

import (
	"context"
	"time"

	"newslens/port/ingest_port"
	"newslens/utils/logger"
)

// IngestRunner triggers ingestion passes on a fixed interval until the
// context is cancelled. The first pass runs immediately so the store is warm
// before the first feed request.
type IngestRunner struct {
	ingester ingest_port.IngestPort
	interval time.Duration
}

func NewIngestRunner(ingester ingest_port.IngestPort, interval time.Duration) *IngestRunner {
	return &IngestRunner{
		ingester: ingester,
		interval: interval,
	}
}

// Run blocks until ctx is done. Callers start it in its own goroutine.
func (r *IngestRunner) Run(ctx context.Context) {
	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Logger.Info("ingest runner stopped", "reason", ctx.Err())
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *IngestRunner) runOnce(ctx context.Context) {
	inserted, err := r.ingester.Execute(ctx)
	if err != nil {
		logger.Logger.Error("scheduled ingestion failed", "error", err)
		return
	}
	logger.Logger.Info("scheduled ingestion finished", "inserted", inserted)
}
