package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const defaultValueLogGCInterval = 10 * time.Minute

// ValueLogGCWorker periodically reclaims space in Badger's value log.
// Messages are never deleted, but the index keys rewritten by membership
// changes and seen marks leave garbage behind.
type ValueLogGCWorker struct {
	log      *slog.Logger
	db       *badger.DB
	interval time.Duration
	ratio    float64
}

func NewValueLogGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration, ratio float64) *ValueLogGCWorker {
	if interval <= 0 {
		interval = defaultValueLogGCInterval
	}
	return &ValueLogGCWorker{log: log, db: db, interval: interval, ratio: ratio}
}

func (w *ValueLogGCWorker) Run(ctx context.Context) error {
	w.log.Info("Starting value log GC worker", "interval", w.interval, "ratio", w.ratio)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rewrites, err := w.collect(ctx)
			if err != nil {
				w.log.Warn("Value log GC failed", "error", err)
				continue
			}
			if rewrites > 0 {
				w.log.Debug("Value log GC", "rewrites", rewrites)
			}
		}
	}
}

// collect runs GC until Badger reports nothing left to rewrite.
func (w *ValueLogGCWorker) collect(ctx context.Context) (int, error) {
	rewrites := 0
	for ctx.Err() == nil {
		err := w.db.RunValueLogGC(w.ratio)
		switch {
		case err == nil:
			rewrites++
		case stderrors.Is(err, badger.ErrNoRewrite):
			return rewrites, nil
		default:
			return rewrites, err
		}
	}
	return rewrites, nil
}
