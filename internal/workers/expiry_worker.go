package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Purger حذف رکوردهای منقضی و برگرداندن تعداد حذف‌شده‌ها
type Purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

type ExpiryWorker struct {
	Purger   Purger
	Interval time.Duration
	Logger   *zap.Logger
}

func NewExpiryWorker(purger Purger, interval time.Duration, logger *zap.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		Purger:   purger,
		Interval: interval,
		Logger:   logger,
	}
}

// Run یک دور فوری و سپس هر Interval؛ با لغو ctx متوقف می‌شود
func (w *ExpiryWorker) Run(ctx context.Context) {
	w.Logger.Info("ExpiryWorker started", zap.Duration("interval", w.Interval))
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		w.sweep(ctx)

		select {
		case <-ctx.Done():
			w.Logger.Info("ExpiryWorker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	n, err := w.Purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.Logger.Error("Error purging expired leaves", zap.Error(err))
		}
		return
	}
	if n > 0 {
		w.Logger.Info("Purged expired leaves", zap.Int("count", n))
	}
}
