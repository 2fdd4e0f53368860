package jobs

import (
	"context"
	"time"

	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"
)

// runner executes one job run under the shared lock and records its outcome.
type runner struct {
	name    string
	ttl     time.Duration
	lock    Lock
	metrics *metrics.CronJobMetrics
	log     *logger.Logger
}

func (r runner) run(fn func(ctx context.Context) error) {
	ctx := r.log.WithField(context.Background(), "job", r.name)

	release, ok, err := r.lock.TryLock(ctx, r.name, r.ttl)
	if err != nil {
		r.log.Error(ctx, "job lock failed", err)
		r.metrics.IncFailure(r.name)
		return
	}
	if !ok {
		r.log.Debug(ctx, "job held by another instance, skipping")
		return
	}
	defer func() {
		if err := release(ctx); err != nil {
			r.log.Error(ctx, "job lock release failed", err)
		}
	}()

	start := time.Now()
	err = fn(ctx)
	r.metrics.ObserveDuration(r.name, time.Since(start))
	if err != nil {
		r.log.Error(ctx, "job failed", err)
		r.metrics.IncFailure(r.name)
		return
	}
	r.metrics.IncSuccess(r.name)
}
