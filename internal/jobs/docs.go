// Package jobs provides scheduled background tasks for the dealership.
//
// Jobs are built on github.com/robfig/cron/v3 with second resolution.
//
// # Available Jobs
//
// 1. InventoryMetricsJob - every 30 seconds, copies the dashboard counts into
// the Prometheus inventory gauges
// 2. OverduePurchaseOrdersJob - every minute, logs a warning for each confirmed
// purchase order past its ETA that still has units on order
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Deps{...})
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Locking
//
// Every run first takes a Lock named after the job. With several replicas
// behind one Redis, RedisLock lets exactly one of them run each tick; the
// others skip it. NoopLock is used when Redis is not configured.
//
// # Metrics
//
// Run durations and outcomes go to metrics.CronJobMetrics. A skipped run
// records nothing.
package jobs
