package jobs

import (
	"fmt"

	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	inventoryMetricsJob      *InventoryMetricsJob
	overduePurchaseOrdersJob *OverduePurchaseOrdersJob
}

// Deps are the handlers and infrastructure the jobs run on.
type Deps struct {
	Dashboard  queries.GetDashboardSummaryQueryHandler
	Overdue    queries.GetOverduePurchaseOrdersQueryHandler
	Pricing    services.DiscountCalculator
	Gauges     *metrics.InventoryGauges
	JobMetrics *metrics.CronJobMetrics
	Lock       Lock
	Logger     *logger.Logger

	// Six field cron specs; empty keeps each job's default.
	InventoryMetricsSchedule      string
	OverduePurchaseOrdersSchedule string
}

func NewJobManager(deps Deps) *JobManager {
	lock := deps.Lock
	if lock == nil {
		lock = NoopLock{}
	}
	return &JobManager{
		inventoryMetricsJob: NewInventoryMetricsJob(
			deps.Dashboard, deps.Gauges, lock, deps.JobMetrics, deps.Logger).
			WithSchedule(deps.InventoryMetricsSchedule),
		overduePurchaseOrdersJob: NewOverduePurchaseOrdersJob(
			deps.Overdue, deps.Pricing, lock, deps.JobMetrics, deps.Logger).
			WithSchedule(deps.OverduePurchaseOrdersSchedule),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.inventoryMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start inventory metrics job: %w", err)
	}

	if err := jm.overduePurchaseOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.inventoryMetricsJob.Stop()
		return fmt.Errorf("failed to start overdue purchase orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.overduePurchaseOrdersJob.Stop()
	jm.inventoryMetricsJob.Stop()
}
