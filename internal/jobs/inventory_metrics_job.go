package jobs

import (
	"context"
	"time"

	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const inventoryMetricsSpec = "*/30 * * * * *"

// InventoryMetricsJob refreshes the inventory gauges from the dashboard
// summary.
type InventoryMetricsJob struct {
	handler queries.GetDashboardSummaryQueryHandler
	gauges  *metrics.InventoryGauges
	cron    *cron.Cron
	spec    string
	runner  runner
	log     *logger.Logger
}

func NewInventoryMetricsJob(
	handler queries.GetDashboardSummaryQueryHandler,
	gauges *metrics.InventoryGauges,
	lock Lock,
	jobMetrics *metrics.CronJobMetrics,
	log *logger.Logger,
) *InventoryMetricsJob {
	log = log.With("inventory_metrics_job")
	return &InventoryMetricsJob{
		handler: handler,
		gauges:  gauges,
		cron:    cron.New(cron.WithSeconds()),
		spec:    inventoryMetricsSpec,
		runner:  runner{name: "inventory_metrics", ttl: 25 * time.Second, lock: lock, metrics: jobMetrics, log: log},
		log:     log,
	}
}

// Run refreshes the gauges once.
func (j *InventoryMetricsJob) Run(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return err
	}

	for status, n := range summary.VehicleUnits {
		j.gauges.SetVehicleUnits(status.String(), n)
	}
	for status, n := range summary.Deliveries {
		j.gauges.SetDeliveries(status.String(), n)
	}
	for status, n := range summary.PurchaseOrders {
		j.gauges.SetPurchaseOrders(status.String(), n)
	}
	j.gauges.SetActiveVouchers(summary.ActiveVouchers)
	return nil
}

// WithSchedule replaces the default six field cron spec. Empty keeps it.
func (j *InventoryMetricsJob) WithSchedule(spec string) *InventoryMetricsJob {
	if spec != "" {
		j.spec = spec
	}
	return j
}

func (j *InventoryMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.runner.run(j.Run)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(j.log.WithField(context.Background(), "schedule", j.spec), "inventory metrics job started")
	return nil
}

func (j *InventoryMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info(context.Background(), "inventory metrics job stopped")
}
