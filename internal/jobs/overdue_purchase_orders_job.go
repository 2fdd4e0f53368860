package jobs

import (
	"context"
	"time"

	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const overduePurchaseOrdersSpec = "0 * * * * *"

// OverduePurchaseOrdersJob warns about confirmed purchase orders whose ETA
// has passed while units are still on order.
type OverduePurchaseOrdersJob struct {
	handler queries.GetOverduePurchaseOrdersQueryHandler
	pricing services.DiscountCalculator
	cron    *cron.Cron
	spec    string
	runner  runner
	log     *logger.Logger
}

func NewOverduePurchaseOrdersJob(
	handler queries.GetOverduePurchaseOrdersQueryHandler,
	pricing services.DiscountCalculator,
	lock Lock,
	jobMetrics *metrics.CronJobMetrics,
	log *logger.Logger,
) *OverduePurchaseOrdersJob {
	log = log.With("overdue_purchase_orders_job")
	return &OverduePurchaseOrdersJob{
		handler: handler,
		pricing: pricing,
		cron:    cron.New(cron.WithSeconds()),
		spec:    overduePurchaseOrdersSpec,
		runner:  runner{name: "overdue_purchase_orders", ttl: 55 * time.Second, lock: lock, metrics: jobMetrics, log: log},
		log:     log,
	}
}

// Run logs one warning per overdue order and returns how many there were.
func (j *OverduePurchaseOrdersJob) Run(ctx context.Context) (int, error) {
	overdue, err := j.handler.Handle(ctx, queries.NewGetOverduePurchaseOrdersQuery(j.pricing.Today()))
	if err != nil {
		return 0, err
	}

	for _, po := range overdue {
		poCtx := j.log.WithFields(ctx, map[string]any{
			"order_no":       po.OrderNo,
			"eta_at_dealer":  po.EtaAtDealer.String(),
			"days_overdue":   po.DaysOverdue,
			"units_on_order": po.UnitsOnOrder,
		})
		j.log.Warn(poCtx, "purchase order overdue")
	}
	return len(overdue), nil
}

// WithSchedule replaces the default six field cron spec. Empty keeps it.
func (j *OverduePurchaseOrdersJob) WithSchedule(spec string) *OverduePurchaseOrdersJob {
	if spec != "" {
		j.spec = spec
	}
	return j
}

func (j *OverduePurchaseOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.runner.run(func(ctx context.Context) error {
			_, err := j.Run(ctx)
			return err
		})
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(j.log.WithField(context.Background(), "schedule", j.spec), "overdue purchase orders job started")
	return nil
}

func (j *OverduePurchaseOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info(context.Background(), "overdue purchase orders job stopped")
}
