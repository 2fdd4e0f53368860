package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealership/internal/adapters/out/postgres"
	"dealership/internal/adapters/out/postgres/seed"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func seededDB(t *testing.T, now time.Time) *gorm.DB {
	t.Helper()
	db, err := postgres.OpenInMemory(kernel.NewUUID().String(), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, seed.Load(context.Background(), postgres.NewGormUnitOfWorkFactory(db), now))
	return db
}

// gaugeValue reads one labelled sample from reg.
func gaugeValue(t *testing.T, reg *prometheus.Registry, name, status string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if status == "" && len(m.GetLabel()) == 0 {
				return m.GetGauge().GetValue()
			}
			for _, l := range m.GetLabel() {
				if l.GetName() == "status" && l.GetValue() == status {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{status=%q} not found", name, status)
	return 0
}

func TestInventoryMetricsJob_Run(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	db := seededDB(t, now)
	reg := prometheus.NewRegistry()

	job := NewInventoryMetricsJob(
		queries.NewGetDashboardSummaryQueryHandler(db),
		metrics.NewInventoryGauges(reg),
		NoopLock{},
		metrics.NewCronJobMetrics(reg),
		logger.Nop(),
	)
	require.NoError(t, job.Run(context.Background()))

	assert.Equal(t, 3.0, gaugeValue(t, reg, "dealership_vehicle_units", "ON_ORDER"))
	assert.Equal(t, 1.0, gaugeValue(t, reg, "dealership_vehicle_units", "AT_DEALER"))
	assert.Equal(t, 0.0, gaugeValue(t, reg, "dealership_vehicle_units", "DELIVERED"))
	assert.Equal(t, 1.0, gaugeValue(t, reg, "dealership_purchase_orders", "SUBMITTED"))
	assert.Equal(t, 0.0, gaugeValue(t, reg, "dealership_deliveries", "PENDING"))
	assert.Equal(t, 2.0, gaugeValue(t, reg, "dealership_active_vouchers", ""))
}

func TestOverduePurchaseOrdersJob_Run(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	db := seededDB(t, now)
	handler := queries.NewGetOverduePurchaseOrdersQueryHandler(db)

	onTime := NewOverduePurchaseOrdersJob(handler,
		services.NewDiscountCalculator(func() time.Time { return now }),
		NoopLock{}, nil, logger.Nop())
	n, err := onTime.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	// PO-2025-001 is due 14 days after the seed date.
	later := now.AddDate(0, 0, 20)
	late := NewOverduePurchaseOrdersJob(handler,
		services.NewDiscountCalculator(func() time.Time { return later }),
		NoopLock{}, nil, logger.Nop())
	n, err = late.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

type heldLock struct{ calls int }

func (l *heldLock) TryLock(context.Context, string, time.Duration) (func(context.Context) error, bool, error) {
	l.calls++
	return nil, false, nil
}

type brokenLock struct{}

func (brokenLock) TryLock(context.Context, string, time.Duration) (func(context.Context) error, bool, error) {
	return nil, false, errors.New("connection refused")
}

func TestRunner(t *testing.T) {
	newRunner := func(lock Lock) (runner, *prometheus.Registry) {
		reg := prometheus.NewRegistry()
		return runner{
			name:    "probe",
			ttl:     time.Second,
			lock:    lock,
			metrics: metrics.NewCronJobMetrics(reg),
			log:     logger.Nop(),
		}, reg
	}
	count := func(t *testing.T, reg *prometheus.Registry, name string) int {
		t.Helper()
		n, err := testutil.GatherAndCount(reg, name)
		require.NoError(t, err)
		return n
	}

	t.Run("records success", func(t *testing.T) {
		r, reg := newRunner(NoopLock{})
		ran := false
		r.run(func(context.Context) error { ran = true; return nil })

		assert.True(t, ran)
		assert.Equal(t, 1, count(t, reg, "dealership_job_success_total"))
		assert.Equal(t, 0, count(t, reg, "dealership_job_failure_total"))
	})

	t.Run("records failure", func(t *testing.T) {
		r, reg := newRunner(NoopLock{})
		r.run(func(context.Context) error { return errors.New("boom") })

		assert.Equal(t, 0, count(t, reg, "dealership_job_success_total"))
		assert.Equal(t, 1, count(t, reg, "dealership_job_failure_total"))
	})

	t.Run("skips when the lock is held elsewhere", func(t *testing.T) {
		lock := &heldLock{}
		r, reg := newRunner(lock)
		ran := false
		r.run(func(context.Context) error { ran = true; return nil })

		assert.False(t, ran)
		assert.Equal(t, 1, lock.calls)
		assert.Equal(t, 0, count(t, reg, "dealership_job_success_total"))
		assert.Equal(t, 0, count(t, reg, "dealership_job_duration_seconds"))
	})

	t.Run("lock errors count as failures", func(t *testing.T) {
		r, reg := newRunner(brokenLock{})
		ran := false
		r.run(func(context.Context) error { ran = true; return nil })

		assert.False(t, ran)
		assert.Equal(t, 1, count(t, reg, "dealership_job_failure_total"))
	})
}

func TestJobManager_StartStop(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	db := seededDB(t, now)

	jm := NewJobManager(Deps{
		Dashboard: queries.NewGetDashboardSummaryQueryHandler(db),
		Overdue:   queries.NewGetOverduePurchaseOrdersQueryHandler(db),
		Pricing:   services.NewDiscountCalculator(func() time.Time { return now }),
		Logger:    logger.Nop(),
	})
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_BadScheduleFailsToStart(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	db := seededDB(t, now)

	jm := NewJobManager(Deps{
		Dashboard:                     queries.NewGetDashboardSummaryQueryHandler(db),
		Overdue:                       queries.NewGetOverduePurchaseOrdersQueryHandler(db),
		Pricing:                       services.NewDiscountCalculator(func() time.Time { return now }),
		Logger:                        logger.Nop(),
		OverduePurchaseOrdersSchedule: "every minute please",
	})
	err := jm.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overdue purchase orders")
}
