package cmd

import (
	"time"

	httpapi "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/postgres"
	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/services"
	"dealership/internal/jobs"
	"dealership/internal/pkg/auth"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      services.Clock
	pricing    services.DiscountCalculator
	handover   *services.Handover
	log        *logger.Logger
}

// NewCompositionRoot wires handlers over gormDB. clock is the evaluation time
// of pricing and timestamps; its location decides the calendar day.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, clock services.Clock, log *logger.Logger) CompositionRoot {
	if clock == nil {
		clock = time.Now
	}
	pricing := services.NewDiscountCalculator(clock)
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		pricing:    pricing,
		handover:   services.NewHandover(pricing),
		log:        log,
	}
}

func (c *CompositionRoot) Pricing() services.DiscountCalculator {
	return c.pricing
}

func (c *CompositionRoot) voucherUoWFactory() commands.VoucherUoWFactory {
	return FuncVoucherUoWFactory(func() commands.VoucherUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) salesUoWFactory() commands.SalesUoWFactory {
	return FuncSalesUoWFactory(func() commands.SalesUoW {
		return c.uowFactory.Create()
	})
}

// Commands

func (c *CompositionRoot) CreateCreateVoucherCommandHandler() commands.CreateVoucherCommandHandler {
	return commands.NewCreateVoucherCommandHandler(c.voucherUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetVoucherActiveCommandHandler() commands.SetVoucherActiveCommandHandler {
	return commands.NewSetVoucherActiveCommandHandler(c.voucherUoWFactory())
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.inventoryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangePurchaseOrderStatusCommandHandler() commands.ChangePurchaseOrderStatusCommandHandler {
	return commands.NewChangePurchaseOrderStatusCommandHandler(c.inventoryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkVehicleArrivedCommandHandler() commands.MarkVehicleArrivedCommandHandler {
	return commands.NewMarkVehicleArrivedCommandHandler(c.inventoryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignVehicleVINCommandHandler() commands.AssignVehicleVINCommandHandler {
	return commands.NewAssignVehicleVINCommandHandler(c.inventoryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateCustomerOrderCommandHandler() commands.CreateCustomerOrderCommandHandler {
	return commands.NewCreateCustomerOrderCommandHandler(c.salesUoWFactory(), c.handover)
}

func (c *CompositionRoot) CreateCancelCustomerOrderCommandHandler() commands.CancelCustomerOrderCommandHandler {
	return commands.NewCancelCustomerOrderCommandHandler(c.salesUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.salesUoWFactory(), c.handover)
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(c.salesUoWFactory(), c.handover)
}

// Queries

func (c *CompositionRoot) CreateListCarModelsQueryHandler() queries.ListCarModelsQueryHandler {
	return queries.NewListCarModelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPurchaseOrdersQueryHandler() queries.ListPurchaseOrdersQueryHandler {
	return queries.NewListPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehicleUnitsQueryHandler() queries.ListVehicleUnitsQueryHandler {
	return queries.NewListVehicleUnitsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVouchersQueryHandler() queries.ListVouchersQueryHandler {
	return queries.NewListVouchersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVoucherStatsQueryHandler() queries.GetVoucherStatsQueryHandler {
	return queries.NewGetVoucherStatsQueryHandler(c.gormDB)
}

// CreateQuoteVoucherQueryHandler reads vouchers outside any transaction.
func (c *CompositionRoot) CreateQuoteVoucherQueryHandler() queries.QuoteVoucherQueryHandler {
	return queries.NewQuoteVoucherQueryHandler(c.uowFactory.Create().VoucherRepository(), c.pricing)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverduePurchaseOrdersQueryHandler() queries.GetOverduePurchaseOrdersQueryHandler {
	return queries.NewGetOverduePurchaseOrdersQueryHandler(c.gormDB)
}

// Adapters

func (c *CompositionRoot) CreateHTTPServer() *httpapi.Server {
	return httpapi.NewServer(httpapi.Handlers{
		CreateVoucher:             c.CreateCreateVoucherCommandHandler(),
		SetVoucherActive:          c.CreateSetVoucherActiveCommandHandler(),
		CreatePurchaseOrder:       c.CreateCreatePurchaseOrderCommandHandler(),
		ChangePurchaseOrderStatus: c.CreateChangePurchaseOrderStatusCommandHandler(),
		MarkVehicleArrived:        c.CreateMarkVehicleArrivedCommandHandler(),
		AssignVehicleVIN:          c.CreateAssignVehicleVINCommandHandler(),
		CreateCustomerOrder:       c.CreateCreateCustomerOrderCommandHandler(),
		CancelCustomerOrder:       c.CreateCancelCustomerOrderCommandHandler(),
		CreateDelivery:            c.CreateCreateDeliveryCommandHandler(),
		ChangeDeliveryStatus:      c.CreateChangeDeliveryStatusCommandHandler(),

		ListCarModels:      c.CreateListCarModelsQueryHandler(),
		ListPurchaseOrders: c.CreateListPurchaseOrdersQueryHandler(),
		ListVehicleUnits:   c.CreateListVehicleUnitsQueryHandler(),
		ListVouchers:       c.CreateListVouchersQueryHandler(),
		GetVoucherStats:    c.CreateGetVoucherStatsQueryHandler(),
		QuoteVoucher:       c.CreateQuoteVoucherQueryHandler(),
		ListCustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
		ListDeliveries:     c.CreateListDeliveriesQueryHandler(),
		GetDashboard:       c.CreateGetDashboardSummaryQueryHandler(),
	}, c.pricing, c.log.With("http"))
}

func (c *CompositionRoot) AuthConfig() auth.Config {
	return auth.Config{Secret: c.cfg.JWT.Secret, Issuer: c.cfg.JWT.Issuer, TTL: c.cfg.JWT.TTL}
}

func (c *CompositionRoot) CreateJobManager(lock jobs.Lock, gauges *metrics.InventoryGauges, jobMetrics *metrics.CronJobMetrics) *jobs.JobManager {
	return jobs.NewJobManager(jobs.Deps{
		Dashboard:                     c.CreateGetDashboardSummaryQueryHandler(),
		Overdue:                       c.CreateGetOverduePurchaseOrdersQueryHandler(),
		Pricing:                       c.pricing,
		Gauges:                        gauges,
		JobMetrics:                    jobMetrics,
		Lock:                          lock,
		Logger:                        c.log,
		InventoryMetricsSchedule:      c.cfg.Jobs.InventoryMetricsSchedule,
		OverduePurchaseOrdersSchedule: c.cfg.Jobs.OverduePurchaseOrdersSchedule,
	})
}

type FuncVoucherUoWFactory func() commands.VoucherUoW

func (f FuncVoucherUoWFactory) Create() commands.VoucherUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncSalesUoWFactory func() commands.SalesUoW

func (f FuncSalesUoWFactory) Create() commands.SalesUoW {
	return f()
}
