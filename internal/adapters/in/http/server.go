// Package http exposes the dealership use cases as a JSON API over echo.
package http

import (
	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/services"
	"dealership/internal/pkg/logger"
)

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateVoucher             commands.CreateVoucherCommandHandler
	SetVoucherActive          commands.SetVoucherActiveCommandHandler
	CreatePurchaseOrder       commands.CreatePurchaseOrderCommandHandler
	ChangePurchaseOrderStatus commands.ChangePurchaseOrderStatusCommandHandler
	MarkVehicleArrived        commands.MarkVehicleArrivedCommandHandler
	AssignVehicleVIN          commands.AssignVehicleVINCommandHandler
	CreateCustomerOrder       commands.CreateCustomerOrderCommandHandler
	CancelCustomerOrder       commands.CancelCustomerOrderCommandHandler
	CreateDelivery            commands.CreateDeliveryCommandHandler
	ChangeDeliveryStatus      commands.ChangeDeliveryStatusCommandHandler

	// Query handlers
	ListCarModels      queries.ListCarModelsQueryHandler
	ListPurchaseOrders queries.ListPurchaseOrdersQueryHandler
	ListVehicleUnits   queries.ListVehicleUnitsQueryHandler
	ListVouchers       queries.ListVouchersQueryHandler
	GetVoucherStats    queries.GetVoucherStatsQueryHandler
	QuoteVoucher       queries.QuoteVoucherQueryHandler
	ListCustomerOrders queries.ListCustomerOrdersQueryHandler
	ListDeliveries     queries.ListDeliveriesQueryHandler
	GetDashboard       queries.GetDashboardSummaryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h       Handlers
	pricing services.DiscountCalculator
	log     *logger.Logger
}

// NewServer creates the HTTP server. pricing supplies the calendar day used by
// date dependent queries.
func NewServer(h Handlers, pricing services.DiscountCalculator, log *logger.Logger) *Server {
	return &Server{h: h, pricing: pricing, log: log}
}
