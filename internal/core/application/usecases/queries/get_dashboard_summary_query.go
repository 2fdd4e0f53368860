package queries

import (
	"errors"

	"dealership/internal/core/domain/model/customerorder"
	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/purchaseorder"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// DashboardSummary holds a count for every known status, zero included.
type DashboardSummary struct {
	VehicleUnits   map[vehicle.Status]int64
	PurchaseOrders map[purchaseorder.Status]int64
	Deliveries     map[delivery.Status]int64
	CustomerOrders map[customerorder.Status]int64
	ActiveVouchers int64
}
