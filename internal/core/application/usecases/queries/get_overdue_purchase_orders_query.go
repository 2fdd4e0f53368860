package queries

import (
	"errors"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/guard"
)

var ErrGetOverduePurchaseOrdersQueryIsNotConstructed = errors.New(
	"GetOverduePurchaseOrdersQuery must be created via NewGetOverduePurchaseOrdersQuery constructor",
)

// GetOverduePurchaseOrdersQuery finds confirmed purchase orders whose ETA is
// before today while some of their units are still on order.
type GetOverduePurchaseOrdersQuery struct {
	today kernel.Date

	guard guard.ConstructorGuard
}

func NewGetOverduePurchaseOrdersQuery(today kernel.Date) GetOverduePurchaseOrdersQuery {
	return GetOverduePurchaseOrdersQuery{today: today, guard: guard.NewConstructorGuard()}
}

func (q GetOverduePurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverduePurchaseOrdersQueryIsNotConstructed)
}

func (q GetOverduePurchaseOrdersQuery) Today() kernel.Date {
	return q.today
}

type OverduePurchaseOrderView struct {
	ID           kernel.UUID
	OrderNo      string
	EtaAtDealer  kernel.Date
	UnitsOnOrder int64
	DaysOverdue  int
}
